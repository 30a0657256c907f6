// Package lead holds the domain model for demo and contact requests captured
// from the marketing site.
package lead

import (
	"net/mail"
	"time"

	"github.com/docsense/docsense/internal/domain/calculator"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/types"
)

// Source identifies which part of the site produced the lead.
type Source string

const (
	SourceDemo       Source = "demo"
	SourceContact    Source = "contact"
	SourceCalculator Source = "calculator"
)

// IsValid checks if the source is one of the defined constants
func (s Source) IsValid() bool {
	switch s {
	case SourceDemo, SourceContact, SourceCalculator:
		return true
	}
	return false
}

// Lead is a demo or contact request from a site visitor.
type Lead struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Company       string       `json:"company"`
	EmployeeCount int          `json:"employee_count,omitempty"`
	Locale        types.Locale `json:"locale"`
	Source        Source       `json:"source"`
	Message       string       `json:"message,omitempty"`

	// CalculatorSnapshot carries the savings result the visitor was looking
	// at when they requested a demo, when the request came from the
	// calculator page.
	CalculatorSnapshot *calculator.Result `json:"calculator_snapshot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// New creates a lead with a generated ID and creation timestamp.
func New(name, email, company string) *Lead {
	return &Lead{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEAD),
		Name:      name,
		Email:     email,
		Company:   company,
		Locale:    types.LocaleDefault,
		Source:    SourceContact,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the lead's required fields.
func (l *Lead) Validate() error {
	if l.Name == "" {
		return ierr.NewError("lead name is required").
			WithHint("Name is required").
			Mark(ierr.ErrValidation)
	}
	if _, err := mail.ParseAddress(l.Email); err != nil {
		return ierr.NewError("lead email is invalid").
			WithHint("A valid email address is required").
			WithReportableDetails(map[string]any{"email": l.Email}).
			Mark(ierr.ErrValidation)
	}
	if !l.Source.IsValid() {
		return ierr.NewError("lead source is invalid").
			WithHint("Source must be one of demo, contact, calculator").
			WithReportableDetails(map[string]any{"source": l.Source}).
			Mark(ierr.ErrValidation)
	}
	if !l.Locale.IsValid() {
		return ierr.NewError("lead locale is invalid").
			WithHint("Locale must be one of de, en").
			WithReportableDetails(map[string]any{"locale": l.Locale}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
