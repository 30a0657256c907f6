package dto

import (
	"time"

	"github.com/docsense/docsense/internal/domain/lead"
	"github.com/docsense/docsense/internal/i18n"
	"github.com/docsense/docsense/internal/types"
)

// CreateLeadRequest is the payload of POST /v1/leads: a demo or contact
// request from the site.
type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"required"`

	// EmployeeCount is optional context for sales, not validated against
	// the calculator ranges.
	EmployeeCount int `json:"employee_count,omitempty"`

	Locale  string `json:"locale,omitempty"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`

	// Calculator optionally carries the inputs the visitor had configured
	// when they asked for a demo. The backend recomputes the result so the
	// stored snapshot is always consistent with the current assumptions.
	Calculator *CalculateSavingsRequest `json:"calculator,omitempty"`
}

// ToLead converts the request to a domain lead.
func (r *CreateLeadRequest) ToLead() *lead.Lead {
	l := lead.New(r.Name, r.Email, r.Company)
	l.EmployeeCount = r.EmployeeCount
	l.Message = r.Message
	if r.Locale != "" {
		l.Locale = types.Locale(r.Locale)
	}
	if r.Source != "" {
		l.Source = lead.Source(r.Source)
	}
	return l
}

// LeadResponse is the response of POST /v1/leads.
type LeadResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLeadResponse builds the localized acknowledgement for a captured lead.
func NewLeadResponse(l *lead.Lead) *LeadResponse {
	return &LeadResponse{
		ID:        l.ID,
		Message:   i18n.T(l.Locale, i18n.MsgLeadReceived),
		CreatedAt: l.CreatedAt,
	}
}
