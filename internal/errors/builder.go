package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder assembles an InternalError fluently:
//
//	ierr.NewError("employee_count out of range").
//		WithHint("Employee count must be between 5 and 2000").
//		WithReportableDetails(map[string]any{"employee_count": 3}).
//		Mark(ierr.ErrValidation)
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder with an internal message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{Message: message}}
}

// NewErrorf starts a builder with a formatted internal message.
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return NewError(fmt.Sprintf(format, args...))
}

// WithError starts a builder wrapping an existing cause.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{Err: errors.WithStack(err)}}
}

// WithMessage sets the internal, log-facing message.
func (b *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	b.err.Message = message
	return b
}

// WithMessagef sets a formatted internal message.
func (b *ErrorBuilder) WithMessagef(format string, args ...any) *ErrorBuilder {
	b.err.Message = fmt.Sprintf(format, args...)
	return b
}

// WithHint sets the user-safe message returned to API clients.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.Hint = hint
	return b
}

// WithHintf sets a formatted user-safe message.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err.Hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured, user-safe details.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.err.ReportableDetails = details
	return b
}

// Mark finalizes the builder with a sentinel and returns the error.
func (b *ErrorBuilder) Mark(mark error) error {
	b.err.mark = mark
	return b.err
}
