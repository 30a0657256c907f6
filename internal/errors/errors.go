// Package errors provides the internal error type used across the DocSense
// backend. Errors carry an internal message for logs, a user-safe hint for API
// responses, optional reportable details, and a marker sentinel that maps to an
// HTTP status. Built on cockroachdb/errors so wrapped errors keep their stack
// and survive errors.Is checks.
package errors

import (
	"github.com/cockroachdb/errors"
)

// Marker sentinels. Every error leaving a service or repository is marked with
// exactly one of these.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrPermissionDenied = errors.New("permission_denied")
	ErrTooManyRequests  = errors.New("too_many_requests")
	ErrDatabase         = errors.New("database_error")
	ErrSystem           = errors.New("system_error")
	ErrInternal         = errors.New("internal_error")
)

// InternalError is the concrete error type produced by the builder.
type InternalError struct {
	// Message is the internal, log-facing description.
	Message string
	// Hint is a user-safe message suitable for API responses.
	Hint string
	// ReportableDetails are structured, user-safe details (e.g. the fields
	// that failed validation).
	ReportableDetails map[string]any
	// Err is the wrapped cause, if any.
	Err error
	// mark is the sentinel this error was marked with.
	mark error
}

func (e *InternalError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the marker sentinel.
func (e *InternalError) Is(target error) bool {
	return e.mark != nil && errors.Is(e.mark, target)
}

// Mark returns the sentinel this error was marked with, or ErrInternal when
// the error was never marked.
func (e *InternalError) Mark() error {
	if e.mark == nil {
		return ErrInternal
	}
	return e.mark
}

// AsInternalError extracts an *InternalError from an error chain.
func AsInternalError(err error) (*InternalError, bool) {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// IsNotFound reports whether the error is marked as not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether the error is marked as a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsAlreadyExists reports whether the error is marked as a duplicate.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
