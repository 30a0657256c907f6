package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderMark(t *testing.T) {
	err := NewError("employee_count out of range").
		WithHint("Employee count must be between 5 and 2000").
		WithReportableDetails(map[string]any{"employee_count": 3}).
		Mark(ErrValidation)

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "employee_count out of range", err.Error())

	ie, ok := AsInternalError(err)
	require.True(t, ok)
	assert.Equal(t, "Employee count must be between 5 and 2000", ie.Hint)
	assert.Equal(t, 3, ie.ReportableDetails["employee_count"])
}

func TestWithErrorWrapsCause(t *testing.T) {
	cause := NewError("boom").Mark(ErrDatabase)
	err := WithError(cause).
		WithMessage("failed to store lead").
		WithHint("Failed to store lead").
		Mark(ErrInternal)

	// both the outer mark and the wrapped cause's mark are visible
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, ErrDatabase)
	assert.Equal(t, "failed to store lead", err.Error())
}

func TestHTTPStatusFromErr(t *testing.T) {
	cases := []struct {
		mark   error
		status int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{ErrInternal, http.StatusInternalServerError},
		{ErrDatabase, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := NewError("test").Mark(tc.mark)
		assert.Equal(t, tc.status, HTTPStatusFromErr(err), "mark %v", tc.mark)
	}
}

func TestNewErrorResponse(t *testing.T) {
	err := NewError("internal detail that must not leak").
		WithHint("One or more inputs are invalid").
		WithReportableDetails(map[string]any{"field": "reason"}).
		Mark(ErrValidation)

	resp := NewErrorResponse(err)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "One or more inputs are invalid", resp.Error.Message)
	assert.Equal(t, "reason", resp.Error.Details["field"])
	assert.NotContains(t, resp.Error.Message, "internal detail")
}

func TestNewErrorResponsePlainError(t *testing.T) {
	resp := NewErrorResponse(assert.AnError)
	assert.Equal(t, "internal_error", resp.Error.Code)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}
