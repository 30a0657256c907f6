package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrorDetail is the wire representation of an error.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse converts any error into the wire representation. Internal
// messages never leak: clients see the hint, or a generic message when no
// hint was set.
func NewErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{
		Error: ErrorDetail{
			Code:    "internal_error",
			Message: "An unexpected error occurred",
		},
	}

	ie, ok := AsInternalError(err)
	if !ok {
		return resp
	}

	resp.Error.Code = ie.Mark().Error()
	if ie.Hint != "" {
		resp.Error.Message = ie.Hint
	}
	resp.Error.Details = ie.ReportableDetails
	return resp
}

// HTTPStatusFromErr maps an error's marker to an HTTP status code.
func HTTPStatusFromErr(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
