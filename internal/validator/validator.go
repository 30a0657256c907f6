// Package validator wraps go-playground/validator for request DTOs. Domain
// range checks live on the domain models; this only enforces structural tags
// (required, email, ...) on incoming payloads.
package validator

import (
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest validates a request struct against its `validate` tags and
// reports every failing field at once.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ierr.WithError(err).
			WithHint("Invalid request").
			Mark(ierr.ErrValidation)
	}

	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}

	return ierr.NewError("request validation failed").
		WithHint("One or more request fields are missing or malformed").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
