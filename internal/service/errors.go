package service

import (
	"errors"

	"github.com/sohanurdev/portfolio-backend/internal/validation"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError carries the per-field messages reported to the client.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation error"
}

func validationFailed(fields validation.FieldErrors) error {
	return &ValidationError{Fields: fields}
}
