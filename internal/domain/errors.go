package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the root of all entity validation errors. The
	// specific sentinels (ErrEmptyCardName, ErrInvalidEmail, ...) wrap it
	// so a single errors.Is(err, ErrValidation) covers the family.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)
)

// ValidationError carries the field that failed validation together
// with a human-readable reason. It wraps a sentinel error so callers
// can branch with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, reason string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}
