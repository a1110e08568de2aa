package models

import (
	"errors"
	"fmt"
)

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccessDenied       = errors.New("access denied")
	ErrInternalError      = errors.New("internal error")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrPriceNotSet        = errors.New("order price is not set")
)

// ValidationError is a local precondition failure. It is raised before any
// request is issued and carries the offending field for display.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates ValidationError for a field
func NewValidationError(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a local validation failure.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
