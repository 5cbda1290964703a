package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a request the caller can fix.
	ErrInvalidInput = errors.New("INVALID_INPUT")
	// ErrTableIntegrity marks a reference table with a missing or broken entry.
	ErrTableIntegrity = errors.New("TABLE_INTEGRITY")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// TableIntegrityError reports a lookup key with no reference entry.
type TableIntegrityError struct {
	Table string
	Key   string
}

func (e *TableIntegrityError) Error() string {
	return fmt.Sprintf("reference table %s has no entry for %q", e.Table, e.Key)
}

func (e *TableIntegrityError) Unwrap() error { return ErrTableIntegrity }
