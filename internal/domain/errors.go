package domain

import (
	"errors"
	"fmt"
)

// Sentinels for classification with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrReference  = errors.New("reference does not resolve")
	ErrNotFound   = errors.New("not found")
)

// ValidationError reports a field-level contract violation: wrong type,
// out-of-range value, empty or overlong string.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ReferenceError reports a foreign id that does not resolve to an existing entity.
type ReferenceError struct {
	Field   string
	ID      string
	Message string
}

func NewReferenceError(field, id, message string) *ReferenceError {
	return &ReferenceError{Field: field, ID: id, Message: message}
}

func (e *ReferenceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %q does not exist", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrReference }

// NotFoundError reports a failed lookup by id for a read, update or delete.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IsValidation, IsReference and IsNotFound classify errors without callers
// needing to know the concrete type.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsReference(err error) bool { return errors.Is(err, ErrReference) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
