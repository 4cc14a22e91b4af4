// Package apperr defines the error kinds every order-lifecycle operation reports.
// Callers match with errors.Is; messages carry the field-level detail.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidQuantity   = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrPersistence       = errors.New("persistence failure")
)

func Validation(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func Conflict(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func InvalidTransition(format string, args ...any) error {
	return wrap(ErrInvalidTransition, format, args...)
}

// Persistence hides the store error text behind the generic kind but keeps it in the chain.
func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
