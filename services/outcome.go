package services

import (
	"errors"

	"preorder/pkg/apperr"
)

// outcomeOf labels an error kind for metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrValidation):
		return "validation"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	default:
		return "persistence"
	}
}
