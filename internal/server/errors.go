package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-tracker/internal/experience"
	"github.com/jonathan/cv-tracker/internal/merge"
)

// ErrNotFound indicates the addressed record does not exist
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrNotFound
	var invalid *ErrValidation
	var fields validator.ValidationErrors
	var normalization *experience.NormalizationError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &fields), errors.As(err, &normalization):
		return http.StatusBadRequest
	case errors.Is(err, merge.ErrReplaceNotConfirmed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
