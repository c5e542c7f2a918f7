package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/search"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrJobNotFound indicates the requested job does not exist
type ErrJobNotFound struct {
	ID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

func (e *ErrJobNotFound) Unwrap() error {
	return corpus.ErrJobNotFound
}

// ErrInvalidQuery indicates a blank or unusable search query
type ErrInvalidQuery struct {
	Query string
}

func (e *ErrInvalidQuery) Error() string {
	if e.Query == "" {
		return "query is required"
	}
	return fmt.Sprintf("invalid query: %q", e.Query)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		queryErr       *ErrInvalidQuery
		paramErr       *search.InvalidParamError
		interactionErr *corpus.UnknownInteractionError
		schemaErr      *schemas.ValidationError
		fieldErrs      validator.ValidationErrors
		notFoundErr    *ErrJobNotFound
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &queryErr),
		errors.As(err, &paramErr),
		errors.As(err, &interactionErr),
		errors.As(err, &schemaErr),
		errors.As(err, &fieldErrs),
		errors.Is(err, search.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, corpus.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, search.ErrUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
