package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrCVNotFound indicates a CV record was not found.
type ErrCVNotFound struct {
	ID uuid.UUID
}

func (e *ErrCVNotFound) Error() string {
	return fmt.Sprintf("cv not found: %s", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrCVNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
