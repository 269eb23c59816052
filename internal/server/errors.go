package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrNotFound indicates a stored record was not found.
type ErrNotFound struct {
	Kind string // "resume", "job", "run"
	ID   uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrInvalidCredentials indicates a failed operator login.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid operator password"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedUpload indicates an upload in a format the ingester
// cannot read.
type ErrUnsupportedUpload struct {
	FileName string
}

func (e *ErrUnsupportedUpload) Error() string {
	return fmt.Sprintf("unsupported upload format: %s", e.FileName)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnsupportedUpload:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
