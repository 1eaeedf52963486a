package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// RespondError maps domain errors to HTTP responses. Store errors never leak
// driver details to the caller; the handler is expected to log the cause.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, "validation", err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
