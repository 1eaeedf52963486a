// Package httpx provides JSON response utilities shared by all handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire shape for every non-validation failure.
type ErrorResponse struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// FieldError describes a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse carries the full violation list for a rejected payload.
type ValidationResponse struct {
	Kind   string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends a structured error response.
func Error(w http.ResponseWriter, status int, kind, message string) {
	JSON(w, status, ErrorResponse{Kind: kind, Message: message})
}

// ValidationFailed sends the field-level violation list with a 400 status.
func ValidationFailed(w http.ResponseWriter, errs []FieldError) {
	JSON(w, http.StatusBadRequest, ValidationResponse{Kind: "validation", Errors: errs})
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
