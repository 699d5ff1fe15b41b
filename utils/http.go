package utils

import (
	"encoding/json"
	"net/http"
)

// ValidationErrorResponse carries the list of input rule violations returned
// with a 400. This is the only error shape that explains itself; authorization
// failures are bodiless so callers cannot probe causes.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse represents a generic structured error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteValidationErrors writes a 400 Bad Request carrying the violation list
func WriteValidationErrors(w http.ResponseWriter, violations []string) error {
	return WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
}

// WriteBadRequest writes a 400 Bad Request response
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// WriteConflict writes a 409 Conflict response
func WriteConflict(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusConflict, ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}

// WriteInternalServerError writes a 500 Internal Server Error response with
// no internal detail leaked
func WriteInternalServerError(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "Internal server error",
	})
}
