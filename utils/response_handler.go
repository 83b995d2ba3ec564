package utils

import (
	"api/schemas"
	"encoding/json"
	"net/http"
)

// SendResponse writes the standard envelope. Success is derived from the
// status code so handlers never set it by hand.
func SendResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(schemas.ApiResponse{
		Success: statusCode < http.StatusBadRequest,
		Message: message,
		Data:    data,
	})
}

// SendValidationErrors returns 400 with field-level detail.
func SendValidationErrors(w http.ResponseWriter, errs []schemas.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(schemas.ApiResponse{
		Success: false,
		Errors:  errs,
	})
}

// SendJSON writes an arbitrary payload for endpoints whose response shape
// extends the plain envelope (login, lead creation).
func SendJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
