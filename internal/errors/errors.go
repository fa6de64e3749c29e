// ABOUTME: Standardized error response types and helpers for the table API
// ABOUTME: Every handler reports failures in the same JSON envelope

package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body returned by every API endpoint.
//
// Usage:
//
//	WriteError(w, http.StatusNotFound, ErrNotFound, "Record not found")
type ErrorResponse struct {
	Code    string `json:"code"`              // Machine-readable error code (e.g., "invalid_table")
	Message string `json:"message"`           // Human-readable error message
	Status  int    `json:"status"`            // HTTP status code
	Field   string `json:"field,omitempty"`   // Query parameter or body field that caused the error
	Details string `json:"details,omitempty"` // Underlying cause, when useful to the client
}

// envelope matches the platform's {"error": {...}} wrapping.
type envelope struct {
	Error ErrorResponse `json:"error"`
}

// WriteError writes an error response with just a code and message.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}

// WriteErrorWithField names the offending field, e.g. an unknown filter column.
func WriteErrorWithField(w http.ResponseWriter, status int, code, message, field string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Field:   field,
	})
}

// WriteErrorWithDetails attaches extra context such as a wrapped error string.
func WriteErrorWithDetails(w http.ResponseWriter, status int, code, message, details string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Details: details,
	})
}

func writeErrorResponse(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(envelope{Error: resp})
}

// Error codes returned by the API.
const (
	// Client errors (4xx)
	ErrInvalidRequest = "invalid_request"
	ErrInvalidBody    = "invalid_request_body"
	ErrInvalidTable   = "invalid_table"
	ErrInvalidField   = "invalid_field"
	ErrInvalidParam   = "invalid_parameter"
	ErrNotFound       = "not_found"

	// Server errors (5xx)
	ErrInternal      = "internal_error"
	ErrDatabaseError = "database_error"
)
