// ABOUTME: Unit tests for standardized error response helpers
// ABOUTME: Validates the error envelope, JSON fields and HTTP headers

package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env.Error
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    string
		message string
	}{
		{"bad body", http.StatusBadRequest, ErrInvalidBody, "Request body is malformed"},
		{"unknown table", http.StatusBadRequest, ErrInvalidTable, "unsupported table \"problem\""},
		{"record not found", http.StatusNotFound, ErrNotFound, "Record not found"},
		{"internal", http.StatusInternalServerError, ErrInternal, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.status, tt.code, tt.message)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			resp := decode(t, w)
			if resp.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
			if resp.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, resp.Message)
			}
			if resp.Status != tt.status {
				t.Errorf("expected body status %d, got %d", tt.status, resp.Status)
			}
			if resp.Field != "" || resp.Details != "" {
				t.Errorf("expected no field or details, got %q / %q", resp.Field, resp.Details)
			}
		})
	}
}

func TestWriteErrorWithField(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorWithField(w, http.StatusBadRequest, ErrInvalidField, "Unknown field", "caller-id")

	resp := decode(t, w)
	if resp.Field != "caller-id" {
		t.Errorf("expected field %q, got %q", "caller-id", resp.Field)
	}
	if resp.Details != "" {
		t.Errorf("expected empty details, got %s", resp.Details)
	}
}

func TestWriteErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorWithDetails(w, http.StatusInternalServerError, ErrDatabaseError, "Failed to save record", "database is locked")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decode(t, w)
	if resp.Details != "database is locked" {
		t.Errorf("expected details %q, got %q", "database is locked", resp.Details)
	}
	if resp.Field != "" {
		t.Errorf("expected empty field, got %s", resp.Field)
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadRequest, ErrInvalidParam, "sysparm_limit must be a number")

	var raw map[string]map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	inner, ok := raw["error"]
	if !ok {
		t.Fatalf("expected top-level error key, got %v", raw)
	}
	for _, field := range []string{"code", "message", "status"} {
		if _, ok := inner[field]; !ok {
			t.Errorf("required field %q missing from response", field)
		}
	}
	for _, field := range []string{"field", "details"} {
		if _, ok := inner[field]; ok {
			t.Errorf("optional field %q should be omitted when empty", field)
		}
	}
}
