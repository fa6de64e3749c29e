// ABOUTME: Tests for SQL helper functions.
// ABOUTME: Covers LIKE escaping edge cases and field path validation.

package store

import (
	"errors"
	"testing"
)

func TestEscapeSQLLike(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no special characters", "INC", "INC"},
		{"underscore in table name", "hr_case", "hr\\_case"},
		{"percent wildcard", "INC%", "INC\\%"},
		{"backslash escape character", "a\\b", "a\\\\b"},
		{"backslash followed by percent", "INC\\%", "INC\\\\\\%"},
		{"mixed special characters", "%_\\", "\\%\\_\\\\"},
		{"empty string", "", ""},
		{"injection attempt", "'; DROP TABLE records; --", "'; DROP TABLE records; --"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := escapeSQLLike(tt.input)
			if result != tt.expected {
				t.Errorf("escapeSQLLike(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPrefixPattern(t *testing.T) {
	if got := prefixPattern("INC00_"); got != "INC00\\_%" {
		t.Errorf("prefixPattern() = %q", got)
	}
}

func TestJSONPath(t *testing.T) {
	valid := []string{"number", "short_description", "_x", "cmdb_ci"}
	for _, f := range valid {
		path, err := jsonPath(f)
		if err != nil {
			t.Errorf("jsonPath(%q) error = %v", f, err)
		}
		if path != "$."+f {
			t.Errorf("jsonPath(%q) = %q", f, path)
		}
	}

	invalid := []string{"", "a.b", "a b", "1abc", "x'--", `a"]`}
	for _, f := range invalid {
		if _, err := jsonPath(f); !errors.Is(err, ErrInvalidField) {
			t.Errorf("jsonPath(%q) error = %v, want ErrInvalidField", f, err)
		}
	}
}
