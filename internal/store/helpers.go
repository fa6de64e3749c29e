// ABOUTME: SQL helper functions for query construction.
// ABOUTME: Utilities for escaping LIKE patterns and validating JSON field paths.

package store

import (
	"fmt"
	"regexp"
	"strings"
)

// escapeSQLLike escapes SQL LIKE pattern special characters so user input
// matches literally. Queries using it must declare ESCAPE '\'.
// The backslash must be escaped first to avoid double-escaping.
func escapeSQLLike(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "\\", "\\\\")
	pattern = strings.ReplaceAll(pattern, "%", "\\%")
	pattern = strings.ReplaceAll(pattern, "_", "\\_")
	return pattern
}

// prefixPattern builds a LIKE pattern matching values that start with prefix.
func prefixPattern(prefix string) string {
	return escapeSQLLike(prefix) + "%"
}

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// jsonPath returns the json_extract path for a record field.
func jsonPath(field string) (string, error) {
	if !fieldName.MatchString(field) {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return "$." + field, nil
}
