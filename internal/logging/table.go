// ABOUTME: Table detection for request logging.
// ABOUTME: Maps a table API path to the table it reads or writes.

package logging

import "strings"

const tableAPIPrefix = "/api/now/table/"

// TableFromPath returns the table segment of a table API path, or "" for
// any other path.
func TableFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, tableAPIPrefix)
	if !ok {
		return ""
	}
	table, _, _ := strings.Cut(rest, "/")
	return table
}
