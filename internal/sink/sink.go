// ABOUTME: Output sinks for generated records, chosen by file extension.
// ABOUTME: Sinks append batch by batch so large runs never sit fully in memory.

package sink

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/2389/recgen/internal/record"
)

// Sink accepts batches of records of one kind.
type Sink interface {
	WriteRecords(records []record.Record) error
	Close() error
}

// Format is an output file format.
type Format int

const (
	FormatExcel Format = iota
	FormatCSV
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatSQLite:
		return "sqlite"
	default:
		return "excel"
	}
}

// FormatFor picks the format from path's extension. Anything unrecognised is
// written as an Excel workbook.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatExcel
	}
}

// Options for Open.
type Options struct {
	// Split writes terminal records to <base>-closed<ext> and the rest to
	// <base>-open<ext>.
	Split bool
}

// Open creates the sink for path.
func Open(path string, kind record.Kind, opts Options) (Sink, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("sink: unsupported kind %q", kind)
	}
	if opts.Split {
		closedPath, openPath := SplitPaths(path)
		closed, err := open(closedPath, kind)
		if err != nil {
			return nil, err
		}
		opened, err := open(openPath, kind)
		if err != nil {
			closed.Close()
			return nil, err
		}
		return NewSplit(closed, opened), nil
	}
	return open(path, kind)
}

func open(path string, kind record.Kind) (Sink, error) {
	switch FormatFor(path) {
	case FormatCSV:
		return CreateCSV(path, kind)
	case FormatSQLite:
		return OpenSQLite(path, kind)
	default:
		return CreateExcel(path, kind)
	}
}

// SplitPaths derives the closed and open output paths from path.
func SplitPaths(path string) (closed, open string) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "-closed" + ext, base + "-open" + ext
}

var errKindMismatch = errors.New("record kind does not match sink")

func checkKind(want record.Kind, r record.Record) error {
	if r == nil {
		return errors.New("nil record")
	}
	if r.Kind() != want {
		return fmt.Errorf("%w: %s record %s in %s sink", errKindMismatch, r.Kind(), r.Number(), want)
	}
	return nil
}

// formatValue renders a row value for text formats.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
