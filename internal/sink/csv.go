package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/2389/recgen/internal/record"
)

// CSV writes records as comma-separated rows under a header line.
type CSV struct {
	kind   record.Kind
	w      *csv.Writer
	closer io.Closer
}

// CreateCSV creates or truncates path and writes the header.
func CreateCSV(path string, kind record.Kind) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}
	s, err := NewCSV(f, kind)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.closer = f
	return s, nil
}

// NewCSV writes to w. Close flushes but does not close w.
func NewCSV(w io.Writer, kind record.Kind) (*CSV, error) {
	s := &CSV{kind: kind, w: csv.NewWriter(w)}
	if err := s.w.Write(record.Headers(kind)); err != nil {
		return nil, err
	}
	s.w.Flush()
	return s, s.w.Error()
}

func (s *CSV) WriteRecords(records []record.Record) error {
	for _, r := range records {
		if err := checkKind(s.kind, r); err != nil {
			return err
		}
		row := r.Row()
		values := make([]string, len(row))
		for i, v := range row {
			values[i] = formatValue(v)
		}
		if err := s.w.Write(values); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *CSV) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
