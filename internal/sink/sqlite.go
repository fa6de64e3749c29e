package sink

import (
	"context"
	"fmt"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/store"
)

// SQLite inserts records into a store table named after the record kind, so
// the serve command can expose them through the table API.
type SQLite struct {
	kind  record.Kind
	store *store.Store
	owned bool
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string, kind record.Kind) (*SQLite, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &SQLite{kind: kind, store: s, owned: true}, nil
}

// NewSQLite writes into an already open store. Close leaves it open.
func NewSQLite(s *store.Store, kind record.Kind) *SQLite {
	return &SQLite{kind: kind, store: s}
}

func (s *SQLite) WriteRecords(records []record.Record) error {
	rows := make([]map[string]any, len(records))
	for i, r := range records {
		if err := checkKind(s.kind, r); err != nil {
			return err
		}
		rows[i] = record.Fields(r)
	}
	if _, err := s.store.CreateRecords(context.Background(), s.kind.String(), rows); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.owned {
		return s.store.Close()
	}
	return nil
}
