// ABOUTME: Tests for SQLite store initialization, records and the run ledger.
// ABOUTME: Verifies schema setup and the platform table contract.

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestNewStore_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "recgen.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tables := []string{"schema_migrations", "records", "generation_runs", "request_logs"}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
	s.Close()

	// Reopening must not re-run migrations
	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	version, err := s.getCurrentMigrationVersion()
	if err != nil {
		t.Fatalf("getCurrentMigrationVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestStore_CreateAndGetRecord(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()
	ctx := context.Background()

	id, err := s.CreateRecord(ctx, "incident", map[string]any{
		"number":            "INC0000001",
		"short_description": "VPN drops",
		"priority":          "2 - High",
	})
	if err != nil {
		t.Fatalf("CreateRecord() error = %v", err)
	}
	if len(id) != 32 {
		t.Errorf("sys_id %q is not 32 characters", id)
	}

	r, err := s.GetRecord(ctx, "incident", id)
	if err != nil {
		t.Fatalf("GetRecord() error = %v", err)
	}
	if r.Number != "INC0000001" {
		t.Errorf("Number = %q", r.Number)
	}
	if r.Fields["short_description"] != "VPN drops" {
		t.Errorf("short_description = %v", r.Fields["short_description"])
	}
	if r.Fields["sys_id"] != id {
		t.Errorf("fields sys_id = %v, want %s", r.Fields["sys_id"], id)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if _, err := s.GetRecord(ctx, "case", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRecord() from other table error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetRecord(ctx, "incident", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRecord() missing error = %v, want ErrNotFound", err)
	}
}

func TestStore_CreateRecordRequiresTable(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()

	if _, err := s.CreateRecord(context.Background(), "", map[string]any{}); err == nil {
		t.Error("CreateRecord() with empty table should fail")
	}
}

func TestStore_QueryRecords(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()
	ctx := context.Background()

	rows := []map[string]any{
		{"number": "INC0000001", "state": "New", "needs_attention": true},
		{"number": "INC0000002", "state": "Resolved"},
		{"number": "INC0000013", "state": "New"},
		{"number": "INC_000014", "state": "Closed"},
	}
	ids, err := s.CreateRecords(ctx, "incident", rows)
	if err != nil {
		t.Fatalf("CreateRecords() error = %v", err)
	}
	if len(ids) != len(rows) {
		t.Fatalf("CreateRecords() returned %d ids", len(ids))
	}
	if _, err := s.CreateRecord(ctx, "case", map[string]any{"number": "CAS0000001", "state": "New"}); err != nil {
		t.Fatalf("CreateRecord() error = %v", err)
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"all of table", Query{}, []string{"INC0000001", "INC0000002", "INC0000013", "INC_000014"}},
		{"number prefix", Query{NumberPrefix: "INC000000"}, []string{"INC0000001", "INC0000002"}},
		{"underscore matches literally", Query{NumberPrefix: "INC_"}, []string{"INC_000014"}},
		{"field filter", Query{Fields: map[string]string{"state": "New"}}, []string{"INC0000001", "INC0000013"}},
		{"bool field", Query{Fields: map[string]string{"needs_attention": "1"}}, []string{"INC0000001"}},
		{"combined", Query{NumberPrefix: "INC000000", Fields: map[string]string{"state": "New"}}, []string{"INC0000001"}},
		{"limit and offset", Query{Limit: 2, Offset: 1}, []string{"INC0000002", "INC0000013"}},
		{"no match", Query{Fields: map[string]string{"state": "Canceled"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.QueryRecords(ctx, "incident", tt.query)
			if err != nil {
				t.Fatalf("QueryRecords() error = %v", err)
			}
			var numbers []string
			for _, r := range got {
				numbers = append(numbers, r.Number)
			}
			if len(numbers) != len(tt.want) {
				t.Fatalf("QueryRecords() = %v, want %v", numbers, tt.want)
			}
			for i := range numbers {
				if numbers[i] != tt.want[i] {
					t.Errorf("QueryRecords()[%d] = %s, want %s", i, numbers[i], tt.want[i])
				}
			}
		})
	}

	if _, err := s.QueryRecords(ctx, "incident", Query{Fields: map[string]string{"bad key": "x"}}); !errors.Is(err, ErrInvalidField) {
		t.Errorf("QueryRecords() bad field error = %v, want ErrInvalidField", err)
	}

	counts := []struct {
		name  string
		query Query
		want  int
	}{
		{"whole table", Query{}, 4},
		{"field filter", Query{Fields: map[string]string{"state": "New"}}, 2},
		{"prefix and field", Query{NumberPrefix: "INC000000", Fields: map[string]string{"state": "New"}}, 1},
		{"limit ignored", Query{Limit: 1, Offset: 3}, 4},
	}
	for _, tt := range counts {
		n, err := s.CountRecords(ctx, "incident", tt.query)
		if err != nil {
			t.Fatalf("CountRecords(%s) error = %v", tt.name, err)
		}
		if n != tt.want {
			t.Errorf("CountRecords(%s) = %d, want %d", tt.name, n, tt.want)
		}
	}
	if _, err := s.CountRecords(ctx, "incident", Query{Fields: map[string]string{"bad key": "x"}}); !errors.Is(err, ErrInvalidField) {
		t.Errorf("CountRecords() bad field error = %v, want ErrInvalidField", err)
	}
}

func TestStore_RunLedger(t *testing.T) {
	s := setupTestDB(t)
	defer s.Close()
	ctx := context.Background()

	first, err := s.StartRun(ctx, "incident", "bulk-data.xlsx", 100)
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	second, err := s.StartRun(ctx, "case", "cases.csv", 10)
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}

	if err := s.FinishRun(ctx, first, 100, 2, nil); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}
	if err := s.FinishRun(ctx, second, 4, 0, errors.New("disk full")); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}
	if err := s.FinishRun(ctx, 999, 0, 0, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("FinishRun() unknown run error = %v, want ErrNotFound", err)
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}

	latest, earlier := runs[0], runs[1]
	if latest.ID != second || latest.Status != RunFailed || latest.Error != "disk full" {
		t.Errorf("latest run = %+v", latest)
	}
	if earlier.Status != RunCompleted || earlier.Generated != 100 || earlier.Degraded != 2 {
		t.Errorf("earlier run = %+v", earlier)
	}
	if earlier.FinishedAt == nil {
		t.Error("FinishedAt not set on completed run")
	}
}
