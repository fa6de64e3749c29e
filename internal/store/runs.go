// ABOUTME: Generation run ledger operations.
// ABOUTME: Records when a bulk run started, how it ended and what it produced.

package store

import (
	"context"
	"database/sql"
	"time"
)

// Run statuses
const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// Run is one bulk generation run.
type Run struct {
	ID         int64      `json:"id"`
	Table      string     `json:"table"`
	Output     string     `json:"output"`
	Requested  int        `json:"requested"`
	Generated  int        `json:"generated"`
	Degraded   int        `json:"degraded"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// StartRun opens a ledger entry and returns its ID.
func (s *Store) StartRun(ctx context.Context, table, output string, requested int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_runs (table_name, output, requested, status)
		VALUES (?, ?, ?, ?)
	`, table, output, requested, RunRunning)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FinishRun closes a ledger entry. A non-nil runErr marks the run failed.
func (s *Store) FinishRun(ctx context.Context, id int64, generated, degraded int, runErr error) error {
	status, msg := RunCompleted, ""
	if runErr != nil {
		status, msg = RunFailed, runErr.Error()
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE generation_runs
		SET generated = ?, degraded = ?, status = ?, error = ?, finished_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, generated, degraded, status, msg, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRuns returns the most recent runs first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, table_name, output, requested, generated, degraded, status, error, started_at, finished_at
		FROM generation_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r := &Run{}
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.Table, &r.Output, &r.Requested, &r.Generated, &r.Degraded,
			&r.Status, &r.Error, &r.StartedAt, &finished); err != nil {
			return nil, err
		}
		if finished.Valid {
			r.FinishedAt = &finished.Time
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
