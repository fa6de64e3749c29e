// ABOUTME: Record storage operations implementing the platform table contract.
// ABOUTME: Create, get and query records of any table by sys_id, number and fields.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one stored row of a table.
type Record struct {
	SysID     string         `json:"sys_id"`
	Table     string         `json:"-"`
	Number    string         `json:"number,omitempty"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"sys_created_on"`
}

// Query filters QueryRecords. Fields are exact matches on stored field values.
type Query struct {
	Fields       map[string]string
	NumberPrefix string
	Limit        int
	Offset       int
}

func newSysID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func numberOf(fields map[string]any) string {
	if n, ok := fields["number"].(string); ok {
		return n
	}
	return ""
}

// CreateRecord inserts fields into table and returns the new sys_id.
func (s *Store) CreateRecord(ctx context.Context, table string, fields map[string]any) (string, error) {
	ids, err := s.CreateRecords(ctx, table, []map[string]any{fields})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// CreateRecords inserts many rows in one transaction, returning sys_ids in
// input order.
func (s *Store) CreateRecords(ctx context.Context, table string, rows []map[string]any) ([]string, error) {
	if table == "" {
		return nil, errors.New("table name is required")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (sys_id, table_name, number, fields)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, len(rows))
	for i, fields := range rows {
		id := newSysID()
		raw, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("encode fields: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, id, table, numberOf(fields), string(raw)); err != nil {
			return nil, err
		}
		ids[i] = id
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetRecord fetches one record by sys_id.
func (s *Store) GetRecord(ctx context.Context, table, sysID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT sys_id, table_name, number, fields, created_at
		FROM records WHERE table_name = ? AND sys_id = ?
	`, table, sysID)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return r, err
}

// where builds the filter clause shared by QueryRecords and CountRecords.
func (q Query) where(table string) (string, []any, error) {
	clause := ` WHERE table_name = ?`
	args := []any{table}

	if q.NumberPrefix != "" {
		clause += ` AND number LIKE ? ESCAPE '\'`
		args = append(args, prefixPattern(q.NumberPrefix))
	}
	for field, value := range q.Fields {
		path, err := jsonPath(field)
		if err != nil {
			return "", nil, err
		}
		clause += " AND CAST(json_extract(fields, ?) AS TEXT) = ?"
		args = append(args, path, value)
	}
	return clause, args, nil
}

// QueryRecords lists records of table in insertion order.
func (s *Store) QueryRecords(ctx context.Context, table string, q Query) ([]*Record, error) {
	clause, args, err := q.where(table)
	if err != nil {
		return nil, err
	}
	query := `SELECT sys_id, table_name, number, fields, created_at FROM records` + clause

	limit := q.Limit
	if limit <= 0 {
		limit = -1
	}
	query += " ORDER BY rowid LIMIT ? OFFSET ?"
	args = append(args, limit, max(0, q.Offset))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords returns how many records of table match q. Limit and Offset
// are ignored.
func (s *Store) CountRecords(ctx context.Context, table string, q Query) (int, error) {
	clause, args, err := q.where(table)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`+clause, args...).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	r := &Record{}
	var raw string
	if err := sc.Scan(&r.SysID, &r.Table, &r.Number, &raw, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &r.Fields); err != nil {
		return nil, fmt.Errorf("decode fields of %s: %w", r.SysID, err)
	}
	if r.Fields == nil {
		r.Fields = map[string]any{}
	}
	r.Fields["sys_id"] = r.SysID
	return r, nil
}
