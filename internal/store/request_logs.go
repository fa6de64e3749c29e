// ABOUTME: Request log storage operations.
// ABOUTME: Handles inserting and querying HTTP request logs of the table API.

package store

import "time"

// RequestLog represents an HTTP request log entry
type RequestLog struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Table        string    `json:"table,omitempty"`
	Method       string    `json:"method"`
	Path         string    `json:"path"`
	StatusCode   int       `json:"status_code"`
	DurationMs   int       `json:"duration_ms"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	Error        string    `json:"error,omitempty"`
	RequestBody  string    `json:"request_body,omitempty"`
	ResponseBody string    `json:"response_body,omitempty"`
}

// LogRequest inserts a request log entry
func (s *Store) LogRequest(log *RequestLog) error {
	_, err := s.db.Exec(`
		INSERT INTO request_logs (table_name, method, path, status_code, duration_ms, ip_address, user_agent, error, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, log.Table, log.Method, log.Path, log.StatusCode, log.DurationMs, log.IPAddress, log.UserAgent, log.Error, log.RequestBody, log.ResponseBody)
	return err
}

// RequestLogQuery represents filters for request logs
type RequestLogQuery struct {
	Limit      int
	Offset     int
	Table      string
	Method     string
	PathPrefix string
	StatusCode int
}

// RequestLogStats represents aggregate statistics
type RequestLogStats struct {
	TotalRequests   int `json:"total_requests"`
	ErrorRequests   int `json:"error_requests"`
	AvgDurationMs   int `json:"avg_duration_ms"`
	UniqueEndpoints int `json:"unique_endpoints"`
}

// GetRequestLogs retrieves request logs with filtering, newest first
func (s *Store) GetRequestLogs(q *RequestLogQuery) ([]*RequestLog, error) {
	query := `SELECT id, timestamp, COALESCE(table_name, ''), method, path, status_code, duration_ms,
	          COALESCE(ip_address, ''), COALESCE(user_agent, ''), COALESCE(error, ''),
	          COALESCE(request_body, ''), COALESCE(response_body, '')
	          FROM request_logs WHERE 1=1`
	args := []any{}

	if q.Table != "" {
		query += " AND table_name = ?"
		args = append(args, q.Table)
	}
	if q.Method != "" {
		query += " AND method = ?"
		args = append(args, q.Method)
	}
	if q.PathPrefix != "" {
		query += ` AND path LIKE ? ESCAPE '\'`
		args = append(args, prefixPattern(q.PathPrefix))
	}
	if q.StatusCode > 0 {
		query += " AND status_code = ?"
		args = append(args, q.StatusCode)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, q.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*RequestLog
	for rows.Next() {
		log := &RequestLog{}
		if err := rows.Scan(&log.ID, &log.Timestamp, &log.Table, &log.Method, &log.Path, &log.StatusCode,
			&log.DurationMs, &log.IPAddress, &log.UserAgent, &log.Error,
			&log.RequestBody, &log.ResponseBody); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// GetRequestLogStats returns aggregate statistics
func (s *Store) GetRequestLogStats() (*RequestLogStats, error) {
	stats := &RequestLogStats{}
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status_code >= 400 THEN 1 ELSE 0 END), 0),
		       CAST(COALESCE(AVG(duration_ms), 0) AS INTEGER),
		       COUNT(DISTINCT path)
		FROM request_logs
	`).Scan(&stats.TotalRequests, &stats.ErrorRequests, &stats.AvgDurationMs, &stats.UniqueEndpoints)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
