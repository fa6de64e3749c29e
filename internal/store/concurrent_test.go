// ABOUTME: Stress tests for concurrent database access.
// ABOUTME: Batch inserts and request logging from many goroutines must not lose rows.

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

func TestConcurrentRecordBatches(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "concurrent.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	const writers, batches, perBatch = 8, 5, 20
	var wg sync.WaitGroup
	var errorCount atomic.Int32

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for b := 0; b < batches; b++ {
				rows := make([]map[string]any, perBatch)
				for i := range rows {
					rows[i] = map[string]any{"number": fmt.Sprintf("INC%02d%02d%03d", w, b, i)}
				}
				if _, err := s.CreateRecords(context.Background(), "incident", rows); err != nil {
					errorCount.Add(1)
					t.Logf("writer %d batch %d: %v", w, b, err)
				}
			}
		}(w)
	}
	wg.Wait()

	if n := errorCount.Load(); n > 0 {
		t.Fatalf("%d batch inserts failed", n)
	}
	n, err := s.CountRecords(context.Background(), "incident", Query{})
	if err != nil {
		t.Fatalf("CountRecords() error = %v", err)
	}
	if want := writers * batches * perBatch; n != want {
		t.Errorf("CountRecords() = %d, want %d", n, want)
	}
}

func TestConcurrentRequestLogging(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "logs.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	const goroutines, perGoroutine = 20, 25
	var wg sync.WaitGroup
	var errorCount atomic.Int32

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				err := s.LogRequest(&RequestLog{
					Table:      []string{"incident", "case", "hr_case"}[g%3],
					Method:     []string{"GET", "POST"}[j%2],
					Path:       fmt.Sprintf("/api/now/table/incident/%d", j),
					StatusCode: 200,
					DurationMs: j,
				})
				if err != nil {
					errorCount.Add(1)
				}
			}
		}(g)
	}
	wg.Wait()

	if n := errorCount.Load(); n > 0 {
		t.Fatalf("%d request logs failed", n)
	}
	stats, err := s.GetRequestLogStats()
	if err != nil {
		t.Fatalf("GetRequestLogStats() error = %v", err)
	}
	if stats.TotalRequests != goroutines*perGoroutine {
		t.Errorf("TotalRequests = %d, want %d", stats.TotalRequests, goroutines*perGoroutine)
	}
}
