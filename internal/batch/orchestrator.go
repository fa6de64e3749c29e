// ABOUTME: Splits a target count into batches and fans each batch out in windows.
// ABOUTME: Each finished batch is handed to the sink before the next one starts.

package batch

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/synth"
)

const (
	DefaultBatchSize   = 1000
	DefaultConcurrency = 10
	DefaultPause       = 100 * time.Millisecond
)

// Generator produces the record for a global index. A non-nil error marks
// the returned record as degraded; the record itself must still be usable.
type Generator interface {
	Generate(ctx context.Context, index int) (record.Record, error)
}

// Sink receives each completed batch in order.
type Sink interface {
	WriteRecords(records []record.Record) error
}

// Options tunes an Orchestrator. Zero values take the defaults.
type Options struct {
	BatchSize   int
	Concurrency int
	// Pause is the idle time between windows inside a batch. Negative
	// disables it.
	Pause   time.Duration
	Logger  *log.Logger
	Verbose bool
}

// Summary totals one Run.
type Summary struct {
	Requested int
	Generated int
	Degraded  int
	Batches   int
	Elapsed   time.Duration
}

// Orchestrator drives a Generator through batches and windows.
type Orchestrator struct {
	gen  Generator
	opts Options
	log  *log.Logger

	degraded atomic.Int64
}

// New returns an Orchestrator with defaults filled in.
func New(gen Generator, opts Options) *Orchestrator {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Pause == 0 {
		opts.Pause = DefaultPause
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{gen: gen, opts: opts, log: logger}
}

// Options returns the effective options.
func (o *Orchestrator) Options() Options {
	return o.opts
}

func (o *Orchestrator) debugf(format string, args ...any) {
	if o.opts.Verbose {
		o.log.Printf(format, args...)
	}
}

// GenerateBatch produces size records for indexes offset..offset+size-1, in
// index order. Windows of Concurrency tasks are launched together and the
// whole window settles before the next one starts.
func (o *Orchestrator) GenerateBatch(ctx context.Context, offset, size int) []record.Record {
	if size <= 0 {
		return nil
	}
	records := make([]record.Record, size)
	conc := o.opts.Concurrency

	for start := 0; start < size; start += conc {
		end := min(start+conc, size)
		windowStart := time.Now()
		o.debugf("Dispatching records %d-%d", offset+start+1, offset+end)

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				rec, err := o.generate(ctx, offset+i)
				if err != nil {
					o.degraded.Add(1)
					o.log.Printf("Record %d degraded: %v", offset+i+1, err)
				}
				records[i] = rec
				return nil
			})
		}
		o.debugf("Awaiting window of %d", end-start)
		_ = g.Wait()

		elapsed := time.Since(windowStart)
		o.log.Printf("Generated %d/%d records in batch (%.1f ms/record)",
			end, size, float64(elapsed)/float64(time.Millisecond)/float64(end-start))

		if end < size && o.opts.Pause > 0 {
			pause(ctx, o.opts.Pause)
		}
	}
	return records
}

// pause waits d or until ctx is done. A cancelled run still fills the batch,
// it just stops idling between windows.
func pause(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// generate shields the window from a Generator that panics or returns no
// record at all.
func (o *Orchestrator) generate(ctx context.Context, index int) (rec record.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic generating record %d: %v", index+1, r)
			rec = nil
		}
		if rec == nil {
			if err == nil {
				err = fmt.Errorf("no record produced for index %d", index+1)
			}
			rec = o.placeholder(index, err)
		}
	}()
	return o.gen.Generate(ctx, index)
}

// numbered is implemented by generators that can name a record without
// building it.
type numbered interface {
	Kind() record.Kind
	Number(index int) string
}

func (o *Orchestrator) placeholder(index int, err error) record.Record {
	if n, ok := o.gen.(numbered); ok {
		return synth.Degraded(n.Kind(), n.Number(index), err)
	}
	return synth.Degraded(record.Incident, fmt.Sprintf("%s%07d", record.Incident.Prefix(), index), err)
}

// Run generates total records in ceil(total/BatchSize) batches, writing each
// batch to sink before starting the next. Cancellation is honoured between
// batches; a sink error aborts the run.
func (o *Orchestrator) Run(ctx context.Context, total int, sink Sink) (Summary, error) {
	started := time.Now()
	sum := Summary{Requested: total}
	o.degraded.Store(0)

	batches := (total + o.opts.BatchSize - 1) / o.opts.BatchSize
	o.log.Printf("Generating %d records in %d batches of up to %d", total, batches, o.opts.BatchSize)

	for b := 0; b < batches; b++ {
		if err := ctx.Err(); err != nil {
			sum.Degraded = int(o.degraded.Load())
			sum.Elapsed = time.Since(started)
			return sum, fmt.Errorf("generation stopped after %d batches: %w", sum.Batches, err)
		}

		offset := b * o.opts.BatchSize
		size := min(o.opts.BatchSize, total-offset)
		o.debugf("Batching %d: records %d-%d", b+1, offset+1, offset+size)
		o.log.Printf("Processing batch %d/%d", b+1, batches)

		records := o.GenerateBatch(ctx, offset, size)

		o.debugf("Flushing %d records", len(records))
		if err := sink.WriteRecords(records); err != nil {
			sum.Degraded = int(o.degraded.Load())
			sum.Elapsed = time.Since(started)
			return sum, fmt.Errorf("write batch %d: %w", b+1, err)
		}
		sum.Generated += len(records)
		sum.Batches++
		o.log.Printf("Completed batch %d/%d (%d/%d records)", b+1, batches, sum.Generated, total)
	}

	sum.Degraded = int(o.degraded.Load())
	sum.Elapsed = time.Since(started)
	return sum, nil
}
