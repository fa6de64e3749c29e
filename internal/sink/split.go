package sink

import (
	"errors"

	"github.com/2389/recgen/internal/record"
)

// Split routes terminal records to one sink and the rest to another.
type Split struct {
	closed Sink
	open   Sink
}

func NewSplit(closed, open Sink) *Split {
	return &Split{closed: closed, open: open}
}

func (s *Split) WriteRecords(records []record.Record) error {
	var closed, open []record.Record
	for _, r := range records {
		if r != nil && r.Closed() {
			closed = append(closed, r)
		} else {
			open = append(open, r)
		}
	}
	if len(closed) > 0 {
		if err := s.closed.WriteRecords(closed); err != nil {
			return err
		}
	}
	if len(open) > 0 {
		return s.open.WriteRecords(open)
	}
	return nil
}

func (s *Split) Close() error {
	return errors.Join(s.closed.Close(), s.open.Close())
}
