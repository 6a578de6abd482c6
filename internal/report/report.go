// Package report writes solver snapshots and probe traces to files.
package report

import (
	"errors"

	"fdtd2d/pkg/fdtd"
)

// Sink consumes snapshots in step order. Sinks are driven from a single
// goroutine and need no locking.
type Sink interface {
	Write(snap fdtd.Snapshot) error
	Close() error
}

// Multi fans every snapshot out to all sinks. The first write error stops
// the fan-out; Close closes every sink and joins the errors.
type Multi []Sink

func (m Multi) Write(snap fdtd.Snapshot) error {
	for _, s := range m {
		if err := s.Write(snap); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
