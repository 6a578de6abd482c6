package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"fdtd2d/pkg/fdtd"
)

// CSVSink writes snapshots in long form: step, time, x, y, ez per interior
// cell, with a single header row.
type CSVSink struct {
	w      *csv.Writer
	c      io.Closer
	header bool
}

// NewCSVSink writes to w. If w is also an io.Closer it is closed by Close.
func NewCSVSink(w io.Writer) *CSVSink {
	s := &CSVSink{w: csv.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.c = c
	}
	return s
}

func (s *CSVSink) Write(snap fdtd.Snapshot) error {
	if !s.header {
		if err := s.w.Write([]string{"step", "time", "x", "y", "ez"}); err != nil {
			return err
		}
		s.header = true
	}
	step := strconv.Itoa(snap.Step)
	t := strconv.FormatFloat(snap.Time, 'g', -1, 64)
	rec := make([]string, 5)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			rec[0], rec[1] = step, t
			rec[2], rec[3] = strconv.Itoa(x), strconv.Itoa(y)
			rec[4] = strconv.FormatFloat(snap.At(x, y), 'g', -1, 64)
			if err := s.w.Write(rec); err != nil {
				return err
			}
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.c != nil {
		if cerr := s.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
