package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"fdtd2d/pkg/fdtd"
)

// TextSink writes the plain dump format: a header line per snapshot, one
// "ez[x][y] = v" line per interior cell in row order, then the probe value.
type TextSink struct {
	w *bufio.Writer
	c io.Closer
}

// NewTextSink writes to w. If w is also an io.Closer it is closed by Close.
func NewTextSink(w io.Writer) *TextSink {
	s := &TextSink{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.c = c
	}
	return s
}

func (s *TextSink) Write(snap fdtd.Snapshot) error {
	fmt.Fprintf(s.w, "Time step:%d --- Time:%s\n", snap.Step, strconv.FormatFloat(snap.Time, 'g', -1, 64))
	var buf []byte
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			buf = buf[:0]
			buf = append(buf, "ez["...)
			buf = strconv.AppendInt(buf, int64(x), 10)
			buf = append(buf, "]["...)
			buf = strconv.AppendInt(buf, int64(y), 10)
			buf = append(buf, "] = "...)
			buf = strconv.AppendFloat(buf, snap.At(x, y), 'g', -1, 64)
			buf = append(buf, '\n')
			if _, err := s.w.Write(buf); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(s.w, "Observation point: %s\n", strconv.FormatFloat(snap.Probe.Value, 'g', -1, 64))
	return err
}

func (s *TextSink) Close() error {
	err := s.w.Flush()
	if s.c != nil {
		if cerr := s.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
