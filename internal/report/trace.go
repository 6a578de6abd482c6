package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"fdtd2d/pkg/fdtd"
)

// Sample is one probe reading.
type Sample struct {
	Step  int
	Time  float64
	Value float64
}

// Trace records the probe value of every snapshot it is handed.
type Trace struct {
	Name    string
	Probe   fdtd.Point
	Samples []Sample
}

// NewTrace returns an empty trace labelled name.
func NewTrace(name string, probe fdtd.Point) *Trace {
	return &Trace{Name: name, Probe: probe}
}

// Add appends one reading.
func (t *Trace) Add(step int, time, v float64) {
	t.Samples = append(t.Samples, Sample{Step: step, Time: time, Value: v})
}

func (t *Trace) Write(snap fdtd.Snapshot) error {
	t.Add(snap.Step, snap.Time, snap.Probe.Value)
	return nil
}

func (t *Trace) Close() error { return nil }

// Values returns the probe readings in order.
func (t *Trace) Values() []float64 {
	v := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		v[i] = s.Value
	}
	return v
}

// Stats summarises a trace.
type Stats struct {
	Samples int
	Peak    float64
	PeakAt  int
	RMS     float64
	Final   float64
}

// Stats returns the peak magnitude, the step it occurred at, the RMS and the
// final reading.
func (t *Trace) Stats() Stats {
	v := t.Values()
	if len(v) == 0 {
		return Stats{}
	}
	abs := make([]float64, len(v))
	for i, x := range v {
		abs[i] = math.Abs(x)
	}
	i := floats.MaxIdx(abs)
	return Stats{
		Samples: len(v),
		Peak:    abs[i],
		PeakAt:  t.Samples[i].Step,
		RMS:     floats.Norm(v, 2) / math.Sqrt(float64(len(v))),
		Final:   v[len(v)-1],
	}
}

// WriteCSV writes the trace as step,time,ez rows with a header.
func (t *Trace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "time", "ez"}); err != nil {
		return err
	}
	for _, s := range t.Samples {
		rec := []string{
			strconv.Itoa(s.Step),
			strconv.FormatFloat(s.Time, 'g', -1, 64),
			strconv.FormatFloat(s.Value, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
