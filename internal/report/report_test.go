package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fdtd2d/pkg/fdtd"
)

func testSnapshot(step int) fdtd.Snapshot {
	return fdtd.Snapshot{
		Step:   step,
		Time:   float64(step) * 1e-11,
		Width:  3,
		Height: 2,
		Ez:     []float64{0, 0.5, 0, -0.25, 1, 0},
		Probe:  fdtd.Probe{X: 9, Y: 8, Value: float64(step) / 10},
	}
}

func TestTextSinkFormat(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)
	snap := testSnapshot(500)
	snap.Time = 5e-9
	if err := s.Write(snap); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Time step:500 --- Time:5e-09",
		"ez[0][0] = 0",
		"ez[1][0] = 0.5",
		"ez[2][0] = 0",
		"ez[0][1] = -0.25",
		"ez[1][1] = 1",
		"ez[2][1] = 0",
		"Observation point: 50",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected dump:\n%s\nexpected:\n%s", got, want)
	}
}

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewCSVSink(&buf)
	for _, step := range []int{1, 2} {
		if err := s.Write(testSnapshot(step)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+2*6 {
		t.Fatalf("got %d rows", len(rows))
	}
	if strings.Join(rows[0], ",") != "step,time,x,y,ez" {
		t.Fatalf("header = %v", rows[0])
	}
	if got := strings.Join(rows[10], ","); got != "2,2e-11,0,1,-0.25" {
		t.Fatalf("row 10 = %s", got)
	}
}

func TestTraceStatsAndCSV(t *testing.T) {
	tr := NewTrace("probe", fdtd.Point{X: 28, Y: 68})
	for i, v := range []float64{0.1, -0.8, 0.3, 0} {
		tr.Add((i+1)*10, float64(i+1), v)
	}
	st := tr.Stats()
	if st.Samples != 4 || st.Peak != 0.8 || st.PeakAt != 20 || st.Final != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if want := 0.4301162633521313; st.RMS < want-1e-12 || st.RMS > want+1e-12 {
		t.Fatalf("RMS = %v", st.RMS)
	}
	if (&Trace{}).Stats() != (Stats{}) {
		t.Fatal("empty trace stats must be zero")
	}

	var buf bytes.Buffer
	if err := tr.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 || lines[0] != "step,time,ez" || lines[2] != "20,2,-0.8" {
		t.Fatalf("unexpected trace csv %q", lines)
	}
}

func TestMultiFansOutAndJoinsCloseErrors(t *testing.T) {
	a, b := NewTrace("a", fdtd.Point{}), NewTrace("b", fdtd.Point{})
	m := Multi{a, b, failingSink{}}
	if err := m.Write(testSnapshot(3)); !errors.Is(err, errSink) {
		t.Fatalf("write error = %v", err)
	}
	if len(a.Samples) != 1 || len(b.Samples) != 1 {
		t.Fatal("sinks before the failing one must see the snapshot")
	}
	if err := m.Close(); !errors.Is(err, errSink) {
		t.Fatalf("close error = %v", err)
	}
}

var errSink = errors.New("sink failed")

type failingSink struct{}

func (failingSink) Write(fdtd.Snapshot) error { return errSink }
func (failingSink) Close() error              { return errSink }

func TestFrameSinkWritesPNG(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFrameSink(filepath.Join(dir, "frames"), "", 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(testSnapshot(42)); err != nil {
		t.Fatal(err)
	}
	paths := s.Written()
	if len(paths) != 1 || filepath.Base(paths[0]) != "ez_000042.png" {
		t.Fatalf("written = %v", paths)
	}
	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("frame bounds = %v", b)
	}
}

func TestPlotAndChart(t *testing.T) {
	tr := NewTrace("probe", fdtd.Point{})
	for i := 0; i < 20; i++ {
		tr.Add(i, float64(i)*1e-11, float64(i%5))
	}
	path := filepath.Join(t.TempDir(), "trace.png")
	if err := SavePlot(path, "dielectric", tr); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("plot not written: %v", err)
	}
	if _, err := Plot("empty", NewTrace("none", fdtd.Point{})); !errors.Is(err, ErrEmptyTrace) {
		t.Fatalf("empty plot error = %v", err)
	}

	var html bytes.Buffer
	if err := Chart(&html, "dielectric", tr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html.String(), "echarts") {
		t.Fatal("chart output does not look like an echarts page")
	}
	short := NewTrace("short", fdtd.Point{})
	short.Add(0, 0, 1)
	if err := Chart(&html, "x", tr, short); err == nil {
		t.Fatal("mismatched traces accepted")
	}
}
