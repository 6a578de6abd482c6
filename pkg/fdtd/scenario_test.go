package fdtd

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata")

// golden returns the contents of testdata/name, rewriting it with fresh
// first when -update is set. A missing file fails the test.
func golden(t *testing.T, name string, fresh []byte) []byte {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *update {
		if err := os.MkdirAll("testdata", 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, fresh, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v (run with -update to record it)", path, err)
	}
	return raw
}

// dielectricSquare runs the reference scene: a 40-cell εr=3 square in the
// middle of the default grid with the source and probe 20 cells to its left.
func dielectricSquare(t *testing.T) []Probe {
	t.Helper()
	g, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetDielectric(Rect{X0: 48, X1: 88, Y0: 48, Y1: 88}, 3); err != nil {
		t.Fatal(err)
	}
	s := g.Setup()
	if err := s.InitSource(28, 68); err != nil {
		t.Fatal(err)
	}
	var trace []Probe
	err = s.Run(g.Config().Steps, 100, Point{X: 28, Y: 68}, func(sn Snapshot) error {
		trace = append(trace, sn.Probe)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return trace
}

func TestDielectricSquareGolden(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size run")
	}
	trace := dielectricSquare(t)
	if len(trace) != 20 {
		t.Fatalf("got %d samples, expected 20", len(trace))
	}
	for i, p := range trace {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			t.Fatalf("sample %d diverged", i)
		}
	}

	var buf bytes.Buffer
	for i, p := range trace {
		fmt.Fprintf(&buf, "%d %.12e\n", (i+1)*100, p.Value)
	}
	raw := golden(t, "dielectric_square.golden", buf.Bytes())

	scale := 0.0
	for _, p := range trace {
		scale = math.Max(scale, math.Abs(p.Value))
	}
	sc := bufio.NewScanner(bytes.NewReader(raw))
	i := 0
	for ; sc.Scan(); i++ {
		var step int
		var want float64
		if _, err := fmt.Sscanf(sc.Text(), "%d %g", &step, &want); err != nil {
			t.Fatalf("golden line %d: %v", i+1, err)
		}
		if i >= len(trace) || step != (i+1)*100 {
			t.Fatalf("golden line %d: unexpected step %d", i+1, step)
		}
		if got := trace[i].Value; math.Abs(got-want) > 1e-9*scale {
			t.Errorf("step %d: Ez = %.12e, golden %.12e", step, got, want)
		}
	}
	if i != len(trace) {
		t.Fatalf("golden has %d lines, run produced %d", i, len(trace))
	}
}
