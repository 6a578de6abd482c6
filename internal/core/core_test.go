package core

import (
	"slices"
	"strings"
	"testing"
	"time"

	"fdtd2d/pkg/fdtd"
)

type stubScene struct{ cfg map[string]string }

func (s stubScene) Name() string                  { return "stub" }
func (s stubScene) Size() Size                    { return Size{W: 4, H: 4} }
func (s stubScene) Build() (*fdtd.Solver, error)  { return nil, nil }
func (s stubScene) Probe() fdtd.Point             { return fdtd.Point{} }
func (s stubScene) Steps() int                    { return 1 }
func (s stubScene) Parameters() ParameterSnapshot { return ParameterSnapshot{} }

func TestRegistry(t *testing.T) {
	Register("zz-stub", func(cfg map[string]string) Scene { return stubScene{cfg: cfg} })
	Register("", func(map[string]string) Scene { return stubScene{} })
	Register("aa-nil", nil)

	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "zz-stub") || slices.Contains(names, "") || slices.Contains(names, "aa-nil") {
		t.Fatalf("unexpected registry contents %v", names)
	}

	sc, err := NewScene("zz-stub", map[string]string{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sc.(stubScene).cfg["k"]; got != "v" {
		t.Fatalf("factory did not receive config, got %q", got)
	}
	if _, err := NewScene("missing", nil); err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected unknown scene error, got %v", err)
	}
}

func TestParameterSnapshot(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		FDTDGroup(120, 80, 0.005, 1.2e-11, 8, 2000),
		{Name: "Scene", Params: []Parameter{FloatParam("epsr", "Permittivity", 3), BoolParam("pec", "PEC", true)}},
	}}
	p, ok := snap.Lookup("h")
	if !ok || p.Value != "80" || p.Type != ParamTypeInt {
		t.Fatalf("Lookup(h) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("Lookup found a missing key")
	}
	m := snap.Map()
	if m["epsr"] != "3" || m["pec"] != "true" || m["dx"] != "0.005" || m["steps"] != "2000" {
		t.Fatalf("unexpected map %v", m)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if n := fs.Due(); n != 1 {
		t.Fatalf("first call released %d steps, expected 1", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := fs.Due(); n != 0 {
		t.Fatalf("half a period released %d steps", n)
	}
	clock = clock.Add(260 * time.Millisecond)
	if n := fs.Due(); n != 3 {
		t.Fatalf("310ms at 10/s released %d steps, expected 3", n)
	}
	clock = clock.Add(10 * time.Second)
	if n := fs.Due(); n != fs.Max {
		t.Fatalf("stall released %d steps, expected cap %d", n, fs.Max)
	}
	if n := fs.Due(); n != 0 {
		t.Fatalf("backlog not dropped after cap, got %d", n)
	}
	if fs.Rate() != 10 {
		t.Fatalf("Rate = %d", fs.Rate())
	}
}
