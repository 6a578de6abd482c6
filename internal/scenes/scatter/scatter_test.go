package scatter

import (
	"reflect"
	"testing"
)

func TestLayoutIsDeterministic(t *testing.T) {
	a := New(FromMap(map[string]string{"seed": "7"}))
	b := New(FromMap(map[string]string{"seed": "7"}))
	c := New(FromMap(map[string]string{"seed": "8"}))
	if !reflect.DeepEqual(a.Rods(), b.Rods()) {
		t.Fatal("same seed produced different layouts")
	}
	if reflect.DeepEqual(a.Rods(), c.Rods()) {
		t.Fatal("different seeds produced the same layout")
	}
	if len(a.Rods()) != 24 {
		t.Fatalf("placed %d rods, expected 24", len(a.Rods()))
	}
}

func TestRodsRespectBoundsAndClearance(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "60", "h": "50", "rods": "40", "src_x": "10", "src_y": "25", "probe_x": "50", "probe_y": "25", "clearance": "4"})
	s := New(cfg)
	for _, rod := range s.Rods() {
		r := rod.Rect
		if r.X0 < 0 || r.Y0 < 0 || r.X1 > 60 || r.Y1 > 50 {
			t.Fatalf("rod %v leaves the interior", r)
		}
		if r.Dx() < cfg.RodMin || r.Dx() > cfg.RodMax || r.Dx() != r.Dy() {
			t.Fatalf("rod %v has bad size", r)
		}
		if rod.EpsR < cfg.EpsMin || rod.EpsR >= cfg.EpsMax {
			t.Fatalf("rod permittivity %v out of range", rod.EpsR)
		}
		for _, p := range [][2]int{{10, 25}, {50, 25}} {
			if p[0] >= r.X0-4 && p[0] < r.X1+4 && p[1] >= r.Y0-4 && p[1] < r.Y1+4 {
				t.Fatalf("rod %v within clearance of %v", r, p)
			}
		}
	}
}

func TestBuildAppliesRods(t *testing.T) {
	s := New(FromMap(map[string]string{"w": "40", "h": "40", "rods": "5", "src_x": "5", "src_y": "20", "probe_x": "35", "probe_y": "20"}))
	solver, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	g := solver.Grid()
	last := s.Rods()[len(s.Rods())-1]
	// Rods are applied in order, so the upper corner node of the last one
	// carries its permittivity.
	m, err := g.MediumAt(last.Rect.X1+8, last.Rect.Y1+8)
	if err != nil {
		t.Fatal(err)
	}
	if m.EpsR != last.EpsR {
		t.Fatalf("node εr = %v, expected %v", m.EpsR, last.EpsR)
	}
}
