// Package scatter fills the interior with randomly placed dielectric rods.
package scatter

import (
	"fmt"

	"fdtd2d/internal/core"
	pcore "fdtd2d/pkg/core"
	"fdtd2d/pkg/fdtd"
)

// Rod is one square dielectric insert in interior coordinates.
type Rod struct {
	Rect fdtd.Rect
	EpsR float64
}

// Scene is a seeded random field of rods. The same seed always yields the
// same layout.
type Scene struct {
	cfg  Config
	rods []Rod
}

// New constructs the scene and lays out the rods from cfg.Seed.
func New(cfg Config) *Scene {
	s := &Scene{cfg: cfg}
	s.rods = s.layout()
	return s
}

func (s *Scene) Name() string      { return "scatter" }
func (s *Scene) Size() core.Size   { return s.cfg.Grid.Size() }
func (s *Scene) Steps() int        { return s.cfg.Grid.Steps }
func (s *Scene) Probe() fdtd.Point { return s.cfg.Grid.Physical(s.cfg.ProbeX, s.cfg.ProbeY) }

// Rods returns the rod layout.
func (s *Scene) Rods() []Rod { return s.rods }

// layout draws rods until Rods are placed or the attempt budget runs out.
// Rods may overlap each other but never cover the source or probe.
func (s *Scene) layout() []Rod {
	c := s.cfg
	rng := pcore.NewRNG(c.Seed)
	keep := []fdtd.Rect{
		fdtd.Square(c.SourceX, c.SourceY, 2*c.Clearance+1),
		fdtd.Square(c.ProbeX, c.ProbeY, 2*c.Clearance+1),
	}
	var rods []Rod
	for attempt := 0; len(rods) < c.Rods && attempt < 20*c.Rods; attempt++ {
		size := rng.IntRange(c.RodMin, c.RodMax)
		if size > c.Grid.Width || size > c.Grid.Height {
			continue
		}
		x := rng.IntRange(0, c.Grid.Width-size)
		y := rng.IntRange(0, c.Grid.Height-size)
		r := fdtd.Rect{X0: x, X1: x + size, Y0: y, Y1: y + size}
		if overlaps(r, keep) {
			continue
		}
		rods = append(rods, Rod{Rect: r, EpsR: rng.FloatRange(c.EpsMin, c.EpsMax)})
	}
	return rods
}

func overlaps(r fdtd.Rect, others []fdtd.Rect) bool {
	for _, o := range others {
		if r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1 {
			return true
		}
	}
	return false
}

func (s *Scene) Build() (*fdtd.Solver, error) {
	c := s.cfg
	g, err := fdtd.New(c.Grid.FDTD())
	if err != nil {
		return nil, err
	}
	for i, rod := range s.rods {
		if err := g.SetDielectric(c.Grid.PhysicalRect(rod.Rect), rod.EpsR); err != nil {
			return nil, fmt.Errorf("rod %d: %w", i, err)
		}
	}
	solver := g.Setup()
	src := c.Grid.Physical(c.SourceX, c.SourceY)
	if err := solver.InitSource(src.X, src.Y); err != nil {
		return nil, err
	}
	return solver, nil
}

func init() {
	core.Register("scatter", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
