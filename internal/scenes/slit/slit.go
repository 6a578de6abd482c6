// Package slit diffracts the source pulse through one or two apertures in a
// perfectly conducting wall.
package slit

import (
	"fmt"

	"fdtd2d/internal/core"
	"fdtd2d/pkg/fdtd"
)

// Scene is a PEC wall spanning the interior height with openings centred on
// the source row.
type Scene struct {
	cfg Config
}

// New constructs the scene from cfg.
func New(cfg Config) *Scene { return &Scene{cfg: cfg} }

func (s *Scene) Name() string      { return "slit" }
func (s *Scene) Size() core.Size   { return s.cfg.Grid.Size() }
func (s *Scene) Steps() int        { return s.cfg.Grid.Steps }
func (s *Scene) Probe() fdtd.Point { return s.cfg.Grid.Physical(s.cfg.ProbeX, s.cfg.ProbeY) }

// Openings returns the apertures as interior row ranges [lo, hi).
func (s *Scene) Openings() [][2]int {
	c := s.cfg
	if c.Spacing <= 0 {
		lo := c.SourceY - c.Aperture/2
		return [][2]int{{lo, lo + c.Aperture}}
	}
	lo := c.SourceY - c.Spacing/2 - c.Aperture/2
	hi := lo + c.Spacing
	return [][2]int{{lo, lo + c.Aperture}, {hi, hi + c.Aperture}}
}

// Wall returns the conducting segments in physical-grid coordinates.
func (s *Scene) Wall() []fdtd.Rect {
	c := s.cfg
	x0, x1 := c.WallX, c.WallX+c.Thickness
	var rects []fdtd.Rect
	y := 0
	for _, o := range s.Openings() {
		lo := max(o[0], y)
		if lo > y {
			rects = append(rects, fdtd.Rect{X0: x0, X1: x1, Y0: y, Y1: lo})
		}
		y = max(y, o[1])
	}
	if y < c.Grid.Height {
		rects = append(rects, fdtd.Rect{X0: x0, X1: x1, Y0: y, Y1: c.Grid.Height})
	}
	for i := range rects {
		rects[i] = c.Grid.PhysicalRect(rects[i])
	}
	return rects
}

func (s *Scene) Build() (*fdtd.Solver, error) {
	c := s.cfg
	if c.SourceX >= c.WallX || c.ProbeX < c.WallX+c.Thickness {
		return nil, fmt.Errorf("slit: source x %d and probe x %d must straddle the wall [%d,%d)",
			c.SourceX, c.ProbeX, c.WallX, c.WallX+c.Thickness)
	}
	g, err := fdtd.New(c.Grid.FDTD())
	if err != nil {
		return nil, err
	}
	for _, r := range s.Wall() {
		if err := g.SetPEC(r); err != nil {
			return nil, fmt.Errorf("slit wall: %w", err)
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
	core.Register("slit", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
