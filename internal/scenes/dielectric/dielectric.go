// Package dielectric is the reference scene: a square dielectric block
// illuminated by a point source.
package dielectric

import (
	"fmt"

	"fdtd2d/internal/core"
	"fdtd2d/pkg/fdtd"
)

// Scene places one square dielectric block in vacuum.
type Scene struct {
	cfg Config
}

// New constructs the scene from cfg.
func New(cfg Config) *Scene { return &Scene{cfg: cfg} }

func (s *Scene) Name() string    { return "dielectric" }
func (s *Scene) Size() core.Size { return s.cfg.Grid.Size() }
func (s *Scene) Steps() int      { return s.cfg.Grid.Steps }

// Block returns the block rectangle in physical-grid coordinates.
func (s *Scene) Block() fdtd.Rect {
	return s.cfg.Grid.PhysicalRect(fdtd.Square(s.cfg.BlockX, s.cfg.BlockY, s.cfg.Block))
}

func (s *Scene) Probe() fdtd.Point { return s.cfg.Grid.Physical(s.cfg.ProbeX, s.cfg.ProbeY) }

func (s *Scene) Build() (*fdtd.Solver, error) {
	g, err := fdtd.New(s.cfg.Grid.FDTD())
	if err != nil {
		return nil, err
	}
	if err := g.SetDielectric(s.Block(), s.cfg.EpsR); err != nil {
		return nil, fmt.Errorf("dielectric block: %w", err)
	}
	solver := g.Setup()
	src := s.cfg.Grid.Physical(s.cfg.SourceX, s.cfg.SourceY)
	if err := solver.InitSource(src.X, src.Y); err != nil {
		return nil, err
	}
	return solver, nil
}

func init() {
	core.Register("dielectric", func(cfg map[string]string) core.Scene {
		return New(FromMap(cfg))
	})
}
