package fdtd

import (
	"fmt"

	"fdtd2d/pkg/core"
)

// Point is a cell in physical-grid coordinates.
type Point struct {
	X, Y int
}

// Component names one of the six Yee field components.
type Component int

const (
	Ex Component = iota
	Ey
	Ez
	Hx
	Hy
	Hz
)

func (c Component) String() string {
	switch c {
	case Ex:
		return "Ex"
	case Ey:
		return "Ey"
	case Ez:
		return "Ez"
	case Hx:
		return "Hx"
	case Hy:
		return "Hy"
	case Hz:
		return "Hz"
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// Solver advances the fields of a grid whose coefficients have been derived.
// It is not safe for concurrent use; one goroutine drives one solver.
type Solver struct {
	g   *Grid
	gen uint64
	src *source

	t    float64
	step int
}

// Grid returns the grid the solver steps.
func (s *Solver) Grid() *Grid { return s.g }

// Dt returns the time step.
func (s *Solver) Dt() float64 { return s.g.dt }

// Time returns the simulated time.
func (s *Solver) Time() float64 { return s.t }

// StepCount returns the number of completed steps.
func (s *Solver) StepCount() int { return s.step }

// Ready reports ErrNotReady when the grid was edited or set up again after
// this solver was created.
func (s *Solver) Ready() error {
	if s.gen != s.g.gen {
		return ErrNotReady
	}
	return nil
}

// SetPEC zeroes the electric update coefficients over r immediately. The
// change lasts until the next Setup; use Grid.SetPEC for a permanent region.
func (s *Solver) SetPEC(r Rect) error {
	if err := s.Ready(); err != nil {
		return err
	}
	if err := s.g.checkRect("set pec", r); err != nil {
		return err
	}
	s.g.applyPEC(r)
	return nil
}

// InitSource places the current source at interior cell (x, y).
func (s *Solver) InitSource(x, y int) error {
	src, err := s.g.newSource(x, y)
	if err != nil {
		return err
	}
	s.src = src
	return nil
}

// Source returns the source cell, if one was initialised.
func (s *Solver) Source() (Point, bool) {
	if s.src == nil {
		return Point{}, false
	}
	return Point{X: s.src.x, Y: s.src.y}, true
}

// Feed subtracts the source current at time t from Ez at the source cell.
// It belongs between ECal and EPML.
func (s *Solver) Feed(t float64) error {
	if err := s.Ready(); err != nil {
		return err
	}
	if s.src == nil {
		return ErrNoSource
	}
	s.feed(t)
	return nil
}

func (s *Solver) feed(t float64) {
	src := s.src
	i := src.y*s.g.nx + src.x
	s.g.f.ez.Cells()[i] -= src.befed * src.pulse(t, s.g.dt)
}

// ECal runs the interior electric update.
func (s *Solver) ECal() error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.g.eCal()
	return nil
}

// HCal runs the interior magnetic update.
func (s *Solver) HCal() error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.g.hCal()
	return nil
}

// EPML runs the electric PML update. It must follow ECal and Feed in the
// same half-step so that the slab cells end up owned by the PML.
func (s *Solver) EPML() error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.g.ePML()
	return nil
}

// HPML runs the magnetic PML update. It must follow HCal.
func (s *Solver) HPML() error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.g.hPML()
	return nil
}

// Step advances the simulation by one full time step: the E half-step
// (interior, source, PML) followed by the H half-step (interior, PML).
func (s *Solver) Step() error {
	if err := s.Ready(); err != nil {
		return err
	}
	g := s.g
	g.eCal()
	if s.src != nil {
		s.feed(s.t)
	}
	g.ePML()
	s.t += 0.5 * g.dt

	g.hCal()
	g.hPML()
	s.t += 0.5 * g.dt
	s.step++
	return nil
}

// Run executes n steps. When every is positive and emit is non-nil, a
// snapshot with the value at probe is emitted after each step whose count is
// a multiple of every. An emit error stops the run.
func (s *Solver) Run(n, every int, probe Point, emit func(Snapshot) error) error {
	if !s.g.f.ez.In(probe.X, probe.Y) {
		return fmt.Errorf("%w: probe (%d,%d)", ErrOutOfRange, probe.X, probe.Y)
	}
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
		if every > 0 && emit != nil && s.step%every == 0 {
			snap, err := s.Snapshot(probe)
			if err != nil {
				return err
			}
			if err := emit(snap); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset zeroes every field, split component and the clock. Coefficients,
// the source and PEC regions are kept. A stale solver returns ErrNotReady
// and leaves the grid alone.
func (s *Solver) Reset() error {
	if err := s.Ready(); err != nil {
		return err
	}
	s.g.clearFields()
	s.t = 0
	s.step = 0
	return nil
}

// At returns component c at physical cell (x, y).
func (s *Solver) At(c Component, x, y int) (float64, error) {
	f := s.g.field(c)
	if f == nil {
		return 0, fmt.Errorf("fdtd: unknown component %v", c)
	}
	if !f.In(x, y) {
		return 0, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, x, y)
	}
	return f.At(x, y), nil
}

func (g *Grid) clearFields() {
	for _, f := range []*core.Field{g.f.ex, g.f.ey, g.f.ez, g.f.hx, g.f.hy, g.f.hz,
		g.pml.ex, g.pml.ey, g.pml.ezx, g.pml.ezy, g.pml.hx, g.pml.hy, g.pml.hzx, g.pml.hzy} {
		f.Clear()
	}
}

func (g *Grid) field(c Component) *core.Field {
	switch c {
	case Ex:
		return g.f.ex
	case Ey:
		return g.f.ey
	case Ez:
		return g.f.ez
	case Hx:
		return g.f.hx
	case Hy:
		return g.f.hy
	case Hz:
		return g.f.hz
	}
	return nil
}
