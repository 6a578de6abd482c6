package fdtd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Probe is the value of Ez at one observation cell.
type Probe struct {
	X, Y  int
	Value float64
}

// Snapshot is an immutable copy of the interior Ez field at one step. Ez is
// row-major with Width columns; interior (0,0) is physical (L,L).
type Snapshot struct {
	Step   int
	Time   float64
	Width  int
	Height int
	Ez     []float64
	Probe  Probe
}

// Snapshot copies the interior Ez field and the value at probe.
func (s *Solver) Snapshot(probe Point) (Snapshot, error) {
	g := s.g
	if !g.f.ez.In(probe.X, probe.Y) {
		return Snapshot{}, fmt.Errorf("%w: probe (%d,%d)", ErrOutOfRange, probe.X, probe.Y)
	}
	in := g.Interior()
	return Snapshot{
		Step:   s.step,
		Time:   s.t,
		Width:  in.Dx(),
		Height: in.Dy(),
		Ez:     g.f.ez.Window(in.X0, in.X1, in.Y0, in.Y1),
		Probe:  Probe{X: probe.X, Y: probe.Y, Value: g.f.ez.At(probe.X, probe.Y)},
	}, nil
}

// At returns Ez at interior cell (x, y).
func (s Snapshot) At(x, y int) float64 { return s.Ez[y*s.Width+x] }

// Peak returns the largest absolute Ez value in the snapshot.
func (s Snapshot) Peak() float64 {
	if len(s.Ez) == 0 {
		return 0
	}
	return math.Max(floats.Max(s.Ez), -floats.Min(s.Ez))
}

// Norm returns the L2 norm of the interior Ez field.
func (s Snapshot) Norm() float64 {
	if len(s.Ez) == 0 {
		return 0
	}
	return floats.Norm(s.Ez, 2)
}
