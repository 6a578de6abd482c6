package fdtd

import (
	"fmt"
	"math"
)

// source is a soft Gaussian current injected into one Ez cell.
type source struct {
	x, y     int
	duration float64
	t0       float64
	// befed folds dt/(ε·Δx·Δy) at the source cell.
	befed float64
}

// pulse returns the normalised current at time t. The half-step shift puts
// the current at the time level between the two E updates it sits between.
func (s *source) pulse(t, dt float64) float64 {
	v := (t - 0.5*dt - s.t0) / s.duration
	return math.Exp(-v * v)
}

func (g *Grid) newSource(x, y int) (*source, error) {
	in := g.Interior()
	if !in.Contains(x, y) {
		return nil, fmt.Errorf("%w: source (%d,%d) outside interior %v", ErrOutOfRange, x, y, in)
	}
	eps := g.mat.eps
	e := 0.25 * (eps.At(x+1, y+1) + eps.At(x, y+1) + eps.At(x+1, y) + eps.At(x, y)) * Eps0
	d := g.cfg.PulseWidth
	return &source{
		x:        x,
		y:        y,
		duration: d,
		t0:       4 * d,
		befed:    g.dt / e / (g.dx * g.dy),
	}, nil
}
