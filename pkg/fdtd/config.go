package fdtd

import (
	"fmt"
	"math"
)

// Physical constants in SI units.
const (
	Eps0 = 8.8541878e-12
	Mu0  = 1.2566371e-6
	C    = 2.9979246e8
)

// copml folds ln(10)/20 and the free-space impedance into the PML
// conductivity scale so that σmax follows from a reflection target in dB.
const copml = -1.5280063e-4

// Medium is the relative permittivity and permeability plus electric and
// magnetic conductivity of a material.
type Medium struct {
	EpsR   float64
	MuR    float64
	SigmaE float64
	SigmaM float64
}

// Vacuum is the lossless free-space medium.
var Vacuum = Medium{EpsR: 1, MuR: 1}

// Config collects every tunable of a simulation.
type Config struct {
	// Interior cell counts, excluding the PML guard region.
	Nx0, Ny0 int
	// Cell size in metres.
	Dx, Dy float64

	PMLLayers int
	PMLOrder  int
	// Target normal-incidence reflection of the PML in dB (negative).
	Reflection float64

	Background Medium
	// Fraction of the Courant limit used for dt.
	Safety float64

	// Gaussian pulse width of the source in seconds; the peak is at 4×.
	PulseWidth float64
	// Number of full time steps a run executes.
	Steps int
}

// DefaultConfig returns the standard configuration: a 120×120 interior of
// 5 mm cells in vacuum surrounded by an 8-layer PML.
func DefaultConfig() Config {
	return Config{
		Nx0:        120,
		Ny0:        120,
		Dx:         0.005,
		Dy:         0.005,
		PMLLayers:  8,
		PMLOrder:   4,
		Reflection: -120,
		Background: Vacuum,
		Safety:     0.99999,
		PulseWidth: 0.1e-9,
		Steps:      2000,
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.Nx0 <= 0 || c.Ny0 <= 0 {
		return fmt.Errorf("%w: interior %dx%d", ErrInvalidSize, c.Nx0, c.Ny0)
	}
	if !positive(c.Dx) || !positive(c.Dy) {
		return fmt.Errorf("%w: cell size %gx%g", ErrInvalidConfig, c.Dx, c.Dy)
	}
	if c.PMLLayers <= 0 {
		return fmt.Errorf("%w: pml layers %d", ErrInvalidConfig, c.PMLLayers)
	}
	if c.PMLOrder < 0 {
		return fmt.Errorf("%w: pml order %d", ErrInvalidConfig, c.PMLOrder)
	}
	if math.IsNaN(c.Reflection) || c.Reflection > 0 {
		return fmt.Errorf("%w: reflection %g dB", ErrInvalidConfig, c.Reflection)
	}
	if !positive(c.Background.EpsR) || !positive(c.Background.MuR) {
		return fmt.Errorf("%w: background medium %+v", ErrInvalidConfig, c.Background)
	}
	if c.Background.SigmaE < 0 || c.Background.SigmaM < 0 {
		return fmt.Errorf("%w: background medium %+v", ErrInvalidConfig, c.Background)
	}
	if !positive(c.Safety) || c.Safety >= 1 {
		return fmt.Errorf("%w: safety factor %g", ErrInvalidConfig, c.Safety)
	}
	if !positive(c.PulseWidth) {
		return fmt.Errorf("%w: pulse width %g", ErrInvalidConfig, c.PulseWidth)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d", ErrInvalidConfig, c.Steps)
	}
	return nil
}

// TimeStep returns the CFL-limited step for the configured cell size and
// background medium.
func (c Config) TimeStep() float64 {
	v := C / math.Sqrt(c.Background.EpsR*c.Background.MuR)
	return c.Safety / (v * math.Sqrt(1/(c.Dx*c.Dx)+1/(c.Dy*c.Dy)))
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
