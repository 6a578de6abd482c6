package fdtd

import (
	"fmt"
	"slices"

	"fdtd2d/pkg/core"
)

// Rect is a half-open cell rectangle [X0,X1)×[Y0,Y1) in physical-grid
// coordinates.
type Rect struct {
	X0, X1, Y0, Y1 int
}

// Square returns the size×size rectangle centred on (cx, cy).
func Square(cx, cy, size int) Rect {
	h := size / 2
	return Rect{X0: cx - h, X1: cx - h + size, Y0: cy - h, Y1: cy - h + size}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Dx returns the rectangle width in cells.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the rectangle height in cells.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.X0, r.X1, r.Y0, r.Y1)
}

type fields struct {
	ex, ey, ez *core.Field
	hx, hy, hz *core.Field
}

// materials are sampled on cell corners, so each array is one node larger
// than the field arrays along both axes. Node (x+1, y+1) is the upper corner
// of cell (x, y).
type materials struct {
	eps, sige *core.Field
	mu, sigm  *core.Field
}

type coefficients struct {
	aex, aey, aez          *core.Field
	bexy, beyx, bezx, bezy *core.Field
	amx, amy, amz          *core.Field
	bmxy, bmyx, bmzx, bmzy *core.Field
}

// Grid owns every array of one simulation. Material edits are only allowed
// through the Grid; stepping goes through the Solver returned by Setup.
type Grid struct {
	cfg Config

	nx, ny int
	lpml   int
	dx, dy float64
	dt     float64

	mat materials
	f   fields
	co  coefficients
	pml pmlLayer
	pec []Rect

	// gen changes on every edit and every Setup; a Solver is valid only for
	// the generation it was created at.
	gen uint64
}

// NewDefault builds a grid from DefaultConfig.
func NewDefault() (*Grid, error) {
	return New(DefaultConfig())
}

// NewSized builds a grid with the default configuration and the given
// interior cell counts.
func NewSized(nx0, ny0 int) (*Grid, error) {
	cfg := DefaultConfig()
	cfg.Nx0 = nx0
	cfg.Ny0 = ny0
	return New(cfg)
}

// New allocates a grid for cfg. The time step is derived from the configured
// cell size and background medium.
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := cfg.PMLLayers
	nx := cfg.Nx0 + 2*l
	ny := cfg.Ny0 + 2*l
	g := &Grid{
		cfg:  cfg,
		nx:   nx,
		ny:   ny,
		lpml: l,
		dx:   cfg.Dx,
		dy:   cfg.Dy,
		dt:   cfg.TimeStep(),
	}

	bg := cfg.Background
	g.mat = materials{
		eps:  core.NewFilledField(nx+1, ny+1, bg.EpsR),
		sige: core.NewFilledField(nx+1, ny+1, bg.SigmaE),
		mu:   core.NewFilledField(nx+1, ny+1, bg.MuR),
		sigm: core.NewFilledField(nx+1, ny+1, bg.SigmaM),
	}
	alloc := func() *core.Field { return core.NewField(nx, ny) }
	g.f = fields{ex: alloc(), ey: alloc(), ez: alloc(), hx: alloc(), hy: alloc(), hz: alloc()}
	g.co = coefficients{
		aex: alloc(), aey: alloc(), aez: alloc(),
		bexy: alloc(), beyx: alloc(), bezx: alloc(), bezy: alloc(),
		amx: alloc(), amy: alloc(), amz: alloc(),
		bmxy: alloc(), bmyx: alloc(), bmzx: alloc(), bmzy: alloc(),
	}
	g.pml = newPMLLayer(nx, ny)
	return g, nil
}

// Config returns the configuration the grid was built from.
func (g *Grid) Config() Config { return g.cfg }

// Size returns the physical grid extent including the PML guard.
func (g *Grid) Size() (nx, ny int) { return g.nx, g.ny }

// Layers returns the PML depth in cells.
func (g *Grid) Layers() int { return g.lpml }

// Interior returns the non-PML region in physical coordinates.
func (g *Grid) Interior() Rect {
	return Rect{X0: g.lpml, X1: g.nx - g.lpml, Y0: g.lpml, Y1: g.ny - g.lpml}
}

// Dt returns the time step.
func (g *Grid) Dt() float64 { return g.dt }

// SetDielectric fills r with a lossless dielectric of relative permittivity
// epsr and unit permeability.
func (g *Grid) SetDielectric(r Rect, epsr float64) error {
	if !positive(epsr) {
		return fmt.Errorf("%w: permittivity %g", ErrInvalidConfig, epsr)
	}
	return g.SetMedium(r, Medium{EpsR: epsr, MuR: 1})
}

// SetMedium assigns m to the material nodes of every cell in r. A cell owns
// the node at its upper corner, so nodes (X0+1..X1, Y0+1..Y1) change.
func (g *Grid) SetMedium(r Rect, m Medium) error {
	if err := g.checkRect("set medium", r); err != nil {
		return err
	}
	if !positive(m.EpsR) || !positive(m.MuR) || m.SigmaE < 0 || m.SigmaM < 0 {
		return fmt.Errorf("%w: medium %+v", ErrInvalidConfig, m)
	}
	for y := r.Y0 + 1; y <= r.Y1; y++ {
		for x := r.X0 + 1; x <= r.X1; x++ {
			g.mat.eps.Set(x, y, m.EpsR)
			g.mat.mu.Set(x, y, m.MuR)
			g.mat.sige.Set(x, y, m.SigmaE)
			g.mat.sigm.Set(x, y, m.SigmaM)
		}
	}
	g.gen++
	return nil
}

// SetPEC records a perfect electric conductor over r. It is applied to the
// derived coefficients at the end of every Setup.
func (g *Grid) SetPEC(r Rect) error {
	if err := g.checkRect("set pec", r); err != nil {
		return err
	}
	g.pec = append(g.pec, r)
	g.gen++
	return nil
}

// PEC returns the recorded conductor rectangles.
func (g *Grid) PEC() []Rect { return slices.Clone(g.pec) }

// MediumAt returns the material stored at node (x, y).
func (g *Grid) MediumAt(x, y int) (Medium, error) {
	if !g.mat.eps.In(x, y) {
		return Medium{}, fmt.Errorf("%w: node (%d,%d)", ErrOutOfRange, x, y)
	}
	return Medium{
		EpsR:   g.mat.eps.At(x, y),
		MuR:    g.mat.mu.At(x, y),
		SigmaE: g.mat.sige.At(x, y),
		SigmaM: g.mat.sigm.At(x, y),
	}, nil
}

// Setup derives every update coefficient from the current material state,
// builds the PML, re-applies recorded PEC regions and returns a Solver bound
// to this configuration. Fields and split components are zeroed, so the new
// solver starts from rest at t=0. Earlier solvers become stale.
func (g *Grid) Setup() *Solver {
	g.clearFields()
	g.deriveCoefficients()
	g.initPML()
	for _, r := range g.pec {
		g.applyPEC(r)
	}
	g.gen++
	return &Solver{g: g, gen: g.gen}
}

func (g *Grid) checkRect(op string, r Rect) error {
	if r.Empty() || r.X0 < 0 || r.Y0 < 0 || r.X1 > g.nx || r.Y1 > g.ny {
		return fmt.Errorf("%w: %s %v outside [0,%d)x[0,%d)", ErrOutOfRange, op, r, g.nx, g.ny)
	}
	return nil
}
