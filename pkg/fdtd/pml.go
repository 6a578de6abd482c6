package fdtd

import (
	"math"

	"fdtd2d/pkg/core"
)

// pmlLayer holds the four absorbing slabs, their split-field coefficients
// and the auxiliary split components. Coefficients graded along x carry the
// X suffix; those graded along y carry Y.
type pmlLayer struct {
	slabs []Rect

	aeX, beX, aeY, beY *core.Field
	amX, bmX, amY, bmY *core.Field

	ex, ey   *core.Field
	ezx, ezy *core.Field
	hx, hy   *core.Field
	hzx, hzy *core.Field
}

func newPMLLayer(nx, ny int) pmlLayer {
	alloc := func() *core.Field { return core.NewField(nx, ny) }
	return pmlLayer{
		aeX: alloc(), beX: alloc(), aeY: alloc(), beY: alloc(),
		amX: alloc(), bmX: alloc(), amY: alloc(), bmY: alloc(),
		ex: alloc(), ey: alloc(),
		ezx: alloc(), ezy: alloc(),
		hx: alloc(), hy: alloc(),
		hzx: alloc(), hzy: alloc(),
	}
}

// Slabs returns the left, right, top and bottom PML rectangles. The vertical
// slabs span the full height; the horizontal ones fill the gap between them.
func (g *Grid) Slabs() []Rect {
	l := g.lpml
	return []Rect{
		{X0: 0, X1: l, Y0: 0, Y1: g.ny},
		{X0: g.nx - l, X1: g.nx, Y0: 0, Y1: g.ny},
		{X0: l, X1: g.nx - l, Y0: 0, Y1: l},
		{X0: l, X1: g.nx - l, Y0: g.ny - l, Y1: g.ny},
	}
}

// sigmaMax returns the peak conductivity of a graded profile over the layer
// for cell size d.
func (g *Grid) sigmaMax(d float64) float64 {
	m := g.cfg.PMLOrder
	return copml * g.cfg.Reflection * float64(m+1) / (float64(g.lpml) * d)
}

// profile returns the graded electric and magnetic conductivities at index i
// along an axis of n cells. Electric samples sit on integer depths measured
// from the inner boundary of the layer; magnetic samples are staggered by
// half a cell towards the outer wall on the far side.
func (g *Grid) profile(i, n int, smax float64) (sigE, sigM float64) {
	l := g.lpml
	m := g.cfg.PMLOrder
	fl := float64(l)
	switch {
	case i < l:
		d := float64(l - i)
		return math.Pow(d/fl, float64(m)) * smax, math.Pow((d-0.5)/fl, float64(m)) * smax
	case i >= n-l:
		d := float64(i - n + l)
		return math.Pow(d/fl, float64(m)) * smax, math.Pow((d+0.5)/fl, float64(m)) * smax
	}
	return 0, 0
}

// initPML rebuilds the slabs and their split-field coefficients. It must run
// after deriveCoefficients.
func (g *Grid) initPML() {
	p := &g.pml
	p.slabs = g.Slabs()

	smaxX := g.sigmaMax(g.dx)
	smaxY := g.sigmaMax(g.dy)
	bg := g.cfg.Background
	eps := bg.EpsR * Eps0
	mu := bg.MuR * Mu0
	dt := g.dt

	for _, s := range p.slabs {
		for y := s.Y0; y < s.Y1; y++ {
			sigYE, sigYM := g.profile(y, g.ny, smaxY)
			for x := s.X0; x < s.X1; x++ {
				sigXE, sigXM := g.profile(x, g.nx, smaxX)
				i := y*g.nx + x

				p.aeX.Cells()[i], p.beX.Cells()[i] = lossy(eps, sigXE*bg.EpsR, dt, g.dx)
				p.aeY.Cells()[i], p.beY.Cells()[i] = lossy(eps, sigYE*bg.EpsR, dt, g.dy)

				// Magnetic loss is matched to the electric one (σm/μ = σe/ε),
				// so the decay uses ε while the curl weight uses μ.
				p.amX.Cells()[i], _ = lossy(eps, sigXM*bg.EpsR, dt, g.dx)
				p.bmX.Cells()[i] = matchedWeight(eps, mu, sigXM*bg.EpsR, dt, g.dx)
				p.amY.Cells()[i], _ = lossy(eps, sigYM*bg.EpsR, dt, g.dy)
				p.bmY.Cells()[i] = matchedWeight(eps, mu, sigYM*bg.EpsR, dt, g.dy)
			}
		}
	}
}

func matchedWeight(eps, mu, sigma, dt, d float64) float64 {
	k := 0.5 * sigma * dt / eps
	return dt / mu / (1 + k) / d
}

// clip bounds slab s by the range the interior engine updates. x1 and y1
// stop short of the far ring; xa and ya also skip the near ring, for
// components whose stencil reaches back one cell.
func (g *Grid) clip(s Rect) (x0, xa, x1, y0, ya, y1 int) {
	return s.X0, max(s.X0, 1), min(s.X1, g.nx-1), s.Y0, max(s.Y0, 1), min(s.Y1, g.ny-1)
}

// ePML advances the electric split fields over every slab cell the interior
// engine touches and writes the recombined values over its result.
func (g *Grid) ePML() {
	p := &g.pml
	nx := g.nx
	ex, ey, ez := g.f.ex.Cells(), g.f.ey.Cells(), g.f.ez.Cells()
	hx, hy, hz := g.f.hx.Cells(), g.f.hy.Cells(), g.f.hz.Cells()
	aeX, beX := p.aeX.Cells(), p.beX.Cells()
	aeY, beY := p.aeY.Cells(), p.beY.Cells()
	pex, pey := p.ex.Cells(), p.ey.Cells()
	ezx, ezy := p.ezx.Cells(), p.ezy.Cells()

	for _, s := range p.slabs {
		x0, xa, x1, y0, ya, y1 := g.clip(s)
		for y := ya; y < y1; y++ {
			for x := x0; x < x1; x++ {
				i := y*nx + x
				pex[i] = aeY[i]*pex[i] + beY[i]*(hz[i]-hz[i-nx])
				ex[i] = pex[i]
			}
		}
		for y := y0; y < y1; y++ {
			for x := xa; x < x1; x++ {
				i := y*nx + x
				pey[i] = aeX[i]*pey[i] - beX[i]*(hz[i]-hz[i-1])
				ey[i] = pey[i]
			}
		}
		for y := ya; y < y1; y++ {
			for x := xa; x < x1; x++ {
				i := y*nx + x
				ezx[i] = aeX[i]*ezx[i] + beX[i]*(hy[i]-hy[i-1])
				ezy[i] = aeY[i]*ezy[i] - beY[i]*(hx[i]-hx[i-nx])
				ez[i] = ezx[i] + ezy[i]
			}
		}
	}
}

// hPML is the magnetic counterpart of ePML.
func (g *Grid) hPML() {
	p := &g.pml
	nx := g.nx
	ex, ey, ez := g.f.ex.Cells(), g.f.ey.Cells(), g.f.ez.Cells()
	hx, hy, hz := g.f.hx.Cells(), g.f.hy.Cells(), g.f.hz.Cells()
	amX, bmX := p.amX.Cells(), p.bmX.Cells()
	amY, bmY := p.amY.Cells(), p.bmY.Cells()
	phx, phy := p.hx.Cells(), p.hy.Cells()
	hzx, hzy := p.hzx.Cells(), p.hzy.Cells()

	for _, s := range p.slabs {
		x0, xa, x1, y0, ya, y1 := g.clip(s)
		for y := y0; y < y1; y++ {
			for x := xa; x < x1; x++ {
				i := y*nx + x
				phx[i] = amY[i]*phx[i] - bmY[i]*(ez[i+nx]-ez[i])
				hx[i] = phx[i]
			}
		}
		for y := ya; y < y1; y++ {
			for x := x0; x < x1; x++ {
				i := y*nx + x
				phy[i] = amX[i]*phy[i] + bmX[i]*(ez[i+1]-ez[i])
				hy[i] = phy[i]
			}
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				i := y*nx + x
				hzx[i] = amX[i]*hzx[i] - bmX[i]*(ey[i+1]-ey[i])
				hzy[i] = amY[i]*hzy[i] + bmY[i]*(ex[i+nx]-ex[i])
				hz[i] = hzx[i] + hzy[i]
			}
		}
	}
}
