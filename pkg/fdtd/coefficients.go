package fdtd

// lossy returns the decay and curl weights of the semi-implicit update for a
// medium with permittivity (or permeability) eps and conductivity sigma over
// a step dt and cell size d.
func lossy(eps, sigma, dt, d float64) (a, b float64) {
	k := 0.5 * sigma * dt / eps
	return (1 - k) / (1 + k), dt / eps / (1 + k) / d
}

// deriveCoefficients averages the corner-sampled materials onto each Yee
// component and fills every coefficient array.
func (g *Grid) deriveCoefficients() {
	eps, sige := g.mat.eps, g.mat.sige
	mu, sigm := g.mat.mu, g.mat.sigm
	co := &g.co
	dt, dx, dy := g.dt, g.dx, g.dy

	for y := 0; y < g.ny; y++ {
		for x := 0; x < g.nx; x++ {
			i := y*g.nx + x

			e := 0.5 * (eps.At(x+1, y+1) + eps.At(x+1, y)) * Eps0
			s := 0.5 * (sige.At(x+1, y+1) + sige.At(x+1, y))
			co.aex.Cells()[i], co.bexy.Cells()[i] = lossy(e, s, dt, dy)

			e = 0.5 * (eps.At(x+1, y+1) + eps.At(x, y+1)) * Eps0
			s = 0.5 * (sige.At(x+1, y+1) + sige.At(x, y+1))
			co.aey.Cells()[i], co.beyx.Cells()[i] = lossy(e, s, dt, dx)

			e = 0.25 * (eps.At(x+1, y+1) + eps.At(x+1, y) + eps.At(x, y+1) + eps.At(x, y)) * Eps0
			s = 0.25 * (sige.At(x+1, y+1) + sige.At(x+1, y) + sige.At(x, y+1) + sige.At(x, y))
			co.aez.Cells()[i], co.bezy.Cells()[i] = lossy(e, s, dt, dy)
			_, co.bezx.Cells()[i] = lossy(e, s, dt, dx)

			m := 0.5 * (mu.At(x+1, y+1) + mu.At(x, y+1)) * Mu0
			s = 0.5 * (sigm.At(x+1, y+1) + sigm.At(x, y+1))
			co.amx.Cells()[i], co.bmxy.Cells()[i] = lossy(m, s, dt, dy)

			m = 0.5 * (mu.At(x+1, y+1) + mu.At(x+1, y)) * Mu0
			s = 0.5 * (sigm.At(x+1, y+1) + sigm.At(x+1, y))
			co.amy.Cells()[i], co.bmyx.Cells()[i] = lossy(m, s, dt, dx)

			m = mu.At(x+1, y+1) * Mu0
			s = sigm.At(x+1, y+1)
			co.amz.Cells()[i], co.bmzx.Cells()[i] = lossy(m, s, dt, dx)
			_, co.bmzy.Cells()[i] = lossy(m, s, dt, dy)
		}
	}
}

// applyPEC zeroes the electric update coefficients over r so the tangential
// E field there stays at zero. An Ex or Ey sample is inside when both Ez
// nodes it joins are inside r.
func (g *Grid) applyPEC(r Rect) {
	co := &g.co
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			i := y*g.nx + x
			co.aez.Cells()[i] = 0
			co.bezx.Cells()[i] = 0
			co.bezy.Cells()[i] = 0
			if x < r.X1-1 {
				co.aex.Cells()[i] = 0
				co.bexy.Cells()[i] = 0
			}
			if y < r.Y1-1 {
				co.aey.Cells()[i] = 0
				co.beyx.Cells()[i] = 0
			}
		}
	}
}
