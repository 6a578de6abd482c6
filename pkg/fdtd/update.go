package fdtd

// eCal advances Ex, Ey and Ez by one step over the interior engine's range,
// which excludes the outermost ring of the grid.
func (g *Grid) eCal() {
	nx, ny := g.nx, g.ny
	ex, ey, ez := g.f.ex.Cells(), g.f.ey.Cells(), g.f.ez.Cells()
	hx, hy, hz := g.f.hx.Cells(), g.f.hy.Cells(), g.f.hz.Cells()
	co := &g.co
	aex, bexy := co.aex.Cells(), co.bexy.Cells()
	aey, beyx := co.aey.Cells(), co.beyx.Cells()
	aez, bezx, bezy := co.aez.Cells(), co.bezx.Cells(), co.bezy.Cells()

	for y := 1; y < ny-1; y++ {
		for x := 0; x < nx-1; x++ {
			i := y*nx + x
			ex[i] = aex[i]*ex[i] + bexy[i]*(hz[i]-hz[i-nx])
		}
	}
	for y := 0; y < ny-1; y++ {
		for x := 1; x < nx-1; x++ {
			i := y*nx + x
			ey[i] = aey[i]*ey[i] - beyx[i]*(hz[i]-hz[i-1])
		}
	}
	for y := 1; y < ny-1; y++ {
		for x := 1; x < nx-1; x++ {
			i := y*nx + x
			ez[i] = aez[i]*ez[i] + bezx[i]*(hy[i]-hy[i-1]) - bezy[i]*(hx[i]-hx[i-nx])
		}
	}
}

// hCal advances Hx, Hy and Hz by one step.
func (g *Grid) hCal() {
	nx, ny := g.nx, g.ny
	ex, ey, ez := g.f.ex.Cells(), g.f.ey.Cells(), g.f.ez.Cells()
	hx, hy, hz := g.f.hx.Cells(), g.f.hy.Cells(), g.f.hz.Cells()
	co := &g.co
	amx, bmxy := co.amx.Cells(), co.bmxy.Cells()
	amy, bmyx := co.amy.Cells(), co.bmyx.Cells()
	amz, bmzx, bmzy := co.amz.Cells(), co.bmzx.Cells(), co.bmzy.Cells()

	for y := 0; y < ny-1; y++ {
		for x := 1; x < nx-1; x++ {
			i := y*nx + x
			hx[i] = amx[i]*hx[i] - bmxy[i]*(ez[i+nx]-ez[i])
		}
	}
	for y := 1; y < ny-1; y++ {
		for x := 0; x < nx-1; x++ {
			i := y*nx + x
			hy[i] = amy[i]*hy[i] + bmyx[i]*(ez[i+1]-ez[i])
		}
	}
	for y := 0; y < ny-1; y++ {
		for x := 0; x < nx-1; x++ {
			i := y*nx + x
			hz[i] = amz[i]*hz[i] - bmzx[i]*(ey[i+1]-ey[i]) + bmzy[i]*(ex[i+nx]-ex[i])
		}
	}
}
