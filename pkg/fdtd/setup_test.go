package fdtd

import (
	"math"
	"testing"

	"fdtd2d/pkg/core"
)

func closeTo(got, want, rel float64) bool {
	return math.Abs(got-want) <= rel*math.Max(math.Abs(want), math.SmallestNonzeroFloat64)
}

func TestSetupVacuumCoefficients(t *testing.T) {
	g, err := NewSized(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	g.Setup()
	dt := g.Dt()
	i := g.f.ez.Index(14, 15)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"aex", g.co.aex.Cells()[i], 1},
		{"aez", g.co.aez.Cells()[i], 1},
		{"amz", g.co.amz.Cells()[i], 1},
		{"bexy", g.co.bexy.Cells()[i], dt / Eps0 / g.dy},
		{"beyx", g.co.beyx.Cells()[i], dt / Eps0 / g.dx},
		{"bezx", g.co.bezx.Cells()[i], dt / Eps0 / g.dx},
		{"bmxy", g.co.bmxy.Cells()[i], dt / Mu0 / g.dy},
		{"bmzy", g.co.bmzy.Cells()[i], dt / Mu0 / g.dy},
	}
	for _, c := range checks {
		if !closeTo(c.got, c.want, 1e-12) {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.want)
		}
	}
}

func TestSetupAveragesCornerMaterials(t *testing.T) {
	g, err := NewSized(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	r := Rect{X0: 14, X1: 20, Y0: 14, Y1: 20}
	if err := g.SetDielectric(r, 3); err != nil {
		t.Fatal(err)
	}
	g.Setup()
	dt := g.Dt()

	// Deep inside: all four corners carry eps=3.
	i := g.f.ez.Index(17, 17)
	if want := dt / (3 * Eps0) / g.dx; !closeTo(g.co.bezx.Cells()[i], want, 1e-12) {
		t.Fatalf("interior bezx = %v, expected %v", g.co.bezx.Cells()[i], want)
	}

	// Left edge cell: nodes at x=14 are vacuum, x=15 dielectric.
	i = g.f.ez.Index(14, 16)
	if want := dt / (2 * Eps0) / g.dx; !closeTo(g.co.bezx.Cells()[i], want, 1e-12) {
		t.Fatalf("edge bezx = %v, expected %v", g.co.bezx.Cells()[i], want)
	}
	// Ex at the same cell samples nodes (15,16) and (15,17), both dielectric.
	if want := dt / (3 * Eps0) / g.dy; !closeTo(g.co.bexy.Cells()[i], want, 1e-12) {
		t.Fatalf("edge bexy = %v, expected %v", g.co.bexy.Cells()[i], want)
	}
	// Ey samples nodes (14,17) and (15,17): one of each.
	if want := dt / (2 * Eps0) / g.dx; !closeTo(g.co.beyx.Cells()[i], want, 1e-12) {
		t.Fatalf("edge beyx = %v, expected %v", g.co.beyx.Cells()[i], want)
	}
}

func TestSetupLossyMedium(t *testing.T) {
	g, err := NewSized(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	m := Medium{EpsR: 2, MuR: 3, SigmaE: 0.5, SigmaM: 40}
	if err := g.SetMedium(Rect{X0: 12, X1: 20, Y0: 12, Y1: 20}, m); err != nil {
		t.Fatal(err)
	}
	g.Setup()
	dt := g.Dt()
	i := g.f.ez.Index(16, 16)

	k := 0.5 * m.SigmaE * dt / (m.EpsR * Eps0)
	if want := (1 - k) / (1 + k); !closeTo(g.co.aez.Cells()[i], want, 1e-12) {
		t.Fatalf("aez = %v, expected %v", g.co.aez.Cells()[i], want)
	}
	if want := dt / (m.EpsR * Eps0) / (1 + k) / g.dy; !closeTo(g.co.bezy.Cells()[i], want, 1e-12) {
		t.Fatalf("bezy = %v, expected %v", g.co.bezy.Cells()[i], want)
	}
	k = 0.5 * m.SigmaM * dt / (m.MuR * Mu0)
	if want := (1 - k) / (1 + k); !closeTo(g.co.amz.Cells()[i], want, 1e-12) {
		t.Fatalf("amz = %v, expected %v", g.co.amz.Cells()[i], want)
	}
	if g.co.aez.Cells()[i] >= 1 || g.co.amz.Cells()[i] >= 1 {
		t.Fatal("lossy medium must decay the previous field value")
	}
}

func allCoefficientFields(g *Grid) []*core.Field {
	co := g.co
	p := g.pml
	return []*core.Field{
		co.aex, co.aey, co.aez, co.bexy, co.beyx, co.bezx, co.bezy,
		co.amx, co.amy, co.amz, co.bmxy, co.bmyx, co.bmzx, co.bmzy,
		p.aeX, p.beX, p.aeY, p.beY, p.amX, p.bmX, p.amY, p.bmY,
	}
}

func TestSetupIdempotent(t *testing.T) {
	g, err := NewSized(24, 18)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetDielectric(Rect{X0: 12, X1: 20, Y0: 10, Y1: 16}, 4.5); err != nil {
		t.Fatal(err)
	}
	if err := g.SetPEC(Rect{X0: 24, X1: 28, Y0: 12, Y1: 20}); err != nil {
		t.Fatal(err)
	}
	g.Setup()
	first := allCoefficientFields(g)
	snap := make([]*core.Field, len(first))
	for i, f := range first {
		snap[i] = f.Clone()
	}

	g.Setup()
	for i, f := range allCoefficientFields(g) {
		if !f.Equal(snap[i]) {
			t.Fatalf("coefficient array %d changed between Setup calls", i)
		}
	}
}
