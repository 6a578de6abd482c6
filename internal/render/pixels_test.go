package render

import (
	"image/color"
	"testing"

	"fdtd2d/pkg/fdtd"
)

func TestDiverging(t *testing.T) {
	if c := Diverging(0); c != (color.RGBA{A: 255}) {
		t.Fatalf("zero = %v", c)
	}
	if c := Diverging(1); c != positive {
		t.Fatalf("+1 = %v", c)
	}
	if c := Diverging(-5); c != negative {
		t.Fatalf("-5 should saturate, got %v", c)
	}
	lo, hi := Diverging(0.1), Diverging(0.4)
	if !(lo.R < hi.R && lo.B <= hi.B) {
		t.Fatalf("ramp not monotonic: %v %v", lo, hi)
	}
}

func TestImageFlipsRows(t *testing.T) {
	snap := fdtd.Snapshot{Width: 2, Height: 3, Ez: []float64{
		1, 0,
		0, 0,
		0, -1,
	}}
	img := Image(snap, Scale(snap, 0, 1))
	if got := img.RGBAAt(0, 2); got != positive {
		t.Fatalf("grid (0,0) should be the bottom-left pixel, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != negative {
		t.Fatalf("grid (1,2) should be the top-right pixel, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != zero {
		t.Fatalf("zero cell = %v", got)
	}
}

func TestScale(t *testing.T) {
	snap := fdtd.Snapshot{Width: 2, Height: 1, Ez: []float64{-4, 2}}
	if s := Scale(snap, 0, 2); s != 2 {
		t.Fatalf("Scale = %v, expected peak/gain = 2", s)
	}
	if s := Scale(snap, 0.5, 2); s != 0.5 {
		t.Fatalf("fixed scale ignored: %v", s)
	}
	buf := make([]byte, 8)
	fillFieldRGBA(buf, snap.Ez, 0)
	for _, b := range []int{0, 1, 2, 4, 5, 6} {
		if buf[b] != 0 {
			t.Fatal("non-positive scale must paint black")
		}
	}
}
