// Package render maps scalar field snapshots to RGBA pixels.
package render

import (
	"image"
	"image/color"
	"math"

	"fdtd2d/pkg/fdtd"
)

var (
	negative = color.RGBA{R: 40, G: 90, B: 255, A: 255}
	positive = color.RGBA{R: 255, G: 70, B: 40, A: 255}
	zero     = color.RGBA{A: 255}
)

// Diverging maps v in [-1, 1] to a blue-black-red ramp. Values outside the
// range saturate. The ramp is gamma-lifted so small amplitudes stay visible.
func Diverging(v float64) color.RGBA {
	if math.IsNaN(v) {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	v = max(-1, min(1, v))
	end := positive
	if v < 0 {
		end = negative
		v = -v
	}
	t := math.Sqrt(v)
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5) }
	return color.RGBA{R: lerp(zero.R, end.R), G: lerp(zero.G, end.G), B: lerp(zero.B, end.B), A: 255}
}

// fillFieldRGBA converts field values into RGBA pixels in buf. Values are
// divided by scale before colouring; a non-positive scale paints black.
func fillFieldRGBA(buf []byte, values []float64, scale float64) {
	for i, v := range values {
		base := i * 4
		col := zero
		if scale > 0 {
			col = Diverging(v / scale)
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Scale picks the colour scale for a snapshot: gain times its peak, or
// fixed when fixed is positive.
func Scale(snap fdtd.Snapshot, fixed, gain float64) float64 {
	if fixed > 0 {
		return fixed
	}
	if gain <= 0 {
		gain = 1
	}
	return snap.Peak() / gain
}

// Image renders the snapshot with y growing upwards, matching the grid's
// orientation.
func Image(snap fdtd.Snapshot, scale float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, snap.Width, snap.Height))
	row := snap.Width * 4
	for y := 0; y < snap.Height; y++ {
		dst := img.Pix[(snap.Height-1-y)*img.Stride:]
		fillFieldRGBA(dst[:row], snap.Ez[y*snap.Width:(y+1)*snap.Width], scale)
	}
	return img
}
