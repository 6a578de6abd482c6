package render

import (
	"image/color"

	"fdtd2d/pkg/fdtd"
)

// Mask classes.
const (
	MaskNone uint8 = iota
	MaskMedium
	MaskPEC
)

// MaskPalette colours the mask classes for an overlay drawn on top of the
// field.
var MaskPalette = []color.RGBA{
	{},
	{R: 255, G: 255, B: 255, A: 60},
	{R: 230, G: 200, B: 60, A: 200},
}

// MaterialMask classifies every interior cell of g in row-major order with
// y growing upwards. A cell is a medium cell when the node at its upper
// corner differs from the background.
func MaterialMask(g *fdtd.Grid) []uint8 {
	in := g.Interior()
	w, h := in.Dx(), in.Dy()
	bg := g.Config().Background
	mask := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m, err := g.MediumAt(in.X0+x+1, in.Y0+y+1)
			if err == nil && m != bg {
				mask[(h-1-y)*w+x] = MaskMedium
			}
		}
	}
	for _, r := range g.PEC() {
		for y := max(r.Y0, in.Y0); y < min(r.Y1, in.Y1); y++ {
			for x := max(r.X0, in.X0); x < min(r.X1, in.X1); x++ {
				mask[(h-1-(y-in.Y0))*w+(x-in.X0)] = MaskPEC
			}
		}
	}
	return mask
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// MaskRGBA renders a material mask with MaskPalette.
func MaskRGBA(mask []uint8) []byte {
	buf := make([]byte, 4*len(mask))
	fillPaletteRGBA(buf, mask, MaskPalette)
	return buf
}
