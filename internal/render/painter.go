//go:build ebiten

package render

import (
	"fdtd2d/pkg/fdtd"

	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter updates a single RGBA image from Ez snapshots.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a w*h interior.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit uploads the snapshot into the painter image and draws it scaled.
func (fp *FieldPainter) Blit(dst *ebiten.Image, snap fdtd.Snapshot, colorScale float64, scale int) {
	if snap.Width != fp.w || snap.Height != fp.h {
		return
	}
	row := fp.w * 4
	for y := 0; y < fp.h; y++ {
		off := (fp.h - 1 - y) * row
		fillFieldRGBA(fp.buf[off:off+row], snap.Ez[y*fp.w:(y+1)*fp.w], colorScale)
	}
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
