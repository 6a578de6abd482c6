//go:build ebiten

package ui

import (
	"image/color"

	"fdtd2d/internal/core"
	"fdtd2d/internal/render"
	"fdtd2d/pkg/fdtd"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the material layout and the source and probe markers on top
// of the field.
type Overlay struct {
	scale        int
	size         core.Size
	showMaterial bool
	showMarkers  bool
	maskImg      *ebiten.Image

	// Marker centres in screen pixels.
	source, probe [2]float64
	hasSource     bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for scene built on grid. The material
// mask is rendered once; Setup must not change it afterwards.
func NewOverlay(scene core.Scene, grid *fdtd.Grid, scale int) *Overlay {
	size := scene.Size()
	o := &Overlay{scale: scale, size: size, showMaterial: true, showMarkers: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)

	o.maskImg = ebiten.NewImage(size.W, size.H)
	o.maskImg.WritePixels(render.MaskRGBA(render.MaterialMask(grid)))

	l := grid.Layers()
	o.probe = o.screen(scene.Probe().X-l, scene.Probe().Y-l)
	return o
}

// SetSource places the source marker at physical cell p.
func (o *Overlay) SetSource(p fdtd.Point, layers int) {
	o.source = o.screen(p.X-layers, p.Y-layers)
	o.hasSource = true
}

func (o *Overlay) screen(x, y int) [2]float64 {
	s := float64(o.scale)
	return [2]float64{(float64(x) + 0.5) * s, (float64(o.size.H-1-y) + 0.5) * s}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMaterial = !o.showMaterial
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showMarkers = !o.showMarkers
	}
}

// Draw paints the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showMaterial {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		screen.DrawImage(o.maskImg, op)
	}
	if !o.showMarkers {
		return
	}
	size := max(3, float64(o.scale))
	if o.hasSource {
		o.drawPoint(screen, o.source[0], o.source[1], size, color.RGBA{R: 80, G: 255, B: 120, A: 255})
	}
	o.drawPoint(screen, o.probe[0], o.probe[1], size, color.RGBA{R: 255, G: 230, B: 0, A: 255})
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
