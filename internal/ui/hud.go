//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fdtd2d/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the run status and scene parameters to the right of the field
// view.
type HUD struct {
	scene      core.Scene
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     Status
	title      string
}

// NewHUD constructs a HUD for the provided scene and panel width.
func NewHUD(scene core.Scene, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{scene: scene, width: width, title: "Scene"}
	if scene != nil && scene.Name() != "" {
		h.title = "Scene: " + scene.Name()
		h.snapshot = scene.Parameters()
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update stores the latest run status.
func (h *HUD) Update(st Status) {
	if h == nil {
		return
	}
	h.status = st
}

// Draw paints the HUD panel anchored to the right edge of the field view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 || h.scene == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.scene.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + 12
	line := func(s string, c color.Color) {
		text.Draw(h.panel, s, face, panelPadding, y, c)
		y += lineHeight
	}
	head := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	line(h.title, head)
	for _, s := range h.status.Lines() {
		line(s, body)
	}
	y += lineHeight / 2
	for _, g := range h.snapshot.Groups {
		title := g.Name
		if g.Summary != "" {
			title += " (" + g.Summary + ")"
		}
		line(title, head)
		for _, p := range g.Params {
			line(fmt.Sprintf("  %-18s %s", truncate(p.Label, 18), p.Value), dim)
		}
	}
	y += lineHeight / 2
	line("space pause  n step  r reset", dim)
	line("+/- gain  up/down rate", dim)
	line("m materials  p markers", dim)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-1]) + "~"
}
