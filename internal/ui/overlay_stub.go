//go:build !ebiten

package ui

import (
	"fdtd2d/internal/core"
	"fdtd2d/pkg/fdtd"
)

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(core.Scene, *fdtd.Grid, int) *Overlay { return nil }

// SetSource is a no-op in the headless build.
func (o *Overlay) SetSource(fdtd.Point, int) {}

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any) {}
