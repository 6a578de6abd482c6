// Package scenes holds the grid settings shared by the registered scenes.
// Each scene lives in its own subpackage and registers itself with
// internal/core from init.
package scenes

import (
	"strconv"

	"fdtd2d/internal/core"
	"fdtd2d/pkg/fdtd"
)

// GridConfig is the solver-level part of every scene configuration. Scene
// geometry is given in interior coordinates; Physical converts to the
// solver's guard-inclusive indices.
type GridConfig struct {
	Width  int
	Height int
	Dx     float64
	PML    int
	Steps  int
}

// DefaultGridConfig returns the defaults of fdtd.DefaultConfig.
func DefaultGridConfig() GridConfig {
	d := fdtd.DefaultConfig()
	return GridConfig{Width: d.Nx0, Height: d.Ny0, Dx: d.Dx, PML: d.PMLLayers, Steps: d.Steps}
}

// ParseGrid overrides c with the w, h, dx, pml and steps keys of cfg.
// Malformed or out-of-range values are ignored.
func ParseGrid(c GridConfig, cfg map[string]string) GridConfig {
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["dx"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Dx = parsed
		}
	}
	if v, ok := cfg["pml"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PML = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	return c
}

// FDTD returns the solver configuration for c.
func (c GridConfig) FDTD() fdtd.Config {
	f := fdtd.DefaultConfig()
	f.Nx0, f.Ny0 = c.Width, c.Height
	f.Dx, f.Dy = c.Dx, c.Dx
	f.PMLLayers = c.PML
	f.Steps = c.Steps
	return f
}

// Size returns the interior size.
func (c GridConfig) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Physical converts interior cell (x, y) to physical-grid coordinates.
func (c GridConfig) Physical(x, y int) fdtd.Point {
	return fdtd.Point{X: x + c.PML, Y: y + c.PML}
}

// PhysicalRect shifts an interior rectangle into physical-grid coordinates.
func (c GridConfig) PhysicalRect(r fdtd.Rect) fdtd.Rect {
	return fdtd.Rect{X0: r.X0 + c.PML, X1: r.X1 + c.PML, Y0: r.Y0 + c.PML, Y1: r.Y1 + c.PML}
}

// Group reports c for a parameter snapshot.
func (c GridConfig) Group() core.ParameterGroup {
	return core.FDTDGroup(c.Width, c.Height, c.Dx, c.FDTD().TimeStep(), c.PML, c.Steps)
}

// IntOr parses key from cfg, keeping def when the key is absent, malformed
// or below min.
func IntOr(cfg map[string]string, key string, def, min int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
			return parsed
		}
	}
	return def
}

// FloatOr parses key from cfg, keeping def when the key is absent, malformed
// or not above min.
func FloatOr(cfg map[string]string, key string, def, min float64) float64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > min {
			return parsed
		}
	}
	return def
}
