package slit

import "fdtd2d/internal/scenes"

// Config controls the slit scene. Positions are interior cells.
type Config struct {
	Grid scenes.GridConfig

	WallX     int
	Thickness int
	Aperture  int
	// Second aperture offset from the first, 0 for a single slit.
	Spacing int

	SourceX int
	SourceY int
	ProbeX  int
	ProbeY  int
}

// DefaultConfig returns a single 16-cell slit in a wall across a 160×120
// interior.
func DefaultConfig() Config {
	g := scenes.DefaultGridConfig()
	g.Width = 160
	return Config{
		Grid:      g,
		WallX:     60,
		Thickness: 4,
		Aperture:  16,
		SourceX:   30,
		SourceY:   60,
		ProbeX:    110,
		ProbeY:    60,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Grid = scenes.ParseGrid(c.Grid, cfg)
	c.WallX = scenes.IntOr(cfg, "wall_x", c.WallX, 0)
	c.Thickness = scenes.IntOr(cfg, "thickness", c.Thickness, 1)
	c.Aperture = scenes.IntOr(cfg, "aperture", c.Aperture, 1)
	c.Spacing = scenes.IntOr(cfg, "spacing", c.Spacing, 0)
	c.SourceX = scenes.IntOr(cfg, "src_x", c.SourceX, 0)
	c.SourceY = scenes.IntOr(cfg, "src_y", c.SourceY, 0)
	c.ProbeX = scenes.IntOr(cfg, "probe_x", c.ProbeX, 0)
	c.ProbeY = scenes.IntOr(cfg, "probe_y", c.ProbeY, 0)
	return c
}
