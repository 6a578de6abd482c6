package scatter

import (
	"strconv"

	"fdtd2d/internal/scenes"
)

// Config controls the random rod scene. Positions are interior cells.
type Config struct {
	Grid scenes.GridConfig

	Seed   int64
	Rods   int
	RodMin int
	RodMax int
	EpsMin float64
	EpsMax float64

	// Rods stay at least Clearance cells away from the source and probe.
	Clearance int

	SourceX int
	SourceY int
	ProbeX  int
	ProbeY  int
}

// DefaultConfig returns a field of 24 rods between a source on the left and
// a probe on the right of a 120×120 interior.
func DefaultConfig() Config {
	return Config{
		Grid:      scenes.DefaultGridConfig(),
		Seed:      1337,
		Rods:      24,
		RodMin:    2,
		RodMax:    6,
		EpsMin:    2,
		EpsMax:    6,
		Clearance: 6,
		SourceX:   15,
		SourceY:   60,
		ProbeX:    105,
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.Rods = scenes.IntOr(cfg, "rods", c.Rods, 0)
	c.RodMin = scenes.IntOr(cfg, "rod_min", c.RodMin, 1)
	c.RodMax = scenes.IntOr(cfg, "rod_max", c.RodMax, 1)
	if c.RodMax < c.RodMin {
		c.RodMax = c.RodMin
	}
	c.EpsMin = scenes.FloatOr(cfg, "eps_min", c.EpsMin, 0)
	c.EpsMax = scenes.FloatOr(cfg, "eps_max", c.EpsMax, 0)
	if c.EpsMax < c.EpsMin {
		c.EpsMax = c.EpsMin
	}
	c.Clearance = scenes.IntOr(cfg, "clearance", c.Clearance, 0)
	c.SourceX = scenes.IntOr(cfg, "src_x", c.SourceX, 0)
	c.SourceY = scenes.IntOr(cfg, "src_y", c.SourceY, 0)
	c.ProbeX = scenes.IntOr(cfg, "probe_x", c.ProbeX, 0)
	c.ProbeY = scenes.IntOr(cfg, "probe_y", c.ProbeY, 0)
	return c
}
