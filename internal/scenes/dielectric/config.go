package dielectric

import "fdtd2d/internal/scenes"

// Config controls the dielectric block scene. Positions are interior cells.
type Config struct {
	Grid scenes.GridConfig

	EpsR   float64
	Block  int
	BlockX int
	BlockY int

	SourceX int
	SourceY int
	ProbeX  int
	ProbeY  int
}

// DefaultConfig returns the reference layout: a 40-cell εr=3 square in the
// centre of a 120×120 interior with the source and probe 40 cells to its
// left.
func DefaultConfig() Config {
	return Config{
		Grid:    scenes.DefaultGridConfig(),
		EpsR:    3,
		Block:   40,
		BlockX:  60,
		BlockY:  60,
		SourceX: 20,
		SourceY: 60,
		ProbeX:  20,
		ProbeY:  60,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Grid = scenes.ParseGrid(c.Grid, cfg)
	c.EpsR = scenes.FloatOr(cfg, "epsr", c.EpsR, 0)
	c.Block = scenes.IntOr(cfg, "block", c.Block, 1)
	c.BlockX = scenes.IntOr(cfg, "block_x", c.BlockX, 0)
	c.BlockY = scenes.IntOr(cfg, "block_y", c.BlockY, 0)
	c.SourceX = scenes.IntOr(cfg, "src_x", c.SourceX, 0)
	c.SourceY = scenes.IntOr(cfg, "src_y", c.SourceY, 0)
	c.ProbeX = scenes.IntOr(cfg, "probe_x", c.ProbeX, 0)
	c.ProbeY = scenes.IntOr(cfg, "probe_y", c.ProbeY, 0)
	return c
}
