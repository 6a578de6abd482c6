package slit

import "fdtd2d/internal/core"

func (s *Scene) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		c.Grid.Group(),
		{
			Name: "Wall",
			Params: []core.Parameter{
				core.IntParam("wall_x", "Wall x", c.WallX),
				core.IntParam("thickness", "Thickness", c.Thickness),
				core.IntParam("aperture", "Aperture", c.Aperture),
				core.IntParam("spacing", "Slit spacing", c.Spacing),
			},
			Summary: "PEC",
		},
		{
			Name: "Source",
			Params: []core.Parameter{
				core.IntParam("src_x", "Source x", c.SourceX),
				core.IntParam("src_y", "Source y", c.SourceY),
				core.IntParam("probe_x", "Probe x", c.ProbeX),
				core.IntParam("probe_y", "Probe y", c.ProbeY),
			},
		},
	}}
}
