package dielectric

import "fdtd2d/internal/core"

func (s *Scene) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		c.Grid.Group(),
		{
			Name: "Block",
			Params: []core.Parameter{
				core.FloatParam("epsr", "Relative permittivity", c.EpsR),
				core.IntParam("block", "Side (cells)", c.Block),
				core.IntParam("block_x", "Centre x", c.BlockX),
				core.IntParam("block_y", "Centre y", c.BlockY),
			},
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
