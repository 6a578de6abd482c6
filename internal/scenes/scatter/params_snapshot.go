package scatter

import (
	"fmt"

	"fdtd2d/internal/core"
)

func (s *Scene) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		c.Grid.Group(),
		{
			Name: "Rods",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", c.Seed),
				core.IntParam("rods", "Rod count", c.Rods),
				core.IntParam("rod_min", "Rod size min", c.RodMin),
				core.IntParam("rod_max", "Rod size max", c.RodMax),
				core.FloatParam("eps_min", "Permittivity min", c.EpsMin),
				core.FloatParam("eps_max", "Permittivity max", c.EpsMax),
				core.IntParam("clearance", "Clearance", c.Clearance),
			},
			Summary: fmt.Sprintf("%d placed", len(s.rods)),
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
