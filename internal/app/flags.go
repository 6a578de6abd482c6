package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scene string
	Sets  SetList
	Scale int
	TPS   int
	// Rate is the number of solver steps per second.
	Rate int
	Gain float64
	HUD  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "dielectric", Scale: 4, TPS: 60, Rate: 120, Gain: 4, HUD: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to view")
	fs.Var(&c.Sets, "set", "scene parameter in key=value form (repeatable)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "solver steps per second")
	fs.Float64Var(&c.Gain, "gain", c.Gain, "colour gain relative to the frame peak")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
}

// SetList collects repeated key=value flags.
type SetList []string

func (l *SetList) String() string {
	return strings.Join(*l, ",")
}

func (l *SetList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the collected pairs; entries without '=' are skipped.
func (l SetList) Map() map[string]string {
	m := map[string]string{}
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m
}
