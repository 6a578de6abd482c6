package core

import (
	"fmt"
	"sort"

	"fdtd2d/pkg/fdtd"
)

// Size describes the interior dimensions of a scene grid.
type Size struct {
	W int
	H int
}

// Scene defines the contract a prepared FDTD experiment must implement.
type Scene interface {
	Name() string
	Size() Size
	// Build constructs the grid, applies the scene geometry, runs Setup and
	// places the source.
	Build() (*fdtd.Solver, error)
	// Probe is the observation cell in physical-grid coordinates.
	Probe() fdtd.Point
	Steps() int
	Parameters() ParameterSnapshot
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScene looks up name and builds the scene from cfg.
func NewScene(name string, cfg map[string]string) (Scene, error) {
	f, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %v)", name, Names())
	}
	return f(cfg), nil
}
