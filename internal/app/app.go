//go:build ebiten

package app

import (
	"fdtd2d/internal/core"
	"fdtd2d/internal/render"
	"fdtd2d/internal/ui"
	"fdtd2d/pkg/fdtd"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scene's solver to the ebiten.Game interface.
type Game struct {
	scene   core.Scene
	solver  *fdtd.Solver
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	snap     fdtd.Snapshot
	scale    int
	gain     float64
	paused   bool
	tickOnce bool
}

// New builds the scene's solver and constructs a Game around it.
func New(scene core.Scene, cfg *Config) (*Game, error) {
	solver, err := scene.Build()
	if err != nil {
		return nil, err
	}
	size := scene.Size()
	g := &Game{
		scene:   scene,
		solver:  solver,
		painter: render.NewFieldPainter(size.W, size.H),
		overlay: ui.NewOverlay(scene, solver.Grid(), cfg.Scale),
		hud:     ui.NewHUD(scene, cfg.HUD),
		pacer:   core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
		gain:    cfg.Gain,
	}
	if src, ok := solver.Source(); ok {
		g.overlay.SetSource(src, solver.Grid().Layers())
	}
	g.snap, _ = solver.Snapshot(scene.Probe())
	return g, nil
}

// Reset zeroes the fields and rewinds the clock.
func (g *Game) Reset() error {
	if err := g.solver.Reset(); err != nil {
		return err
	}
	g.tickOnce = false
	snap, err := g.solver.Snapshot(g.scene.Probe())
	if err != nil {
		return err
	}
	g.snap = snap
	return nil
}

// Update handles per-frame logic and advances the solver.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.gain *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.gain = max(g.gain/2, 0.125)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pacer.SetRate(g.pacer.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.pacer.SetRate(max(g.pacer.Rate()/2, 1))
	}
	g.overlay.Update()

	due := g.pacer.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due && g.solver.StepCount() < g.scene.Steps(); i++ {
		if err := g.solver.Step(); err != nil {
			return err
		}
	}
	if due > 0 {
		g.snap, _ = g.solver.Snapshot(g.scene.Probe())
	}

	g.hud.Update(ui.Status{
		Step:   g.solver.StepCount(),
		Steps:  g.scene.Steps(),
		Time:   g.solver.Time(),
		Probe:  g.snap.Probe.Value,
		Peak:   g.snap.Peak(),
		Rate:   g.pacer.Rate(),
		Gain:   g.gain,
		Paused: g.paused,
	})
	return nil
}

// Draw renders the current field.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.snap, render.Scale(g.snap, 0, g.gain), g.scale)
	g.overlay.Draw(screen)
	size := g.scene.Size()
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
