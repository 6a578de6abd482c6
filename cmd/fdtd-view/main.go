//go:build ebiten

// Command fdtd-view steps a scene interactively and shows Ez live.
package main

import (
	"errors"
	"flag"
	"log"

	"fdtd2d/internal/app"
	"fdtd2d/internal/core"
	_ "fdtd2d/internal/scenes/dielectric"
	_ "fdtd2d/internal/scenes/scatter"
	_ "fdtd2d/internal/scenes/slit"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := core.NewScene(cfg.Scene, cfg.Sets.Map())
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.New(scene, cfg)
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Scene, err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("fdtd: " + scene.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
