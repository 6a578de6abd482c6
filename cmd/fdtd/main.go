// Command fdtd runs registered scenes headless and writes their results.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "fdtd2d/internal/scenes/dielectric"
	_ "fdtd2d/internal/scenes/scatter"
	_ "fdtd2d/internal/scenes/slit"
)

func main() {
	log.SetFlags(log.Ltime)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(log.Default())
	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatalf("error: %v", err)
	}
}
