//go:build ebiten

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"morphfill/internal/app"
	"morphfill/internal/core"
	_ "morphfill/internal/sims/floodfill"
	_ "morphfill/internal/sims/morphology"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := core.Lookup(cfg.Sim, cfg.Settings)
	if err != nil {
		log.Fatal(errors.Wrap(err, "morphfill"))
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("morphfill - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
