//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"termlife/internal/app"
	"termlife/internal/life"
	"termlife/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid flags: %v", err)
		os.Exit(app.ExitCode(err))
	}

	sim := life.New(life.Width, life.Height)
	game := app.New(sim, cfg.NewSpeed(), cfg.Scale)
	if err := game.Loop().Seed(pattern.NewCatalog(cfg.PatternDir), cfg.Seed); err != nil {
		log.Printf("seed: %v (pass -seed 1-5)", err)
		os.Exit(app.ExitCode(err))
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("termlife — " + sim.Name())
	ebiten.SetTPS(app.FrameTPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
