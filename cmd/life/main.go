package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termlife/internal/app"
	"termlife/internal/life"
	"termlife/internal/pattern"
	"termlife/internal/term"
	"termlife/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid flags: %v", err)
		return app.ExitCode(err)
	}

	screen, err := term.New()
	if err != nil {
		log.Printf("terminal: %v", err)
		return app.ExitCode(err)
	}

	sim := life.New(life.Width, life.Height)
	loop := app.NewLoop(sim, screen, screen, cfg.NewSpeed())

	choice := cfg.Seed
	if choice == 0 {
		k, ok := screen.PromptSeed(ui.SeedPrompt)
		if !ok {
			screen.Close()
			return app.ExitCode(pattern.ErrInvalidChoice)
		}
		choice = pattern.ChoiceFromKey(k)
	}
	if err := loop.Seed(pattern.NewCatalog(cfg.PatternDir), choice); err != nil {
		screen.Close()
		log.Printf("seed: %v", err)
		return app.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	screen.Close()
	if err != nil {
		log.Printf("run: %v", err)
		return app.ExitCode(err)
	}
	return 0
}
