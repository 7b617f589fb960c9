package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"

	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/pattern"
	"termlife/internal/survey"
)

func main() {
	dir := flag.String("patterns", pattern.DefaultDir, "directory holding seed pattern files")
	generations := flag.Int("generations", 1000, "maximum generations per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	soups := flag.Int("soups", 0, "random soups to survey alongside the seeds")
	density := flag.Float64("density", 0.3, "live cell probability for random soups")
	seed := flag.Int64("rng-seed", 42, "seed for random soups")
	flag.Parse()

	catalog := pattern.NewCatalog(*dir)
	var jobs []survey.Job
	for _, s := range pattern.Seeds {
		jobs = append(jobs, survey.Job{Name: s.Name, Load: func(g *core.Grid) error {
			return catalog.Load(s.Choice, g)
		}})
	}
	for i := 0; i < *soups; i++ {
		soupSeed := *seed + int64(i)
		jobs = append(jobs, survey.Job{Name: fmt.Sprintf("soup-%d", soupSeed), Load: func(g *core.Grid) error {
			core.NewRNG(soupSeed).FillSoup(g, *density)
			return nil
		}})
	}

	fmt.Printf("Surveying %d patterns (%d workers, up to %d generations)\n", len(jobs), *workers, *generations)
	results, err := survey.RunAll(context.Background(), jobs, life.Width, life.Height, *generations, *workers)
	if err != nil {
		log.Fatalf("survey: %v", err)
	}
	for _, r := range results {
		fmt.Println(r)
	}
}
