package survey

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/pattern"
)

func place(cells ...[2]int) func(*core.Grid) error {
	return func(g *core.Grid) error {
		for _, c := range cells {
			g.Set(c[0], c[1], true)
		}
		return nil
	}
}

func TestRunDetectsPeriods(t *testing.T) {
	cases := []struct {
		name      string
		load      func(*core.Grid) error
		settledAt int
		period    int
		pop       int
	}{
		{"block", place([2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3}), 1, 1, 4},
		{"blinker", place([2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3}), 2, 2, 3},
		{"lonely", place([2]int{4, 4}), 2, 1, 0},
	}
	for _, c := range cases {
		sim := life.New(8, 8)
		if err := c.load(sim.Current()); err != nil {
			t.Fatal(err)
		}
		res := Run(sim, c.name, 50)
		if res.SettledAt != c.settledAt || res.Period != c.period {
			t.Fatalf("%s: settled at %d period %d, want %d and %d", c.name, res.SettledAt, res.Period, c.settledAt, c.period)
		}
		if res.Population != c.pop {
			t.Fatalf("%s: population %d, want %d", c.name, res.Population, c.pop)
		}
		if !strings.Contains(res.String(), "period") {
			t.Fatalf("%s: summary should mention the period: %q", c.name, res.String())
		}
	}
}

func TestRunUnsettled(t *testing.T) {
	sim := life.New(16, 16)
	place([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})(sim.Current())
	res := Run(sim, "glider", 10)
	if res.Settled() {
		t.Fatalf("glider on a 16x16 torus should not repeat within 10 generations, got %+v", res)
	}
	if res.Generations != 10 {
		t.Fatalf("expected 10 generations, got %d", res.Generations)
	}
}

func TestHistoryConfirmsHashHits(t *testing.T) {
	// Every grid lands in the same bucket.
	h := newHistory(func(*core.Grid) uint64 { return 42 })

	a := core.NewGrid(4, 4)
	a.Set(1, 1, true)
	b := core.NewGrid(4, 4)
	b.Set(2, 2, true)

	if _, ok := h.record(a); ok {
		t.Fatal("first grid cannot repeat")
	}
	if _, ok := h.record(b); ok {
		t.Fatal("a different grid with the same hash must not count as a repeat")
	}
	a.Set(3, 3, true)
	if _, ok := h.record(a); ok {
		t.Fatal("stored grids must be snapshots, not aliases")
	}
	if gen, ok := h.record(b); !ok || gen != 1 {
		t.Fatalf("identical grid should match generation 1, got %d %v", gen, ok)
	}
}

func TestRunAllKeepsOrder(t *testing.T) {
	var jobs []Job
	for i := 0; i < 12; i++ {
		n := i % 3
		cells := make([][2]int, 0, n+1)
		for x := 0; x <= n; x++ {
			cells = append(cells, [2]int{x + 2, 3})
		}
		jobs = append(jobs, Job{Name: fmt.Sprintf("row-%d", i), Load: place(cells...)})
	}
	results, err := RunAll(context.Background(), jobs, 10, 10, 20, 4)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	for i, r := range results {
		if r.Name != jobs[i].Name {
			t.Fatalf("result %d is %q, want %q", i, r.Name, jobs[i].Name)
		}
	}
}

func TestRunAllReportsLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Job{
		{Name: "ok", Load: place([2]int{1, 1})},
		{Name: "bad", Load: func(*core.Grid) error { return boom }},
	}
	if _, err := RunAll(context.Background(), jobs, 5, 5, 5, 2); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestRunAllBundledSeeds(t *testing.T) {
	catalog := pattern.NewCatalog(filepath.Join("..", "..", pattern.DefaultDir))
	var jobs []Job
	for _, s := range pattern.Seeds {
		jobs = append(jobs, Job{Name: s.Name, Load: func(g *core.Grid) error {
			return catalog.Load(s.Choice, g)
		}})
	}
	results, err := RunAll(context.Background(), jobs, life.Width, life.Height, 30, 2)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != len(pattern.Seeds) {
		t.Fatalf("expected %d results, got %d", len(pattern.Seeds), len(results))
	}
	if results[0].Name != "pond" || !results[0].Settled() || results[0].Period != 1 {
		t.Fatalf("ponds are still lifes, got %+v", results[0])
	}
}
