// Package survey runs seed patterns headlessly and reports how they settle.
package survey

import (
	"context"
	"fmt"
	"hash/fnv"

	"golang.org/x/sync/errgroup"

	"termlife/internal/core"
	"termlife/internal/life"
)

// Result summarises one pattern run.
type Result struct {
	Name        string
	Generations int
	Initial     int
	Population  int
	// SettledAt is the first generation whose state had been seen before,
	// or -1 if none repeated.
	SettledAt int
	// Period is the cycle length once settled; 1 means a still life.
	Period int
}

// Settled reports whether the run reached a repeating state.
func (r Result) Settled() bool { return r.SettledAt >= 0 }

func (r Result) String() string {
	if !r.Settled() {
		return fmt.Sprintf("%-12s pop %4d -> %4d  unsettled after %d", r.Name, r.Initial, r.Population, r.Generations)
	}
	return fmt.Sprintf("%-12s pop %4d -> %4d  settled at %d, period %d", r.Name, r.Initial, r.Population, r.SettledAt, r.Period)
}

// Job loads one pattern into a fresh grid.
type Job struct {
	Name string
	Load func(g *core.Grid) error
}

func hashGrid(g *core.Grid) uint64 {
	h := fnv.New64a()
	h.Write(g.Cells())
	return h.Sum64()
}

// history remembers every generation of a run. Grids are bucketed by hash
// and a hash hit only counts once the stored grid compares equal.
type history struct {
	hash  func(*core.Grid) uint64
	byKey map[uint64][]int
	grids []*core.Grid
}

func newHistory(hash func(*core.Grid) uint64) *history {
	return &history{hash: hash, byKey: make(map[uint64][]int)}
}

// record stores g as the next generation. If an identical grid was stored
// before it returns that generation and true instead.
func (h *history) record(g *core.Grid) (int, bool) {
	key := h.hash(g)
	for _, gen := range h.byKey[key] {
		if h.grids[gen].Equal(g) {
			return gen, true
		}
	}
	snap := core.NewGrid(g.W, g.H)
	snap.CopyFrom(g)
	h.byKey[key] = append(h.byKey[key], len(h.grids))
	h.grids = append(h.grids, snap)
	return 0, false
}

// Run steps sim up to generations times, stopping early once a state repeats.
// Every generation is kept so repeats are confirmed cell by cell.
func Run(sim *life.Life, name string, generations int) Result {
	res := Result{Name: name, SettledAt: -1, Initial: sim.Current().Population()}
	seen := newHistory(hashGrid)
	seen.record(sim.Current())
	for gen := 1; gen <= generations; gen++ {
		sim.Step()
		res.Generations = gen
		if first, ok := seen.record(sim.Current()); ok {
			res.SettledAt = gen
			res.Period = gen - first
			break
		}
	}
	res.Population = sim.Current().Population()
	return res
}

// RunAll evaluates jobs on w*h boards using up to workers goroutines and
// returns results in job order. The first load error cancels the rest.
func RunAll(ctx context.Context, jobs []Job, w, h, generations, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim := life.New(w, h)
			if err := job.Load(sim.Current()); err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			results[i] = Run(sim, job.Name, generations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
