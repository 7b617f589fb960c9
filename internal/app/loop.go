package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/pattern"
)

// State is the lifecycle stage of a Loop.
type State int

const (
	StateAwaitingSeed State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingSeed:
		return "awaiting_seed"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loop drives a Life simulation: it renders, steps, handles at most one key
// per tick and waits for the configured interval between ticks.
type Loop struct {
	sim     *life.Life
	display core.Display
	input   core.Input
	speed   *core.Speed
	keys    Keymap

	state      State
	generation int

	sleep func(context.Context, time.Duration) error
}

// NewLoop constructs a Loop in StateAwaitingSeed.
func NewLoop(sim *life.Life, display core.Display, input core.Input, speed *core.Speed) *Loop {
	if speed == nil {
		speed = core.NewSpeed(core.DefaultSpeed, core.DefaultSpeedLimits())
	}
	return &Loop{
		sim:     sim,
		display: display,
		input:   input,
		speed:   speed,
		keys:    DefaultKeymap(),
		sleep:   sleepContext,
	}
}

// State reports the current lifecycle stage.
func (l *Loop) State() State { return l.state }

// Speed exposes the tick interval controller.
func (l *Loop) Speed() *core.Speed { return l.speed }

// Generation returns the number of generations stepped since seeding.
func (l *Loop) Generation() int { return l.generation }

// Seed clears both buffers and loads the pattern for choice from catalog.
// Any failure terminates the loop before it ever runs.
func (l *Loop) Seed(catalog pattern.Catalog, choice int) error {
	if l.state != StateAwaitingSeed {
		return fmt.Errorf("seed: loop is %s", l.state)
	}
	l.sim.Clear()
	if err := catalog.Load(choice, l.sim.Current()); err != nil {
		l.state = StateTerminated
		return err
	}
	l.generation = 0
	l.state = StateRunning
	return nil
}

// Tick renders the current generation, advances it, and applies at most one
// pending key. It reports whether the loop is still running.
func (l *Loop) Tick() bool {
	if l.state != StateRunning {
		return false
	}
	l.display.Render(l.sim.Current(), l.speed.Millis())
	l.sim.Step()
	l.generation++
	if k, ok := l.input.PollKey(); ok {
		l.apply(l.keys.Lookup(k))
	}
	return l.state == StateRunning
}

func (l *Loop) apply(a Action) {
	switch a {
	case ActionFaster:
		l.speed.Decrease()
	case ActionSlower:
		l.speed.Increase()
	case ActionQuit:
		l.state = StateTerminated
	}
}

// Stop terminates the loop; the next Tick will not render.
func (l *Loop) Stop() { l.state = StateTerminated }

// Run ticks until the quit key is pressed or ctx is cancelled, waiting the
// current interval after every tick that leaves the loop running.
func (l *Loop) Run(ctx context.Context) error {
	if l.state != StateRunning {
		return fmt.Errorf("run: loop is %s", l.state)
	}
	for l.Tick() {
		if err := l.sleep(ctx, l.speed.Interval()); err != nil {
			l.Stop()
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ExitCode maps a startup error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pattern.ErrInvalidChoice):
		return 1
	case errors.Is(err, pattern.ErrUnavailable):
		return 2
	default:
		return 3
	}
}
