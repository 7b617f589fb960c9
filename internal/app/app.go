//go:build ebiten

package app

import (
	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/render"
	"termlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 200

	// FrameTPS is the rate ebiten calls Update. Generations are paced
	// separately by a FixedStep.
	FrameTPS = 60
)

var windowKeys = map[ebiten.Key]core.Key{
	ebiten.KeyA:     'a',
	ebiten.KeyZ:     'z',
	ebiten.KeySpace: ' ',
}

// Game adapts a Loop to the ebiten.Game interface. It is the loop's display
// and input: Render uploads the grid, PollKey hands out keys pressed in
// earlier frames one at a time.
type Game struct {
	loop    *Loop
	size    core.Size
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	step    *core.FixedStep

	scale   int
	pending []core.Key
	keyBuf  []ebiten.Key
}

// New constructs a Game and the Loop it drives. The loop must be seeded
// before ebiten.RunGame is called.
func New(sim *life.Life, speed *core.Speed, scale int) *Game {
	size := sim.Size()
	g := &Game{
		size:    size,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		overlay: ui.NewOverlay(size.W, size.H, scale),
		hud:     ui.NewHUD(hudWidth),
		step:    core.NewFixedStep(speed.Interval()),
		scale:   scale,
	}
	g.loop = NewLoop(sim, g, g, speed)
	return g
}

// Loop exposes the driven loop so callers can seed it.
func (g *Game) Loop() *Loop { return g.loop }

// Render uploads the grid; drawing happens in Draw.
func (g *Game) Render(grid *core.Grid, speed int) {
	g.painter.Upload(grid.Cells())
	g.overlay.Upload(grid)
}

// PollKey returns the oldest queued key.
func (g *Game) PollKey() (core.Key, bool) {
	if len(g.pending) == 0 {
		return 0, false
	}
	k := g.pending[0]
	g.pending = g.pending[1:]
	return k, true
}

// Update queues input every frame and runs one tick whenever the loop's
// interval has elapsed.
func (g *Game) Update() error {
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if ck, ok := windowKeys[k]; ok {
			g.pending = append(g.pending, ck)
		}
	}
	if k, ok := g.hud.Update(g.size.W*g.scale, g.loop.Speed(), g.loop.Generation()); ok {
		g.pending = append(g.pending, k)
	}
	g.overlay.Update()

	if !g.step.ShouldStep() {
		return nil
	}
	if !g.loop.Tick() {
		return ebiten.Termination
	}
	g.step.SetInterval(g.loop.Speed().Interval())
	return nil
}

// Draw renders the last uploaded generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size.W*g.scale, g.size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W*g.scale + g.hud.Width(), g.size.H * g.scale
}
