//go:build ebiten

package ui

import (
	"termlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay optionally tints the board by neighbour count. N toggles it.
type Overlay struct {
	scale int
	show  bool
	img   *ebiten.Image
	buf   []byte
}

// NewOverlay constructs an overlay for a w*h board drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	return &Overlay{scale: scale, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		o.show = !o.show
	}
}

// Upload recomputes the tint from g when the overlay is visible.
func (o *Overlay) Upload(g *core.Grid) {
	if !o.show || len(o.buf) != 4*g.W*g.H {
		return
	}
	NeighborHeat(g, o.buf)
	o.img.WritePixels(o.buf)
}

// Draw paints the overlay on top of the board.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
