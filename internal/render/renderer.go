//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single image in sync with binary cell data.
type GridPainter struct {
	frame   *Frame
	palette Palette
	img     *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	return &GridPainter{frame: NewFrame(w, h), palette: p, img: ebiten.NewImage(w, h)}
}

// Upload converts cells into the painter image.
func (gp *GridPainter) Upload(cells []uint8) {
	if !gp.frame.Fill(cells, gp.palette) {
		return
	}
	gp.img.WritePixels(gp.frame.Pix)
}

// Draw blits the last uploaded image onto dst, scaled.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
