package ui

import (
	"image/color"

	"termlife/internal/core"
	"termlife/internal/life"
)

// NeighborHeat writes one RGBA pixel per cell into buf, tinting each cell by
// its live neighbour count. Cells with no neighbours are fully transparent.
func NeighborHeat(g *core.Grid, buf []byte) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := heatColor(life.CountNeighbors(g, x, y))
			base := g.Index(x, y) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// heatColor maps a neighbour count to a premultiplied overlay color: blue for
// sparse, red for crowded, strongest at exactly three.
func heatColor(n int) color.RGBA {
	if n <= 0 {
		return color.RGBA{}
	}
	a := uint8(40 + 20*n)
	switch {
	case n == 3:
		return color.RGBA{R: 0, G: a, B: 0, A: a}
	case n < 3:
		return color.RGBA{R: 0, G: 0, B: a, A: a}
	default:
		return color.RGBA{R: a, G: 0, B: 0, A: a}
	}
}
