package life

import "termlife/internal/core"

const (
	// Width is the number of columns in the standard board.
	Width = 80
	// Height is the number of rows in the standard board.
	Height = 25
)

// Life implements Conway's Game of Life with toroidal wrapping. It owns the
// current generation and a scratch buffer for the next one; both live for the
// lifetime of the value.
type Life struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid
}

// New returns a cleared Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{w: cur.W, h: cur.H, cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Current exposes the current generation. The pointer changes after Step, so
// callers should not hold on to it across generations.
func (l *Life) Current() *core.Grid { return l.cur }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Clear kills every cell in both buffers.
func (l *Life) Clear() {
	l.cur.Clear()
	l.nxt.Clear()
}

// CountNeighbors returns the number of live cells among the eight toroidal
// neighbours of (x, y). The cell itself is not counted.
func CountNeighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if cells[g.Index(nx, ny)] == 1 {
				neighbors++
			}
		}
	}
	return neighbors
}

// Rule reports whether a cell is alive in the next generation.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the simulation by one generation. The next generation is
// computed from the current buffer only, then the buffers trade roles.
func (l *Life) Step() {
	w, h := l.w, l.h
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = 0
			if Rule(cur[idx] == 1, CountNeighbors(l.cur, x, y)) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}
