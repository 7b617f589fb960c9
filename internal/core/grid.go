package core

// Grid stores a 2D grid of binary cell values (0 dead, 1 alive) in row-major
// order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports whether the cell at (x, y) is live. Coordinates outside the
// grid read as dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.inside(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] == 1
}

// Set marks the cell at (x, y) live or dead. Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inside(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyFrom overwrites g with the contents of src. Grids of different sizes
// are left untouched and false is returned.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same size and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || other.W != g.W || other.H != g.H {
		return false
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false
		}
	}
	return true
}
