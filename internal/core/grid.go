package core

import "errors"

// ErrOutOfBounds reports a coordinate that falls outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Default playfield dimensions.
const (
	DefaultWidth  = 200
	DefaultHeight = 180
)

// Grid stores a 2D grid of live/dead cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the state of (x, y), or ErrOutOfBounds.
func (g *Grid) At(x, y int) (bool, error) {
	if !g.In(x, y) {
		return false, ErrOutOfBounds
	}
	return g.data[g.Index(x, y)], nil
}

// Set writes the state of (x, y), or returns ErrOutOfBounds.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.In(x, y) {
		return ErrOutOfBounds
	}
	g.data[g.Index(x, y)] = alive
	return nil
}

// Alive is the unchecked read used on coordinates that are already wrapped.
func (g *Grid) Alive(x, y int) bool { return g.data[y*g.W+x] }

// Put is the unchecked counterpart of Set.
func (g *Grid) Put(x, y int, alive bool) { g.data[y*g.W+x] = alive }

// Wrap applies toroidal wrapping to the provided coordinates. The result is
// never negative, whatever the sign of the input.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Live counts the live cells.
func (g *Grid) Live() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// View returns a read-only view of the grid.
func (g *Grid) View() View { return View{g: g} }
