package core

// View is a read-only window onto a Grid. It tracks the grid it was taken
// from, so a View obtained from a simulation is only meaningful until the
// next generation replaces that buffer. Use Clone to keep a stable copy.
type View struct {
	g *Grid
}

// Valid reports whether the view is backed by a grid.
func (v View) Valid() bool { return v.g != nil }

// Size returns the dimensions of the underlying grid.
func (v View) Size() Size {
	if v.g == nil {
		return Size{}
	}
	return v.g.Size()
}

// At reports whether (x, y) is alive. Coordinates outside the grid read as dead.
func (v View) At(x, y int) bool {
	if v.g == nil || !v.g.In(x, y) {
		return false
	}
	return v.g.Alive(x, y)
}

// Each calls fn for every cell in row-major order.
func (v View) Each(fn func(x, y int, alive bool)) {
	if v.g == nil {
		return
	}
	for y := 0; y < v.g.H; y++ {
		for x := 0; x < v.g.W; x++ {
			fn(x, y, v.g.Alive(x, y))
		}
	}
}

// Live counts the live cells.
func (v View) Live() int {
	if v.g == nil {
		return 0
	}
	return v.g.Live()
}

// Clone copies the viewed cells into a new Grid.
func (v View) Clone() *Grid {
	if v.g == nil {
		return nil
	}
	return v.g.Clone()
}
