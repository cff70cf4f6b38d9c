package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a cell coordinate in grid space.
type Point struct {
	X int
	Y int
}
