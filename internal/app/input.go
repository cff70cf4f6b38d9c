package app

// CellAt maps a screen pixel to the cell under it. Pixels left of or above the
// playfield map to negative cells, which the world ignores.
func CellAt(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
