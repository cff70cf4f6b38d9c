package term

import (
	"bytes"

	"lifegrid/internal/core"
)

// Fillers are the strings drawn for live and dead cells.
type Fillers struct {
	Live string
	Dead string
}

// RenderField writes the part of v that fits a maxW x maxH viewport whose
// top-left corner is origin. Rows are separated by newlines.
func RenderField(b *bytes.Buffer, v core.View, origin core.Point, maxW, maxH int, f Fillers) {
	size := v.Size()
	for row := 0; row < maxH; row++ {
		y := origin.Y + row
		if y >= size.H {
			break
		}
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < maxW; col++ {
			x := origin.X + col
			if x >= size.W {
				break
			}
			if v.At(x, y) {
				b.WriteString(f.Live)
			} else {
				b.WriteString(f.Dead)
			}
		}
	}
}

// ClampOrigin keeps a viewport of maxW x maxH inside a grid of the given size.
func ClampOrigin(origin core.Point, size core.Size, maxW, maxH int) core.Point {
	clamp := func(v, limit int) int {
		if v > limit {
			v = limit
		}
		if v < 0 {
			v = 0
		}
		return v
	}
	return core.Point{
		X: clamp(origin.X, size.W-maxW),
		Y: clamp(origin.Y, size.H-maxH),
	}
}
