package render

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// Source is the part of a simulation a Canvas reads from.
type Source interface {
	Size() core.Size
	Snapshot() core.View
	Generation() uint64
	Mode() life.RenderMode
	EachChange(fn func(x, y int, alive bool))
}

// Canvas keeps an RGBA pixel buffer in sync with a simulation, one pixel per
// cell. In DeltaRedraw mode only changed cells are rewritten once the buffer
// has been fully painted.
type Canvas struct {
	w, h    int
	buf     []byte
	on, off color.RGBA

	primed  bool
	lastGen uint64
}

// NewCanvas allocates a canvas for a grid of size w*h.
func NewCanvas(w, h int, on, off color.Color) *Canvas {
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h), on: toRGBA(on), off: toRGBA(off)}
}

// Pixels exposes the RGBA buffer.
func (c *Canvas) Pixels() []byte { return c.buf }

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Update refreshes the buffer from src and returns the number of cells
// written. A full redraw happens on the first frame, at generation zero, in
// FullRedraw mode, and whenever a generation was skipped since the last frame.
func (c *Canvas) Update(src Source) int {
	size := src.Size()
	if size.W != c.w || size.H != c.h {
		return 0
	}
	gen := src.Generation()
	full := !c.primed || gen == 0 || src.Mode() != life.DeltaRedraw || gen > c.lastGen+1 || gen < c.lastGen
	c.primed = true
	c.lastGen = gen
	if full {
		return fillBinaryRGBA(c.buf, src.Snapshot(), c.on, c.off)
	}
	written := 0
	src.EachChange(func(x, y int, alive bool) {
		c.setCell(x, y, alive)
		written++
	})
	return written
}

// Invalidate forces the next Update to repaint everything.
func (c *Canvas) Invalidate() { c.primed = false }

func (c *Canvas) setCell(x, y int, alive bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	col := c.off
	if alive {
		col = c.on
	}
	putPixel(c.buf, (y*c.w+x)*4, col)
}

// fillBinaryRGBA converts every cell of v into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, v core.View, on, off color.RGBA) int {
	size := v.Size()
	written := 0
	v.Each(func(x, y int, alive bool) {
		col := off
		if alive {
			col = on
		}
		putPixel(buf, (y*size.W+x)*4, col)
		written++
	})
	return written
}

func putPixel(buf []byte, base int, col color.RGBA) {
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
