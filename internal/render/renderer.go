//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Canvas into a single image and draws it scaled.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	return &GridPainter{canvas: NewCanvas(w, h, on, off), img: ebiten.NewImage(w, h)}
}

// Blit brings the painter image up to date with src and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, src Source, scale int) {
	if gp.canvas.Update(src) > 0 {
		gp.img.WritePixels(gp.canvas.Pixels())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Invalidate forces a full redraw on the next Blit.
func (gp *GridPainter) Invalidate() { gp.canvas.Invalidate() }

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.Size() }
