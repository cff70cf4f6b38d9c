//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type changeProvider interface {
	Size() core.Size
	Mode() life.RenderMode
	EachChange(fn func(x, y int, alive bool))
}

var (
	birthTint = color.RGBA{R: 40, G: 200, B: 90, A: 160}
	deathTint = color.RGBA{R: 220, G: 60, B: 50, A: 160}
)

// Overlay tints the cells that changed in the last generation. It needs the
// previous generation, so it only activates in delta redraw mode.
type Overlay struct {
	sim   changeProvider
	scale int
	show  bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim changeProvider, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay with the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	if o.sim.Mode() != life.DeltaRedraw {
		ebitenutil.DebugPrint(screen, "change overlay needs -mode delta")
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.img == nil || len(o.buf) != 4*total {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}
	for i := range o.buf {
		o.buf[i] = 0
	}
	o.sim.EachChange(func(x, y int, alive bool) {
		tint := deathTint
		if alive {
			tint = birthTint
		}
		base := (y*size.W + x) * 4
		o.buf[base+0] = tint.R
		o.buf[base+1] = tint.G
		o.buf[base+2] = tint.B
		o.buf[base+3] = tint.A
	})
	o.img.WritePixels(o.buf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
