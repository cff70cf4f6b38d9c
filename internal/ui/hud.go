//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

type parameterProvider interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil || h.width <= 0 {
		return
	}
	h.paused = paused
	h.snapshot = h.sim.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	heading := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 150, G: 150, B: 165, A: 255}
	value := color.RGBA{R: 235, G: 235, B: 240, A: 255}

	y := panelPadding + lineHeight
	state := "running"
	if h.paused {
		state = "paused"
	}
	text.Draw(h.panel, fmt.Sprintf("Life (%s)", state), face, panelPadding, y, heading)
	y += lineHeight
	text.Draw(h.panel, "space pause  n step  r reset", face, panelPadding, y, label)
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		y += lineHeight / 2
		if y > h.lastHeight {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, heading)
		y += lineHeight
		for _, p := range group.Params {
			if y > h.lastHeight {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, label)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, value)
			y += lineHeight
		}
	}
}
