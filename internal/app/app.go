//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.World to the ebiten.Game interface.
type Game struct {
	world   *life.World
	clock   *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world. The game starts paused.
func New(world *life.World, cfg *Config) *Game {
	size := world.Size()
	clock := core.NewFixedStep(cfg.TPS)
	clock.SetPaused(true)
	return &Game{
		world:   world,
		clock:   clock,
		painter: render.NewGridPainter(size.W, size.H, color.Black, color.White),
		overlay: ui.NewOverlay(world, cfg.Scale),
		hud:     ui.NewHUD(world, cfg.HUDWidth),
		scale:   cfg.Scale,
		seed:    world.Config().Seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.painter.Invalidate()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.clock.Paused() {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	g.paint()
	g.overlay.Update()

	if g.clock.ShouldStep() || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.clock.Paused())

	ebiten.SetWindowTitle(fmt.Sprintf("Life - FPS: %.0f", ebiten.ActualFPS()))
	return nil
}

// paint writes cells under the cursor: left button revives, right button kills.
func (g *Game) paint() {
	var alive bool
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		alive = true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		alive = false
	default:
		return
	}
	px, py := ebiten.CursorPosition()
	x, y := CellAt(px, py, g.scale)
	g.world.SetCell(x, y, alive)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.scale)
	g.overlay.Draw(screen)
	s := g.world.Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
