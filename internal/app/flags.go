package app

import (
	"flag"

	"github.com/integrii/flaggy"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Fuzz    float64
	Seed    int64
	Mode    string
	Workers int
	Order   string
	OffsetX int
	OffsetY int

	Scale    int
	TPS      int
	HUDWidth int

	Steps       int
	Interactive bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	w := life.DefaultConfig()
	return &Config{
		Width:    w.Width,
		Height:   w.Height,
		Pattern:  w.Pattern,
		Fuzz:     w.FuzzProbability,
		Seed:     w.Seed,
		Mode:     w.Mode.String(),
		Workers:  w.Workers,
		Order:    w.Load.Order.String(),
		OffsetX:  w.Load.Offset.X,
		OffsetY:  w.Load.Offset.Y,
		Scale:    4,
		TPS:      core.DefaultTPS,
		HUDWidth: 220,
		Steps:    100,
	}
}

// Bind attaches the GUI configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.bindWorld(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

func (c *Config) bindWorld(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file (.txt coordinates or .rle)")
	fs.Float64Var(&c.Fuzz, "fuzz", c.Fuzz, "probability of flipping each cell after loading")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the fuzz generator")
	fs.StringVar(&c.Mode, "mode", c.Mode, "redraw mode: full or delta")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.StringVar(&c.Order, "order", c.Order, "coordinate file axis order: xy or yx")
	fs.IntVar(&c.OffsetX, "offset-x", c.OffsetX, "RLE pattern x offset")
	fs.IntVar(&c.OffsetY, "offset-y", c.OffsetY, "RLE pattern y offset")
}

// BindFlaggy attaches the terminal configuration to a flaggy parser.
func (c *Config) BindFlaggy(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Grid width in cells")
	p.Int(&c.Height, "y", "height", "Grid height in cells")
	p.String(&c.Pattern, "p", "pattern", "Pattern file (.txt coordinates or .rle)")
	p.Float64(&c.Fuzz, "f", "fuzz", "Probability of flipping each cell after loading")
	p.Int64(&c.Seed, "S", "seed", "Seed for the fuzz generator")
	p.String(&c.Mode, "m", "mode", "Redraw mode: full or delta")
	p.Int(&c.Workers, "w", "workers", "Goroutines used per generation")
	p.String(&c.Order, "o", "order", "Coordinate file axis order: xy or yx")
	p.Int(&c.OffsetX, "", "offset-x", "RLE pattern x offset")
	p.Int(&c.OffsetY, "", "offset-y", "RLE pattern y offset")
	p.Int(&c.TPS, "t", "tps", "Generations per second")
	p.Int(&c.Steps, "s", "steps", "Generations to run in headless mode")
	p.Bool(&c.Interactive, "n", "interactive", "Start the interactive terminal viewer")
}

// WorldConfig converts the flag values into a life.Config.
func (c *Config) WorldConfig() (life.Config, error) {
	wc := life.DefaultConfig()
	mode, err := life.ParseRenderMode(c.Mode)
	if err != nil {
		return wc, err
	}
	order, err := pattern.ParseAxisOrder(c.Order)
	if err != nil {
		return wc, err
	}
	wc.Width = c.Width
	wc.Height = c.Height
	wc.Pattern = c.Pattern
	wc.FuzzProbability = c.Fuzz
	wc.Seed = c.Seed
	wc.Mode = mode
	wc.Workers = c.Workers
	wc.Load = pattern.Options{Order: order, Offset: core.Point{X: c.OffsetX, Y: c.OffsetY}}
	return wc, nil
}
