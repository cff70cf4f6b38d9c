package life

import (
	"fmt"
	"strconv"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
)

// RenderMode selects how a presentation shell refreshes the playfield.
type RenderMode int

const (
	// FullRedraw repaints every cell each frame.
	FullRedraw RenderMode = iota
	// DeltaRedraw repaints only cells that changed since the previous
	// generation. The world keeps a copy of that generation to support it.
	DeltaRedraw
)

func (m RenderMode) String() string {
	if m == DeltaRedraw {
		return "delta"
	}
	return "full"
}

// ParseRenderMode accepts "full" or "delta".
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return FullRedraw, nil
	case "delta":
		return DeltaRedraw, nil
	}
	return FullRedraw, fmt.Errorf("unknown render mode %q", s)
}

// DefaultPattern is the pattern file loaded when none is configured.
const DefaultPattern = "patterns/living_cells.txt"

// Config controls the world dimensions, its initial pattern and stepping.
type Config struct {
	Width  int
	Height int

	Pattern string
	Load    pattern.Options

	FuzzProbability float64
	Seed            int64

	Mode    RenderMode
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   core.DefaultWidth,
		Height:  core.DefaultHeight,
		Pattern: DefaultPattern,
		Load:    pattern.DefaultOptions(),
		Seed:    42,
		Mode:    FullRedraw,
		Workers: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["fuzz"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FuzzProbability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseRenderMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["order"]; ok {
		if parsed, err := pattern.ParseAxisOrder(v); err == nil {
			c.Load.Order = parsed
		}
	}
	if v, ok := cfg["offset_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Load.Offset.X = parsed
		}
	}
	if v, ok := cfg["offset_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Load.Offset.Y = parsed
		}
	}
	return c
}
