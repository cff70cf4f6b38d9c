package life

import (
	"fmt"

	"lifegrid/internal/core"
)

// Parameters reports the world's configuration and live status for display.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	last := w.last
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", cfg.Width),
				core.IntParam("h", "Height", cfg.Height),
				core.StringParam("mode", "Redraw", cfg.Mode.String()),
				core.IntParam("workers", "Workers", cfg.Workers),
			},
		},
		{
			Name: "Pattern",
			Params: []core.Parameter{
				core.StringParam("pattern", "Source", cfg.Pattern),
				core.StringParam("format", "Format", w.seed.Format.String()),
				core.IntParam("cells", "Cells", w.seed.Len()),
				core.StringParam("order", "Axis order", cfg.Load.Order.String()),
				core.StringParam("offset", "RLE offset", fmt.Sprintf("%d,%d", cfg.Load.Offset.X, cfg.Load.Offset.Y)),
			},
		},
		{
			Name: "Fuzz",
			Params: []core.Parameter{
				core.FloatParam("fuzz", "Probability", cfg.FuzzProbability),
				core.Int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", w.generation),
				core.IntParam("live", "Live cells", last.Live),
				core.IntParam("births", "Births", last.Births),
				core.IntParam("deaths", "Deaths", last.Deaths),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
