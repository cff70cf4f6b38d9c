package main

import (
	"log"
	"os"

	"github.com/integrii/flaggy"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("life-term")
	parser.Description = "Conway's Game of Life on a toroidal grid, in the terminal"
	parser.ShowHelpOnUnexpected = true
	cfg.BindFlaggy(parser)
	if err := parser.Parse(); err != nil {
		log.Fatal(err)
	}

	wc, err := cfg.WorldConfig()
	if err != nil {
		parser.ShowHelpAndExit(err.Error())
	}
	if wc.Pattern != "" && pattern.FormatFor(wc.Pattern) == pattern.FormatUnknown {
		log.Printf("pattern %q has no recognised suffix; starting empty", wc.Pattern)
	}
	world, err := life.New(wc)
	if err != nil {
		log.Fatalf("load world: %v", err)
	}

	if cfg.Interactive {
		clock := core.NewFixedStep(cfg.TPS)
		clock.SetPaused(true)
		v, err := term.NewViewer(world, clock)
		if err != nil {
			log.Fatal(err)
		}
		if err := v.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := term.NewConsoleOut(os.Stdout, true)
	out.Start(world.Parameters())
	last := world.LastStats()
	for i := 0; i < cfg.Steps; i++ {
		last = world.Step()
		out.Step(last)
	}
	out.Finish(last)
}
