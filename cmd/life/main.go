//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wc, err := cfg.WorldConfig()
	if err != nil {
		log.Fatal(err)
	}
	if wc.Pattern != "" && pattern.FormatFor(wc.Pattern) == pattern.FormatUnknown {
		log.Printf("pattern %q has no recognised suffix; starting empty", wc.Pattern)
	}
	world, err := life.New(wc)
	if err != nil {
		log.Fatalf("load world: %v", err)
	}

	game := app.New(world, cfg)
	w, h := game.Layout(0, 0)

	// Frames and input run at 60 TPS; generations are paced by the game clock.
	ebiten.SetTPS(60)
	ebiten.SetWindowTitle("Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
