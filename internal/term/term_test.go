package term

import (
	"bytes"
	"strings"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

func TestRenderFieldCropsToViewport(t *testing.T) {
	g := core.NewGrid(5, 4)
	g.Put(1, 1, true)
	g.Put(4, 3, true)

	var b bytes.Buffer
	RenderField(&b, g.View(), core.Point{}, 3, 2, Fillers{Live: "#", Dead: "."})
	if got, want := b.String(), "...\n.#."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b.Reset()
	RenderField(&b, g.View(), core.Point{X: 3, Y: 2}, 10, 10, Fillers{Live: "#", Dead: "."})
	if got, want := b.String(), "..\n.#"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClampOrigin(t *testing.T) {
	size := core.Size{W: 200, H: 180}
	if got := ClampOrigin(core.Point{X: -8, Y: 500}, size, 50, 30); got != (core.Point{X: 0, Y: 150}) {
		t.Fatalf("got %+v", got)
	}
	if got := ClampOrigin(core.Point{X: 40, Y: 40}, size, 300, 300); got != (core.Point{}) {
		t.Fatalf("viewport larger than grid should pin to origin, got %+v", got)
	}
}

func TestConsoleOutReportsProgress(t *testing.T) {
	var b bytes.Buffer
	out := NewConsoleOut(&b, false)
	out.Start(core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "World",
		Params: []core.Parameter{core.IntParam("w", "Width", 200)},
	}}})
	out.Step(life.StepStats{Generation: 3, Live: 1})
	out.Step(life.StepStats{Generation: 10, Live: 42, Births: 5, Deaths: 2})
	out.Finish(life.StepStats{Generation: 10, Live: 42})

	got := b.String()
	for _, want := range []string{"Width: 200", "generation 10, live 42 (+5/-2)", "Last generation: 10", "Live cells: 42"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "generation 3,") {
		t.Fatalf("off-cycle generation should not be reported:\n%s", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatal("colors were disabled")
	}
}
