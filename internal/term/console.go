package term

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// ReportEvery is how many generations pass between progress lines.
const ReportEvery = 10

// ConsoleOut prints the configuration and progress of a headless run.
type ConsoleOut struct {
	w         io.Writer
	au        aurora.Aurora
	startTime time.Time
}

// NewConsoleOut writes to w, colouring output when colors is set.
func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors)}
}

// Start prints the parameter snapshot and starts the run timer.
func (c *ConsoleOut) Start(snap core.ParameterSnapshot) {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, c.au.Bold("Running configuration:"))
	for _, g := range snap.Groups {
		fmt.Fprintf(c.w, "  %s\n", c.au.Cyan(g.Name))
		for _, p := range g.Params {
			fmt.Fprintf(c.w, "    %s: %s\n", p.Label, p.Value)
		}
	}
	fmt.Fprintln(c.w, "\nSimulation started...")
}

// Step prints a progress line every ReportEvery generations.
func (c *ConsoleOut) Step(s life.StepStats) {
	if s.Generation%ReportEvery != 0 {
		return
	}
	fmt.Fprintf(c.w, "  %s %v, live %v (+%d/-%d)\n",
		c.au.Green("generation"), s.Generation, c.au.Bold(s.Live), s.Births, s.Deaths)
}

// Finish prints a summary of the run.
func (c *ConsoleOut) Finish(s life.StepStats) {
	total := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Fprintln(c.w, c.au.Red("\nFinished:"))
	c.printHashData(map[string]interface{}{
		"Last generation": s.Generation,
		"Live cells":      s.Live,
		"Total time":      total,
	})
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
