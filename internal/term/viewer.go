package term

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	leftColumnWidth = 28
	scrollStep      = 8
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Viewer is an interactive terminal front end for a World. All world access
// happens on the gocui main loop, either from key handlers or from callbacks
// queued with Gui.Update.
type Viewer struct {
	world *life.World
	clock *core.FixedStep
	g     *gocui.Gui
	k     []keyBinding

	origin  core.Point
	fillers Fillers
	done    chan struct{}
}

// NewViewer creates the terminal UI. The clock decides when the world steps.
func NewViewer(world *life.World, clock *core.FixedStep) (*Viewer, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	t := &Viewer{
		world: world,
		clock: clock,
		g:     g,
		fillers: Fillers{
			Live: aurora.Green("█").BgBrightGreen().String(),
			Dead: "·",
		},
		done: make(chan struct{}),
	}
	g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", t.cmdTogglePause, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{gocui.KeyArrowLeft, "←↑→↓", "Scroll", t.scroll(-scrollStep, 0), ""},
		{gocui.KeyArrowRight, "", "", t.scroll(scrollStep, 0), ""},
		{gocui.KeyArrowUp, "", "", t.scroll(0, -scrollStep), ""},
		{gocui.KeyArrowDown, "", "", t.scroll(0, scrollStep), ""},
		{gocui.MouseLeft, "MOUSE", "Paint cell", t.cmdPaint, fieldView},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Run blocks until the user quits.
func (t *Viewer) Run() error {
	defer t.g.Close()
	go t.tick()
	defer close(t.done)
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tick polls the clock and hands steps over to the main loop.
func (t *Viewer) tick() {
	ticker := time.NewTicker(t.clock.Interval() / 4)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				if t.clock.ShouldStep() {
					t.world.Step()
				}
				return t.refresh(g)
			})
		}
	}
}

func (t *Viewer) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(statusView, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(fieldView, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Life"
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, t.helpLine())
	}
	return t.refresh(g)
}

func (t *Viewer) refresh(g *gocui.Gui) error {
	field, err := g.View(fieldView)
	if err != nil {
		return err
	}
	w, h := field.Size()
	t.origin = ClampOrigin(t.origin, t.world.Size(), w, h)
	field.Clear()
	var b bytes.Buffer
	RenderField(&b, t.world.Snapshot(), t.origin, w, h, t.fillers)
	fmt.Fprint(field, b.String())

	status, err := g.View(statusView)
	if err != nil {
		return err
	}
	status.Clear()
	mode := aurora.Colorize("running", aurora.CyanFg)
	if t.clock.Paused() {
		mode = aurora.Colorize("paused", aurora.BlueFg)
	}
	s := t.world.LastStats()
	size := t.world.Size()
	fmt.Fprintln(status, renderProp("Generation", "%v", t.world.Generation()))
	fmt.Fprintln(status, renderProp("Live cells", "%v", t.world.Snapshot().Live()))
	fmt.Fprintln(status, renderProp("Births", "%v", s.Births))
	fmt.Fprintln(status, renderProp("Deaths", "%v", s.Deaths))
	fmt.Fprintln(status, renderProp("Step time", "%v", s.Elapsed.Round(time.Microsecond)))
	fmt.Fprintln(status, renderProp("Mode", "%v", mode))
	fmt.Fprintln(status, renderProp("Grid", "%v x %v", size.W, size.H))
	fmt.Fprintln(status, renderProp("Origin", "%v,%v", t.origin.X, t.origin.Y))
	return nil
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *Viewer) helpLine() string {
	var b strings.Builder
	b.WriteString("KEYS: ")
	first := true
	for _, k := range t.k {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *Viewer) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Viewer) cmdTogglePause(_ *gocui.View) error {
	t.clock.TogglePause()
	return t.refresh(t.g)
}

func (t *Viewer) cmdStep(_ *gocui.View) error {
	if !t.clock.Paused() {
		return nil
	}
	t.world.Step()
	return t.refresh(t.g)
}

func (t *Viewer) scroll(dx, dy int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.origin.X += dx
		t.origin.Y += dy
		return t.refresh(t.g)
	}
}

func (t *Viewer) cmdPaint(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.world.SetCell(t.origin.X+cx, t.origin.Y+cy, true)
	return t.refresh(t.g)
}
