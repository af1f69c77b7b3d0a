// Package term hosts the live carving animation in a gocui terminal UI:
// a header, a status pane tracking walk steps, and the maze pane repainted
// on every frame. It implements anim.Renderer, so a wilson.Carve running
// in its own goroutine can stream frames straight into the UI.
package term

import (
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/arvegal/mazecarve/grid"
	"github.com/arvegal/mazecarve/render/ascii"
)

const (
	headerView = "header"
	statusView = "status"
	mazeView   = "maze"

	statusWidth     = 26
	minWindowHeight = 8
)

// Config describes the run shown in the status pane.
type Config struct {
	Title    string
	Interval time.Duration
}

// UI is a gocui-backed frame consumer. Frame may be called from any
// goroutine; repaints go through gocui's Update queue.
type UI struct {
	g   *gocui.Gui
	au  aurora.Aurora
	cfg Config

	steps   int
	settled bool
	onQuit  func()
}

// New initializes the terminal UI. The caller must Close it.
func New(cfg Config) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: init gui: %w", err)
	}

	u := &UI{g: g, au: aurora.NewAurora(true), cfg: cfg}
	g.SetManagerFunc(u.layout)

	for _, key := range []interface{}{gocui.KeyCtrlC, 'q'} {
		if err = g.SetKeybinding("", key, gocui.ModNone, u.cmdQuit); err != nil {
			g.Close()

			return nil, fmt.Errorf("term: keybinding: %w", err)
		}
	}

	return u, nil
}

// OnQuit installs fn to run when the user quits; the carve's cancel func
// goes here so the animation stops when the UI does.
func (u *UI) OnQuit(fn func()) {
	u.onQuit = fn
}

// Run blocks in the gocui main loop until the user quits.
func (u *UI) Run() error {
	if err := u.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return fmt.Errorf("term: main loop: %w", err)
	}

	return nil
}

// Close releases the terminal.
func (u *UI) Close() {
	u.g.Close()
}

// Frame implements anim.Renderer: repaint the maze pane and refresh the
// step counter. The settled frame (no current cell, empty path) flips the
// status to done.
func (u *UI) Frame(m *grid.Maze, current grid.CellID, path []grid.CellID) {
	if current == grid.NoCell {
		u.settled = true
	} else {
		u.steps++
	}

	// Render off the UI goroutine is fine; only painting must go through
	// Update. Copy the path: the carver reuses its buffer between steps.
	frame := ascii.Sprint(m, current, append([]grid.CellID(nil), path...), u.au)
	steps, settled := u.steps, u.settled

	u.g.Update(func(g *gocui.Gui) error {
		if v, err := g.View(mazeView); err == nil {
			v.Clear()
			_, _ = fmt.Fprint(v, frame)
		}
		if v, err := g.View(statusView); err == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, u.prop("Interval", "%v", u.cfg.Interval))
			_, _ = fmt.Fprintln(v, u.prop("Steps", "%d", steps))
			if settled {
				_, _ = fmt.Fprintln(v, u.au.Colorize("settled", aurora.GreenFg).String())
			} else {
				_, _ = fmt.Fprintln(v, u.au.Colorize("carving", aurora.CyanFg).String())
			}
		}

		return nil
	})
}

// prop formats one status line with a colored label.
func (u *UI) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+u.au.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (u *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minWindowHeight {
		return nil
	}

	if v, err := g.SetView(headerView, -1, -1, maxX, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		_, _ = fmt.Fprintln(v, " "+u.cfg.Title+"  (q or Ctrl-C to quit)")
	}

	if v, err := g.SetView(statusView, 0, 2, statusWidth, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(mazeView, statusWidth+1, 2, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Maze"
		v.Frame = true
	}

	return nil
}

func (u *UI) cmdQuit(_ *gocui.Gui, _ *gocui.View) error {
	if u.onQuit != nil {
		u.onQuit()
	}

	return gocui.ErrQuit
}
