// Package ascii renders maze animation frames as colored ASCII art.
//
// Walls follow the same "+---+" boxes as grid.Maze.String; cell interiors
// additionally mark the walk's current cell (red block) and the cells on
// the current path (cyan shade). Colors are ANSI escapes via aurora and can
// be disabled for plain output or golden tests.
package ascii

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/arvegal/mazecarve/grid"
)

// Cell interior fillers, three characters wide to match the wall grid.
const (
	fillPlain   = "   "
	fillPath    = "░░░"
	fillCurrent = "███"
)

// Renderer writes one frame per invocation to an io.Writer. It implements
// anim.Renderer and never mutates the maze.
type Renderer struct {
	// ClearScreen, when set, emits an ANSI home+clear before each frame so
	// successive frames animate in place on a raw terminal.
	ClearScreen bool

	w  io.Writer
	au aurora.Aurora
}

// New returns a Renderer writing to w. colored enables ANSI colors;
// disable for plain text (pipes, tests).
func New(w io.Writer, colored bool) *Renderer {
	return &Renderer{w: w, au: aurora.NewAurora(colored)}
}

// Frame paints the maze with the current cell and path highlighted.
func (r *Renderer) Frame(m *grid.Maze, current grid.CellID, path []grid.CellID) {
	if r.ClearScreen {
		fmt.Fprint(r.w, "\033[H\033[2J")
	}
	fmt.Fprint(r.w, Sprint(m, current, path, r.au))
}

// Sprint renders one frame to a string. current may be grid.NoCell and
// path may be empty; highlight cells absent from the maze are ignored.
func Sprint(m *grid.Maze, current grid.CellID, path []grid.CellID, au aurora.Aurora) string {
	var b strings.Builder

	// Top boundary.
	b.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	var x, y int
	for y = 0; y < m.Height; y++ {
		// Cell row: interiors and east walls.
		b.WriteString("|")
		for x = 0; x < m.Width; x++ {
			id, _ := m.At(x, y)
			b.WriteString(filler(id, current, path, au))
			if east, ok := m.At(x+1, y); ok && m.HasEdge(id, east) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		// Wall row: south walls.
		b.WriteString("+")
		for x = 0; x < m.Width; x++ {
			id, _ := m.At(x, y)
			if south, ok := m.At(x, y+1); ok && m.HasEdge(id, south) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// filler picks the interior for one cell: current beats path beats plain.
func filler(id, current grid.CellID, path []grid.CellID, au aurora.Aurora) string {
	switch {
	case id == current:
		return au.Red(fillCurrent).String()
	case slices.Contains(path, id):
		return au.Cyan(fillPath).String()
	default:
		return fillPlain
	}
}
