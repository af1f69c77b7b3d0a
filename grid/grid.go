package grid

import (
	"slices"
	"strings"
)

// conn4Offsets lists orthogonal neighbor offsets in N, E, S, W order.
// Neighbor slices are wired in this order and all "preserving neighbor
// order" guarantees refer to it.
var conn4Offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New constructs a Maze of the given dimensions with every cell allocated
// and its grid adjacency wired, and with no edges carved yet.
// Returns ErrNonPositiveDimension unless width > 0 and height > 0.
//
// Construction runs in two passes: first the whole arena is allocated, then
// neighbors are wired — wiring needs every cell to already exist.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Maze, error) {
	// 1. Validate dimensions.
	if width < 1 || height < 1 {
		return nil, ErrNonPositiveDimension
	}

	// 2. First pass: allocate one cell per coordinate, row-major.
	m := &Maze{
		Width:  width,
		Height: height,
		Start:  NoCell,
		End:    NoCell,
		cells:  make([]Cell, width*height),
	}
	var x, y int
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			m.cells[m.index(x, y)] = Cell{X: x, Y: y}
		}
	}

	// 3. Second pass: wire each cell to its in-bounds orthogonal neighbors.
	var nx, ny int
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			c := &m.cells[m.index(x, y)]
			for _, d := range conn4Offsets {
				nx, ny = x+d[0], y+d[1]
				if !m.inBounds(nx, ny) {
					continue
				}
				c.neighbors = append(c.neighbors, CellID(m.index(nx, ny)))
			}
		}
	}

	return m, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (m *Maze) index(x, y int) int {
	return y*m.Width + x
}

// inBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) inBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// valid reports whether id indexes a cell of this maze.
func (m *Maze) valid(id CellID) bool {
	return id >= 0 && int(id) < len(m.cells)
}

// At returns the CellID at (x,y). The second return is false for
// out-of-range coordinates — a normal query outcome, not a fault.
// Complexity: O(1).
func (m *Maze) At(x, y int) (CellID, bool) {
	if !m.inBounds(x, y) {
		return NoCell, false
	}

	return CellID(m.index(x, y)), true
}

// Coord converts a CellID back to its (x,y) coordinates.
// Complexity: O(1).
func (m *Maze) Coord(id CellID) (x, y int) {
	return int(id) % m.Width, int(id) / m.Width
}

// Cells returns the total number of cells, Width×Height.
func (m *Maze) Cells() int {
	return len(m.cells)
}

// Neighbors returns a copy of id's grid-adjacent cells in N, E, S, W order
// (clipped at the grid bounds). Returns nil for an invalid id.
// Complexity: O(1).
func (m *Maze) Neighbors(id CellID) []CellID {
	if !m.valid(id) {
		return nil
	}

	return slices.Clone(m.cells[id].neighbors)
}

// Edges returns a copy of the neighbors id has been carved to, in carving
// order. Returns nil for an invalid id.
// Complexity: O(1).
func (m *Maze) Edges(id CellID) []CellID {
	if !m.valid(id) {
		return nil
	}

	return slices.Clone(m.cells[id].edges)
}

// UncarvedEdges returns id's neighbors minus its carved edges, preserving
// neighbor order. Both carvers use it to find unexplored directions.
// Complexity: O(1) — degree is bounded by 4.
func (m *Maze) UncarvedEdges(id CellID) []CellID {
	if !m.valid(id) {
		return nil
	}

	c := &m.cells[id]
	out := make([]CellID, 0, len(c.neighbors)-len(c.edges))
	for _, n := range c.neighbors {
		if !slices.Contains(c.edges, n) {
			out = append(out, n)
		}
	}

	return out
}

// HasEdge reports whether a carved edge connects a and b.
// Complexity: O(1).
func (m *Maze) HasEdge(a, b CellID) bool {
	if !m.valid(a) || !m.valid(b) {
		return false
	}

	return slices.Contains(m.cells[a].edges, b)
}

// CarveEdge connects cells a and b, recording the edge on both endpoints.
// The cells must be grid-adjacent: a non-neighbor pair returns
// ErrNotAdjacent and flags a bug in the calling carver. Carving an
// already-carved pair is a no-op.
// Complexity: O(1).
func (m *Maze) CarveEdge(a, b CellID) error {
	// 1. Validate ids.
	if !m.valid(a) || !m.valid(b) {
		return ErrCellNotFound
	}

	// 2. Assert grid adjacency; silently creating non-grid edges would
	//    corrupt every spanning-tree property downstream.
	ca, cb := &m.cells[a], &m.cells[b]
	if !slices.Contains(ca.neighbors, b) {
		return ErrNotAdjacent
	}

	// 3. Idempotent on repeat carves; edges stay symmetric.
	if slices.Contains(ca.edges, b) {
		return nil
	}
	ca.edges = append(ca.edges, b)
	cb.edges = append(cb.edges, a)

	return nil
}

// EdgeCount returns the number of undirected carved edges in the maze.
// A completed spanning tree has exactly Width×Height−1.
// Complexity: O(W×H).
func (m *Maze) EdgeCount() int {
	total := 0
	for i := range m.cells {
		total += len(m.cells[i].edges)
	}

	// Each undirected edge is recorded on both endpoints.
	return total / 2
}

// String renders the maze walls as ASCII, one "+---+"-bordered box per
// cell with openings where edges have been carved.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary.
	b.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	var x, y int
	for y = 0; y < m.Height; y++ {
		// Cell row: east walls.
		b.WriteString("|")
		for x = 0; x < m.Width; x++ {
			id, _ := m.At(x, y)
			if east, ok := m.At(x+1, y); ok && m.HasEdge(id, east) {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
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
