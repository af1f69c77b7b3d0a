// Package grid defines the maze arena types and sentinel errors.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNonPositiveDimension indicates New was called with width or height < 1.
	ErrNonPositiveDimension = errors.New("grid: width and height must be positive")
	// ErrNotAdjacent indicates CarveEdge was asked to connect two cells that
	// are not grid neighbors. This flags a bug in the calling carver.
	ErrNotAdjacent = errors.New("grid: cells are not grid-adjacent")
	// ErrCellNotFound indicates a CellID outside the maze arena.
	ErrCellNotFound = errors.New("grid: cell id out of range")
)

// CellID is a row-major index into a Maze's cell arena.
type CellID int

// NoCell is the absent-cell marker, used where a "current" cell is optional.
const NoCell CellID = -1

// Cell is a single maze cell. Its coordinates are immutable after
// construction; neighbors is wired once by New; edges grows monotonically
// as carvers connect the cell to its neighbors.
type Cell struct {
	X, Y int // Coordinates within the grid

	neighbors []CellID // grid-adjacent cells, fixed at construction
	edges     []CellID // carved subset of neighbors, symmetric
}

// Maze is a fixed-size rectangular grid of cells. The maze exclusively owns
// its arena; relationships between cells are CellID references into it.
// Start and End are optional designated cells for path queries; the carving
// algorithms leave them untouched.
type Maze struct {
	Width, Height int

	Start, End CellID

	cells []Cell
}
