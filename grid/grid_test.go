package grid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvegal/mazecarve/grid"
)

func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}, {-1, 5}, {5, -2}} {
		m, err := grid.New(dims[0], dims[1])
		assert.Nil(t, m, "dims %v", dims)
		assert.ErrorIs(t, err, grid.ErrNonPositiveDimension, "dims %v", dims)
	}
}

// expectedNeighbors recomputes the in-bounds orthogonal neighbors of (x,y)
// independently of the arena wiring.
func expectedNeighbors(m *grid.Maze, x, y int) []grid.CellID {
	var out []grid.CellID
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		if id, ok := m.At(x+d[0], y+d[1]); ok {
			out = append(out, id)
		}
	}

	return out
}

func TestNew_NeighborWiring(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 4}, {4, 1}, {3, 3}, {5, 7}} {
		w, h := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			m, err := grid.New(w, h)
			require.NoError(t, err)
			assert.Equal(t, w*h, m.Cells())

			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					id, ok := m.At(x, y)
					require.True(t, ok)
					assert.Equal(t, expectedNeighbors(m, x, y), m.Neighbors(id),
						"neighbors of (%d,%d)", x, y)
					assert.Empty(t, m.Edges(id), "no edges before carving at (%d,%d)", x, y)
				}
			}
			assert.Equal(t, 0, m.EdgeCount())
		})
	}
}

func TestAt_OutOfBoundsIsAbsentNotError(t *testing.T) {
	m, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {99, 99}} {
		id, ok := m.At(pt[0], pt[1])
		assert.False(t, ok, "coords %v", pt)
		assert.Equal(t, grid.NoCell, id, "coords %v", pt)
	}
}

func TestCoord_RoundTrip(t *testing.T) {
	m, err := grid.New(4, 3)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			id, ok := m.At(x, y)
			require.True(t, ok)
			gx, gy := m.Coord(id)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
}

func TestCarveEdge_Symmetric(t *testing.T) {
	m, err := grid.New(2, 2)
	require.NoError(t, err)
	a, _ := m.At(0, 0)
	b, _ := m.At(1, 0)

	require.NoError(t, m.CarveEdge(a, b))
	assert.True(t, m.HasEdge(a, b))
	assert.True(t, m.HasEdge(b, a), "edges must be recorded on both endpoints")
	assert.Equal(t, 1, m.EdgeCount())
}

func TestCarveEdge_Idempotent(t *testing.T) {
	m, err := grid.New(2, 1)
	require.NoError(t, err)
	a, _ := m.At(0, 0)
	b, _ := m.At(1, 0)

	require.NoError(t, m.CarveEdge(a, b))
	require.NoError(t, m.CarveEdge(a, b))
	require.NoError(t, m.CarveEdge(b, a))
	assert.Equal(t, 1, m.EdgeCount())
	assert.Len(t, m.Edges(a), 1)
	assert.Len(t, m.Edges(b), 1)
}

func TestCarveEdge_NotAdjacent(t *testing.T) {
	m, err := grid.New(3, 3)
	require.NoError(t, err)
	a, _ := m.At(0, 0)
	diag, _ := m.At(1, 1)
	far, _ := m.At(2, 0)

	assert.ErrorIs(t, m.CarveEdge(a, diag), grid.ErrNotAdjacent, "diagonal is not a grid edge")
	assert.ErrorIs(t, m.CarveEdge(a, far), grid.ErrNotAdjacent, "distance-2 is not a grid edge")
	assert.ErrorIs(t, m.CarveEdge(a, a), grid.ErrNotAdjacent, "self-loop is not a grid edge")
	assert.Equal(t, 0, m.EdgeCount())
}

func TestCarveEdge_InvalidID(t *testing.T) {
	m, err := grid.New(2, 2)
	require.NoError(t, err)
	a, _ := m.At(0, 0)

	assert.ErrorIs(t, m.CarveEdge(a, grid.NoCell), grid.ErrCellNotFound)
	assert.ErrorIs(t, m.CarveEdge(grid.CellID(99), a), grid.ErrCellNotFound)
}

func TestUncarvedEdges_ShrinksWithCarving(t *testing.T) {
	m, err := grid.New(3, 3)
	require.NoError(t, err)
	center, _ := m.At(1, 1)

	nbs := m.Neighbors(center)
	require.Len(t, nbs, 4)
	assert.Equal(t, nbs, m.UncarvedEdges(center), "nothing carved: uncarved == neighbors, in order")

	for i, n := range nbs {
		require.NoError(t, m.CarveEdge(center, n))
		uncarved := m.UncarvedEdges(center)
		assert.Len(t, uncarved, len(nbs)-len(m.Edges(center)), "size invariant after %d carves", i+1)
		for _, u := range uncarved {
			assert.Contains(t, nbs, u, "uncarved must stay a subset of neighbors")
			assert.False(t, m.HasEdge(center, u))
		}
	}
	assert.Empty(t, m.UncarvedEdges(center))
}

func TestString_RendersCarvedOpenings(t *testing.T) {
	m, err := grid.New(2, 1)
	require.NoError(t, err)
	a, _ := m.At(0, 0)
	b, _ := m.At(1, 0)

	assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", m.String())

	require.NoError(t, m.CarveEdge(a, b))
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", m.String())
}

func TestStartEnd_DefaultAbsent(t *testing.T) {
	m, err := grid.New(2, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.NoCell, m.Start)
	assert.Equal(t, grid.NoCell, m.End)
}
