package backtrack_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvegal/mazecarve/backtrack"
	"github.com/arvegal/mazecarve/grid"
	"github.com/arvegal/mazecarve/randx"
)

// reachable counts cells reachable from cell 0 via carved edges.
func reachable(m *grid.Maze) int {
	seen := map[grid.CellID]bool{0: true}
	queue := []grid.CellID{0}
	var id grid.CellID
	for len(queue) > 0 {
		id, queue = queue[0], queue[1:]
		for _, n := range m.Edges(id) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(seen)
}

// assertSpanningTree checks the carved-edge graph is connected with exactly
// cells-1 edges (connected + right edge count ⇒ acyclic tree), and that no
// cell carries more edges than grid neighbors.
func assertSpanningTree(t *testing.T, m *grid.Maze) {
	t.Helper()
	assert.Equal(t, m.Cells()-1, m.EdgeCount(), "spanning tree edge count")
	assert.Equal(t, m.Cells(), reachable(m), "every cell reachable via carved edges")
	for id := 0; id < m.Cells(); id++ {
		c := grid.CellID(id)
		assert.LessOrEqual(t, len(m.Edges(c)), len(m.Neighbors(c)), "cell %d edge bound", id)
	}
}

func TestCarve_NilMaze(t *testing.T) {
	assert.ErrorIs(t, backtrack.Carve(nil), backtrack.ErrMazeNil)
}

func TestCarve_StartNotFound(t *testing.T) {
	m, err := grid.New(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, backtrack.Carve(m, backtrack.WithStart(grid.CellID(99))), backtrack.ErrStartNotFound)
	assert.ErrorIs(t, backtrack.Carve(m, backtrack.WithStart(grid.CellID(-7))), backtrack.ErrStartNotFound)
}

func TestCarve_SingleCell(t *testing.T) {
	m, err := grid.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, backtrack.Carve(m))
	assert.Equal(t, 0, m.EdgeCount(), "a 1x1 maze has nothing to carve")
}

func TestCarve_ThreeByThree(t *testing.T) {
	m, err := grid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, backtrack.Carve(m, backtrack.WithRand(randx.New(42))))

	assert.Equal(t, 8, m.EdgeCount(), "3x3 spanning tree has exactly 8 edges")
	assert.Equal(t, 9, reachable(m), "all 9 cells connected")
}

func TestCarve_SpanningTreeAcrossShapes(t *testing.T) {
	for _, dims := range [][2]int{{1, 9}, {9, 1}, {2, 2}, {5, 8}, {12, 12}} {
		w, h := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			m, err := grid.New(w, h)
			require.NoError(t, err)
			require.NoError(t, backtrack.Carve(m, backtrack.WithRand(randx.New(int64(w*100+h)))))
			assertSpanningTree(t, m)
		})
	}
}

func TestCarve_FixedStart(t *testing.T) {
	m, err := grid.New(4, 4)
	require.NoError(t, err)
	start, _ := m.At(2, 1)
	require.NoError(t, backtrack.Carve(m, backtrack.WithStart(start), backtrack.WithRand(randx.New(7))))
	assertSpanningTree(t, m)
}

func TestCarve_SameSeedSameMaze(t *testing.T) {
	carveWith := func(seed int64) *grid.Maze {
		m, err := grid.New(6, 5)
		require.NoError(t, err)
		require.NoError(t, backtrack.Carve(m, backtrack.WithRand(randx.New(seed))))

		return m
	}

	a, b := carveWith(1234), carveWith(1234)
	assert.Equal(t, a.String(), b.String(), "same seed must reproduce the same maze")
}
