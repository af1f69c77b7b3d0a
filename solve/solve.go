package solve

import (
	"errors"
	"slices"

	"github.com/arvegal/mazecarve/grid"
)

// Sentinel errors for path queries.
var (
	// ErrMazeNil is returned when a nil *grid.Maze is passed.
	ErrMazeNil = errors.New("solve: maze is nil")
	// ErrCellNotFound indicates an endpoint outside the maze arena.
	ErrCellNotFound = errors.New("solve: cell not found")
	// ErrNoPath indicates no carved corridor connects the endpoints.
	ErrNoPath = errors.New("solve: no carved path between cells")
)

// ShortestPath returns the cells along the shortest carved corridor from
// `from` to `to`, both endpoints included. Only carved edges are traversed,
// so walls are honored. A from==to query returns the single-cell path.
//
// Steps:
//  1. Validate the maze and both endpoints.
//  2. Breadth-first search over carved edges, recording parent links.
//  3. Rebuild the path by walking parents back from `to`.
func ShortestPath(m *grid.Maze, from, to grid.CellID) ([]grid.CellID, error) {
	// 1. Validate.
	if m == nil {
		return nil, ErrMazeNil
	}
	if from < 0 || int(from) >= m.Cells() || to < 0 || int(to) >= m.Cells() {
		return nil, ErrCellNotFound
	}
	if from == to {
		return []grid.CellID{from}, nil
	}

	// 2. BFS over carved edges.
	parent := make(map[grid.CellID]grid.CellID, m.Cells())
	visited := map[grid.CellID]bool{from: true}
	queue := []grid.CellID{from}
	var id grid.CellID
	found := false
	for len(queue) > 0 && !found {
		id, queue = queue[0], queue[1:]
		for _, n := range m.Edges(id) {
			if visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = id
			if n == to {
				found = true
				break
			}
			queue = append(queue, n)
		}
	}
	if !found {
		return nil, ErrNoPath
	}

	// 3. Rebuild from->to by reversing the parent chain.
	path := []grid.CellID{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
