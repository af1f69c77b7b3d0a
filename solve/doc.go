// Package solve answers path queries over a carved maze: a breadth-first
// search restricted to carved edges, so walls are honored.
//
// On a completed spanning tree the returned path is the unique corridor
// between the two cells; on a partially carved maze ErrNoPath reports that
// the cells are not yet connected.
//
// Errors:
//
//   - ErrMazeNil: nil maze.
//   - ErrCellNotFound: an endpoint id outside the maze.
//   - ErrNoPath: no carved corridor connects the endpoints.
//
// Complexity: O(W×H) time and memory.
package solve
