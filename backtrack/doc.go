// Package backtrack carves a maze with a randomized depth-first walk.
//
// What:
//
//   - Carve picks a uniformly random start cell, then explores the grid
//     depth-first, carving an edge into each newly reached cell and
//     shuffling the unexplored directions before descending.
//   - The traversal is an explicit stack of (from, cell) frames rather than
//     recursion, so depth is bounded by the heap and not the goroutine
//     stack even on very large grids.
//
// Result:
//
//   - A spanning tree: every cell visited exactly once, the carved-edge
//     graph connected and acyclic with exactly Width×Height−1 edges.
//   - Depth-first carving is biased toward long winding corridors; for an
//     unbiased uniform spanning tree use the wilson package instead.
//
// Errors:
//
//   - ErrMazeNil: Carve called with a nil maze.
//   - ErrStartNotFound: WithStart named a cell outside the maze.
//
// Complexity: O(W×H) time, O(W×H) memory for the visited set and stack.
package backtrack
