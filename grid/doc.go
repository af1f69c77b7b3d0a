// Package grid models a rectangular maze as a graph of cells.
//
// What:
//
//   - Maze owns a flat, row-major arena of Cell records; cells reference
//     each other by CellID index, never by pointer, so the graph carries no
//     independent ownership or reference-cycle concerns.
//   - Each cell knows its up-to-4 orthogonal in-bounds grid neighbors (fixed
//     at construction) and the subset of them it has been carved to (grows
//     monotonically, always symmetric).
//   - Carvers mutate edge sets only; dimensions, coordinates and adjacency
//     never change after New.
//
// Invariants:
//
//   - edges ⊆ neighbors for every cell, at all times.
//   - Edges are undirected: CarveEdge records the connection on both
//     endpoints in one call.
//
// Errors:
//
//   - ErrNonPositiveDimension: New called with width or height < 1.
//   - ErrNotAdjacent: CarveEdge asked to connect cells that are not grid
//     neighbors — a carver bug, not a recoverable condition.
//   - Out-of-bounds lookups are NOT errors: At reports absence via its
//     second return, the normal way callers detect the grid boundary.
//
// Complexity: New is O(W×H); every per-cell query is O(1) with the
// constant bounded by the 4-neighbor degree.
package grid
