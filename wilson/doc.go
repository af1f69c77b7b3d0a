// Package wilson carves a maze with Wilson's algorithm: loop-erased random
// walks that produce a spanning tree drawn uniformly at random among all
// spanning trees of the grid — unlike the depth-first carver, which is
// biased toward long corridors.
//
// How it runs:
//
//   - One random seed cell joins the tree outright. Then, while unvisited
//     cells remain, a random walk starts from a random unvisited cell and
//     wanders until it hits the growing tree.
//   - Loop erasure: whenever the walk re-enters a cell already on its own
//     path, the path is truncated back to that cell, discarding the loop.
//     This is what keeps the result a tree and makes it provably uniform.
//   - When the walk reaches the tree, every consecutive pair on the path is
//     carved and the path's cells join the tree.
//
// Animation:
//
//   - After every walk step the configured anim.Renderer is invoked with
//     the maze, the walk's newly chosen cell, and the current path, then
//     the carver awaits anim.Delay for the configured step duration.
//   - On completion a settled frame (no current cell, empty path) is
//     emitted, followed by one final pause.
//   - Delays default to zero, so a Carve without renderer options runs at
//     full speed; animation callers set WithStepDelay/WithFinalDelay.
//
// Cancellation:
//
//   - The delay is the only suspension point. A fired context surfaces as
//     anim.ErrAborted out of the whole run, with no partial retry: the
//     maze keeps whatever carved state it had reached.
//
// Errors:
//
//   - ErrMazeNil: Carve called with a nil maze.
//   - anim.ErrAborted: the cancellation signal fired mid-run.
//
// Complexity: expected O(W×H) walk steps on grid graphs up to
// polylogarithmic factors; memory O(W×H) for the cell partition.
package wilson
