// Package mazecarve generates rectangular grid mazes and animates the
// carving process step by step.
//
// What you get:
//
//	grid/      — the maze model: an arena of cells with grid adjacency and
//	             monotone, symmetric carved-edge sets
//	randx/     — deterministic randomness: uniform shuffle and uniform pick
//	backtrack/ — randomized depth-first carver (long winding corridors)
//	wilson/    — Wilson's loop-erased random-walk carver (uniform spanning
//	             tree), instrumented with per-step animation frames
//	anim/      — the render bridge: the Renderer capability interface and a
//	             context-cancellable Delay between frames
//	solve/     — BFS corridor search over carved edges
//	render/    — ASCII, PNG and terminal-UI renderers
//
// Both carvers leave the maze as a spanning tree: connected, acyclic,
// exactly Width×Height−1 carved edges. The backtracker runs to completion
// synchronously; Wilson's algorithm suspends between steps on a cancellable
// delay, so a fired context aborts the run at the next suspension point and
// leaves the maze in its last-rendered state.
//
// Quick taste:
//
//	m, _ := grid.New(12, 9)
//	_ = backtrack.Carve(m, backtrack.WithRand(randx.New(42)))
//	fmt.Print(m)
//
// See cmd/mazeviz for a live terminal animation of Wilson's algorithm.
package mazecarve
