package anim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arvegal/mazecarve/grid"
)

// ErrAborted indicates the cancellation signal fired before a pending delay
// elapsed. It propagates out of an entire animated run: the maze is left in
// its last-rendered state, never rolled back.
var ErrAborted = errors.New("anim: delay aborted")

// Renderer paints one animation frame: the maze in its current
// partially-carved state, the walk's current cell (grid.NoCell when
// absent), and the current path (possibly empty, ordered).
// Implementations are invoked synchronously and must not mutate the maze.
type Renderer interface {
	Frame(m *grid.Maze, current grid.CellID, path []grid.CellID)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(m *grid.Maze, current grid.CellID, path []grid.CellID)

// Frame calls fn.
func (fn RendererFunc) Frame(m *grid.Maze, current grid.CellID, path []grid.CellID) {
	fn(m, current, path)
}

// Delay blocks for d, or fails with ErrAborted as soon as ctx is done,
// whichever happens first. The underlying timer is released on either
// outcome. An already-cancelled ctx aborts without sleeping, even for d<=0.
func Delay(ctx context.Context, d time.Duration) error {
	// Observe an already-fired signal before arming any timer.
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
	default:
	}

	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
	case <-t.C:
		return nil
	}
}
