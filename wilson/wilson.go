package wilson

import (
	"fmt"
	"slices"

	"github.com/arvegal/mazecarve/anim"
	"github.com/arvegal/mazecarve/grid"
	"github.com/arvegal/mazecarve/randx"
)

// carver bundles the run's state: the maze, resolved options, the
// visited/unvisited partition, and the step counter.
type carver struct {
	maze      *grid.Maze
	opts      Options
	unvisited map[grid.CellID]struct{}
	visited   map[grid.CellID]bool
	steps     int
}

// Carve runs Wilson's algorithm over m, mutating its edge sets in place
// until every cell is connected into a uniform spanning tree. It returns
// the total number of individual walk steps taken — a diagnostic, not a
// correctness value.
//
// If the cancellation context fires, Carve fails with anim.ErrAborted and
// reports no step count; the maze is left in its last-rendered state.
func Carve(m *grid.Maze, opts ...Option) (int, error) {
	// 1. Validate input maze.
	if m == nil {
		return 0, ErrMazeNil
	}

	// 2. Apply options.
	copts := DefaultOptions()
	for _, fn := range opts {
		fn(&copts)
	}
	if copts.Rand == nil {
		copts.Rand = randx.New(0)
	}

	// 3. Partition: all cells start unvisited.
	c := &carver{
		maze:      m,
		opts:      copts,
		unvisited: make(map[grid.CellID]struct{}, m.Cells()),
		visited:   make(map[grid.CellID]bool, m.Cells()),
	}
	for i := 0; i < m.Cells(); i++ {
		c.unvisited[grid.CellID(i)] = struct{}{}
	}

	// 4. Seed the tree: one random cell joins without a walk.
	seed, err := randx.MapKey(c.unvisited, copts.Rand)
	if err != nil {
		return 0, fmt.Errorf("wilson: seeding tree: %w", err)
	}
	c.markVisited(seed)

	// 5. Walk from random unvisited cells until the partition is exhausted.
	//    Each walk moves at least one cell into the tree, so this
	//    terminates on any finite connected grid.
	for len(c.unvisited) > 0 {
		if err = c.walk(); err != nil {
			return 0, err
		}
	}

	// 6. Settled frame: no current cell, empty path, then one longer pause.
	c.frame(grid.NoCell, nil)
	if err = anim.Delay(copts.Ctx, copts.FinalDelay); err != nil {
		return 0, fmt.Errorf("wilson: terminal pause: %w", err)
	}

	return c.steps, nil
}

// walk performs one loop-erased random walk from a random unvisited cell
// until it reaches the growing tree, then carves the surviving path in.
func (c *carver) walk() error {
	// 1. Start from a uniformly random unvisited cell.
	current, err := randx.MapKey(c.unvisited, c.opts.Rand)
	if err != nil {
		return fmt.Errorf("wilson: picking walk start: %w", err)
	}
	path := []grid.CellID{current}

	// 2. Wander until the walk hits a visited cell. The path invariant
	//    throughout: duplicate-free, ending at the walk's newest cell.
	var next grid.CellID
	for !c.visited[current] {
		// 2a. Uniform random step among uncarved directions; for an
		//     unvisited cell nothing has been carved, so this is simply
		//     its grid neighbors. Any maze with more than one cell gives
		//     every cell at least one neighbor, so the pick cannot be
		//     asked to choose from nothing.
		if next, err = randx.Member(c.maze.UncarvedEdges(current), c.opts.Rand); err != nil {
			return fmt.Errorf("wilson: stepping from cell %d: %w", current, err)
		}
		c.steps++

		// 2b. Loop erasure: re-entering a path cell truncates the path
		//     back to that cell, discarding the loop.
		if i := slices.Index(path, next); i >= 0 {
			path = path[:i+1]
		} else {
			path = append(path, next)
		}

		// 2c. One frame per step, then the cancellable inter-step pause.
		c.frame(next, path)
		if err = anim.Delay(c.opts.Ctx, c.opts.StepDelay); err != nil {
			return fmt.Errorf("wilson: step %d: %w", c.steps, err)
		}

		current = next
	}

	// 3. The walk reached the tree: carve every consecutive pair and move
	//    the path's cells into the tree. Marking is idempotent for the
	//    final, already-visited endpoint.
	for i := 0; i < len(path)-1; i++ {
		if err = c.maze.CarveEdge(path[i], path[i+1]); err != nil {
			return fmt.Errorf("wilson: carving %d->%d: %w", path[i], path[i+1], err)
		}
		c.markVisited(path[i])
		c.markVisited(path[i+1])
	}

	return nil
}

// markVisited moves id from the unvisited set into the tree.
func (c *carver) markVisited(id grid.CellID) {
	c.visited[id] = true
	delete(c.unvisited, id)
}

// frame emits one animation frame when a renderer is configured. The
// renderer is called synchronously and must not mutate the maze.
func (c *carver) frame(current grid.CellID, path []grid.CellID) {
	if c.opts.Renderer == nil {
		return
	}
	c.opts.Renderer.Frame(c.maze, current, path)
}
