package backtrack

import (
	"fmt"

	"github.com/arvegal/mazecarve/grid"
	"github.com/arvegal/mazecarve/randx"
)

// frame is one pending visit: the cell to enter and the cell it was
// reached from (grid.NoCell for the root).
type frame struct {
	from, id grid.CellID
}

// Carve runs the randomized depth-first carver over m, mutating its edge
// sets in place until every cell is connected into a spanning tree.
//
// Steps:
//  1. Validate the maze and options.
//  2. Choose the start cell (uniform random unless WithStart was given).
//  3. Pop (from, cell) frames off an explicit stack: skip already-visited
//     cells, otherwise mark visited and carve the edge back to from —
//     except for the root frame, which has nothing to carve to.
//  4. Shuffle the cell's uncarved neighbors and push them in reverse, so
//     the pop order matches the recursive formulation's visit order.
//
// A popped cell may have been visited by another branch since it was
// pushed; the visited check at pop time makes such frames no-ops, which is
// how the traversal terminates.
func Carve(m *grid.Maze, opts ...Option) error {
	// 1. Validate input maze.
	if m == nil {
		return ErrMazeNil
	}

	// 2. Apply options.
	copts := DefaultOptions()
	for _, fn := range opts {
		fn(&copts)
	}
	rng := copts.Rand
	if rng == nil {
		rng = randx.New(0)
	}

	// 3. Resolve the start cell.
	start := copts.Start
	if start == grid.NoCell {
		ids := make([]grid.CellID, m.Cells())
		for i := range ids {
			ids[i] = grid.CellID(i)
		}
		var err error
		if start, err = randx.Member(ids, rng); err != nil {
			// Cells() >= 1 for any constructed maze; surface the contract
			// violation rather than masking it.
			return fmt.Errorf("backtrack: picking start cell: %w", err)
		}
	} else if start < 0 || int(start) >= m.Cells() {
		return ErrStartNotFound
	}

	// 4. Depth-first exploration with an explicit stack.
	visited := make(map[grid.CellID]bool, m.Cells())
	stack := []frame{{from: grid.NoCell, id: start}}
	var f frame
	for len(stack) > 0 {
		f, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// 4a. Revisits are no-ops.
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		// 4b. Connect the newly entered cell to its predecessor. The root
		//     frame has no predecessor and carves nothing.
		if f.from != grid.NoCell {
			if err := m.CarveEdge(f.from, f.id); err != nil {
				return fmt.Errorf("backtrack: carving %d->%d: %w", f.from, f.id, err)
			}
		}

		// 4c. Randomize the descent order, then push reversed: the first
		//     shuffled neighbor must be the next frame popped.
		next := m.UncarvedEdges(f.id)
		randx.Shuffle(next, rng)
		for i := len(next) - 1; i >= 0; i-- {
			if !visited[next[i]] {
				stack = append(stack, frame{from: f.id, id: next[i]})
			}
		}
	}

	return nil
}
