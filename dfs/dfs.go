// Package dfs implements depth-first search on a maze.Grid with an explicit
// LIFO worklist, producing the order in which cells were popped.
//
// Key features:
//   - DFS(g, opts...): traverse from the start cell until the end cell is popped
//   - Mark-on-push: a cell enters the stack at most once
//   - Hooks: OnPush (discovery) & OnVisit (pop) with error aborts
//
// Complexity:
//
//   - Time:   O(N) where N = Width×Height.
//   - Memory: O(N) for the stack, visited set and order.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// frame is a stack entry: a discovered cell and its discovery depth.
type frame struct {
	cell  maze.Cell
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *maze.Grid    // snapshot of the caller's grid
	opts    DFSOptions    // traversal options
	stack   []frame       // top is the last element
	visited map[int]bool  // ids already pushed
	order   maze.VisitOrder
}

// DFS performs depth-first search on a snapshot of g from its start cell.
// The most recently discovered cell is always explored next; neighbors of one
// cell are pushed in the fixed left, right, up, down order, so the last of
// them (down) is popped first.
//
// The order ends with the end cell when it is reachable; otherwise it holds
// every reachable cell and order.Found() is false.
// Returns ErrGridNil for a nil grid, or the wrapped OnVisit error together
// with the order collected so far.
func DFS(g *maze.Grid, opts ...Option) (maze.VisitOrder, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize state with capacity hints
	snap := g.Clone()
	n := snap.Size()
	walker := &dfsWalker{
		grid:    snap,
		opts:    dopts,
		stack:   make([]frame, 0, n),
		visited: make(map[int]bool, n),
		order:   make(maze.VisitOrder, 0, n),
	}

	// 4. Traverse
	walker.push(snap.Start(), 0)
	err := walker.traverse()

	return walker.order, err
}

// push marks c visited, fires OnPush and places it on top of the stack.
func (w *dfsWalker) push(c maze.Cell, depth int) {
	w.visited[c.ID] = true
	if w.opts.OnPush != nil {
		w.opts.OnPush(c, depth)
	}
	w.stack = append(w.stack, frame{cell: c, depth: depth})
}

// traverse pops cells until the end is popped, the stack empties, or a hook fails.
func (w *dfsWalker) traverse() error {
	for len(w.stack) > 0 {
		// 1. Pop the top frame
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 2. Record and notify
		w.order = append(w.order, top.cell)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.cell, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", top.cell, err)
			}
		}

		// 3. Goal check on removal
		if top.cell.End {
			return nil
		}

		// 4. Push undiscovered neighbors
		for _, nb := range w.grid.Neighbors(top.cell) {
			if !w.visited[nb.ID] {
				w.push(nb, top.depth+1)
			}
		}
	}

	return nil
}
