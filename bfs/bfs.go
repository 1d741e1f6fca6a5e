// Package bfs provides breadth-first search over a maze.Grid, returning the
// order in which cells were dequeued.
//
// BFS explores cells in non-decreasing hop distance from the start cell and
// stops as soon as the end cell is dequeued.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  maze.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *maze.Grid
	opts    BFSOptions
	queue   []queueItem
	visited map[int]bool
	order   maze.VisitOrder
}

// BFS runs breadth-first search on a snapshot of g from its start cell.
// The returned order begins with the start cell; it ends with the end cell
// when the end is reachable, otherwise it holds every reachable cell.
// Use order.Found() to tell the two apart: unreachability is not an error.
//
// Returns ErrGridNil for a nil grid, or the wrapped OnVisit error together
// with the order collected so far.
func BFS(g *maze.Grid, opts ...Option) (maze.VisitOrder, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	snap := g.Clone()
	n := snap.Size()
	w := &walker{
		grid:    snap,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		order:   make(maze.VisitOrder, 0, n),
	}

	// Seed queue with the start cell
	w.enqueue(snap.Start(), 0)
	err := w.loop()

	return w.order, err
}

// enqueue marks c visited, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(c maze.Cell, depth int) {
	w.visited[c.ID] = true
	w.opts.OnEnqueue(c, depth)
	w.queue = append(w.queue, queueItem{cell: c, depth: depth})
}

// loop processes the queue until the end is dequeued, the queue empties, or
// a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.order = append(w.order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}
		if item.cell.End {
			return nil
		}

		for _, nbr := range w.grid.Neighbors(item.cell) {
			if !w.visited[nbr.ID] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}
	return nil
}
