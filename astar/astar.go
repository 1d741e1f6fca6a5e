// Package astar implements best-first search on a maze.Grid guided by a
// pluggable Heuristic. With the Zero heuristic it is Dijkstra's algorithm.
//
// Complexity:
//
//   - Time:  O(N log N) for an N-cell grid; each cell is pushed once and
//     each improvement is an O(log N) heap.Fix.
//   - Space: O(N) for node records, the heap and the visit order.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// Search runs best-first search from g's start cell toward its end cell on a
// snapshot of g, popping the open cell with the lowest f = g + h(cell, end).
// Ties on f are broken by the lower cell id, so repeated runs on the same
// grid state produce identical results.
//
// Every move costs 1. A neighbor's record is updated only for a strictly
// shorter distance; if it is still open its queue entry is updated in place.
//
// The search stops when the end cell is popped or the queue empties. An
// unreachable end is not an error: Found is false and Path leads to the last
// popped cell instead.
//
// Errors:
//   - ErrGridNil if g is nil.
//   - ErrNilHeuristic if h is nil.
//   - the OnVisit error, wrapped, with the partial Result.
func Search(g *maze.Grid, h Heuristic, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrGridNil
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 2) Apply options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Prepare the runner on a private snapshot
	snap := g.Clone()
	n := snap.Size()
	r := &runner{
		grid:  snap,
		h:     h,
		goal:  snap.End(),
		opts:  cfg,
		nodes: make([]*node, n),
		pq:    make(openPQ, 0, n),
		order: make(maze.VisitOrder, 0, n),
	}

	// 4) Run and package results
	r.init()
	err := r.process()

	return r.result(), err
}

// runner holds the mutable state of a single Search.
type runner struct {
	grid  *maze.Grid
	h     Heuristic
	goal  maze.Cell
	opts  Options
	nodes []*node // indexed by cell id; nil means unvisited
	pq    openPQ
	order maze.VisitOrder
	last  *node // most recently popped
}

// init records the start at distance 0 with no predecessor and queues it.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.enqueue(r.grid.Start(), 0, nil)
}

// process pops nodes until the end is popped, the heap empties, or OnVisit fails.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*node)
		cell, _ := r.grid.ByID(cur.id)

		r.last = cur
		r.order = append(r.order, cell)
		if r.opts.OnVisit != nil {
			if err := r.opts.OnVisit(cell, cur.g); err != nil {
				return fmt.Errorf("astar: OnVisit error at %v: %w", cell, err)
			}
		}
		if cell.End {
			return nil
		}

		r.relax(cell, cur)
	}

	return nil
}

// relax offers cur.g+1 to every passable neighbor of cell.
func (r *runner) relax(cell maze.Cell, cur *node) {
	tentative := cur.g + 1
	for _, nb := range r.grid.Neighbors(cell) {
		known := r.nodes[nb.ID]
		if known != nil && tentative >= known.g {
			continue
		}
		r.enqueue(nb, tentative, cur)
	}
}

// enqueue records a strictly better distance for c. An open entry is fixed
// in place; otherwise the node is pushed, which for a consistent heuristic
// only happens the first time c is reached.
func (r *runner) enqueue(c maze.Cell, g int, prev *node) {
	nd := r.nodes[c.ID]
	if nd == nil {
		nd = &node{id: c.ID, index: -1}
		r.nodes[c.ID] = nd
	}
	nd.g = g
	nd.f = float64(g) + r.h(c, r.goal)
	nd.prev = prev

	if nd.index >= 0 {
		heap.Fix(&r.pq, nd.index)
	} else {
		heap.Push(&r.pq, nd)
	}
	if r.opts.OnEnqueue != nil {
		r.opts.OnEnqueue(c, g)
	}
}

// result assembles the Result from the runner's state.
func (r *runner) result() *Result {
	dist := make([]Distance, len(r.nodes))
	for id, nd := range r.nodes {
		if nd != nil {
			dist[id] = Reached(nd.g)
		}
	}

	res := &Result{
		Order: r.order,
		Path:  r.reconstruct(),
		dist:  dist,
	}
	res.Found = r.order.Found()

	return res
}
