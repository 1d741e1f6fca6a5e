package astar

import "github.com/katalvlaran/mazepath/maze"

// reconstruct walks predecessor links back from the last popped node to the
// start, whose prev is nil, and returns the cells start first.
// The walk is capped at the cell count so a broken chain cannot loop.
func (r *runner) reconstruct() maze.Path {
	if r.last == nil {
		return nil
	}

	var rev []maze.Cell
	limit := len(r.nodes)
	for nd := r.last; nd != nil && len(rev) < limit; nd = nd.prev {
		c, _ := r.grid.ByID(nd.id)
		rev = append(rev, c)
	}

	path := make(maze.Path, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
