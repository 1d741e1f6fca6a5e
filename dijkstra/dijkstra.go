// Package dijkstra computes shortest paths on a maze.Grid with Dijkstra's
// algorithm under uniform edge weight 1.
package dijkstra

import (
	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
)

// Dijkstra runs astar.Search with the Zero heuristic: cells are popped in
// non-decreasing distance from the start, equal distances by lower cell id,
// and the search stops once the end cell is popped.
//
// It accepts the astar options (WithOnVisit, WithOnEnqueue) and returns the
// same Result; an unreachable end yields Found == false and no error.
//
// Errors: astar.ErrGridNil if g is nil, or a wrapped hook error.
func Dijkstra(g *maze.Grid, opts ...astar.Option) (*astar.Result, error) {
	return astar.Search(g, astar.Zero, opts...)
}
