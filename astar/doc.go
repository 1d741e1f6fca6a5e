// Package astar provides a single best-first search engine for maze.Grid,
// parameterized by a Heuristic.
//
// What:
//
//	Search pops the open cell with the smallest f = g + h, where g is the hop
//	count from the start and h estimates the hops remaining to the end.
//	With h = Zero the order is exactly Dijkstra's; package dijkstra is a thin
//	wrapper that does precisely that.
//
// Heuristics:
//   - Zero       constant 0 (Dijkstra)
//   - Manhattan  |dx|+|dy|
//   - Euclidean  sqrt(dx²+dy²)
//
// All three are admissible and consistent for 4-way unit moves, so every
// variant returns a shortest path. Kind and ParseKind select one by name.
//
// Determinism:
//
//	Equal f values are broken by the lower cell id. Each cell owns at most
//	one heap entry; a strictly shorter distance to an open cell updates that
//	entry with heap.Fix rather than pushing a duplicate.
//
// Results:
//
//	Result.Order is the pop order. Result.Path is rebuilt by following
//	predecessor links from the last popped cell back to the start, which is
//	the only cell without a predecessor. When the end is unreachable the path
//	therefore ends somewhere else; check Result.Found or Path.Found.
//	Result.Distance(id) reports Unvisited or Reached(n) for any cell.
//
// Example:
//
//	res, err := astar.Search(g, astar.Manhattan)
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(res.Path.Hops())
//	}
//
// Errors:
//   - ErrGridNil, ErrNilHeuristic from Search.
//   - ErrUnknownHeuristic from ParseKind.
package astar
