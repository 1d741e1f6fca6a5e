// Package dijkstra provides Dijkstra's shortest-path search over a maze.Grid.
//
// Every move between orthogonal passable neighbors costs 1, so distances are
// hop counts and the end cell can be accepted the moment it is popped.
//
// The priority-queue loop lives in package astar; Dijkstra is its
// zero-heuristic instantiation and therefore shares its guarantees:
//
//   - Deterministic order: ties on distance are broken by lower cell id.
//   - Result.Path runs from the start to the last popped cell and its
//     Hops() equals Result.Distance(end) when the end is reachable.
//   - Result.Distance(id) is astar.Unvisited for cells never reached.
//
// Usage:
//
//	res, err := dijkstra.Dijkstra(g)
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    // end is walled off; res.Path ends elsewhere
//	}
//
// Complexity: O(N log N) time, O(N) memory on an N-cell grid.
package dijkstra
