// Package bfs provides breadth-first search over a maze.Grid,
// returning the order in which cells were dequeued for animation.
//
// What
//
//   - Explore cells in non-decreasing hop distance from the start cell.
//   - Cells are marked visited when enqueued, not when dequeued, so every cell
//     enters the queue at most once.
//   - Neighbors are enqueued in the grid's fixed left, right, up, down order.
//   - The search stops the moment the end cell is dequeued; the end cell is
//     then the last element of the returned maze.VisitOrder.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (a cell joins the frontier)
//   - OnVisit   (a cell is dequeued; may abort with an error)
//
// Determinism
//
//	Neighbor order is fixed and the queue is FIFO, so repeated runs on the
//	same grid state yield identical orders.
//
// Unreachable end
//
//	If the queue empties first, the order contains every cell reachable from
//	the start and order.Found() is false. This is a normal outcome.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue, visited set and order.
//
// Usage
//
//	order, err := bfs.BFS(g,
//	    bfs.WithOnVisit(func(c maze.Cell, depth int) error { /* draw */ return nil }),
//	)
//	if err != nil { /* ErrGridNil or hook error */ }
//	if order.Found() { /* end reached */ }
//
// Errors
//
//   - ErrGridNil if the grid pointer is nil.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
