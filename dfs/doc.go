// Package dfs provides depth-first search over a maze.Grid.
//
// What:
//   - Explores the most recently discovered, not yet expanded cell next.
//   - Uses an explicit stack instead of recursion, so very large mazes cannot
//     overflow the goroutine stack.
//   - Marks cells visited when they are pushed; the end test happens on pop.
//   - Returns the pop order as a maze.VisitOrder for animation.
//
// Order:
//
//	Neighbors are pushed left, right, up, down. Because the stack is LIFO the
//	down neighbor is explored first, then (once that subtree is exhausted)
//	the up neighbor, and so on. The result is a genuine depth-first order and
//	is not required to be minimal: DFS visits at least Manhattan(start,end)+1
//	cells when the end is reachable, frequently many more.
//
// Unreachable end:
//
//	When the stack empties without popping the end cell, every reachable cell
//	has been visited and order.Found() is false. No error is returned.
//
// Options:
//   - WithOnPush(fn)   discovery hook, called as a cell is pushed.
//   - WithOnVisit(fn)  pop hook; a returned error aborts traversal.
//
// Errors:
//   - ErrGridNil if g is nil.
//   - any error returned by OnVisit, wrapped with the failing cell.
//
// Complexity: O(N) time and memory for an N-cell grid.
package dfs
