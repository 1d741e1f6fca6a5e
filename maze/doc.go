// Package maze models a rectangular grid maze for path-finding experiments.
//
// What:
//
//   - Cell carries a stable id, (x,y) coordinates, start/end flags and passability.
//   - Grid owns Width×Height cells addressed as grid[x][y], with ids assigned
//     column-major (all y for x=0, then x=1, …).
//   - Generate draws start and end uniformly and optionally scatters obstacles.
//   - Neighbors yields passable orthogonal cells in left, right, up, down order;
//     that order is the tie-break order of every search in mazepath.
//   - Components and Reachable analyse passable regions.
//
// Why:
//
//   - Animate and compare BFS, DFS, Dijkstra and A* on the same instance.
//   - Reproduce runs exactly: all randomness flows through WithSeed/WithRand.
//
// Complexity:
//
//   - Generate, ClearObstacles, Clone, Components: O(W×H) time and memory.
//   - Neighbors, SetStart, SetEnd, SetPassable: O(1).
//
// Options:
//
//   - WithSeed(seed):      deterministic generation.
//   - WithRand(r):         caller-owned RNG.
//   - WithObstacles(prob): each non-start/non-end cell blocked with probability 1/(prob+1).
//
// Errors:
//
//   - ErrInvalidDimension: width or height ≤ 0.
//   - ErrOutOfBounds:      coordinates outside the grid; the grid is unchanged.
//   - ErrProtectedCell:    an attempt to block the start or end cell.
//
// Unreachable ends are not errors; search results report them through
// VisitOrder.Found and Path.Found.
package maze
