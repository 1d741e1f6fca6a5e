// Package mazepath is a small playground for path finding on grid mazes:
// generate a maze, search it four classic ways, and look at what happened.
//
// 🚀 What is in the box?
//
//	• maze/      : the Grid and Cell model: seeded generation, 4-way
//	               neighbors, start/end and passability mutators, text dump
//	• bfs/       : breadth-first search, visit order in hop-distance layers
//	• dfs/       : iterative depth-first search with an explicit stack
//	• astar/     : one best-first engine with Zero, Manhattan and Euclidean
//	               heuristics; visit order, path and per-cell distances
//	• dijkstra/  : astar with the zero heuristic
//	• render/    : PNG snapshots of a grid, its visited cells and path
//	• cmd/mazerun : command-line driver tying it all together
//
// ✨ Guarantees
//
//   - Deterministic: fixed neighbor order (left, right, up, down) and
//     id tie-breaking; a seeded maze gives bit-identical runs.
//   - Searches work on a snapshot of the grid taken when they start.
//   - An unreachable end is a normal result, never an error.
//   - Hooks (OnVisit, OnEnqueue…) let callers animate every step.
//
// Quick example:
//
//	g, _ := maze.Generate(20, 10, maze.WithSeed(7), maze.WithObstacles(maze.DefaultProbability))
//	res, _ := astar.Search(g, astar.Manhattan)
//	fmt.Print(g.Overlay(res.Order, res.Path))
//
//	go run github.com/katalvlaran/mazepath/cmd/mazerun -algo astar -png maze.png
package mazepath
