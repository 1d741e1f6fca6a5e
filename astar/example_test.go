package astar_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
)

// ExampleSearch finds a path around a wall with the Manhattan heuristic.
func ExampleSearch() {
	g, _ := maze.FromRows(
		"s _ _ _",
		"o o o _",
		"x _ _ _",
	)
	res, err := astar.Search(g, astar.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("hops:", res.Distance(g.End().ID))
	fmt.Print(g.Overlay(res.Order, res.Path))

	// Output:
	// path: [(0,0) (1,0) (2,0) (3,0) (3,1) (3,2) (2,2) (1,2) (0,2)]
	// hops: 8
	// /////////////
	// // s * * * //
	// // o o o * //
	// // x * * * //
	// /////////////
}

// ExampleParseKind selects a heuristic by name.
func ExampleParseKind() {
	k, err := astar.ParseKind("euclidean")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a := maze.Cell{X: 0, Y: 0}
	b := maze.Cell{X: 3, Y: 4}
	fmt.Println(k, k.Func()(a, b))

	// Output:
	// euclidean 5
}
