package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/maze"
)

// ExampleBFS demonstrates BFS layering on a 3×3 maze with one wall.
func ExampleBFS() {
	g, _ := maze.FromRows(
		"s _ _",
		"o o _",
		"x _ _",
	)
	order, err := bfs.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	fmt.Println("found:", order.Found())
	fmt.Print(g.Overlay(order, nil))

	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
	// found: true
	// ///////////
	// // s . . //
	// // o o . //
	// // x . . //
	// ///////////
}
