package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/maze"
)

// ExampleDFS shows depth-first order diving down before exploring sideways.
func ExampleDFS() {
	g, _ := maze.FromRows(
		"_ _ _ _",
		"_ s _ _",
		"_ _ x _",
		"_ _ _ _",
	)
	order, err := dfs.DFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	fmt.Println("visited:", len(order))

	// Output:
	// [(1,1) (1,2) (1,3) (2,3) (3,3) (3,2) (3,1) (3,0) (2,0) (0,3) (2,2)]
	// visited: 11
}
