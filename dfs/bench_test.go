package dfs_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/maze"
)

// BenchmarkDFS_Open measures DFS corner to corner on an open 300×300 grid.
func BenchmarkDFS_Open(b *testing.B) {
	g, err := maze.New(300, 300, 0, 0, 299, 299)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g)
	}
}

// BenchmarkDFS_Unreachable walls the end off so every reachable cell is visited.
func BenchmarkDFS_Unreachable(b *testing.B) {
	g, err := maze.New(300, 300, 0, 0, 299, 299)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	_ = g.SetPassable(298, 299, false)
	_ = g.SetPassable(299, 298, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g)
	}
}
