package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/maze"
)

func coords(order maze.VisitOrder) []string {
	out := make([]string, len(order))
	for i, c := range order {
		out[i] = c.String()
	}
	return out
}

func manhattan(a, b maze.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// TestDFS_NilGrid ensures DFS rejects a nil grid.
func TestDFS_NilGrid(t *testing.T) {
	order, err := dfs.DFS(nil)
	require.ErrorIs(t, err, dfs.ErrGridNil)
	require.Nil(t, order)
}

// TestDFS_Orders pins the exact pop order on small layouts.
func TestDFS_Orders(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		want  []string
		found bool
	}{
		{
			name: "EndNextToStart",
			rows: []string{
				"s x _ _",
				"o _ _ _",
				"_ _ _ _",
				"_ _ _ _",
			},
			want:  []string{"(0,0)", "(1,0)"},
			found: true,
		},
		{
			// the only way up is around the walls, so DFS wanders first
			name: "EndAboveStart",
			rows: []string{
				"_ _ x _",
				"_ o s o",
				"_ _ _ _",
				"_ _ _ _",
			},
			want: []string{
				"(2,1)", "(2,2)", "(2,3)", "(3,3)", "(1,3)", "(0,3)", "(0,2)",
				"(0,1)", "(0,0)", "(1,0)", "(3,2)", "(1,2)", "(2,0)",
			},
			found: true,
		},
		{
			name: "Corridor",
			rows: []string{
				"s _ _",
				"o o _",
				"x _ _",
			},
			want:  []string{"(0,0)", "(1,0)", "(2,0)", "(2,1)", "(2,2)", "(1,2)", "(0,2)"},
			found: true,
		},
		{
			name: "Unreachable",
			rows: []string{
				"s _ o x",
				"_ _ o _",
			},
			want:  []string{"(0,0)", "(0,1)", "(1,1)", "(1,0)"},
			found: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.FromRows(tc.rows...)
			require.NoError(t, err)

			order, err := dfs.DFS(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, coords(order))
			assert.Equal(t, tc.found, order.Found())
		})
	}
}

// TestDFS_OpenGrid follows the down branch first on an open 4×4 grid.
func TestDFS_OpenGrid(t *testing.T) {
	g, err := maze.New(4, 4, 1, 1, 2, 2)
	require.NoError(t, err)

	order, err := dfs.DFS(g)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(1,1)", "(1,2)", "(1,3)", "(2,3)", "(3,3)", "(3,2)",
		"(3,1)", "(3,0)", "(2,0)", "(0,3)", "(2,2)",
	}, coords(order))
	assert.GreaterOrEqual(t, len(order), manhattan(g.Start(), g.End())+1)
}

// TestDFS_StartIsEnd returns just the start cell.
func TestDFS_StartIsEnd(t *testing.T) {
	g, err := maze.New(2, 2, 0, 1, 0, 1)
	require.NoError(t, err)

	order, err := dfs.DFS(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0,1)"}, coords(order))
}

// TestDFS_Hooks checks push depths, the visit hook and abort wrapping.
func TestDFS_Hooks(t *testing.T) {
	g, err := maze.New(4, 1, 0, 0, 3, 0)
	require.NoError(t, err)

	var pushed []int
	var visited []int
	order, err := dfs.DFS(g,
		dfs.WithOnPush(func(_ maze.Cell, depth int) { pushed = append(pushed, depth) }),
		dfs.WithOnVisit(func(_ maze.Cell, depth int) error {
			visited = append(visited, depth)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0,0)", "(1,0)", "(2,0)", "(3,0)"}, coords(order))
	assert.Equal(t, []int{0, 1, 2, 3}, pushed)
	assert.Equal(t, []int{0, 1, 2, 3}, visited)

	stop := errors.New("stop")
	order, err = dfs.DFS(g, dfs.WithOnVisit(func(c maze.Cell, _ int) error {
		if c.X == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Len(t, order, 3)
}

// TestDFS_RandomMazes checks invariants across seeded mazes: no repeats, a
// found order ends at the end cell, and an unfound one covers the start's
// whole component.
func TestDFS_RandomMazes(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g, err := maze.Generate(12, 9, maze.WithSeed(seed), maze.WithObstacles(3))
		require.NoError(t, err)

		order, err := dfs.DFS(g)
		require.NoError(t, err)
		require.NotEmpty(t, order)
		require.Equal(t, g.Start(), order[0])

		seen := make(map[int]bool, len(order))
		for _, c := range order {
			require.False(t, seen[c.ID], "seed %d repeats %v", seed, c)
			seen[c.ID] = true
			require.True(t, c.Passable)
		}

		require.Equal(t, g.Reachable(), order.Found(), "seed %d", seed)
		if order.Found() {
			require.GreaterOrEqual(t, len(order), manhattan(g.Start(), g.End())+1)
			continue
		}
		for _, comp := range g.Components() {
			if contains(comp, g.Start().ID) {
				require.Len(t, order, len(comp), "seed %d", seed)
			}
		}
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
