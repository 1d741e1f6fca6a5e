package maze_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// TestComponents_Simple finds two passable regions split by a wall column.
//
//	s _ o _
//	_ _ o x
func TestComponents_Simple(t *testing.T) {
	g, err := maze.FromRows(
		"s _ o _",
		"_ _ o x",
	)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.Equal(t, g.Start().ID, comps[0][0], "first component starts at the lowest id")
	assert.False(t, g.Reachable())
}

// TestComponents_AllBlockedButEnds: start and end isolated by walls.
func TestComponents_AllBlockedButEnds(t *testing.T) {
	g, err := maze.FromRows(
		"s o",
		"o x",
	)
	require.NoError(t, err)
	assert.Len(t, g.Components(), 2)
	assert.False(t, g.Reachable())
}

// TestReachable_Open: any open grid is a single region.
func TestReachable_Open(t *testing.T) {
	g, err := maze.New(5, 3, 0, 0, 4, 2)
	require.NoError(t, err)
	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 15)
	assert.True(t, g.Reachable())
}

// TestReachable_StartIsEnd is trivially reachable even when walled in.
func TestReachable_StartIsEnd(t *testing.T) {
	g, err := maze.FromRows(
		"o o o",
		"o S o",
		"o o o",
	)
	require.NoError(t, err)
	assert.True(t, g.Reachable())
}
