package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
)

func TestHeuristics(t *testing.T) {
	a := maze.Cell{X: 1, Y: 1}
	b := maze.Cell{X: 4, Y: 5}

	assert.Equal(t, 0.0, astar.Zero(a, b))
	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Equal(t, 7.0, astar.Manhattan(b, a))
	assert.Equal(t, 5.0, astar.Euclidean(a, b))
	assert.InDelta(t, math.Sqrt2, astar.Euclidean(maze.Cell{}, maze.Cell{X: 1, Y: 1}), 1e-12)
	assert.Equal(t, 0.0, astar.Euclidean(b, b))
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want astar.Kind
	}{
		{"dijkstra", astar.KindDijkstra},
		{"zero", astar.KindDijkstra},
		{"Manhattan", astar.KindManhattan},
		{"  euclidean ", astar.KindEuclidean},
	}
	for _, tc := range cases {
		k, err := astar.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, k, tc.in)
		assert.NotNil(t, k.Func())
	}

	_, err := astar.ParseKind("chebyshev")
	require.ErrorIs(t, err, astar.ErrUnknownHeuristic)
	assert.Contains(t, err.Error(), `"chebyshev"`)
}

func TestKind_StringAndFunc(t *testing.T) {
	assert.Equal(t, "dijkstra", astar.KindDijkstra.String())
	assert.Equal(t, "manhattan", astar.KindManhattan.String())
	assert.Equal(t, "euclidean", astar.KindEuclidean.String())
	assert.Equal(t, "Kind(9)", astar.Kind(9).String())
	assert.Nil(t, astar.Kind(9).Func())
	assert.Equal(t, astar.KindManhattan, astar.DefaultKind)

	for _, k := range []astar.Kind{astar.KindDijkstra, astar.KindManhattan, astar.KindEuclidean} {
		back, err := astar.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
}

func TestDistance(t *testing.T) {
	n, ok := astar.Unvisited.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, "inf", astar.Unvisited.String())

	n, ok = astar.Reached(0).Value()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, "12", astar.Reached(12).String())

	assert.True(t, astar.Reached(3).Less(astar.Reached(4)))
	assert.False(t, astar.Reached(4).Less(astar.Reached(4)))
	assert.True(t, astar.Reached(1<<40).Less(astar.Unvisited))
	assert.False(t, astar.Unvisited.Less(astar.Reached(0)))
	assert.False(t, astar.Unvisited.Less(astar.Unvisited))

	var nilResult *astar.Result
	assert.Equal(t, astar.Unvisited, nilResult.Distance(0))
}
