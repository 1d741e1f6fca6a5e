package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must never return a negative value; on a grid with unit moves an
// admissible heuristic never exceeds the true hop count.
type Heuristic func(from, goal maze.Cell) float64

// Zero always estimates 0, turning Search into Dijkstra's algorithm.
func Zero(_, _ maze.Cell) float64 {
	return 0
}

// Manhattan returns |dx|+|dy|, exact on an open grid with 4-way moves.
func Manhattan(from, goal maze.Cell) float64 {
	return math.Abs(float64(from.X-goal.X)) + math.Abs(float64(from.Y-goal.Y))
}

// Euclidean returns the straight-line distance sqrt(dx²+dy²).
func Euclidean(from, goal maze.Cell) float64 {
	dx := float64(from.X - goal.X)
	dy := float64(from.Y - goal.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Kind names one of the built-in heuristics.
type Kind int

const (
	// KindDijkstra selects Zero.
	KindDijkstra Kind = iota
	// KindManhattan selects Manhattan.
	KindManhattan
	// KindEuclidean selects Euclidean.
	KindEuclidean
)

// DefaultKind is the heuristic used when none is chosen.
const DefaultKind = KindManhattan

var kindNames = map[Kind]string{
	KindDijkstra:  "dijkstra",
	KindManhattan: "manhattan",
	KindEuclidean: "euclidean",
}

// String returns the lower-case name accepted by ParseKind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Func returns the heuristic for k, or nil for an unknown Kind.
func (k Kind) Func() Heuristic {
	switch k {
	case KindDijkstra:
		return Zero
	case KindManhattan:
		return Manhattan
	case KindEuclidean:
		return Euclidean
	default:
		return nil
	}
}

// ParseKind maps a name such as "manhattan" to its Kind. Matching ignores
// case and surrounding space; "zero" is accepted for KindDijkstra.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "zero" {
		return KindDijkstra, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}
