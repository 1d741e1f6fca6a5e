package astar

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors returned by Search.
var (
	// ErrGridNil indicates that a nil *maze.Grid was passed to Search.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that Search was given a nil Heuristic.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnknownHeuristic indicates that ParseKind did not recognize a name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// Distance is the best known hop count from the start to a cell.
// The zero value is Unvisited: the cell never entered the queue.
type Distance struct {
	n       int
	reached bool
}

// Unvisited is the Distance of a cell no search has reached.
var Unvisited = Distance{}

// Reached returns the Distance of a cell n hops from the start.
func Reached(n int) Distance {
	return Distance{n: n, reached: true}
}

// Value returns the hop count and whether the cell was reached at all.
func (d Distance) Value() (int, bool) {
	return d.n, d.reached
}

// Less orders distances with Unvisited greater than every reached distance.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reached:
		return false
	case !o.reached:
		return true
	default:
		return d.n < o.n
	}
}

// String returns the hop count, or "inf" for Unvisited.
func (d Distance) String() string {
	if !d.reached {
		return "inf"
	}
	return strconv.Itoa(d.n)
}

// Result is the outcome of one best-first search.
//
// Order lists cells in the order they were popped from the queue. Path runs
// from the start to the last popped cell: that is the end cell when Found,
// otherwise whichever cell the search settled last.
type Result struct {
	Order maze.VisitOrder
	Path  maze.Path
	Found bool

	dist []Distance
}

// Distance reports the best known distance of the cell with the given id.
// Ids outside the grid, and cells the search never reached, are Unvisited.
func (r *Result) Distance(id int) Distance {
	if r == nil || id < 0 || id >= len(r.dist) {
		return Unvisited
	}
	return r.dist[id]
}

// Options holds the hooks used to observe a search.
type Options struct {
	// OnEnqueue is called whenever a cell is queued or its queue entry is
	// improved, with its new distance from the start.
	OnEnqueue func(c maze.Cell, g int)

	// OnVisit is called when a cell is popped, with its settled distance.
	// A non-nil error aborts the search.
	OnVisit func(c maze.Cell, g int) error
}

// Option configures Search. Dijkstra in package dijkstra accepts the same options.
type Option func(*Options)

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnEnqueue installs fn as the enqueue hook.
func WithOnEnqueue(fn func(c maze.Cell, g int)) Option {
	return func(o *Options) {
		o.OnEnqueue = fn
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(c maze.Cell, g int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
