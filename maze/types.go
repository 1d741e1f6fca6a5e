package maze

import "fmt"

const (
	// DefaultWidth is the number of columns used by the demo tooling.
	DefaultWidth = 10
	// DefaultHeight is the number of rows used by the demo tooling.
	DefaultHeight = 10
	// DefaultProbability makes a cell impassable with probability 1/(7+1).
	DefaultProbability = 7
)

// Cell is a single grid position.
// ID is assigned once in column-major scan order (id = x*Height + y) and is the
// key used by every visited set and predecessor map.
type Cell struct {
	ID       int  // stable identity
	X, Y     int  // column and row, 0-based
	Start    bool // designated start
	End      bool // designated end; may coincide with Start
	Passable bool // false for obstacles
}

// String renders the coordinates as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Debug renders every field of the cell on one line, e.g.
// "x: 1 y: 2 id: 6 start not passable".
func (c Cell) Debug() string {
	s := fmt.Sprintf("x: %d y: %d id: %d", c.X, c.Y, c.ID)
	if c.Start {
		s += " start"
	}
	if c.End {
		s += " end"
	}
	if !c.Passable {
		s += " not passable"
	}
	return s
}

// point is an (x,y) pair used to remember where start and end live.
type point struct {
	x, y int
}

// Grid is a Width×Height maze addressed as cells[x][y].
// Exactly one cell carries Start and exactly one carries End at any time.
//
// A Grid has no internal locking: mutation and search on the same instance
// must be serialized by the caller. Searches work on a Clone taken at
// invocation time, so they never observe later mutations.
type Grid struct {
	Width, Height int
	cells         [][]Cell
	start, end    point
}

// VisitOrder is the sequence in which a search removed cells from its worklist.
// The first element is always the start cell.
type VisitOrder []Cell

// Last returns the most recently visited cell.
func (o VisitOrder) Last() (Cell, bool) {
	if len(o) == 0 {
		return Cell{}, false
	}
	return o[len(o)-1], true
}

// Found reports whether the traversal reached the end cell, i.e. whether the
// last visited cell is flagged End.
func (o VisitOrder) Found() bool {
	last, ok := o.Last()
	return ok && last.End
}

// Path is an ordered sequence of cells from start to its last element inclusive.
type Path []Cell

// Found reports whether the path terminates at the end cell.
func (p Path) Found() bool {
	return len(p) > 0 && p[len(p)-1].End
}

// Hops returns the number of edges in the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
