// Package maze provides the rectangular grid that every mazepath search runs on.
// It supports:
//
//   - Random generation with a seedable RNG and optional obstacles
//   - Orthogonal neighbor queries in a fixed left, right, up, down order
//   - In-place mutation of start, end and passability
//   - Reachability analysis over passable regions
//
// Cells are addressed as grid[x][y]; x indexes columns and y indexes rows.
package maze

import (
	"fmt"
)

// neighborOffsets lists the orthogonal moves in tie-break order: left, right, up, down.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Generate builds a width×height grid. Start and end are drawn uniformly and
// independently over all positions, so they may coincide. With WithObstacles
// every other cell is impassable with probability 1/(prob+1); without it every
// cell is passable. No reachability guarantee is made.
//
// Returns ErrInvalidDimension if width or height is not positive.
// Complexity: O(W×H) time and memory.
func Generate(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	cfg := resolve(opts)
	rng := cfg.rng

	// Draw order is part of the reproducibility contract.
	start := point{y: rng.Intn(height)}
	start.x = rng.Intn(width)
	end := point{y: rng.Intn(height)}
	end.x = rng.Intn(width)

	g := newGrid(width, height, start, end)
	if cfg.randomize {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				blocked := rng.Intn(cfg.prob+1) == 0
				c := &g.cells[x][y]
				if blocked && !c.Start && !c.End {
					c.Passable = false
				}
			}
		}
	}
	return g, nil
}

// New builds an obstacle-free width×height grid with start at (sx,sy) and end
// at (ex,ey). It is the deterministic counterpart of Generate.
//
// Returns ErrInvalidDimension for non-positive sizes and ErrOutOfBounds if
// either designated cell lies outside the grid.
func New(width, height, sx, sy, ex, ey int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	g := &Grid{Width: width, Height: height}
	if !g.InBounds(sx, sy) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, sx, sy)
	}
	if !g.InBounds(ex, ey) {
		return nil, fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, ex, ey)
	}
	return newGrid(width, height, point{sx, sy}, point{ex, ey}), nil
}

// newGrid allocates the cells in column-major order and assigns ids.
func newGrid(width, height int, start, end point) *Grid {
	cells := make([][]Cell, width)
	id := 0
	for x := 0; x < width; x++ {
		cells[x] = make([]Cell, height)
		for y := 0; y < height; y++ {
			cells[x][y] = Cell{
				ID:       id,
				X:        x,
				Y:        y,
				Start:    x == start.x && y == start.y,
				End:      x == end.x && y == end.y,
				Passable: true,
			}
			id++
		}
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		start:  start,
		end:    end,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// At returns a copy of the cell at (x,y).
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.cells[x][y], nil
}

// ByID returns the cell with the given id.
func (g *Grid) ByID(id int) (Cell, bool) {
	if id < 0 || id >= g.Size() {
		return Cell{}, false
	}
	return g.cells[id/g.Height][id%g.Height], true
}

// Start returns the designated start cell.
func (g *Grid) Start() Cell {
	return g.cells[g.start.x][g.start.y]
}

// End returns the designated end cell.
func (g *Grid) End() Cell {
	return g.cells[g.end.x][g.end.y]
}

// Cells returns copies of all cells in id order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Size())
	for x := range g.cells {
		out = append(out, g.cells[x]...)
	}
	return out
}

// Neighbors returns the passable, in-bounds orthogonal neighbors of c in the
// order left, right, up, down. Blocked or missing neighbors are omitted.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !g.InBounds(nx, ny) || !g.cells[nx][ny].Passable {
			continue
		}
		out = append(out, g.cells[nx][ny])
	}
	return out
}

// SetStart moves the start flag to (x,y) and makes that cell passable.
// On ErrOutOfBounds the grid is left unchanged.
func (g *Grid) SetStart(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.cells[g.start.x][g.start.y].Start = false
	g.start = point{x, y}
	g.cells[x][y].Start = true
	g.cells[x][y].Passable = true
	return nil
}

// SetEnd moves the end flag to (x,y) and makes that cell passable.
// On ErrOutOfBounds the grid is left unchanged.
func (g *Grid) SetEnd(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.cells[g.end.x][g.end.y].End = false
	g.end = point{x, y}
	g.cells[x][y].End = true
	g.cells[x][y].Passable = true
	return nil
}

// SetPassable sets the passability of (x,y).
// Returns ErrOutOfBounds for invalid coordinates and ErrProtectedCell when
// asked to block the start or end cell; the grid is unchanged on error.
func (g *Grid) SetPassable(x, y int, passable bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	c := &g.cells[x][y]
	if !passable && (c.Start || c.End) {
		return fmt.Errorf("%w: (%d,%d)", ErrProtectedCell, x, y)
	}
	c.Passable = passable
	return nil
}

// Toggle flips the passability of (x,y), as a mouse click in an editor would.
func (g *Grid) Toggle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.SetPassable(x, y, !g.cells[x][y].Passable)
}

// ClearObstacles makes every cell passable. Start and end are untouched.
func (g *Grid) ClearObstacles() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y].Passable = true
		}
	}
}

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, len(g.cells))
	for x := range g.cells {
		cells[x] = make([]Cell, len(g.cells[x]))
		copy(cells[x], g.cells[x])
	}
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  cells,
		start:  g.start,
		end:    g.end,
	}
}
