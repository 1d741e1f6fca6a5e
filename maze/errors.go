package maze

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive width or height at construction.
	ErrInvalidDimension = errors.New("maze: width and height must be positive")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinates out of bounds")
	// ErrProtectedCell indicates an attempt to make the start or end cell impassable.
	ErrProtectedCell = errors.New("maze: start and end cells must stay passable")
)
