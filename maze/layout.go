package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidLayout indicates an unknown symbol or a start/end count other than one.
	ErrInvalidLayout = errors.New("maze: invalid layout")
)

// FromRows builds a grid from rows written with the dump symbols, top row
// first. Spaces and the "//" frame are ignored, so a row may be written as
// "s o x o", "so xo" or "// s o x o //". 'S' marks a cell that is both
// start and end.
//
// Returns ErrInvalidDimension for an empty layout, ErrNonRectangular for
// ragged rows and ErrInvalidLayout for unknown symbols or when start or end is
// missing or repeated.
func FromRows(rows ...string) (*Grid, error) {
	symbols := make([][]rune, 0, len(rows))
	for _, row := range rows {
		row = strings.ReplaceAll(row, "/", "")
		row = strings.ReplaceAll(row, " ", "")
		if row == "" {
			continue
		}
		symbols = append(symbols, []rune(row))
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimension)
	}
	h, w := len(symbols), len(symbols[0])
	for _, row := range symbols {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	var starts, ends []point
	blocked := make([]point, 0)
	for y, row := range symbols {
		for x, r := range row {
			switch r {
			case SymbolStart:
				starts = append(starts, point{x, y})
			case SymbolEnd:
				ends = append(ends, point{x, y})
			case 'S':
				starts = append(starts, point{x, y})
				ends = append(ends, point{x, y})
			case SymbolBlocked:
				blocked = append(blocked, point{x, y})
			case SymbolOpen:
			default:
				return nil, fmt.Errorf("%w: symbol %q at (%d,%d)", ErrInvalidLayout, r, x, y)
			}
		}
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: want one start and one end, got %d and %d",
			ErrInvalidLayout, len(starts), len(ends))
	}

	g := newGrid(w, h, starts[0], ends[0])
	for _, p := range blocked {
		g.cells[p.x][p.y].Passable = false
	}
	return g, nil
}
