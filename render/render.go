// Package render draws a maze.Grid together with a search's visit order and
// path into a raster image, one square per cell.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/mazepath/maze"
)

// Draw renders g with the visited cells of order and the cells of path.
// Either may be nil. When order does not end at the end cell its last cell is
// highlighted as the current one.
//
// Layers, lowest first: open or blocked, visited, current, path, start/end.
func Draw(g *maze.Grid, order maze.VisitOrder, path maze.Path, opts ...Option) (image.Image, error) {
	dc, err := draw(g, order, path, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG writes the drawing as PNG to w.
func EncodePNG(w io.Writer, g *maze.Grid, order maze.VisitOrder, path maze.Path, opts ...Option) error {
	dc, err := draw(g, order, path, opts)
	if err != nil {
		return err
	}
	if err = png.Encode(w, dc.Image()); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the drawing as a PNG file at filename.
func SavePNG(filename string, g *maze.Grid, order maze.VisitOrder, path maze.Path, opts ...Option) error {
	dc, err := draw(g, order, path, opts)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(filename); err != nil {
		return fmt.Errorf("render: save %s: %w", filename, err)
	}
	return nil
}

// cellKind ranks what a cell shows; higher kinds paint over lower ones.
type cellKind int

const (
	kindNone cellKind = iota
	kindVisited
	kindCurrent
	kindPath
)

func draw(g *maze.Grid, order maze.VisitOrder, path maze.Path, opts []Option) (*gg.Context, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Scale <= 0 {
		return nil, ErrBadScale
	}
	if o.Border < 0 || 2*o.Border >= o.Scale {
		return nil, fmt.Errorf("%w: border %d, scale %d", ErrBadBorder, o.Border, o.Scale)
	}

	kinds := make(map[int]cellKind, len(order)+len(path))
	mark := func(id int, k cellKind) {
		if k > kinds[id] {
			kinds[id] = k
		}
	}
	for _, c := range order {
		mark(c.ID, kindVisited)
	}
	if last, ok := order.Last(); ok && !last.End {
		mark(last.ID, kindCurrent)
	}
	for _, c := range path {
		mark(c.ID, kindPath)
	}

	dc := gg.NewContext(g.Width*o.Scale, g.Height*o.Scale)
	dc.SetColor(o.Palette.Background)
	dc.Clear()

	s := float64(o.Scale)
	b := float64(o.Border)
	for _, c := range g.Cells() {
		x, y := float64(c.X)*s, float64(c.Y)*s
		if o.Border > 0 {
			dc.SetColor(o.Palette.Border)
			dc.DrawRectangle(x, y, s, s)
			dc.Fill()
		}
		dc.SetColor(o.Palette.fill(c, kinds[c.ID]))
		dc.DrawRectangle(x+b, y+b, s-2*b, s-2*b)
		dc.Fill()
	}

	return dc, nil
}

// fill picks the interior color of c.
func (p Palette) fill(c maze.Cell, k cellKind) color.Color {
	switch {
	case c.Start && c.End:
		return p.StartEnd
	case c.Start:
		return p.Start
	case c.End:
		return p.End
	case !c.Passable:
		return p.Blocked
	}
	switch k {
	case kindPath:
		return p.Path
	case kindCurrent:
		return p.Current
	case kindVisited:
		return p.Visited
	default:
		return p.Open
	}
}
