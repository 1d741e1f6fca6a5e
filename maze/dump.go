package maze

import (
	"bufio"
	"io"
	"strings"
)

// Symbols used by the debug dump.
const (
	SymbolStart    = 's'
	SymbolEnd      = 'x'
	SymbolOpen     = '_'
	SymbolBlocked  = 'o'
	SymbolVisited  = '.'
	SymbolPathCell = '*'
)

// String renders the grid as a framed text dump, one line per row:
//
//	/////////////
//	// s o x o //
//	// _ o _ _ //
//	/////////////
//
// FromRows accepts the same text, so a dump can be pasted back as a fixture.
func (g *Grid) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the String form of g to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	return g.dump(w, nil)
}

// Overlay renders the dump with visited cells marked '.' and path cells marked
// '*'. Start and end keep their own symbols.
func (g *Grid) Overlay(order VisitOrder, path Path) string {
	marks := make(map[int]rune, len(order)+len(path))
	for _, c := range order {
		marks[c.ID] = SymbolVisited
	}
	for _, c := range path {
		marks[c.ID] = SymbolPathCell
	}
	var sb strings.Builder
	_, _ = g.dump(&sb, marks)
	return sb.String()
}

// dump writes the frame and every row; marks overrides the symbol of
// passable cells that are neither start nor end.
func (g *Grid) dump(w io.Writer, marks map[int]rune) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	frame := strings.Repeat("//", g.Width+2) + "/\n"

	cw.WriteString(frame)
	for y := 0; y < g.Height; y++ {
		cw.WriteString("// ")
		for x := 0; x < g.Width; x++ {
			cw.WriteRune(g.symbol(g.cells[x][y], marks))
			cw.WriteString(" ")
		}
		cw.WriteString("//\n")
	}
	cw.WriteString(frame)
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

// symbol picks the dump character for c.
func (g *Grid) symbol(c Cell, marks map[int]rune) rune {
	switch {
	case c.Start:
		return SymbolStart
	case c.End:
		return SymbolEnd
	case !c.Passable:
		return SymbolBlocked
	}
	if r, ok := marks[c.ID]; ok {
		return r
	}
	return SymbolOpen
}

// countingWriter keeps the first write error and the byte count.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) WriteString(s string) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.WriteString(s)
	cw.n += int64(n)
	cw.err = err
}

func (cw *countingWriter) WriteRune(r rune) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.WriteRune(r)
	cw.n += int64(n)
	cw.err = err
}
