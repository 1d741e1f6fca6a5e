// Package render turns a maze.Grid and the output of a search into a PNG.
//
// Each cell is a Scale×Scale square with a Border-pixel frame. Interiors are
// colored by what the cell is (start, end, blocked) and, for open cells, by
// what the search did with it (visited, current, on the path). Start and end
// always keep their own colors.
//
// Drawing uses github.com/fogleman/gg; the result is available as an
// image.Image (Draw), a PNG stream (EncodePNG) or a PNG file (SavePNG).
package render
