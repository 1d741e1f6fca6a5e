package render

import (
	"errors"
	"image/color"
)

// Defaults for cell geometry, in pixels.
const (
	DefaultScale  = 20
	DefaultBorder = 1
)

var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to a draw call.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrBadScale indicates a non-positive cell scale.
	ErrBadScale = errors.New("render: scale must be positive")

	// ErrBadBorder indicates a border that is negative or leaves no cell interior.
	ErrBadBorder = errors.New("render: border must be non-negative and smaller than half the scale")
)

// Palette holds the colors used for each kind of cell.
type Palette struct {
	Background color.Color
	Open       color.Color
	Blocked    color.Color
	Border     color.Color
	Start      color.Color
	End        color.Color
	StartEnd   color.Color // start and end on the same cell
	Visited    color.Color
	Current    color.Color // last cell of an unfinished search
	Path       color.Color
}

// DefaultPalette returns the dark theme used by the mazerun tool.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 45, G: 45, B: 45, A: 255},
		Open:       color.RGBA{R: 225, G: 225, B: 225, A: 255},
		Blocked:    color.RGBA{R: 65, G: 65, B: 65, A: 255},
		Border:     color.RGBA{R: 35, G: 35, B: 35, A: 255},
		Start:      color.RGBA{R: 160, G: 212, B: 104, A: 255},
		End:        color.RGBA{R: 72, G: 207, B: 173, A: 255},
		StartEnd:   color.RGBA{R: 252, G: 110, B: 81, A: 255},
		Visited:    color.RGBA{R: 252, G: 110, B: 81, A: 255},
		Current:    color.RGBA{R: 216, G: 51, B: 74, A: 255},
		Path:       color.RGBA{R: 255, A: 255},
	}
}

// Options configures a drawing.
type Options struct {
	Scale   int // side of one cell in pixels
	Border  int // frame drawn inside each cell
	Palette Palette
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 20px cell with a 1px border and DefaultPalette.
func DefaultOptions() Options {
	return Options{
		Scale:   DefaultScale,
		Border:  DefaultBorder,
		Palette: DefaultPalette(),
	}
}

// WithScale sets the cell side in pixels. Panics if n <= 0.
func WithScale(n int) Option {
	if n <= 0 {
		panic(ErrBadScale.Error())
	}
	return func(o *Options) {
		o.Scale = n
	}
}

// WithBorder sets the per-cell border width. Panics if n < 0.
// A border too wide for the scale is reported by the draw call.
func WithBorder(n int) Option {
	if n < 0 {
		panic(ErrBadBorder.Error())
	}
	return func(o *Options) {
		o.Border = n
	}
}

// WithPalette replaces the whole palette.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		o.Palette = p
	}
}
