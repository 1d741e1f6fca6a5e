// Package dfs defines types and options for depth-first search over a
// maze.Grid: visit and push hooks and sentinel errors.
package dfs

import (
	"errors"

	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds the hooks used to observe a DFS run.
// Complexity remains O(N) when hooks are O(1).
type DFSOptions struct {
	// OnPush, if non-nil, is invoked when a cell is discovered, marked
	// visited and pushed on the stack. depth is the discovery depth.
	OnPush func(c maze.Cell, depth int)

	// OnVisit, if non-nil, is invoked when a cell is popped and appended to
	// the visitation order. Returning an error aborts traversal with it.
	OnVisit func(c maze.Cell, depth int) error
}

// DefaultOptions returns a DFSOptions struct with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnPush:  nil,
		OnVisit: nil,
	}
}

// WithOnPush returns an Option that installs fn as the discovery hook.
func WithOnPush(fn func(c maze.Cell, depth int)) Option {
	return func(o *DFSOptions) {
		o.OnPush = fn
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(c maze.Cell, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
