// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the callbacks used to observe a BFS run.
type BFSOptions struct {
	// OnEnqueue is called when a cell is marked visited and appended to the
	// queue. Receives the cell and its hop distance from the start.
	OnEnqueue func(c maze.Cell, depth int)

	// OnVisit is called when a cell is dequeued and appended to the
	// visitation order. If it returns an error, BFS aborts and propagates it.
	OnVisit func(c maze.Cell, depth int) error
}

// DefaultOptions returns a BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(maze.Cell, int) {},
		OnVisit:   func(maze.Cell, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c maze.Cell, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c maze.Cell, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
