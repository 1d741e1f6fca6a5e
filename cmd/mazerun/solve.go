package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// outcome is what every algorithm reports back to the tool.
// Path is nil for bfs and dfs, which only produce a visit order.
type outcome struct {
	Order maze.VisitOrder
	Path  maze.Path
	Found bool
}

// generate builds the maze, retrying with fresh draws when -solvable is set.
// The seed actually used is returned so the run can be reproduced.
func generate(cfg *Config, log *slog.Logger) (*maze.Grid, int64, error) {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	tries := 1
	if cfg.Solvable {
		tries = cfg.MaxTries
	}
	for attempt := 1; attempt <= tries; attempt++ {
		g, err := maze.Generate(cfg.Width, cfg.Height, cfg.genOptions(rng)...)
		if err != nil {
			return nil, seed, err
		}
		if !cfg.Solvable || g.Reachable() {
			log.Debug("maze generated", "attempt", attempt, "start", g.Start(), "end", g.End())
			return g, seed, nil
		}
		log.Debug("maze unsolvable, regenerating", "attempt", attempt)
	}
	return nil, seed, fmt.Errorf("no solvable %dx%d maze after %d attempts", cfg.Width, cfg.Height, tries)
}

// solve dispatches to the configured algorithm.
func solve(g *maze.Grid, cfg *Config) (*outcome, error) {
	switch cfg.Algo {
	case "bfs":
		order, err := bfs.BFS(g)
		if err != nil {
			return nil, err
		}
		return &outcome{Order: order, Found: order.Found()}, nil
	case "dfs":
		order, err := dfs.DFS(g)
		if err != nil {
			return nil, err
		}
		return &outcome{Order: order, Found: order.Found()}, nil
	case "dijkstra":
		res, err := dijkstra.Dijkstra(g)
		if err != nil {
			return nil, err
		}
		return &outcome{Order: res.Order, Path: res.Path, Found: res.Found}, nil
	case "astar":
		res, err := astar.Search(g, cfg.Heuristic.Func())
		if err != nil {
			return nil, err
		}
		return &outcome{Order: res.Order, Path: res.Path, Found: res.Found}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Algo)
	}
}

// label names the algorithm for output, including the A* heuristic.
func (c *Config) label() string {
	if c.Algo == "astar" {
		return fmt.Sprintf("astar (%s)", c.Heuristic)
	}
	return c.Algo
}
