// Command mazerun generates a random grid maze, searches it with BFS, DFS,
// Dijkstra or A*, and prints the maze with the visited cells and path.
// With -png it also writes a rendering of the result.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/mazepath/render"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic; it writes the report to outW.
func run(outW io.Writer, args []string) error {
	loadEnv()

	cfg, shouldExit, err := Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	g, seed, err := generate(cfg, log)
	if err != nil {
		return err
	}

	began := time.Now()
	res, err := solve(g, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Algo, err)
	}
	log.Info("search finished",
		"algo", cfg.label(),
		"visited", len(res.Order),
		"found", res.Found,
		"elapsed", time.Since(began),
	)

	fmt.Fprintf(outW, "algorithm: %s\n", cfg.label())
	fmt.Fprintf(outW, "maze: %dx%d seed %d start %v end %v\n", g.Width, g.Height, seed, g.Start(), g.End())
	fmt.Fprintf(outW, "visited: %d\n", len(res.Order))
	switch {
	case !res.Found:
		fmt.Fprintln(outW, "end unreachable")
	case res.Path != nil:
		fmt.Fprintf(outW, "path: %d hops\n", res.Path.Hops())
	default:
		fmt.Fprintln(outW, "end found")
	}
	fmt.Fprint(outW, g.Overlay(res.Order, res.Path))

	if cfg.PNG != "" {
		if err = render.SavePNG(cfg.PNG, g, res.Order, res.Path, render.WithScale(cfg.Scale)); err != nil {
			return err
		}
		log.Info("wrote image", "file", cfg.PNG)
	}
	return nil
}
