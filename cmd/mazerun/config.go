package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/render"
)

// Environment variables that override the built-in flag defaults.
const (
	envWidth     = "MAZE_WIDTH"
	envHeight    = "MAZE_HEIGHT"
	envProb      = "MAZE_PROB"
	envSeed      = "MAZE_SEED"
	envAlgo      = "MAZE_ALGO"
	envHeuristic = "MAZE_HEURISTIC"
	envLogLevel  = "MAZE_LOG_LEVEL"
)

// algorithms accepted by -algo.
var algorithms = []string{"bfs", "dfs", "dijkstra", "astar"}

// ExitError carries the process exit code for usage errors.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
type Config struct {
	Width, Height int
	Prob          int  // obstacle probability is 1/(Prob+1)
	Obstacles     bool // false generates an open grid
	Seed          int64
	Seeded        bool
	Algo          string
	Heuristic     astar.Kind
	Solvable      bool // regenerate until the end is reachable
	MaxTries      int
	PNG           string
	Scale         int
	LogLevel      slog.Level
}

// loadEnv reads an optional .env file into the process environment.
// Variables already set take precedence.
func loadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug(".env file not loaded", "error", err)
	}
}

// getEnvWithDefault returns the variable's value, or def when unset.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getEnvAsInt returns the variable as an int, or def when unset.
func getEnvAsInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

// parseLevel maps debug/info/warn/error to a slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return lvl, nil
}

// Parse processes command-line arguments on top of environment defaults.
// It returns the config, whether the program should exit cleanly (help), or
// an *ExitError for bad input.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	width, err := getEnvAsInt(envWidth, maze.DefaultWidth)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	height, err := getEnvAsInt(envHeight, maze.DefaultHeight)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	prob, err := getEnvAsInt(envProb, maze.DefaultProbability)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	seedDefault, err := getEnvAsInt(envSeed, 0)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	_, envSeeded := os.LookupEnv(envSeed)

	flagSet := flag.NewFlagSet("mazerun", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazerun - generate a grid maze and search it.

Usage:
  mazerun [options]

Environment:
  MAZE_WIDTH, MAZE_HEIGHT, MAZE_PROB, MAZE_SEED, MAZE_ALGO,
  MAZE_HEURISTIC and MAZE_LOG_LEVEL set defaults; a .env file is read if present.

Options:
`)
		flagSet.PrintDefaults()
	}

	widthFlag := flagSet.Int("width", width, "Number of columns.")
	heightFlag := flagSet.Int("height", height, "Number of rows.")
	probFlag := flagSet.Int("prob", prob, "Each cell is blocked with probability 1/(prob+1).")
	openFlag := flagSet.Bool("open", false, "Generate a grid without obstacles.")
	seedFlag := flagSet.Int64("seed", int64(seedDefault), "Random seed; 0 and unset means time-based.")
	algoFlag := flagSet.String("algo", getEnvWithDefault(envAlgo, "astar"), "Search algorithm: "+strings.Join(algorithms, ", ")+".")
	heurFlag := flagSet.String("heuristic", getEnvWithDefault(envHeuristic, astar.DefaultKind.String()), "A* heuristic: dijkstra, manhattan or euclidean.")
	solvableFlag := flagSet.Bool("solvable", false, "Regenerate until the end is reachable from the start.")
	triesFlag := flagSet.Int("max-tries", 100, "Generation attempts allowed with -solvable.")
	pngFlag := flagSet.String("png", "", "Write a PNG rendering of the result to this file.")
	scaleFlag := flagSet.Int("scale", render.DefaultScale, "Cell size in pixels for -png.")
	logLevelFlag := flagSet.String("log-level", getEnvWithDefault(envLogLevel, "info"), "Logging level: 'debug', 'info', 'warn', 'error'.")

	if err = flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	seeded := envSeeded
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	cfg := &Config{
		Width:     *widthFlag,
		Height:    *heightFlag,
		Prob:      *probFlag,
		Obstacles: !*openFlag,
		Seed:      *seedFlag,
		Seeded:    seeded,
		Algo:      strings.ToLower(strings.TrimSpace(*algoFlag)),
		Solvable:  *solvableFlag,
		MaxTries:  *triesFlag,
		PNG:       *pngFlag,
		Scale:     *scaleFlag,
	}
	if err = cfg.validate(*heurFlag, *logLevelFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

// validate checks ranges and resolves the named heuristic and log level.
func (c *Config) validate(heuristic, level string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d: width and height must be positive", c.Width, c.Height)
	}
	if c.Prob < 0 {
		return fmt.Errorf("invalid prob %d: must be non-negative", c.Prob)
	}
	if c.Solvable && c.MaxTries <= 0 {
		return fmt.Errorf("invalid max-tries %d: must be positive", c.MaxTries)
	}
	if c.PNG != "" && c.Scale < 3 {
		return fmt.Errorf("invalid scale %d: must be at least 3", c.Scale)
	}

	known := false
	for _, a := range algorithms {
		if a == c.Algo {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid algo %q: must be one of %s", c.Algo, strings.Join(algorithms, ", "))
	}

	k, err := astar.ParseKind(heuristic)
	if err != nil {
		return err
	}
	c.Heuristic = k

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	c.LogLevel = lvl

	return nil
}

// genOptions translates the config into maze generation options drawing
// from rng, so successive -solvable attempts produce different mazes.
func (c *Config) genOptions(rng *rand.Rand) []maze.Option {
	opts := []maze.Option{maze.WithRand(rng)}
	if c.Obstacles {
		opts = append(opts, maze.WithObstacles(c.Prob))
	}
	return opts
}
