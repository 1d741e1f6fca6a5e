package maze

import (
	"math/rand"
	"time"
)

// Option customizes Generate.
// Option constructors panic on meaningless arguments; Generate itself only
// returns errors.
type Option func(*genConfig)

// genConfig is the resolved configuration of a Generate call.
type genConfig struct {
	rng       *rand.Rand
	randomize bool
	prob      int
}

// defaultGenConfig returns an obstacle-free configuration with no RNG;
// Generate supplies a time-seeded source when none was configured.
func defaultGenConfig() genConfig {
	return genConfig{
		randomize: false,
		prob:      DefaultProbability,
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The RNG is advanced by Generate and must
// not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithObstacles enables random obstacles: each cell other than start and end
// becomes impassable with probability 1/(prob+1).
func WithObstacles(prob int) Option {
	if prob < 0 {
		panic("maze: WithObstacles(prob<0)")
	}
	return func(c *genConfig) {
		c.randomize = true
		c.prob = prob
	}
}

// resolve applies opts over the defaults and guarantees a non-nil RNG.
func resolve(opts []Option) genConfig {
	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}
