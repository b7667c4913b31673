package scenegen

import (
	"errors"
	"math/rand"
)

// Sentinel errors for scene generation.
var (
	// ErrNoFields indicates an assembler with no field configurations.
	ErrNoFields = errors.New("scenegen: at least one field config is required")
	// ErrNilFactory indicates a nil relation factory.
	ErrNilFactory = errors.New("scenegen: relation factory must not be nil")
	// ErrBadBatchSize indicates a requested batch of fewer than one scene.
	ErrBadBatchSize = errors.New("scenegen: batch size must be at least 1")
	// ErrDrawLimit indicates rejection sampling exhausted its draw budget
	// before both label pools filled. Callers should raise MaxDraws or
	// switch to the Directed strategy.
	ErrDrawLimit = errors.New("scenegen: rejection-sampling draw limit exceeded")
	// ErrRecursionLimit indicates directed balancing exhausted its correction
	// rounds, typically a balancer/relation direction mismatch.
	ErrRecursionLimit = errors.New("scenegen: balancing round limit exceeded")
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultRNGSeed is the fixed seed applied when no seed or RNG is given.
	defaultRNGSeed int64 = 1
	// DefaultMaxDraws bounds PostHoc's rejection loop (full-batch draws).
	DefaultMaxDraws = 64
	// DefaultMaxRounds bounds Directed's correction rounds.
	DefaultMaxRounds = 20
)

// config aggregates assembler knobs resolved from functional options.
type config struct {
	rng *rand.Rand
}

// Option customizes an Assembler before construction begins.
type Option func(*config)

// WithSeed installs a deterministic RNG with the given seed.
// Seed 0 maps to the fixed default seed so the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		s := seed
		if s == 0 {
			s = defaultRNGSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand supplies an explicit RNG. Panics on nil to surface programmer
// error early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scenegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// newConfig resolves options over deterministic defaults, last-wins.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	return cfg
}
