package sortselect

import (
	"math/rand"
	"time"
)

// defaultRand is the package-level generator quicksort's pivot draw
// falls back to when no Option overrides it, seeded once at init()
// rather than read from the unseeded global source.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// config collects Quicksort's tunables.
type config struct {
	rng *rand.Rand
}

// Option customizes Quicksort.
type Option func(*config)

// WithRand injects a caller-owned *rand.Rand for deterministic pivot
// selection in tests.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{rng: defaultRand}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
