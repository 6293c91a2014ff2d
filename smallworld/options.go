// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for New.
// Policy:
//   - Option constructors panic on nil arguments; New and the methods never panic,
//     a panicking ID scheme surfaces as builder.ErrConstructFailed.
//   - Later options override earlier ones.

package smallworld

import (
	"math/rand"

	"github.com/katalvlaran/smallworld/builder"
)

// Option customizes a Graph at construction time.
type Option func(*config)

type config struct {
	idFn   builder.IDFn
	rng    *rand.Rand
	strict bool
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: builder.DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a private *rand.Rand for rewiring.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for rewiring. r is shared, not copied. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("smallworld: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithIDScheme labels vertex i with fn(i). Panics on nil.
func WithIDScheme(fn builder.IDFn) Option {
	if fn == nil {
		panic("smallworld: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithStrictRewiring draws replacement targets only among vertices that are
// not already neighbors, so rewiring never collapses two edges into one.
func WithStrictRewiring() Option {
	return func(c *config) {
		c.strict = true
	}
}
