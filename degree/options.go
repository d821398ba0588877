// SPDX-License-Identifier: MIT
// Package: epinet/degree
//
// options.go — functional options for randomized selection.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil RNG).
//   • Without an option, Approximate draws from the math/rand global source.

package degree

import "math/rand"

// Option configures Approximate.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// intn draws from o.rng, falling back to the global source.
func (o options) intn(n int) int {
	if o.rng == nil {
		return rand.Intn(n)
	}

	return o.rng.Intn(n)
}

// WithRand uses r for random draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("degree: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed uses a fresh deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}
