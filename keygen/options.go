// SPDX-License-Identifier: MIT
// Package: assoc/keygen
//
// options.go - functional options and the resolved generator config.
//
// Contract:
//   • Options apply in order (last wins).
//   • Option constructors panic on nil inputs; generators never panic.
//   • No RNG unless WithSeed/WithRand is given.

package keygen

import "math/rand"

// Option customizes key generation.
type Option func(*config)

type config struct {
	start   int
	step    int
	modulus int
	rng     *rand.Rand
}

const (
	defaultStart   = 0
	defaultStep    = 1
	defaultModulus = 10 // matches the default table bin count
)

func newConfig(opts ...Option) config {
	cfg := config{start: defaultStart, step: defaultStep, modulus: defaultModulus}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStart sets the first (smallest) key.
func WithStart(start int) Option {
	return func(c *config) { c.start = start }
}

// WithStep sets the distance between consecutive keys. Zero is rejected by
// the generators when more than one key is requested.
func WithStep(step int) Option {
	return func(c *config) { c.step = step }
}

// WithModulus sets the spacing used by Colliding. Panics if m <= 0.
func WithModulus(m int) Option {
	if m <= 0 {
		panic("keygen: WithModulus(m<=0)")
	}
	return func(c *config) { c.modulus = m }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("keygen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible shuffles.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
