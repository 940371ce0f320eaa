// SPDX-License-Identifier: MIT
// Package: graphy/generator
//
// options.go: functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics; it returns errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import (
	"math/rand"
)

// Option customizes a Generator before any network is produced.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithEnduranceWeights sets the draw weights of endurance 1, 2 and 3 for
// ordinary military units. Weights need not sum to one; they are
// normalized. Panics if any weight is negative or all are zero.
func WithEnduranceWeights(w1, w2, w3 float64) Option {
	if w1 < 0 || w2 < 0 || w3 < 0 || w1+w2+w3 <= 0 {
		panic("generator: WithEnduranceWeights requires non-negative weights with a positive sum")
	}
	return func(c *genConfig) {
		c.enduranceWeights = [3]float64{w1, w2, w3}
	}
}

// WithSeparation overrides the origin/destination index band half-width
// (default 2·√N+2). A destination is drawn only from indices outside
// [origin−step, origin+step]. Panics if step < 0.
func WithSeparation(step int) Option {
	if step < 0 {
		panic("generator: WithSeparation(step<0)")
	}
	return func(c *genConfig) {
		c.separation = step
		c.separationSet = true
	}
}
