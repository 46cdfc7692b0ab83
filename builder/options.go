// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and RandomState themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge ×4 weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithObservables overrides the per-edge observable mask generator.
// Panics on nil.
func WithObservables(fn ObservableFn) BuilderOption {
	if fn == nil {
		panic("builder: WithObservables(nil)")
	}
	return func(c *builderConfig) {
		c.obsFn = fn
	}
}

// WithClaimProbability sets the chance that RandomState claims a node.
// Panics unless 0 ≤ p ≤ 1.
func WithClaimProbability(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability {
		panic("builder: WithClaimProbability(p) requires 0 ≤ p ≤ 1")
	}
	return func(c *builderConfig) {
		c.claimP = p
	}
}

// WithMaxRadius bounds the raw region radii drawn by RandomState to
// [0, r). Panics if r < 1.
func WithMaxRadius(r uint64) BuilderOption {
	if r < 1 {
		panic("builder: WithMaxRadius(0)")
	}
	return func(c *builderConfig) {
		c.maxRadius = r
	}
}
