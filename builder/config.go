// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil                          (pure unless seeded)
//   • weightFn  = DefaultWeightFn              (DefaultEdgeWeight)
//   • obsFn     = NoObservables                (mask 0)
//   • claimP    = DefaultClaimProbability
//   • maxRadius = DefaultMaxRadius

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors and RandomState.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng       *rand.Rand
	weightFn  WeightFn
	obsFn     ObservableFn
	claimP    float64
	maxRadius uint64
}

// newBuilderConfig applies opts over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:  DefaultWeightFn,
		obsFn:     NoObservables,
		claimP:    DefaultClaimProbability,
		maxRadius: DefaultMaxRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
