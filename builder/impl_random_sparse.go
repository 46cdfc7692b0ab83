// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Pass 1: for each node i asc, add a boundary edge with probability p.
//   - Pass 2: for each unordered pair {i,j}, i<j asc, add an edge with
//     probability p when both endpoints still have a free slot.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n ≤ graph size (else ErrConstructFailed).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Full nodes are skipped, never reported: the result respects MaxDegree.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed trial order; identical graphs for a fixed seed and options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// RandomSparse returns a Constructor that samples a sparse decoding graph
// over n nodes: boundary edges and node pairs are each kept with
// probability p, subject to the slot capacity.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := fits(MethodRandomSparse, g, n); err != nil {
			return err
		}

		// keep draws once per trial; p ∈ {0,1} needs no RNG.
		keep := func() bool {
			if cfg.rng == nil {
				return p == 1.0
			}
			return cfg.rng.Float64() < p
		}
		free := func(u core.NodeID) bool { return g.Degree(u) < g.MaxDegree() }

		for i := 0; i < n; i++ {
			u := core.NodeID(i)
			if g.Degree(u) != 0 || !keep() {
				continue
			}
			if err := addBoundary(MethodRandomSparse, g, cfg, u); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := core.NodeID(i), core.NodeID(j)
				if !keep() || !free(u) || !free(v) {
					continue
				}
				if err := addEdge(MethodRandomSparse, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
