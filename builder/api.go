// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(numNodes, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go; RandomState in state.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and states.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add boundary edges before any other edge of the same node (slot 0 rule).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a core.Graph of numNodes nodes with graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with the context
// "Build: %w" and returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Allocation: O(N·D) for the slot table.
//   - Applying K constructors: Σ cost of each constructor.
func Build(numNodes int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if numNodes < 1 {
		return nil, fmt.Errorf("Build: numNodes=%d: %w", numNodes, ErrTooFewVertices)
	}
	g := core.NewGraph(numNodes, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// fits reports an error when a constructor over n nodes does not fit g.
func fits(method string, g *core.Graph, n int) error {
	if n > g.NumNodes() {
		return fmt.Errorf("%s: n=%d exceeds graph size %d: %w", method, n, g.NumNodes(), ErrConstructFailed)
	}
	return nil
}

// addEdge adds u-v with a generated weight and observable mask.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v core.NodeID) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w, core.WithObservables(cfg.obsFn(cfg.rng))); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", method, u, v, w, err)
	}
	return nil
}

// addBoundary gives u a boundary edge with a generated weight and mask.
func addBoundary(method string, g *core.Graph, cfg builderConfig, u core.NodeID) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddBoundaryEdge(u, w, core.WithObservables(cfg.obsFn(cfg.rng))); err != nil {
		return fmt.Errorf("%s: AddBoundaryEdge(%d, w=%d): %w", method, u, w, err)
	}
	return nil
}
