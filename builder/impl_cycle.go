// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); n ≤ graph size (else ErrConstructFailed).
//   • Emits edges i-(i+1)%n for i=0..n-1 in stable order. No boundary.
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// Cycle returns a Constructor that builds the ring 0-1-…-(n-1)-0, a closed
// decoding graph whose nodes only ever meet other regions.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := fits(MethodCycle, g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, cfg, core.NodeID(i), core.NodeID((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
