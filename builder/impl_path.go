// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n ≤ graph size (else ErrConstructFailed).
//   - Nodes 0 and n-1 get a boundary edge first (slot 0).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// Path returns a Constructor that builds the chain 0-1-…-(n-1) with the
// open boundary beyond both ends: the 1D repetition-code decoding graph.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := fits(MethodPath, g, n); err != nil {
			return err
		}

		if err := addBoundary(MethodPath, g, cfg, 0); err != nil {
			return err
		}
		if err := addBoundary(MethodPath, g, cfg, core.NodeID(n-1)); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, cfg, core.NodeID(i-1), core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
