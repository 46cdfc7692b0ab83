// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices); rows·cols ≤ graph size.
//   • Node id of (r,c) is r*cols + c (row-major).
//   • Every node of column 0 and column cols-1 gets a boundary edge first.
//   • Then horizontal edges (r,c)-(r,c+1), then vertical (r,c)-(r+1,c),
//     each in row-major order.
//   • Needs MaxDegree ≥ GridMaxDegree once rows and cols are both ≥ 2;
//     otherwise core reports ErrDegreeExceeded (wrapped).
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// Grid returns a Constructor that builds a rows×cols surface-code style
// lattice with open boundaries on the left and right edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := fits(MethodGrid, g, rows*cols); err != nil {
			return err
		}
		id := func(r, c int) core.NodeID { return core.NodeID(r*cols + c) }

		for r := 0; r < rows; r++ {
			if err := addBoundary(MethodGrid, g, cfg, id(r, 0)); err != nil {
				return err
			}
			if cols > 1 {
				if err := addBoundary(MethodGrid, g, cfg, id(r, cols-1)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if err := addEdge(MethodGrid, g, cfg, id(r, c), id(r, c+1)); err != nil {
					return err
				}
			}
		}
		for r := 0; r+1 < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addEdge(MethodGrid, g, cfg, id(r, c), id(r+1, c)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
