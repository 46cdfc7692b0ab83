// File: buffers.go
// Role: flat, fixed-width argument buffers of the accelerator kernel and the
//       packing from (core.Graph, core.Snapshot).
// Layout:
//   - Per-node tables are indexed by node id.
//   - Slot tables are row-major N×MaxDegree: entry [u*MaxDegree+i] is slot i of u.
//   - Unused slot columns are zero; only columns < NumNeighbors[u] are read.

package kernel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/radius"
)

// BoundaryNeighbor is the neighbor id marking the open boundary on the wire.
const BoundaryNeighbor uint32 = 0xFFFFFFFF

// Sentinel errors for buffer validation.
var (
	// ErrShape indicates a buffer whose length disagrees with the declared sizes.
	ErrShape = errors.New("kernel: buffer shape mismatch")

	// ErrBadNeighbor indicates a neighbor id out of range, or a boundary
	// marker outside column 0.
	ErrBadNeighbor = errors.New("kernel: invalid neighbor id")

	// ErrBadRegion indicates a claim naming a region outside the radius table.
	ErrBadRegion = errors.New("kernel: invalid region id")
)

// Buffers mirrors the kernel argument list one field per argument.
type Buffers struct {
	NumNodes   uint32
	NumRegions uint32
	MaxDegree  uint32

	NumNeighbors         []uint32 // [N]
	Radius               []uint64 // [R] region radius, flags in the two low bits
	RegionThatArrivedTop []uint32 // [N] 0xFFFFFFFF when unclaimed
	WrappedRadiusCached  []uint32 // [N] 0..3

	Neighbors           []uint32 // [N×D]
	NeighborWeights     []uint32 // [N×D] ×4 fixed point
	NeighborObservables []uint64 // [N×D] carried, not read by the kernel
}

// Pack flattens g and s into kernel buffers.
//
// Steps:
//  1. Check that g and s agree on the node count.
//  2. Copy the region radius, claim and cache tables.
//  3. Copy each node's populated slots into its row; unused columns stay zero.
//
// Complexity: O(N·D + R).
func Pack(g *core.Graph, s core.Snapshot) (*Buffers, error) {
	if g == nil {
		return nil, fmt.Errorf("Pack: %w", core.ErrNilGraph)
	}
	n, d := g.NumNodes(), g.MaxDegree()
	if s.NumNodes() != n {
		return nil, fmt.Errorf("Pack: graph has %d nodes, snapshot %d: %w", n, s.NumNodes(), ErrShape)
	}

	regions := s.Regions()
	claims, caches := s.Claims()
	b := &Buffers{
		NumNodes:             uint32(n),
		NumRegions:           uint32(len(regions)),
		MaxDegree:            uint32(d),
		NumNeighbors:         make([]uint32, n),
		Radius:               regions,
		RegionThatArrivedTop: make([]uint32, n),
		WrappedRadiusCached:  caches,
		Neighbors:            make([]uint32, n*d),
		NeighborWeights:      make([]uint32, n*d),
		NeighborObservables:  make([]uint64, n*d),
	}
	for u := 0; u < n; u++ {
		b.RegionThatArrivedTop[u] = uint32(claims[u])

		edges := g.Edges(core.NodeID(u))
		b.NumNeighbors[u] = uint32(len(edges))
		row := u * d
		for i, e := range edges {
			b.Neighbors[row+i] = uint32(e.Neighbor)
			b.NeighborWeights[row+i] = e.Weight
			b.NeighborObservables[row+i] = e.Observables
		}
	}

	return b, nil
}

// Validate checks lengths and id ranges. Run assumes a validated buffer set.
//
// Complexity: O(N·D).
func (b *Buffers) Validate() error {
	n, r, d := int(b.NumNodes), int(b.NumRegions), int(b.MaxDegree)

	switch {
	case len(b.NumNeighbors) != n:
		return fmt.Errorf("Validate: num_neighbors len %d, want %d: %w", len(b.NumNeighbors), n, ErrShape)
	case len(b.Radius) != r:
		return fmt.Errorf("Validate: radius len %d, want %d: %w", len(b.Radius), r, ErrShape)
	case len(b.RegionThatArrivedTop) != n:
		return fmt.Errorf("Validate: region_that_arrived_top len %d, want %d: %w", len(b.RegionThatArrivedTop), n, ErrShape)
	case len(b.WrappedRadiusCached) != n:
		return fmt.Errorf("Validate: wrapped_radius_cached len %d, want %d: %w", len(b.WrappedRadiusCached), n, ErrShape)
	case len(b.Neighbors) != n*d:
		return fmt.Errorf("Validate: neighbors len %d, want %d: %w", len(b.Neighbors), n*d, ErrShape)
	case len(b.NeighborWeights) != n*d:
		return fmt.Errorf("Validate: neighbor_weights len %d, want %d: %w", len(b.NeighborWeights), n*d, ErrShape)
	case len(b.NeighborObservables) != n*d:
		return fmt.Errorf("Validate: neighbor_observables len %d, want %d: %w", len(b.NeighborObservables), n*d, ErrShape)
	}

	for u := 0; u < n; u++ {
		if b.WrappedRadiusCached[u] > radius.MaxCached {
			return fmt.Errorf("Validate: node %d cache %d: %w", u, b.WrappedRadiusCached[u], ErrShape)
		}
		if reg := b.RegionThatArrivedTop[u]; reg != uint32(core.NoRegion) && int(reg) >= r {
			return fmt.Errorf("Validate: node %d region %d: %w", u, reg, ErrBadRegion)
		}

		deg := int(b.NumNeighbors[u])
		if deg > d {
			return fmt.Errorf("Validate: node %d degree %d > %d: %w", u, deg, d, ErrShape)
		}
		for i := 0; i < deg; i++ {
			v := b.Neighbors[u*d+i]
			if v == BoundaryNeighbor {
				if i != 0 {
					return fmt.Errorf("Validate: node %d boundary in slot %d: %w", u, i, ErrBadNeighbor)
				}
				continue
			}
			if int(v) >= n {
				return fmt.Errorf("Validate: node %d slot %d neighbor %d: %w", u, i, v, ErrBadNeighbor)
			}
		}
	}

	return nil
}
