package core

import (
	"fmt"

	"github.com/katalvlaran/querk/radius"
)

// Snapshot is a read-only view of the state tables for one query batch.
// The zero value is an empty snapshot.
type Snapshot struct {
	radius  []uint64
	arrived []RegionID
	cached  []uint32
}

// NewSnapshot builds a snapshot from raw tables, validating that every
// claimed node references an existing region and every cache is in 0..3.
// The slices are copied.
func NewSnapshot(regionRadius []uint64, arrived []RegionID, cached []uint32) (Snapshot, error) {
	if len(arrived) != len(cached) {
		return Snapshot{}, fmt.Errorf("NewSnapshot: %d claims vs %d caches: %w",
			len(arrived), len(cached), ErrShape)
	}
	for n, r := range arrived {
		if r != NoRegion && int64(r) >= int64(len(regionRadius)) {
			return Snapshot{}, fmt.Errorf("NewSnapshot: node %d region %d: %w", n, r, ErrRegionOutOfRange)
		}
		if cached[n] > radius.MaxCached {
			return Snapshot{}, fmt.Errorf("NewSnapshot: node %d cache %d: %w", n, cached[n], ErrBadCache)
		}
	}

	return Snapshot{
		radius:  append([]uint64(nil), regionRadius...),
		arrived: append([]RegionID(nil), arrived...),
		cached:  append([]uint32(nil), cached...),
	}, nil
}

// NumNodes returns the node table length.
func (s Snapshot) NumNodes() int { return len(s.arrived) }

// NumRegions returns the region table length.
func (s Snapshot) NumRegions() int { return len(s.radius) }

// Region returns region_that_arrived_top[node]; NoRegion when unclaimed
// or out of range.
func (s Snapshot) Region(node NodeID) RegionID {
	if int64(node) >= int64(len(s.arrived)) {
		return NoRegion
	}
	return s.arrived[node]
}

// Claimed reports whether some region has reached node.
func (s Snapshot) Claimed(node NodeID) bool { return s.Region(node) != NoRegion }

// Cached returns wrapped_radius_cached[node] (0 when out of range).
func (s Snapshot) Cached(node NodeID) uint32 {
	if int64(node) >= int64(len(s.cached)) {
		return 0
	}
	return s.cached[node]
}

// RegionRadius returns the raw shared radius of region (0 when out of range).
func (s Snapshot) RegionRadius(region RegionID) uint64 {
	if int64(region) >= int64(len(s.radius)) {
		return 0
	}
	return s.radius[region]
}

// Rad returns the composed radius of node: 0 if unclaimed, else
// region.radius + (wrapped_radius_cached[node] << 2).
func (s Snapshot) Rad(node NodeID) radius.Radius {
	r := s.Region(node)
	if r == NoRegion {
		return radius.Unclaimed
	}
	return radius.Compose(s.radius[r], s.cached[node])
}

// Regions returns a copy of the region radius table.
func (s Snapshot) Regions() []uint64 { return append([]uint64(nil), s.radius...) }

// Claims returns copies of the claim and cache tables.
func (s Snapshot) Claims() ([]RegionID, []uint32) {
	return append([]RegionID(nil), s.arrived...), append([]uint32(nil), s.cached...)
}
