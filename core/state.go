// File: state.go
// Role: cluster state tables owned by the external stepper, plus the
//       immutable Snapshot handed to query batches.
// Concurrency:
//   - State mutators take the write lock; Snapshot/View take the read lock.
//   - A Snapshot never aliases State storage, so later writes cannot leak
//     into an in-flight batch.

package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/querk/radius"
)

// State holds the per-region radius table and the per-node claim and cache
// tables for one decoder.
type State struct {
	mu sync.RWMutex

	radius  []uint64   // region → shared ×4 radius (flags in the low bits)
	arrived []RegionID // node → region_that_arrived_top, NoRegion when unclaimed
	cached  []uint32   // node → wrapped_radius_cached (0..3)
}

// NewState creates tables for numNodes unclaimed nodes and numRegions
// regions of radius zero. Negative sizes are treated as zero.
func NewState(numNodes, numRegions int) *State {
	if numNodes < 0 {
		numNodes = 0
	}
	if numRegions < 0 {
		numRegions = 0
	}
	s := &State{
		radius:  make([]uint64, numRegions),
		arrived: make([]RegionID, numNodes),
		cached:  make([]uint32, numNodes),
	}
	for i := range s.arrived {
		s.arrived[i] = NoRegion
	}

	return s
}

// NumNodes returns the node table length.
func (s *State) NumNodes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.arrived)
}

// NumRegions returns the region table length.
func (s *State) NumRegions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.radius)
}

// AddRegion appends a region with the given raw radius and returns its id.
func (s *State) AddRegion(r uint64) RegionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.radius = append(s.radius, r)
	return RegionID(len(s.radius) - 1)
}

// SetRegionRadius overwrites the raw radius (flags included) of region.
func (s *State) SetRegionRadius(region RegionID, r uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if int64(region) >= int64(len(s.radius)) {
		return fmt.Errorf("SetRegionRadius(%d): %w", region, ErrRegionOutOfRange)
	}
	s.radius[region] = r

	return nil
}

// Claim records that region's wavefront reached node first, with the given
// local cache correction.
func (s *State) Claim(node NodeID, region RegionID, cached uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if int64(node) >= int64(len(s.arrived)) {
		return fmt.Errorf("Claim(%d): %w", node, ErrNodeOutOfRange)
	}
	if int64(region) >= int64(len(s.radius)) {
		return fmt.Errorf("Claim(%d,%d): %w", node, region, ErrRegionOutOfRange)
	}
	if cached > radius.MaxCached {
		return fmt.Errorf("Claim(%d,%d,%d): %w", node, region, cached, ErrBadCache)
	}
	s.arrived[node] = region
	s.cached[node] = cached

	return nil
}

// Release returns node to the unclaimed state and clears its cache.
func (s *State) Release(node NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if int64(node) >= int64(len(s.arrived)) {
		return fmt.Errorf("Release(%d): %w", node, ErrNodeOutOfRange)
	}
	s.arrived[node] = NoRegion
	s.cached[node] = 0

	return nil
}

// Snapshot copies the tables under the read lock.
// Complexity: O(N + R).
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		radius:  append([]uint64(nil), s.radius...),
		arrived: append([]RegionID(nil), s.arrived...),
		cached:  append([]uint32(nil), s.cached...),
	}
}

// View runs fn against a zero-copy Snapshot while holding the read lock.
// fn must not retain the Snapshot after it returns.
func (s *State) View(fn func(Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(Snapshot{radius: s.radius, arrived: s.arrived, cached: s.cached})
}
