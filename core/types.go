// Package core defines the decoding graph and the cluster state tables that
// the next-event query reads.
//
// The graph is a fixed max-degree slot table: every node owns up to
// MaxDegree neighbor slots, filled in insertion order. Slot 0 may hold the
// open-boundary marker (Boundary) instead of a real neighbor. Unused slots
// are never present; a node's Degree says how many slots are populated.
//
// The state tables (region radii, region_that_arrived_top, and
// wrapped_radius_cached) are owned by the external stepper. State guards
// them with a sync.RWMutex and hands out immutable Snapshot copies, which
// is the synchronization boundary between "stepper mutates" and "a batch
// of queries runs".
//
// Errors:
//
//	ErrNilGraph         - graph pointer is nil.
//	ErrNodeOutOfRange   - node id is not in [0, NumNodes).
//	ErrDegreeExceeded   - node already has MaxDegree populated slots.
//	ErrBoundaryNotFirst - boundary edge added after a real neighbor.
//	ErrLoopNotAllowed   - edge from a node to itself.
//	ErrRegionOutOfRange - region id is not in [0, NumRegions).
//	ErrBadCache         - wrapped radius correction outside 0..3.
//	ErrShape            - tables or graph and state disagree in length.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph and state operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeOutOfRange indicates an operation referenced a node outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrDegreeExceeded indicates all MaxDegree slots of a node are already populated.
	ErrDegreeExceeded = errors.New("core: max degree exceeded")

	// ErrBoundaryNotFirst indicates a boundary edge was added to a node that
	// already has a populated slot. The boundary marker is only legal in slot 0.
	ErrBoundaryNotFirst = errors.New("core: boundary edge must occupy slot 0")

	// ErrLoopNotAllowed indicates a self-loop edge.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrRegionOutOfRange indicates an operation referenced a region outside [0, R).
	ErrRegionOutOfRange = errors.New("core: region out of range")

	// ErrBadCache indicates a wrapped radius correction outside 0..3.
	ErrBadCache = errors.New("core: wrapped radius cache must be in 0..3")

	// ErrShape indicates per-node tables, or a graph and a snapshot, that
	// disagree on the node count.
	ErrShape = errors.New("core: table shape mismatch")
)

// NodeID identifies a detector node in [0, N).
type NodeID uint32

// RegionID identifies a growing region (cluster).
type RegionID uint32

// SlotIndex is a position in a node's neighbor slot list.
type SlotIndex uint32

// Sentinels use the maximum value of their integer width so they can never
// collide with a real id.
const (
	// Boundary marks the open-boundary neighbor in slot 0.
	Boundary NodeID = math.MaxUint32

	// NoNode is the "none" node sentinel.
	NoNode NodeID = math.MaxUint32

	// NoRegion marks an unclaimed node in region_that_arrived_top.
	NoRegion RegionID = math.MaxUint32

	// NoSlot is the "none" slot sentinel.
	NoSlot SlotIndex = math.MaxUint32

	// BoundarySlot is the only slot that may carry the Boundary marker.
	BoundarySlot SlotIndex = 0

	// DefaultMaxDegree is the slot capacity used when WithMaxDegree is not given.
	DefaultMaxDegree = 3
)

// Edge is one populated neighbor slot.
//
// Weight is a ×4 fixed-point capacity. Observables is an opaque per-edge
// tag; it is carried through every layer and never examined.
type Edge struct {
	// Neighbor is the node on the other end, or Boundary.
	Neighbor NodeID

	// Weight is the fixed-point (×4) distance of the edge.
	Weight uint32

	// Observables is the opaque per-edge tag.
	Observables uint64
}

// IsBoundary reports whether e is the open-boundary marker.
func (e Edge) IsBoundary() bool { return e.Neighbor == Boundary }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxDegree sets the per-node slot capacity.
// Panics on d < 1: a graph without slots cannot hold any edge.
func WithMaxDegree(d int) GraphOption {
	if d < 1 {
		panic("core: WithMaxDegree(d<1)")
	}
	return func(g *Graph) { g.maxDegree = d }
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithObservables attaches the opaque per-edge tag.
func WithObservables(mask uint64) EdgeOption {
	return func(e *Edge) { e.Observables = mask }
}
