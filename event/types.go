package event

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/radius"
)

// NoEvent is the "no event" time sentinel on the wire. It is the MAX the
// accelerator kernel was built with (signed 64-bit maximum); because the
// search keeps a strict minimum starting from it, no candidate time at or
// above it is ever reported.
const NoEvent uint64 = 1<<63 - 1

// Result is the outcome of one next-event query: the winning slot and its
// fixed-point time, or none.
type Result struct {
	// Slot is the winning slot index, core.NoSlot when none.
	Slot core.SlotIndex

	// Time is the winning ×4 time, NoEvent when none.
	Time uint64
}

// None returns the empty result (core.NoSlot, NoEvent).
func None() Result { return Result{Slot: core.NoSlot, Time: NoEvent} }

// Found returns a result for slot at time t.
func Found(slot core.SlotIndex, t uint64) Result { return Result{Slot: slot, Time: t} }

// Ok reports whether an event was found.
func (r Result) Ok() bool { return r.Slot != core.NoSlot }

// Get returns the slot and time with an explicit presence flag.
func (r Result) Get() (core.SlotIndex, uint64, bool) { return r.Slot, r.Time, r.Ok() }

// WireSlot serializes the slot for the fixed-width kernel ABI.
func (r Result) WireSlot() uint32 { return uint32(r.Slot) }

// WireTime serializes the time for the fixed-width kernel ABI.
func (r Result) WireTime() uint64 { return r.Time }

// String renders "slot@time" or "none".
func (r Result) String() string {
	if !r.Ok() {
		return "none"
	}
	return fmt.Sprintf("%d@%d", r.Slot, r.Time)
}

// Strategy names the collision rules selected by a node's own phase.
type Strategy uint8

const (
	// NotOccupied applies to fast-phase nodes (rad1 bit0 clear).
	NotOccupied Strategy = iota
	// Occupied applies to slow-phase nodes (rad1 bit0 set).
	Occupied
)

// String returns "occupied" or "not-occupied".
func (s Strategy) String() string {
	if s == Occupied {
		return "occupied"
	}
	return "not-occupied"
}

// StrategyFor selects the strategy from rad1's phase bit.
func StrategyFor(rad1 radius.Radius) Strategy {
	if rad1.IsSlowPhase() {
		return Occupied
	}
	return NotOccupied
}

// Verdict classifies one slot during a scan.
type Verdict uint8

const (
	// Candidate means the slot produced a collision time.
	Candidate Verdict = iota
	// SkipBoundary means the boundary slot was excluded (fast phase).
	SkipBoundary
	// SkipSameRegion means the neighbor already belongs to the node's region.
	SkipSameRegion
	// SkipSaturated means the neighbor's radius carries the saturation bit.
	SkipSaturated
	// SkipNotSlow means the neighbor is not in slow phase (fast phase only).
	SkipNotSlow
)

var verdictNames = [...]string{
	Candidate:      "candidate",
	SkipBoundary:   "skip-boundary",
	SkipSameRegion: "skip-same-region",
	SkipSaturated:  "skip-saturated",
	SkipNotSlow:    "skip-not-slow",
}

// String returns the verdict name.
func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return "unknown"
}

// SlotTrace is the verdict for a single slot.
type SlotTrace struct {
	Slot     core.SlotIndex
	Neighbor core.NodeID
	Weight   uint32
	Rad2     radius.Radius
	Verdict  Verdict
	Time     uint64 // valid for Candidate only
	Halved   bool   // slow/slow pair, occupied strategy only
}

// Trace is a full account of one query: every slot's verdict and the result.
type Trace struct {
	Node     core.NodeID
	Rad1     radius.Radius
	Strategy Strategy
	Slots    []SlotTrace
	Result   Result
}
