package event

import (
	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/radius"
)

// notOccupied finds the next event at a node whose region grows at normal
// rate (or that is unclaimed).
//
// The boundary slot never produces an event here, and only slow-phase
// neighbors are candidates: t = w − floor4(rad1) − floor4(rad2), without
// halving. Same-region neighbors share rad1's clear phase bit and so fail
// the slow-phase test without a region check.
func notOccupied(g *core.Graph, s core.Snapshot, node core.NodeID, rad1 radius.Radius, observe func(SlotTrace)) Result {
	best := None()
	deg := g.Degree(node)
	grown := rad1.Magnitude()

	start := 0
	if first := g.Edge(node, core.BoundarySlot); first.IsBoundary() {
		if observe != nil {
			observe(SlotTrace{Slot: core.BoundarySlot, Neighbor: core.Boundary, Weight: first.Weight, Verdict: SkipBoundary})
		}
		start = 1
	}

	for i := start; i < deg; i++ {
		slot := core.SlotIndex(i)
		e := g.Edge(node, slot)
		rad2 := s.Rad(e.Neighbor)
		st := SlotTrace{Slot: slot, Neighbor: e.Neighbor, Weight: e.Weight, Rad2: rad2}

		if !rad2.IsSlowPhase() {
			st.Verdict = SkipNotSlow
			if observe != nil {
				observe(st)
			}
			continue
		}

		t := uint64(e.Weight) - grown - rad2.Magnitude()
		if t < best.Time {
			best = Found(slot, t)
		}
		if observe != nil {
			st.Verdict, st.Time = Candidate, t
			observe(st)
		}
	}

	return best
}
