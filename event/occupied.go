package event

import (
	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/radius"
)

// occupied finds the next event at a node whose region grows at half rate.
//
// The boundary slot is always a candidate: t = w − floor4(rad1).
// Other slots skip same-region and saturated neighbors, then
// t = w − floor4(rad1) − floor4(rad2), halved when the neighbor is also in
// slow phase. Subtraction wraps on underflow; the caller keeps weights
// above the growth already applied.
func occupied(g *core.Graph, s core.Snapshot, node core.NodeID, rad1 radius.Radius, observe func(SlotTrace)) Result {
	best := None()
	deg := g.Degree(node)
	grown := rad1.Magnitude()

	start := 0
	if first := g.Edge(node, core.BoundarySlot); first.IsBoundary() {
		t := uint64(first.Weight) - grown
		if t < best.Time {
			best = Found(core.BoundarySlot, t)
		}
		if observe != nil {
			observe(SlotTrace{Slot: core.BoundarySlot, Neighbor: core.Boundary, Weight: first.Weight, Verdict: Candidate, Time: t})
		}
		start = 1
	}

	own := s.Region(node)
	for i := start; i < deg; i++ {
		slot := core.SlotIndex(i)
		e := g.Edge(node, slot)
		st := SlotTrace{Slot: slot, Neighbor: e.Neighbor, Weight: e.Weight}

		if s.Region(e.Neighbor) == own {
			st.Verdict = SkipSameRegion
			if observe != nil {
				observe(st)
			}
			continue
		}

		rad2 := s.Rad(e.Neighbor)
		st.Rad2 = rad2
		if rad2.IsSaturated() {
			st.Verdict = SkipSaturated
			if observe != nil {
				observe(st)
			}
			continue
		}

		t := uint64(e.Weight) - grown - rad2.Magnitude()
		if rad2.IsSlowPhase() {
			t >>= 1
			st.Halved = true
		}
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
