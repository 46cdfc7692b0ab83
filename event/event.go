package event

import (
	"github.com/katalvlaran/querk/core"
)

// NextEvent returns the earliest collision event at node: the winning slot
// and its ×4 time, or None.
//
// Steps:
//  1. rad1 = s.Rad(node) (0 when unclaimed).
//  2. rad1 bit0 set → Occupied strategy; clear → NotOccupied strategy.
//  3. Return the strategy's strict minimum (lower slot wins ties).
//
// NextEvent is pure: it reads g and s and writes nothing, so any number of
// calls may run concurrently against the same snapshot. A node with no
// populated slots, or a node outside g, yields None.
//
// Complexity: O(MaxDegree).
func NextEvent(g *core.Graph, s core.Snapshot, node core.NodeID) Result {
	return scan(g, s, node, nil)
}

// Explain runs the same scan as NextEvent and records every slot's verdict.
// Trace.Result always equals NextEvent(g, s, node).
func Explain(g *core.Graph, s core.Snapshot, node core.NodeID) Trace {
	tr := Trace{Node: node, Rad1: s.Rad(node)}
	tr.Strategy = StrategyFor(tr.Rad1)
	tr.Result = scan(g, s, node, func(st SlotTrace) {
		tr.Slots = append(tr.Slots, st)
	})

	return tr
}

// scan dispatches on the node's phase; observe may be nil.
func scan(g *core.Graph, s core.Snapshot, node core.NodeID, observe func(SlotTrace)) Result {
	if g == nil || g.Degree(node) == 0 {
		return None()
	}

	rad1 := s.Rad(node)
	if StrategyFor(rad1) == Occupied {
		return occupied(g, s, node, rad1, observe)
	}
	return notOccupied(g, s, node, rad1, observe)
}
