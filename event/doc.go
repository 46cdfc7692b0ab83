// Package event implements the next local collision query of a Union-Find
// decoder: for one node of the decoding graph, the earliest simulated-time
// event at which the node's growth wavefront meets the open boundary or a
// different growing region.
//
// Overview:
//
//   - The decoder's stepper owns the graph and the state tables. For every
//     frontier node it calls NextEvent, takes the global minimum, applies the
//     merge or boundary update, and asks again.
//   - NextEvent is a pure function of (graph, snapshot, node). It never
//     mutates anything and needs no synchronization beyond the snapshot
//     boundary provided by core.State.
//
// Algorithm:
//
//	rad1 = rad(node)                    // 0 when unclaimed
//	if rad1 bit0 (slow phase)  → Occupied
//	else                       → NotOccupied
//
//	Occupied:
//	  slot 0 boundary:  t = w − floor4(rad1)                 (always a candidate)
//	  other slots:      skip same region; skip rad2 bit1 (saturated)
//	                    t = w − floor4(rad1) − floor4(rad2)
//	                    t >>= 1 when rad2 bit0
//
//	NotOccupied:
//	  slot 0 boundary:  excluded
//	  other slots:      candidate only when rad2 bit0
//	                    t = w − floor4(rad1) − floor4(rad2)
//
// Both strategies keep a strict minimum (comparison with <), so the lowest
// slot index wins ties. The asymmetries between them (boundary handling,
// same-region skip, halving) belong to the decoder's growth-rate argument
// and are kept exactly as written.
//
// Sentinels:
//
//   - Result.Slot == core.NoSlot (MaxUint32) when no event exists.
//   - Result.Time == NoEvent (1<<63 − 1) when no event exists.
//
// Arithmetic is unsigned 64-bit. A weight smaller than the growth already
// applied wraps around instead of failing; keeping weights ahead of growth
// is the stepper's invariant.
//
// Complexity:
//
//   - Time:  O(MaxDegree) per query.
//   - Space: O(1) (Explain: O(MaxDegree) for the trace).
//
// See also:
//
//   - kernel: the same algorithm over the fixed-width accelerator buffers.
//   - executor: batch evaluation and reference/kernel cross-checking.
package event
