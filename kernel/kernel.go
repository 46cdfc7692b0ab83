// Package kernel is the fixed-width rendition of the next-event query: the
// exact computation an accelerator performs, over flat integer buffers with
// wire sentinels instead of Go types.
//
// Run must agree with event.NextEvent bit for bit on every node of every
// validated buffer set; the executor package cross-checks the two.
package kernel

import (
	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
)

const (
	noSlot   = uint32(0xFFFFFFFF)
	noRegion = uint32(0xFFFFFFFF)
	maxTime  = event.NoEvent

	slowBit      = 1
	saturatedBit = 2
	flagMask     = 3
)

// rad composes the radius of node the way the kernel does: the cache is
// shifted at 32-bit width before widening.
func (b *Buffers) rad(node uint32) uint64 {
	reg := b.RegionThatArrivedTop[node]
	if reg == noRegion {
		return 0
	}
	return b.Radius[reg] + uint64(b.WrappedRadiusCached[node]<<2)
}

// rowOffset is the index of node's first slot in the N×D tables, computed
// at int width like Validate so large N·D cannot wrap.
func rowOffset(node, maxDegree uint32) int {
	return int(node) * int(maxDegree)
}

// Run evaluates one node and returns (outNeighbor, outTime) as the kernel
// writes them: the winning slot index and ×4 time, or
// (0xFFFFFFFF, 1<<63−1) when nothing qualifies. An out-of-range node yields
// the sentinels.
//
// Complexity: O(MaxDegree).
func Run(b *Buffers, node uint32) (uint32, uint64) {
	outNeighbor, outTime := noSlot, maxTime
	if node >= b.NumNodes {
		return outNeighbor, outTime
	}
	deg := b.NumNeighbors[node]
	if deg == 0 {
		return outNeighbor, outTime
	}

	row := rowOffset(node, b.MaxDegree)
	rad1 := b.rad(node)
	grown := rad1 &^ flagMask

	if rad1&slowBit != 0 {
		// occupied
		var i uint32
		if b.Neighbors[row] == BoundaryNeighbor {
			t := uint64(b.NeighborWeights[row]) - grown
			if t < outTime {
				outNeighbor, outTime = 0, t
			}
			i = 1
		}
		own := b.RegionThatArrivedTop[node]
		for ; i < deg; i++ {
			v := b.Neighbors[row+int(i)]
			if b.RegionThatArrivedTop[v] == own {
				continue
			}
			rad2 := b.rad(v)
			if rad2&saturatedBit != 0 {
				continue
			}
			t := uint64(b.NeighborWeights[row+int(i)]) - grown - (rad2 &^ flagMask)
			if rad2&slowBit != 0 {
				t >>= 1
			}
			if t < outTime {
				outNeighbor, outTime = i, t
			}
		}
		return outNeighbor, outTime
	}

	// not occupied
	var i uint32
	if b.Neighbors[row] == BoundaryNeighbor {
		i = 1
	}
	for ; i < deg; i++ {
		rad2 := b.rad(b.Neighbors[row+int(i)])
		if rad2&slowBit == 0 {
			continue
		}
		t := uint64(b.NeighborWeights[row+int(i)]) - grown - (rad2 &^ flagMask)
		if t < outTime {
			outNeighbor, outTime = i, t
		}
	}

	return outNeighbor, outTime
}

// Decode lifts the wire pair into an event.Result.
func Decode(outNeighbor uint32, outTime uint64) event.Result {
	if outNeighbor == noSlot {
		return event.None()
	}
	return event.Found(core.SlotIndex(outNeighbor), outTime)
}
