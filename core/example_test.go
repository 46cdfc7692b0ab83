package core_test

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// ExampleGraph builds a three-node strip with an open boundary on node 0
// and lists node 0's slots.
func ExampleGraph() {
	g := core.NewGraph(3)
	_ = g.AddBoundaryEdge(0, 12)
	_ = g.AddEdge(0, 1, 8)
	_ = g.AddEdge(1, 2, 16)

	for i, e := range g.Edges(0) {
		if e.IsBoundary() {
			fmt.Printf("slot %d: boundary w=%d\n", i, e.Weight)
			continue
		}
		fmt.Printf("slot %d: node %d w=%d\n", i, e.Neighbor, e.Weight)
	}
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// slot 0: boundary w=12
	// slot 1: node 1 w=8
	// edges: 3
}

// ExampleState claims a node and reads its composed radius from a snapshot.
func ExampleState() {
	s := core.NewState(2, 0)
	r := s.AddRegion(9) // magnitude 8, slow phase
	_ = s.Claim(0, r, 2)

	snap := s.Snapshot()
	fmt.Println(snap.Claimed(0), snap.Rad(0))
	fmt.Println(snap.Claimed(1), snap.Rad(1))

	// Output:
	// true 16+slow
	// false 0
}
