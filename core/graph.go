// File: graph.go
// Role: fixed max-degree slot table: construction, edge insertion, read-only getters.
// Concurrency:
//   - Mutations (AddEdge/AddBoundaryEdge) are NOT safe concurrently with anything.
//   - After construction the graph is read-only and may be shared by any number
//     of concurrent queries without synchronization.

package core

import "fmt"

// Graph is the decoding graph in slot-table form.
//
// slots is row-major: slots[u*maxDegree+i] is slot i of node u, valid for
// i < degree[u]. This mirrors the neighbors[][MaxDegree] layout of the
// accelerator ABI.
type Graph struct {
	numNodes  int
	maxDegree int
	degree    []uint32
	slots     []Edge
}

// NewGraph creates a graph of numNodes isolated nodes.
// Negative numNodes is treated as zero.
// Complexity: O(N·D) to allocate the slot table.
func NewGraph(numNodes int, opts ...GraphOption) *Graph {
	if numNodes < 0 {
		numNodes = 0
	}
	g := &Graph{numNodes: numNodes, maxDegree: DefaultMaxDegree}
	for _, opt := range opts {
		opt(g)
	}
	g.degree = make([]uint32, numNodes)
	g.slots = make([]Edge, numNodes*g.maxDegree)

	return g
}

// NumNodes returns N.
func (g *Graph) NumNodes() int { return g.numNodes }

// MaxDegree returns the per-node slot capacity.
func (g *Graph) MaxDegree() int { return g.maxDegree }

// Valid reports whether u is a node of g.
func (g *Graph) Valid(u NodeID) bool { return int64(u) < int64(g.numNodes) }

// Degree returns the number of populated slots of u (0 for out-of-range u).
func (g *Graph) Degree(u NodeID) int {
	if !g.Valid(u) {
		return 0
	}
	return int(g.degree[u])
}

// Edge returns slot i of u. The caller guarantees i < Degree(u).
func (g *Graph) Edge(u NodeID, i SlotIndex) Edge {
	return g.slots[int(u)*g.maxDegree+int(i)]
}

// Edges returns a copy of the populated slots of u in slot order.
func (g *Graph) Edges(u NodeID) []Edge {
	d := g.Degree(u)
	out := make([]Edge, d)
	copy(out, g.slots[int(u)*g.maxDegree:int(u)*g.maxDegree+d])

	return out
}

// HasBoundary reports whether slot 0 of u carries the open-boundary marker.
func (g *Graph) HasBoundary(u NodeID) bool {
	return g.Degree(u) > 0 && g.Edge(u, BoundarySlot).IsBoundary()
}

// SlotOf returns the first slot of u whose neighbor is v, or NoSlot.
// Complexity: O(D).
func (g *Graph) SlotOf(u, v NodeID) SlotIndex {
	for i := 0; i < g.Degree(u); i++ {
		if g.Edge(u, SlotIndex(i)).Neighbor == v {
			return SlotIndex(i)
		}
	}
	return NoSlot
}

// AddEdge inserts the undirected edge u-v with the given ×4 weight, taking
// the next free slot on both endpoints.
//
// Steps:
//  1. Validate both endpoints and reject self-loops.
//  2. Check capacity on both sides before touching either (no half edge).
//  3. Append the slot on u, then the mirrored slot on v.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v NodeID, weight uint32, opts ...EdgeOption) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Valid(u) || !g.Valid(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if g.Degree(u) >= g.maxDegree {
		return fmt.Errorf("AddEdge(%d,%d): node %d: %w", u, v, u, ErrDegreeExceeded)
	}
	if g.Degree(v) >= g.maxDegree {
		return fmt.Errorf("AddEdge(%d,%d): node %d: %w", u, v, v, ErrDegreeExceeded)
	}

	e := Edge{Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}
	e.Neighbor = v
	g.push(u, e)
	e.Neighbor = u
	g.push(v, e)

	return nil
}

// AddBoundaryEdge gives u an edge to the open boundary. It must be the first
// edge added to u so that the marker lands in slot 0.
func (g *Graph) AddBoundaryEdge(u NodeID, weight uint32, opts ...EdgeOption) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Valid(u) {
		return fmt.Errorf("AddBoundaryEdge(%d): %w", u, ErrNodeOutOfRange)
	}
	if g.Degree(u) != 0 {
		return fmt.Errorf("AddBoundaryEdge(%d): %w", u, ErrBoundaryNotFirst)
	}

	e := Edge{Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}
	e.Neighbor = Boundary
	g.push(u, e)

	return nil
}

// EdgeCount returns the number of undirected edges, boundary edges included.
// Complexity: O(N·D).
func (g *Graph) EdgeCount() int {
	var half, boundary int
	for u := 0; u < g.numNodes; u++ {
		for i := 0; i < int(g.degree[u]); i++ {
			if g.slots[u*g.maxDegree+i].IsBoundary() {
				boundary++
			} else {
				half++
			}
		}
	}
	return half/2 + boundary
}

// push appends e to u's slot list; capacity was checked by the caller.
func (g *Graph) push(u NodeID, e Edge) {
	g.slots[int(u)*g.maxDegree+int(g.degree[u])] = e
	g.degree[u]++
}
