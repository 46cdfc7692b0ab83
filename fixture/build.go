package fixture

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
)

// NumNodes returns the number of listed nodes.
func (f *Fixture) NumNodes() int { return len(f.Nodes) }

// Graph rebuilds the decoding graph.
//
// Steps:
//  1. Index nodes by id; ids must be exactly 0..N-1.
//  2. Validate every slot: one of to/boundary, boundary only in slot 0,
//     neighbor in range and not the node itself.
//  3. Add all boundary edges.
//  4. Repeatedly add every edge that sits at the head of both endpoints'
//     remaining lists, until all are placed. A pass without progress means
//     the lists are asymmetric or have no consistent insertion order.
//
// Complexity: O(N·D) per pass, at most N·D passes.
func (f *Fixture) Graph() (*core.Graph, error) {
	lists, err := f.slots()
	if err != nil {
		return nil, err
	}
	d := f.MaxDegree
	if d == 0 {
		d = core.DefaultMaxDegree
	}
	if d < 1 {
		return nil, fmt.Errorf("Graph: max_degree %d: %w", f.MaxDegree, ErrFixture)
	}

	n := len(lists)
	g := core.NewGraph(n, core.WithMaxDegree(d))
	next := make([]int, n)
	remaining := 0
	for u, edges := range lists {
		if len(edges) > d {
			return nil, fmt.Errorf("Graph: node %d has %d slots > max_degree %d: %w", u, len(edges), d, ErrFixture)
		}
		for i, e := range edges {
			if err := checkEdge(u, i, e, n); err != nil {
				return nil, err
			}
		}
		if len(edges) > 0 && edges[0].Boundary {
			if err := g.AddBoundaryEdge(core.NodeID(u), edges[0].Weight, core.WithObservables(edges[0].Observables)); err != nil {
				return nil, fmt.Errorf("Graph: %w", err)
			}
			next[u] = 1
		}
		remaining += len(edges) - next[u]
	}

	for remaining > 0 {
		progress := false
		for u := range lists {
			for next[u] < len(lists[u]) {
				e := lists[u][next[u]]
				v := int(*e.To)
				if next[v] >= len(lists[v]) {
					break
				}
				back := lists[v][next[v]]
				if back.To == nil || int(*back.To) != u {
					break
				}
				if back.Weight != e.Weight || back.Observables != e.Observables {
					return nil, fmt.Errorf("Graph: edge %d-%d differs between endpoints: %w", u, v, ErrFixture)
				}
				if err := g.AddEdge(core.NodeID(u), core.NodeID(v), e.Weight, core.WithObservables(e.Observables)); err != nil {
					return nil, fmt.Errorf("Graph: %w", err)
				}
				next[u]++
				next[v]++
				remaining -= 2
				progress = true
			}
		}
		if !progress {
			return nil, fmt.Errorf("Graph: %d half-edges cannot be paired in slot order: %w", remaining, ErrFixture)
		}
	}

	return g, nil
}

// State rebuilds the cluster state.
func (f *Fixture) State() (*core.State, error) {
	s := core.NewState(len(f.Nodes), 0)
	for _, r := range f.Regions {
		s.AddRegion(r)
	}
	claimed := make(map[uint32]bool, len(f.Claims))
	for _, c := range f.Claims {
		if claimed[c.Node] {
			return nil, fmt.Errorf("State: node %d claimed twice: %w", c.Node, ErrFixture)
		}
		claimed[c.Node] = true
		if err := s.Claim(core.NodeID(c.Node), core.RegionID(c.Region), c.Cached); err != nil {
			return nil, fmt.Errorf("State: claim node %d: %w: %w", c.Node, err, ErrFixture)
		}
	}
	return s, nil
}

// slots returns the edge lists indexed by node id.
func (f *Fixture) slots() ([][]Edge, error) {
	n := len(f.Nodes)
	lists := make([][]Edge, n)
	seen := make([]bool, n)
	for _, node := range f.Nodes {
		if int64(node.ID) >= int64(n) || seen[node.ID] {
			return nil, fmt.Errorf("Graph: node ids must be 0..%d without repeats, got %d: %w", n-1, node.ID, ErrFixture)
		}
		seen[node.ID] = true
		lists[node.ID] = node.Edges
	}
	return lists, nil
}

func checkEdge(u, i int, e Edge, n int) error {
	switch {
	case e.Boundary && e.To != nil:
		return fmt.Errorf("Graph: node %d slot %d sets both to and boundary: %w", u, i, ErrFixture)
	case e.Boundary && i != 0:
		return fmt.Errorf("Graph: node %d boundary in slot %d: %w", u, i, ErrFixture)
	case e.Boundary:
		return nil
	case e.To == nil:
		return fmt.Errorf("Graph: node %d slot %d sets neither to nor boundary: %w", u, i, ErrFixture)
	case int64(*e.To) >= int64(n):
		return fmt.Errorf("Graph: node %d slot %d neighbor %d out of range: %w", u, i, *e.To, ErrFixture)
	case int(*e.To) == u:
		return fmt.Errorf("Graph: node %d slot %d is a self-loop: %w", u, i, ErrFixture)
	}
	return nil
}
