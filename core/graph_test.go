package core_test

import (
	"testing"

	"github.com/katalvlaran/querk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph(4)
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, core.DefaultMaxDegree, g.MaxDegree())
	for u := core.NodeID(0); u < 4; u++ {
		assert.Zero(t, g.Degree(u))
		assert.False(t, g.HasBoundary(u))
	}
	assert.Zero(t, g.EdgeCount())

	// negative sizes collapse to an empty graph.
	assert.Zero(t, core.NewGraph(-1).NumNodes())
}

func TestWithMaxDegree_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { core.WithMaxDegree(0) })
	assert.Equal(t, 5, core.NewGraph(1, core.WithMaxDegree(5)).MaxDegree())
}

func TestAddEdge_FillsSlotsOnBothEnds(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 8, core.WithObservables(0b10)))
	require.NoError(t, g.AddEdge(0, 2, 12))

	require.Equal(t, 2, g.Degree(0))
	assert.Equal(t, core.Edge{Neighbor: 1, Weight: 8, Observables: 0b10}, g.Edge(0, 0))
	assert.Equal(t, core.Edge{Neighbor: 2, Weight: 12}, g.Edge(0, 1))

	// mirrors keep the weight and tag.
	assert.Equal(t, core.Edge{Neighbor: 0, Weight: 8, Observables: 0b10}, g.Edge(1, 0))
	assert.Equal(t, core.Edge{Neighbor: 0, Weight: 12}, g.Edge(2, 0))

	assert.Equal(t, core.SlotIndex(1), g.SlotOf(0, 2))
	assert.Equal(t, core.NoSlot, g.SlotOf(1, 2))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.Edge{{Neighbor: 1, Weight: 8, Observables: 0b10}, {Neighbor: 2, Weight: 12}}, g.Edges(0))
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(3, core.WithMaxDegree(1))

	assert.ErrorIs(t, g.AddEdge(0, 3, 4), core.ErrNodeOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, 4), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge(0, 1, 4))
	assert.ErrorIs(t, g.AddEdge(0, 2, 4), core.ErrDegreeExceeded)
	// capacity is checked on both ends before anything is written.
	assert.ErrorIs(t, g.AddEdge(2, 1, 4), core.ErrDegreeExceeded)
	assert.Zero(t, g.Degree(2))

	var nilGraph *core.Graph
	assert.ErrorIs(t, nilGraph.AddEdge(0, 1, 4), core.ErrNilGraph)
	assert.ErrorIs(t, nilGraph.AddBoundaryEdge(0, 4), core.ErrNilGraph)
}

func TestAddBoundaryEdge(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddBoundaryEdge(0, 20, core.WithObservables(1)))
	require.NoError(t, g.AddEdge(0, 1, 8))

	assert.True(t, g.HasBoundary(0))
	assert.False(t, g.HasBoundary(1))
	e := g.Edge(0, core.BoundarySlot)
	assert.True(t, e.IsBoundary())
	assert.Equal(t, uint32(20), e.Weight)
	assert.Equal(t, uint64(1), e.Observables)
	assert.Equal(t, 2, g.EdgeCount())

	// slot 0 of node 1 is taken by the mirror of 0-1.
	assert.ErrorIs(t, g.AddBoundaryEdge(1, 4), core.ErrBoundaryNotFirst)
	assert.ErrorIs(t, g.AddBoundaryEdge(7, 4), core.ErrNodeOutOfRange)
}
