// Package builder_test contains functional tests for the constructors,
// options and RandomState.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/querk/builder"
	"github.com/katalvlaran/querk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neighbors returns the neighbor ids of u in slot order.
func neighbors(g *core.Graph, u core.NodeID) []core.NodeID {
	var out []core.NodeID
	for _, e := range g.Edges(u) {
		out = append(out, e.Neighbor)
	}
	return out
}

func TestBuild_Path(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(4, nil, nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, 5, g.EdgeCount()) // 3 inner + 2 boundary
	assert.Equal(t, []core.NodeID{core.Boundary, 1}, neighbors(g, 0))
	assert.Equal(t, []core.NodeID{0, 2}, neighbors(g, 1))
	assert.Equal(t, []core.NodeID{core.Boundary, 2}, neighbors(g, 3))
	for _, e := range g.Edges(1) {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}
}

func TestBuild_Cycle(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(5, nil, nil, builder.Cycle(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.EdgeCount())
	for u := 0; u < 5; u++ {
		assert.Equal(t, 2, g.Degree(core.NodeID(u)))
		assert.False(t, g.HasBoundary(core.NodeID(u)))
	}
	assert.Equal(t, []core.NodeID{1, 4}, neighbors(g, 0))
}

func TestBuild_Grid(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(6, []core.GraphOption{core.WithMaxDegree(builder.GridMaxDegree)}, nil, builder.Grid(2, 3))
	require.NoError(t, err)

	// 2 rows × (2 boundaries) + 2×2 horizontal + 3 vertical
	assert.Equal(t, 4+4+3, g.EdgeCount())
	assert.True(t, g.HasBoundary(0))
	assert.True(t, g.HasBoundary(2))
	assert.False(t, g.HasBoundary(1))
	assert.Equal(t, []core.NodeID{0, 2, 4}, neighbors(g, 1))
	assert.Equal(t, []core.NodeID{core.Boundary, 1, 3}, neighbors(g, 0))
}

func TestBuild_GridNeedsCapacity(t *testing.T) {
	t.Parallel()

	_, err := builder.Build(9, nil, nil, builder.Grid(3, 3))
	assert.ErrorIs(t, err, core.ErrDegreeExceeded)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path too short", 4, builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle too short", 4, builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Grid zero rows", 4, builder.Grid(0, 2), nil, builder.ErrTooFewVertices},
		{"Path exceeds graph", 3, builder.Path(4), nil, builder.ErrConstructFailed},
		{"nil constructor", 3, nil, nil, builder.ErrConstructFailed},
		{"RandomSparse bad p", 3, builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse no rng", 3, builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomSparse n=0", 3, builder.RandomSparse(0, 0.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.n, nil, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.Build(0, nil, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_RespectsCapacityAndSeed(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.Build(40,
			[]core.GraphOption{core.WithMaxDegree(3)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(4, 64))},
			builder.RandomSparse(40, 0.3))
		require.NoError(t, err)
		return g
	}

	a, b := build(11), build(11)
	for u := 0; u < 40; u++ {
		id := core.NodeID(u)
		assert.LessOrEqual(t, a.Degree(id), 3)
		assert.Equal(t, a.Edges(id), b.Edges(id), "node %d", u)
		for i, e := range a.Edges(id) {
			if e.IsBoundary() {
				assert.Equal(t, 0, i, "boundary only in slot 0")
			}
			assert.Zero(t, e.Weight%4)
		}
	}
}

func TestRandomSparse_CertainWithoutRNG(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(3, nil, nil, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	// every node: boundary, then the two others.
	for u := 0; u < 3; u++ {
		assert.Equal(t, 3, g.Degree(core.NodeID(u)))
		assert.True(t, g.HasBoundary(core.NodeID(u)))
	}

	g, err = builder.Build(3, nil, nil, builder.RandomSparse(3, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestWithObservables(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(3, nil,
		[]builder.BuilderOption{builder.WithObservables(func(*rand.Rand) uint64 { return 0b10 })},
		builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges(1) {
		assert.Equal(t, uint64(0b10), e.Observables)
	}
}

func TestRandomState(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(50, nil, nil, builder.Cycle(50))
	require.NoError(t, err)

	_, err = builder.RandomState(g, 3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomState(g, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomState(nil, 1, builder.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrNilGraph)

	s, err := builder.RandomState(g, 4, builder.WithSeed(3), builder.WithMaxRadius(16))
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Equal(t, 50, snap.NumNodes())
	assert.Equal(t, 4, snap.NumRegions())
	for _, r := range snap.Regions() {
		assert.Less(t, r, uint64(16))
	}

	all, err := builder.RandomState(g, 2, builder.WithSeed(3), builder.WithClaimProbability(1))
	require.NoError(t, err)
	none, err := builder.RandomState(g, 2, builder.WithSeed(3), builder.WithClaimProbability(0))
	require.NoError(t, err)
	for u := 0; u < 50; u++ {
		assert.True(t, all.Snapshot().Claimed(core.NodeID(u)))
		assert.False(t, none.Snapshot().Claimed(core.NodeID(u)))
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithObservables(nil) })
	assert.Panics(t, func() { builder.WithClaimProbability(-0.1) })
	assert.Panics(t, func() { builder.WithMaxRadius(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(8, 4) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 7) })
	assert.Panics(t, func() { builder.RandomObservables(0) })
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, uint32(12), builder.ConstantWeightFn(12)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(4, 40)(nil))

	u := builder.UniformWeightFn(5, 40)
	for i := 0; i < 200; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, uint32(8))
		assert.LessOrEqual(t, w, uint32(40))
		assert.Zero(t, w%4)
	}

	obs := builder.RandomObservables(3)
	assert.Zero(t, obs(nil))
	for i := 0; i < 50; i++ {
		assert.Less(t, obs(rng), uint64(8))
	}
}
