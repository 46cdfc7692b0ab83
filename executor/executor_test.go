package executor_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/querk/builder"
	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
	"github.com/katalvlaran/querk/executor"
	"github.com/katalvlaran/querk/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomCase builds a seeded random graph and state.
func randomCase(t *testing.T, n int, seed int64) (*core.Graph, core.Snapshot) {
	t.Helper()
	g, err := builder.Build(n,
		[]core.GraphOption{core.WithMaxDegree(4)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 96))},
		builder.RandomSparse(n, 0.2))
	require.NoError(t, err)
	s, err := builder.RandomState(g, 5, builder.WithSeed(seed+1), builder.WithMaxRadius(48))
	require.NoError(t, err)
	return g, s.Snapshot()
}

// fixed wraps canned results for CrossCheck tests.
type fixed struct {
	name string
	out  []event.Result
}

func (f fixed) Name() string { return f.name }
func (f fixed) Evaluate(_ context.Context, nodes []core.NodeID) ([]event.Result, error) {
	return f.out[:len(nodes)], nil
}

func TestReference_MatchesNextEvent(t *testing.T) {
	g, snap := randomCase(t, 60, 1)
	ref, err := executor.NewReference(g, snap)
	require.NoError(t, err)
	assert.Equal(t, "reference", ref.Name())

	nodes := executor.AllNodes(g.NumNodes())
	got, err := ref.Evaluate(context.Background(), nodes)
	require.NoError(t, err)
	require.Len(t, got, len(nodes))
	for i, u := range nodes {
		assert.Equal(t, event.NextEvent(g, snap, u), got[i])
	}
}

func TestKernel_AgreesWithReference(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, snap := randomCase(t, 120, seed)
		ref, err := executor.NewReference(g, snap)
		require.NoError(t, err)
		k, err := executor.NewKernel(g, snap, executor.WithWorkers(3), executor.WithChunkSize(7))
		require.NoError(t, err)

		rep, err := executor.CrossCheck(context.Background(), ref, k, executor.AllNodes(g.NumNodes()))
		require.NoError(t, err, "seed %d", seed)
		assert.True(t, rep.Agree())
		assert.Equal(t, 120, rep.Nodes)
		assert.Equal(t, "reference", rep.A)
		assert.Equal(t, "kernel", rep.B)
	}
}

func TestKernel_OrderAndSubset(t *testing.T) {
	g, snap := randomCase(t, 30, 9)
	k, err := executor.NewKernel(g, snap, executor.WithChunkSize(2))
	require.NoError(t, err)

	nodes := []core.NodeID{7, 3, 3, 29, 0}
	got, err := k.Evaluate(context.Background(), nodes)
	require.NoError(t, err)
	for i, u := range nodes {
		assert.Equal(t, event.NextEvent(g, snap, u), got[i])
	}

	empty, err := k.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEvaluate_OutOfRange(t *testing.T) {
	g, snap := randomCase(t, 10, 2)
	ref, err := executor.NewReference(g, snap)
	require.NoError(t, err)
	k, err := executor.NewKernel(g, snap)
	require.NoError(t, err)

	for _, ex := range []executor.Executor{ref, k} {
		_, err := ex.Evaluate(context.Background(), []core.NodeID{1, 10})
		assert.ErrorIs(t, err, core.ErrNodeOutOfRange, ex.Name())
	}
}

func TestEvaluate_Canceled(t *testing.T) {
	g, snap := randomCase(t, 10, 3)
	ref, err := executor.NewReference(g, snap)
	require.NoError(t, err)
	k, err := executor.NewKernel(g, snap)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, ex := range []executor.Executor{ref, k} {
		_, err := ex.Evaluate(ctx, executor.AllNodes(10))
		assert.ErrorIs(t, err, context.Canceled, ex.Name())
	}
}

func TestConstructors_Errors(t *testing.T) {
	g := core.NewGraph(3)
	_, err := executor.NewReference(nil, core.Snapshot{})
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = executor.NewReference(g, core.NewState(2, 0).Snapshot())
	assert.ErrorIs(t, err, core.ErrShape)
	assert.NotErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = executor.NewKernel(nil, core.Snapshot{})
	assert.ErrorIs(t, err, core.ErrNilGraph)

	assert.Panics(t, func() { executor.WithWorkers(0) })
	assert.Panics(t, func() { executor.WithChunkSize(0) })
}

func TestCrossCheck_ReportsMismatch(t *testing.T) {
	a := fixed{name: "a", out: []event.Result{event.Found(0, 4), event.None(), event.Found(1, 8)}}
	b := fixed{name: "b", out: []event.Result{event.Found(0, 4), event.Found(2, 0), event.Found(1, 9)}}

	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	rep, err := executor.CrossCheck(context.Background(), a, b, executor.AllNodes(3), executor.WithLogger(log))
	require.ErrorIs(t, err, executor.ErrMismatch)
	assert.False(t, rep.Agree())
	assert.Equal(t, 2, rep.Events)
	require.Len(t, rep.Mismatches, 2)
	assert.Equal(t, core.NodeID(1), rep.Mismatches[0].Node)
	assert.Equal(t, event.None(), rep.Mismatches[0].A)
	assert.Equal(t, core.NodeID(2), rep.Mismatches[1].Node)
	assert.Contains(t, buf.String(), "executors disagree")
}

func TestEarliest(t *testing.T) {
	nodes := []core.NodeID{5, 2, 9, 4}
	results := []event.Result{
		event.Found(1, 12),
		event.Found(2, 8),
		event.None(),
		event.Found(0, 8),
	}

	node, res, ok := executor.Earliest(nodes, results)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(2), node) // time 8 tie: lower node id
	assert.Equal(t, event.Found(2, 8), res)

	node, res, ok = executor.Earliest([]core.NodeID{1}, []event.Result{event.None()})
	assert.False(t, ok)
	assert.Equal(t, core.NoNode, node)
	assert.Equal(t, event.None(), res)

	// same node listed twice: lower slot wins.
	node, res, ok = executor.Earliest([]core.NodeID{3, 3}, []event.Result{event.Found(2, 5), event.Found(1, 5)})
	require.True(t, ok)
	assert.Equal(t, core.NodeID(3), node)
	assert.Equal(t, core.SlotIndex(1), res.Slot)
}

func TestAllNodes(t *testing.T) {
	assert.Equal(t, []core.NodeID{0, 1, 2}, executor.AllNodes(3))
	assert.Empty(t, executor.AllNodes(-1))
}
