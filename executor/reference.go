package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
)

// Reference is the scalar executor: one event.NextEvent call per node.
type Reference struct {
	g    *core.Graph
	s    core.Snapshot
	opts Options
}

// NewReference binds a graph and a snapshot. The snapshot must describe the
// same node count as g.
func NewReference(g *core.Graph, s core.Snapshot, opts ...Option) (*Reference, error) {
	if g == nil {
		return nil, fmt.Errorf("NewReference: %w", core.ErrNilGraph)
	}
	if s.NumNodes() != g.NumNodes() {
		return nil, fmt.Errorf("NewReference: graph has %d nodes, snapshot %d: %w",
			g.NumNodes(), s.NumNodes(), core.ErrShape)
	}
	return &Reference{g: g, s: s, opts: buildOptions(opts)}, nil
}

// Name returns "reference".
func (r *Reference) Name() string { return "reference" }

// Evaluate runs NextEvent for every node in order. It fails fast on an
// out-of-range node and stops between nodes when ctx is done.
func (r *Reference) Evaluate(ctx context.Context, nodes []core.NodeID) ([]event.Result, error) {
	if err := checkNodes("Reference.Evaluate", r.g.NumNodes(), nodes); err != nil {
		return nil, err
	}

	start := time.Now()
	out := make([]event.Result, len(nodes))
	for i, u := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = event.NextEvent(r.g, r.s, u)
	}

	elapsed := time.Since(start)
	observe(r.Name(), out, elapsed.Seconds())
	r.opts.Logger.Debug("batch evaluated",
		"executor", r.Name(),
		"nodes", len(nodes),
		"duration", elapsed,
	)

	return out, nil
}

// checkNodes rejects ids outside 0..n-1.
func checkNodes(method string, n int, nodes []core.NodeID) error {
	for _, u := range nodes {
		if int64(u) >= int64(n) {
			return fmt.Errorf("%s: node %d of %d: %w", method, u, n, core.ErrNodeOutOfRange)
		}
	}
	return nil
}
