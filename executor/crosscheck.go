package executor

import (
	"context"
	"fmt"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
)

// Mismatch is one node on which two executors disagreed.
type Mismatch struct {
	Node core.NodeID
	A, B event.Result
}

// Report summarizes a cross-check.
type Report struct {
	A, B       string // executor names
	Nodes      int
	Events     int // nodes for which A found an event
	Mismatches []Mismatch
}

// Agree reports whether no mismatch was found.
func (r Report) Agree() bool { return len(r.Mismatches) == 0 }

// CrossCheck evaluates nodes with a and b and compares the results node by
// node. The report is returned even on ErrMismatch; evaluation errors are
// returned as is with an empty report.
func CrossCheck(ctx context.Context, a, b Executor, nodes []core.NodeID, opts ...Option) (Report, error) {
	o := buildOptions(opts)
	rep := Report{A: a.Name(), B: b.Name(), Nodes: len(nodes)}

	ra, err := a.Evaluate(ctx, nodes)
	if err != nil {
		return Report{}, fmt.Errorf("CrossCheck: %s: %w", a.Name(), err)
	}
	rb, err := b.Evaluate(ctx, nodes)
	if err != nil {
		return Report{}, fmt.Errorf("CrossCheck: %s: %w", b.Name(), err)
	}
	if len(ra) != len(nodes) || len(rb) != len(nodes) {
		return Report{}, fmt.Errorf("CrossCheck: %d nodes, %d and %d results: %w",
			len(nodes), len(ra), len(rb), ErrLengthMismatch)
	}

	for i, u := range nodes {
		if ra[i].Ok() {
			rep.Events++
		}
		if ra[i] != rb[i] {
			rep.Mismatches = append(rep.Mismatches, Mismatch{Node: u, A: ra[i], B: rb[i]})
			o.Logger.Warn("executors disagree",
				"node", u,
				rep.A, ra[i].String(),
				rep.B, rb[i].String(),
			)
		}
	}

	if n := len(rep.Mismatches); n > 0 {
		mismatchesTotal.Add(float64(n))
		return rep, fmt.Errorf("CrossCheck: %s vs %s: %d of %d nodes: %w", rep.A, rep.B, n, len(nodes), ErrMismatch)
	}
	return rep, nil
}
