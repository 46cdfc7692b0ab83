package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
	"github.com/katalvlaran/querk/executor"
	"github.com/katalvlaran/querk/fixture"
)

// =============================================================================
// Flags
// =============================================================================

type queryFlags struct {
	fixture string // fixture path
	nodes   []uint // nodes to query
	all     bool   // query every node
	explain bool   // print per-slot verdicts
}

// newQueryCmd evaluates nodes of a fixture on both executors and prints the
// kernel ("hardware") and reference ("golden") results side by side.
func newQueryCmd(a *app) *cobra.Command {
	f := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Compute the next collision event of fixture nodes",
		Long: `Loads a fixture, evaluates the selected nodes with the kernel and the
reference executors and prints both results.

Examples:
  querk query --fixture square.yaml --node 0
  querk query --fixture square.yaml --node 0 --node 2 --explain
  querk query --fixture square.yaml --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, a, f)
		},
	}
	cmd.Flags().StringVarP(&f.fixture, "fixture", "f", "", "fixture YAML file (required)")
	cmd.Flags().UintSliceVarP(&f.nodes, "node", "n", nil, "node id to query (repeatable)")
	cmd.Flags().BoolVar(&f.all, "all", false, "query every node")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "print the verdict of every slot")
	_ = cmd.MarkFlagRequired("fixture")
	cmd.MarkFlagsMutuallyExclusive("node", "all")
	cmd.MarkFlagsOneRequired("node", "all")

	return cmd
}

func runQuery(cmd *cobra.Command, a *app, f *queryFlags) error {
	fx, err := fixture.Load(f.fixture)
	if err != nil {
		return err
	}
	g, err := fx.Graph()
	if err != nil {
		return err
	}
	st, err := fx.State()
	if err != nil {
		return err
	}
	snap := st.Snapshot()

	nodes := executor.AllNodes(g.NumNodes())
	if !f.all {
		nodes = nodes[:0]
		for _, n := range f.nodes {
			if uint64(n) > math.MaxUint32 {
				return fmt.Errorf("query: node %d: %w", n, core.ErrNodeOutOfRange)
			}
			nodes = append(nodes, core.NodeID(n))
		}
	}

	opts := append(a.cfg.executorOptions(), executor.WithLogger(a.log))
	ref, err := executor.NewReference(g, snap, opts...)
	if err != nil {
		return err
	}
	k, err := executor.NewKernel(g, snap, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	hw, err := k.Evaluate(ctx, nodes)
	if err != nil {
		return err
	}
	golden, err := ref.Evaluate(ctx, nodes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	mismatches := 0
	for i, u := range nodes {
		rad1 := snap.Rad(u)
		fmt.Fprintf(out, "node %d: rad1=%d (%s) strategy=%s\n", u, uint64(rad1), rad1, event.StrategyFor(rad1))
		fmt.Fprintf(out, "  Hardware results: %s\n", describe(g, u, hw[i]))
		fmt.Fprintf(out, "  Golden results:   %s\n", describe(g, u, golden[i]))
		if hw[i] != golden[i] {
			mismatches++
			fmt.Fprintln(out, "  MISMATCH")
		}
		if f.explain {
			printTrace(out, event.Explain(g, snap, u))
		}
	}

	if node, res, ok := executor.Earliest(nodes, golden); ok {
		fmt.Fprintf(out, "earliest: node %d %s\n", node, describe(g, node, res))
	} else {
		fmt.Fprintln(out, "earliest: none")
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d nodes: %w", mismatches, len(nodes), executor.ErrMismatch)
	}
	return nil
}

// describe renders a result with the neighbor behind the winning slot.
func describe(g *core.Graph, u core.NodeID, r event.Result) string {
	if !r.Ok() {
		return fmt.Sprintf("none (slot=%d time=%d)", r.WireSlot(), r.WireTime())
	}
	e := g.Edge(u, r.Slot)
	if e.IsBoundary() {
		return fmt.Sprintf("slot=%d time=%d (boundary)", r.Slot, r.Time)
	}
	return fmt.Sprintf("slot=%d time=%d (neighbor %d)", r.Slot, r.Time, e.Neighbor)
}

func printTrace(w io.Writer, tr event.Trace) {
	for _, st := range tr.Slots {
		to := fmt.Sprint(st.Neighbor)
		if st.Neighbor == core.Boundary {
			to = "boundary"
		}
		fmt.Fprintf(w, "    slot %d → %-8s w=%-4d rad2=%-10s %s", st.Slot, to, st.Weight, st.Rad2, st.Verdict)
		if st.Verdict == event.Candidate {
			fmt.Fprintf(w, " t=%d", st.Time)
			if st.Halved {
				fmt.Fprint(w, " (halved)")
			}
		}
		fmt.Fprintln(w)
	}
}
