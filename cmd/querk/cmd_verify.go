package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/querk/builder"
	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/executor"
	"github.com/katalvlaran/querk/fixture"
)

type verifyFlags struct {
	fixture   string
	seed      int64
	rounds    int
	nodes     int
	regions   int
	p         float64
	maxDegree int
}

// newVerifyCmd cross-checks the kernel executor against the reference on a
// fixture or on seeded random graphs and states.
func newVerifyCmd(a *app) *cobra.Command {
	f := &verifyFlags{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the kernel against the reference query",
		Long: `Evaluates every node with both executors and reports any node on which
they disagree. Without --fixture, random graphs and states are drawn from
--seed, one per round.

Examples:
  querk verify --fixture square.yaml
  querk verify --seed 7 --rounds 100 --nodes 1000 --p 0.01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, a, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.fixture, "fixture", "f", "", "fixture YAML file")
	fl.Int64Var(&f.seed, "seed", 1, "seed of the first random round")
	fl.IntVar(&f.rounds, "rounds", 20, "random rounds")
	fl.IntVar(&f.nodes, "nodes", 200, "nodes per random graph")
	fl.IntVar(&f.regions, "regions", 8, "regions per random state")
	fl.Float64Var(&f.p, "p", 0.02, "edge and boundary probability of random graphs")
	fl.IntVar(&f.maxDegree, "max-degree", 4, "slot capacity of random graphs")

	return cmd
}

func runVerify(cmd *cobra.Command, a *app, f *verifyFlags) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if f.fixture != "" {
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
		rep, err := crossCheck(ctx, a, g, st.Snapshot())
		fmt.Fprintf(out, "%s: %d nodes, %d events, %d mismatches\n", f.fixture, rep.Nodes, rep.Events, len(rep.Mismatches))
		return err
	}

	if f.rounds < 1 || f.nodes < 1 || f.regions < 1 || f.maxDegree < 1 {
		return fmt.Errorf("rounds, nodes, regions and max-degree must be >= 1")
	}
	var failed int
	var total executor.Report
	for r := 0; r < f.rounds; r++ {
		seed := f.seed + int64(r)
		g, err := builder.Build(f.nodes,
			[]core.GraphOption{core.WithMaxDegree(f.maxDegree)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 128))},
			builder.RandomSparse(f.nodes, f.p))
		if err != nil {
			return err
		}
		st, err := builder.RandomState(g, f.regions, builder.WithSeed(seed))
		if err != nil {
			return err
		}

		rep, err := crossCheck(ctx, a, g, st.Snapshot())
		switch {
		case errors.Is(err, executor.ErrMismatch):
			failed++
			for _, m := range rep.Mismatches {
				fmt.Fprintf(out, "seed %d node %d: %s=%s %s=%s\n", seed, m.Node, rep.A, m.A, rep.B, m.B)
			}
		case err != nil:
			return err
		}
		total.Nodes += rep.Nodes
		total.Events += rep.Events
		total.Mismatches = append(total.Mismatches, rep.Mismatches...)
	}

	fmt.Fprintf(out, "%d rounds, %d nodes, %d events, %d mismatches\n",
		f.rounds, total.Nodes, total.Events, len(total.Mismatches))
	if failed > 0 {
		return fmt.Errorf("%d of %d rounds: %w", failed, f.rounds, executor.ErrMismatch)
	}
	return nil
}

func crossCheck(ctx context.Context, a *app, g *core.Graph, snap core.Snapshot) (executor.Report, error) {
	opts := append(a.cfg.executorOptions(), executor.WithLogger(a.log))
	ref, err := executor.NewReference(g, snap, opts...)
	if err != nil {
		return executor.Report{}, err
	}
	k, err := executor.NewKernel(g, snap, opts...)
	if err != nil {
		return executor.Report{}, err
	}

	rep, err := executor.CrossCheck(ctx, k, ref, executor.AllNodes(g.NumNodes()), opts...)
	a.log.Debug("cross-check finished",
		slog.Int("nodes", rep.Nodes),
		slog.Int("events", rep.Events),
		slog.Int("mismatches", len(rep.Mismatches)),
	)
	return rep, err
}
