package executor

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
	"github.com/katalvlaran/querk/kernel"
)

// Kernel evaluates nodes through kernel.Run over packed buffers, in parallel
// chunks.
type Kernel struct {
	b    *kernel.Buffers
	opts Options
}

// NewKernel packs and validates the buffers for g and s.
func NewKernel(g *core.Graph, s core.Snapshot, opts ...Option) (*Kernel, error) {
	b, err := kernel.Pack(g, s)
	if err != nil {
		return nil, fmt.Errorf("NewKernel: %w", err)
	}
	return NewKernelFromBuffers(b, opts...)
}

// NewKernelFromBuffers wraps prepacked buffers after validating them.
func NewKernelFromBuffers(b *kernel.Buffers, opts ...Option) (*Kernel, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("NewKernelFromBuffers: %w", err)
	}
	return &Kernel{b: b, opts: buildOptions(opts)}, nil
}

// Name returns "kernel".
func (k *Kernel) Name() string { return "kernel" }

// Buffers exposes the packed buffers (read-only by contract).
func (k *Kernel) Buffers() *kernel.Buffers { return k.b }

// Evaluate splits nodes into chunks of ChunkSize and runs up to Workers
// chunks at a time. Each chunk writes a disjoint range of the output, so no
// locking is needed. Once ctx is done no new chunk starts and ctx's error is
// returned.
//
// Steps:
//  1. Reject out-of-range nodes.
//  2. For each chunk, schedule kernel.Run over its nodes on the errgroup.
//  3. Decode wire pairs into event.Result in place.
func (k *Kernel) Evaluate(ctx context.Context, nodes []core.NodeID) ([]event.Result, error) {
	if err := checkNodes("Kernel.Evaluate", int(k.b.NumNodes), nodes); err != nil {
		return nil, err
	}

	start := time.Now()
	out := make([]event.Result, len(nodes))
	size := k.opts.ChunkSize

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(k.opts.Workers)
	chunks := 0
	for lo := 0; lo < len(nodes); lo += size {
		if gctx.Err() != nil {
			break
		}
		hi := lo + size
		if hi > len(nodes) {
			hi = len(nodes)
		}
		chunks++
		lo := lo
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = kernel.Decode(kernel.Run(k.b, uint32(nodes[i])))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	observe(k.Name(), out, elapsed.Seconds())
	k.opts.Logger.Debug("batch evaluated",
		"executor", k.Name(),
		"nodes", len(nodes),
		"chunks", chunks,
		"workers", k.opts.Workers,
		"duration", elapsed,
	)

	return out, nil
}
