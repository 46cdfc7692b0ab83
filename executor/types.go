// Package executor evaluates the next-event query over batches of nodes.
//
// Two executors share one interface:
//
//   - Reference calls event.NextEvent node by node on a core.Snapshot.
//   - Kernel packs the graph and snapshot into kernel.Buffers once and
//     evaluates chunks of nodes in parallel with kernel.Run.
//
// CrossCheck runs two executors on the same nodes and reports every node
// where they disagree; the two are required to agree bit for bit. Earliest
// reduces a batch to the single globally earliest event, the value the
// decoder's stepper acts on.
//
// Executors are read-only over their inputs and safe for concurrent use.
package executor

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/event"
	"github.com/katalvlaran/querk/logging"
)

// Sentinel errors for executor construction and evaluation.
var (
	// ErrMismatch indicates that two executors disagreed on at least one node.
	ErrMismatch = errors.New("executor: results differ")

	// ErrLengthMismatch indicates nodes and results of different lengths.
	ErrLengthMismatch = errors.New("executor: nodes and results length mismatch")
)

// Executor evaluates NextEvent for a batch of nodes. Results are returned in
// the order of nodes.
type Executor interface {
	Name() string
	Evaluate(ctx context.Context, nodes []core.NodeID) ([]event.Result, error)
}

// Default tuning.
const (
	DefaultChunkSize = 256
)

// Options configures executors and CrossCheck.
type Options struct {
	Workers   int          // parallel chunks in flight (Kernel)
	ChunkSize int          // nodes per chunk (Kernel)
	Logger    *slog.Logger // batch summaries at debug, mismatches at warn
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, DefaultChunkSize and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
		Logger:    logging.Discard(),
	}
}

// WithWorkers sets the number of chunks evaluated concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("executor: WithWorkers(n): n must be >= 1")
	}
	return func(o *Options) { o.Workers = n }
}

// WithChunkSize sets the number of nodes per chunk. Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("executor: WithChunkSize(n): n must be >= 1")
	}
	return func(o *Options) { o.ChunkSize = n }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AllNodes returns the ids 0..n-1.
func AllNodes(n int) []core.NodeID {
	if n < 0 {
		n = 0
	}
	out := make([]core.NodeID, n)
	for i := range out {
		out[i] = core.NodeID(i)
	}
	return out
}

// Earliest returns the globally earliest event of a batch.
//
// Ordering: lowest time, then lowest node id, then lowest slot. Nodes
// without an event are ignored; when none has one, ok is false and node is
// core.NoNode.
//
// Complexity: O(len(nodes)).
func Earliest(nodes []core.NodeID, results []event.Result) (node core.NodeID, res event.Result, ok bool) {
	res = event.None()
	node = core.NoNode
	n := len(nodes)
	if len(results) < n {
		n = len(results)
	}
	for i := 0; i < n; i++ {
		r := results[i]
		if !r.Ok() {
			continue
		}
		if !ok || less(nodes[i], r, node, res) {
			node, res, ok = nodes[i], r, true
		}
	}

	return node, res, ok
}

func less(an core.NodeID, a event.Result, bn core.NodeID, b event.Result) bool {
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	if an != bn {
		return an < bn
	}
	return a.Slot < b.Slot
}
