// Package builder assembles deterministic decoding graphs and cluster states
// for tests, fixtures and the command line tool.
//
// The package offers:
//
//   - Build(numNodes, gopts, bopts, cons...): allocate a core.Graph and
//     apply constructors in order.
//   - Constructors:
//     – Path(n):            chain with the open boundary past both ends.
//     – Cycle(n):           closed ring, no boundary.
//     – Grid(rows, cols):   lattice with boundary on the first and last column.
//     – RandomSparse(n, p): boundary and pair edges kept with probability p,
//     never exceeding MaxDegree.
//   - RandomState(g, numRegions, opts...): random radii with random flag
//     bits, random claims and caches.
//   - Options: WithSeed, WithRand, WithWeightFn, WithObservables,
//     WithClaimProbability, WithMaxRadius.
//   - Weight generators: DefaultWeightFn, ConstantWeightFn, UniformWeightFn
//     (multiples of 4, the ×4 fixed-point grid).
//
// Guarantees:
//
//   - Boundary edges are always placed in slot 0.
//   - Same seed, options and constructor order ⇒ identical output.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
package builder
