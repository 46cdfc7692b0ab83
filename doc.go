// Package querk answers the "next local collision" query of a Union-Find
// surface-code decoder: given a detector node, which of its neighbor slots
// produces the earliest growth event, and at what time.
//
// 🚀 What is in querk?
//
//	radius/   - composed ×4 radius values with the slow-phase and saturated flag bits
//	core/     - fixed max-degree decoding Graph and the cluster State tables
//	event/    - NextEvent and Explain: the scalar reference query
//	kernel/   - flat row-major buffers and the fixed-width kernel over them
//	executor/ - batch executors (reference, parallel kernel) and CrossCheck
//	builder/  - deterministic path, cycle, grid and random graphs and states
//	fixture/  - YAML scenarios for replay and regression tests
//	logging/  - slog-based structured logging
//	cmd/querk - the query, verify and gen command line tool
//
// Quick ASCII example:
//
//	   ┆ 36
//	   0 ──20── 1
//	   │        │
//	  28       16
//	   │        │
//	   2 ──8─── 3 ┆ 12
//
// Node 0 is claimed by a slow region of radius 8; its next event is slot 1
// (node 1) at time 20 − 8 = 12. See fixture/testdata/square.yaml.
//
//	go install github.com/katalvlaran/querk/cmd/querk@latest
package querk
