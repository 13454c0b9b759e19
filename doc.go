// SPDX-License-Identifier: MIT

// Package treach answers temporal reachability queries: can a signal leave
// vertex s and reach vertex t using edges whose timestamps respect the hop
// order, inside a window [From, To]?
//
// The module offers three interchangeable engines behind one interface:
//
//	online/     earliest-arrival search per query, no precomputed state
//	baseline/   per-source Pareto labels (departure, arrival) in ordered trees
//	optimized/  segment tree of reachability relations over time (dnc/)
//
// Supporting packages:
//
//	reach/      windows, results, hop semantics, options, errors, file formats
//	temporal/   time-bucketed temporal graph and edge-list ingestion
//	index/      Index interface, mode selection and batch Run
//	builder/    deterministic synthetic temporal graphs for tests and benches
//	runstat/    phase timings, latency summaries, Prometheus metrics, reports
//	config/     layered configuration (defaults, YAML, TREACH_* env, flags)
//	cmd/treach  command-line driver: run, stats, gen
//
// Quick example:
//
//	g, _ := temporal.FromEdges(
//		temporal.Edge{Src: 0, Dst: 1, T: 1},
//		temporal.Edge{Src: 1, Dst: 2, T: 2},
//	)
//	ix, _ := index.New(index.Optimized)
//	_ = ix.Construct(g, 1)
//	r, _ := ix.Query(0, 2, reach.Upto(2))
//	// r.Reachable == true, r.Arrival == 2
//
// Every engine accepts reach.WithSemantics(reach.Strict) to forbid two hops
// at the same timestamp; the default is reach.NonStrict.
package treach
