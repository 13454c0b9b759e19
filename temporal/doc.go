// SPDX-License-Identifier: MIT

// Package temporal provides the canonical in-memory storage of a directed
// temporal graph: vertices 0..n-1 and timestamped edges (Src, Dst, T),
// bucketed by discrete timestamp.
//
// The Graph G = (V, E, T) keeps two views of the same edge set:
//
//   - buckets[t] - every edge active at timestamp t, in insertion order.
//     Buckets exist (possibly empty) for every t in [1, TMax()].
//   - out[v]     - every edge leaving v, ordered by timestamp.
//
// Ticks:
//
//	Edges live in buckets indexed by tick. Build ranks the distinct input
//	timestamps, so tick t is the t-th smallest one and a list stamped with
//	epoch seconds needs one bucket per distinct timestamp. Time(t) and
//	LastTime() give input timestamps back; Ticks(w) maps a window over
//	input timestamps onto ticks. Graphs from New/AddEdge use the identity.
//
// Construction:
//
//	// From an edge list ("src dst [t]" per line).
//	g, err := temporal.BuildFile("edges.txt",
//	    temporal.WithRetainedFraction(0.8),
//	    temporal.WithMalformedPolicy(reach.Skip),
//	)
//
//	// Programmatically.
//	g := temporal.New(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//
// Core methods:
//
//	NumVertices() int                  // O(1)
//	NumEdges() int                     // O(1)
//	TMax() int                         // O(1)
//	Size() int64                       // O(1), bytes held by all buckets
//	Bucket(t int) []Edge               // O(1)
//	Neighbors(v, t int) []Edge         // O(log deg(v))
//	OutFrom(v, t int) []Edge           // O(log deg(v)), edges of v with T ≥ t
//	Window(t1, t2 int) iter.Seq[Edge]  // lazy, restartable
//	Append(edges ...Edge) error        // new timestamps past LastTime() only
//	Prefix(h int) *Graph               // first h buckets as a new graph
//	Ticks(w reach.Window) reach.Window // O(log TMax())
//	Time(t int) int                    // O(1)
//
// Lifecycle:
//
//	A Graph only grows: AddEdge while building, Append afterwards. There is
//	no edge removal. Graph is not safe for concurrent mutation; indexes built
//	from it keep no reference to it.
//
// Errors:
//
//	ErrInvalidEdge         - negative vertex id, tick outside [1, MaxTick] or past a
//	                         ranked timeline (is reach.ErrMalformedInput).
//	ErrNonMonotonicAppend  - Append with T ≤ LastTime() (is reach.ErrPreconditionViolation).
package temporal
