// SPDX-License-Identifier: MIT

// Package online answers temporal reachability queries directly against a
// temporal.Graph, with no precomputed state.
//
// What
//
//   - Search(g, source, target, window) returns whether target is reachable
//     from source using temporally ordered edges inside window, and the
//     earliest arrival time.
//   - Index wraps Search behind the same Construct/Update/Size/Query surface
//     as the baseline and optimized indexes; it stores no summaries, only the
//     graph and a horizon, and serves as ground truth in equivalence tests.
//
// Algorithm
//
//	Earliest-arrival search with a min-heap of (vertex, arrival) pairs and
//	lazy decrease-key. The source enters at window.From. Expanding v at
//	arrival a follows out-edges with timestamp τ, a ≤ τ ≤ window.To
//	(a < τ under reach.Strict, except that the source may depart at
//	window.From). A vertex is pushed again only when reached strictly
//	earlier. Pops happen in non-decreasing arrival, so the first pop of the
//	target is its earliest arrival.
//
// Complexity
//
//   - Time:   O(m log m) per query in the worst case.
//   - Memory: O(n + m) for arrival table and heap.
//
// Errors
//
//   - ErrGraphNil                    graph pointer is nil.
//   - reach.ErrPreconditionViolation source/target outside [0,n).
//   - reach.ErrNotBuilt              Index.Query/Update before Construct.
package online
