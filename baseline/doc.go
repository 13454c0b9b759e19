// SPDX-License-Identifier: MIT

// Package baseline implements the exhaustive temporal reachability index:
// for every source vertex it materializes, per reachable vertex, the list of
// Pareto-optimal (departure, arrival) labels over the horizon [1, H].
//
// What
//
//   - Construct(g, f) sets H = floor(tmax·f) and processes timestamps 1..H
//     in increasing order, propagating labels along the edges of each bucket.
//   - Update(g) continues the same propagation over buckets H+1..g.TMax()
//     only; labels established earlier are never retracted.
//   - Query(s, t, [from,to]) finds the first label of s→t departing at or
//     after from; t is reachable iff that label arrives by to, and its
//     arrival is the earliest possible.
//
// Propagation
//
//	For an edge (u, v, τ) the candidate sources are u itself (departing at
//	τ) and every s already reaching u with a label usable at τ
//	(arrival ≤ τ, or < τ under reach.Strict); the candidate label for s→v is
//	(latest usable departure, τ). It is kept only if it departs strictly
//	later than the last label of s→v; a label arriving at the same τ is
//	replaced in place. Under reach.NonStrict a bucket is processed to a
//	fixpoint through a worklist so chains of simultaneous edges propagate.
//
//	A reverse roaring bitmap per vertex lists the sources reaching it, so
//	the sources of an edge are found without scanning all vertices.
//
// Invariants
//
//   - Per pair, departures strictly increase and arrivals never decrease.
//   - Labels are append-only across Update calls (monotonicity).
//
// Complexity
//
//   - Construction: O(Σ_τ |E_τ| · n · log n) worst case; memory O(labels).
//   - Query: O(log n + log L) for L labels of the pair.
//
// Errors
//
//   - ErrGraphNil                    nil graph.
//   - reach.ErrInvalidConfiguration  bad retained fraction.
//   - reach.ErrNotBuilt              Update/Query before Construct.
//   - reach.ErrPreconditionViolation vertex outside [0,n) in Query.
//   - reach.ErrInvariant             debug self-check failure.
package baseline
