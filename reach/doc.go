// SPDX-License-Identifier: MIT

// Package reach holds the shared vocabulary of temporal reachability:
// time windows, query results, hop semantics, engine options, the error
// taxonomy, retained/update fraction rules and the batch query file format.
//
// What
//
//   - Window [From, To] is an inclusive range of timestamps.
//   - Result reports whether Target is reachable from Source inside a Window
//     and, if so, the earliest arrival time.
//   - Semantics selects how consecutive hops relate in time:
//     NonStrict (t1 ≤ t2, simultaneous hops allowed) or Strict (t1 < t2).
//     Every engine (online search, baseline index, optimized index) applies
//     the same value, so their answers are comparable.
//   - Options carries the logger, debug switch and semantics into engines.
//
// Errors
//
//   - ErrInvalidConfiguration  fraction outside its domain, unknown mode,
//     Update before Construct.
//   - ErrMalformedInput        an edge or query record that does not parse.
//   - ErrPreconditionViolation vertex id outside [0,n) in a query.
//   - ErrNotBuilt              Update/Query on an unbuilt index
//     (matches ErrInvalidConfiguration with errors.Is).
//
// Query file format
//
//	source target             window = [1, horizon]
//	source target bound       window = [1, bound]
//	source target from to     window = [from, to]
//
// Lines that are empty or start with '#' or '%' are ignored.
package reach
