// SPDX-License-Identifier: MIT

// Package index defines the capability set shared by every temporal
// reachability engine and the helpers written once against it.
//
//	type Index interface {
//	    Construct(g *temporal.Graph, retained float64) error
//	    Update(g *temporal.Graph) error
//	    Size() int64
//	    Horizon() int
//	    Query(source, target int, w reach.Window) (reach.Result, error)
//	}
//
// Implementations:
//
//   - online.Index     no summaries, searches the graph per query.
//   - baseline.Index   per-source label lists built by timestamp-ordered propagation.
//   - optimized.Index  divide-and-conquer interval tree of composed relations.
//
// State machine (all implementations):
//
//	Unbuilt --Construct--> Built --Update--> Built (horizon never decreases)
//
// Update or Query on an unbuilt index returns reach.ErrNotBuilt.
//
// Run answers a batch of queries in input order and stops at the first
// error, returning the results produced so far.
package index
