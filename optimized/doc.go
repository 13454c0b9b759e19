// SPDX-License-Identifier: MIT

// Package optimized implements the divide-and-conquer reachability index
// on top of dnc.Tree.
//
// Construct summarizes [1, floor(tmax·f)] bottom up; Update summarizes only
// the appended timestamps and recomposes their O(log H) ancestors. Query
// composes the canonical cover of the window against the frontier {source}
// and, once the target appears, descends that node to recover the earliest
// arrival, so answers match online.Search and baseline exactly.
//
// Size is the summed roaring bitmap size of all distinct node summaries.
package optimized
