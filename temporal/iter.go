// SPDX-License-Identifier: MIT
//
// File: iter.go
// Role: Neighbor and time-window enumeration primitives.
// Determinism:
//   - Window yields buckets in increasing t, each bucket in insertion order.

package temporal

import (
	"iter"
	"sort"
)

// OutFrom returns the suffix of OutEdges(v) with T ≥ t.
// Complexity: O(log deg(v)).
func (g *Graph) OutFrom(v, t int) []Edge {
	lst := g.OutEdges(v)
	i := sort.Search(len(lst), func(k int) bool { return lst[k].T >= t })
	return lst[i:]
}

// Neighbors returns the edges (v,·,t), possibly none.
// Complexity: O(log deg(v)).
func (g *Graph) Neighbors(v, t int) []Edge {
	lst := g.OutFrom(v, t)
	j := sort.Search(len(lst), func(k int) bool { return lst[k].T > t })
	return lst[:j]
}

// Window yields every edge with timestamp in [t1,t2] in increasing
// timestamp order. The sequence is finite and may be ranged over again.
func (g *Graph) Window(t1, t2 int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for t := max(t1, 1); t <= min(t2, g.tmax); t++ {
			for _, e := range g.buckets[t] {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Buckets yields (t, bucket) pairs for t in [t1,t2], including empty buckets.
func (g *Graph) Buckets(t1, t2 int) iter.Seq2[int, []Edge] {
	return func(yield func(int, []Edge) bool) {
		for t := max(t1, 1); t <= min(t2, g.tmax); t++ {
			if !yield(t, g.buckets[t]) {
				return
			}
		}
	}
}
