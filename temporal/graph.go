// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph lifecycle (New, AddEdge, FromEdges, Append, Prefix) and accessors.
//       Ticks and the input clock live in clock.go.
// Determinism:
//   - Bucket(t) preserves insertion order; out[v] is ordered by T, ties by insertion.

package temporal

import (
	"fmt"
	"slices"
	"sort"
)

// New returns an empty graph with at least n vertices.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		n:       n,
		buckets: make([][]Edge, 1),
		out:     make([][]Edge, n),
	}
}

// FromEdges builds a graph holding edges, sized to the largest vertex id.
func FromEdges(edges ...Edge) (*Graph, error) {
	g := New(0)
	for _, e := range edges {
		if err := g.AddEdge(e.Src, e.Dst, e.T); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddEdge inserts the directed edge src→dst at timestamp t.
// Vertex ids at or beyond NumVertices() grow the vertex set.
//
// Complexity: O(1) amortized when edges arrive in timestamp order,
// O(deg(src)) otherwise.
//
// On a graph returned by Build, t is a tick and must already be on the
// timeline; new timestamps enter through Append.
func (g *Graph) AddEdge(src, dst, t int) error {
	if src < 0 || dst < 0 || t < 1 || t > MaxTick {
		return fmt.Errorf("%w: %s", ErrInvalidEdge, Edge{src, dst, t})
	}
	if g.times != nil && t >= len(g.times) {
		return fmt.Errorf("%w: %s: tick past the timeline (%d)", ErrInvalidEdge, Edge{src, dst, t}, len(g.times)-1)
	}
	g.grow(max(src, dst) + 1)

	e := Edge{Src: src, Dst: dst, T: t}
	for len(g.buckets) <= t {
		g.buckets = append(g.buckets, nil)
	}
	g.buckets[t] = append(g.buckets[t], e)
	if t > g.tmax {
		g.tmax = t
	}

	// keep out[src] ordered by T (stable for equal T)
	lst := g.out[src]
	i := sort.Search(len(lst), func(k int) bool { return lst[k].T > t })
	if i == len(lst) {
		g.out[src] = append(lst, e)
	} else {
		lst = append(lst, Edge{})
		copy(lst[i+1:], lst[i:])
		lst[i] = e
		g.out[src] = lst
	}
	g.m++
	return nil
}

// Append adds edges that all lie strictly after the current timeline, given
// in input timestamps: past TMax() on identity graphs, past LastTime() on
// graphs from Build, where each new distinct timestamp takes the next tick.
// The batch is validated before any edge is stored.
func (g *Graph) Append(edges ...Edge) error {
	last := g.LastTime()
	for _, e := range edges {
		if e.Src < 0 || e.Dst < 0 || e.T < 1 || (g.times == nil && e.T > MaxTick) {
			return fmt.Errorf("%w: %s", ErrInvalidEdge, e)
		}
		if e.T <= last {
			return fmt.Errorf("%w: edge %s, last timestamp %d", ErrNonMonotonicAppend, e, last)
		}
	}
	sorted := append([]Edge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	if g.times != nil && len(g.times)-1+countDistinct(sorted) > MaxTick {
		return fmt.Errorf("%w: timeline longer than %d ticks", ErrInvalidEdge, MaxTick)
	}
	for _, e := range sorted {
		tick := e.T
		if g.times != nil {
			if g.times[len(g.times)-1] != e.T {
				g.times = append(g.times, e.T)
			}
			tick = len(g.times) - 1
		}
		if err := g.AddEdge(e.Src, e.Dst, tick); err != nil {
			return err
		}
	}
	return nil
}

// countDistinct counts distinct timestamps of edges sorted by T.
func countDistinct(sorted []Edge) int {
	c := 0
	for i, e := range sorted {
		if i == 0 || e.T != sorted[i-1].T {
			c++
		}
	}
	return c
}

// Prefix returns a new graph with the buckets 1..h of g (h is clamped to
// [0, TMax()]). Vertex count is preserved. Edge slices are copied.
func (g *Graph) Prefix(h int) *Graph {
	h = min(max(h, 0), g.tmax)
	p := New(g.n)
	if g.times != nil {
		p.times = slices.Clone(g.times[:h+1])
	}
	for t := 1; t <= h; t++ {
		for _, e := range g.buckets[t] {
			// ids and timestamps were validated on insertion
			_ = p.AddEdge(e.Src, e.Dst, e.T)
		}
	}
	return p
}

func (g *Graph) grow(n int) {
	if n <= g.n {
		return
	}
	for len(g.out) < n {
		g.out = append(g.out, nil)
	}
	g.n = n
}

// NumVertices returns n; vertex ids are [0,n).
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of stored edges.
func (g *Graph) NumEdges() int { return g.m }

// TMax returns the highest tick with at least one edge (0 when empty).
func (g *Graph) TMax() int { return g.tmax }

// Size returns the bytes held by all buckets.
func (g *Graph) Size() int64 { return int64(g.m) * EdgeBytes }

// Bucket returns the edges active at t (nil outside [1,TMax()]).
// The slice is owned by the graph and must not be modified.
func (g *Graph) Bucket(t int) []Edge {
	if t < 1 || t > g.tmax {
		return nil
	}
	return g.buckets[t]
}

// EdgesIn counts the edges with timestamps in [t1,t2].
func (g *Graph) EdgesIn(t1, t2 int) int {
	c := 0
	for t := max(t1, 1); t <= min(t2, g.tmax); t++ {
		c += len(g.buckets[t])
	}
	return c
}

// OutEdges returns every edge leaving v ordered by timestamp.
func (g *Graph) OutEdges(v int) []Edge {
	if v < 0 || v >= g.n {
		return nil
	}
	return g.out[v]
}
