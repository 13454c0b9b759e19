// SPDX-License-Identifier: MIT

package online

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// Search answers one query against g: is target reachable from source
// using edges inside w in hop order, and at what earliest arrival?
//
// Behavior:
//
//   - w.From < 1 is treated as 1; the result echoes the normalized window.
//   - source == target is reachable at w.From, even for an empty window.
//   - An empty window (From > To) reaches nothing else.
//   - opts select the hop semantics (reach.WithSemantics); others are ignored.
//
// Errors:
//
//   - ErrGraphNil if g is nil.
//   - reach.ErrPreconditionViolation if source or target is outside [0,n).
//
// Complexity:
//
//   - Time:  O(m_w log m_w), m_w edges with timestamps in w; each edge is
//     relaxed at most once per improvement of its tail.
//   - Space: O(n_w + m_w) for the arrival table and heap.
func Search(g *temporal.Graph, source, target int, w reach.Window, opts ...reach.Option) (reach.Result, error) {
	if g == nil {
		return reach.Result{}, ErrGraphNil
	}
	if err := reach.CheckVertex(source, g.NumVertices()); err != nil {
		return reach.Result{}, err
	}
	if err := reach.CheckVertex(target, g.NumVertices()); err != nil {
		return reach.Result{}, err
	}
	o := reach.Resolve(opts...)
	w = w.Normalize()

	if source == target {
		return reach.Trivial(source, w), nil
	}
	if w.Empty() {
		return reach.Unreachable(source, target, w), nil
	}

	r := &runner{
		g:      g,
		sem:    o.Semantics,
		source: source,
		window: w,
		best:   make(map[int]int),
	}
	res := reach.Unreachable(source, target, w)
	if a, ok := r.run(target); ok {
		res.Reachable = true
		res.Arrival = a
	}
	return res, nil
}

// runner holds the mutable state of one search.
type runner struct {
	g      *temporal.Graph
	sem    reach.Semantics
	source int
	window reach.Window
	best   map[int]int // vertex → earliest arrival found so far
	pq     arrivalPQ
}

// run pops vertices in non-decreasing arrival and returns the target's
// earliest arrival, or false when the frontier empties first.
func (r *runner) run(target int) (int, bool) {
	r.best[r.source] = r.window.From
	heap.Push(&r.pq, arrivalItem{v: r.source, arrival: r.window.From})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(arrivalItem)
		if item.arrival > r.arrivalOf(item.v) {
			continue // stale
		}
		if item.v == target {
			return item.arrival, true
		}
		r.relax(item)
	}
	return 0, false
}

// relax follows every usable out-edge of item.v inside the window.
func (r *runner) relax(item arrivalItem) {
	depart := item.arrival
	if r.sem == reach.Strict && item.v != r.source {
		depart++
	}
	for _, e := range r.g.OutFrom(item.v, depart) {
		if e.T > r.window.To {
			break
		}
		if e.T >= r.arrivalOf(e.Dst) {
			continue
		}
		r.best[e.Dst] = e.T
		heap.Push(&r.pq, arrivalItem{v: e.Dst, arrival: e.T})
	}
}

func (r *runner) arrivalOf(v int) int {
	if a, ok := r.best[v]; ok {
		return a
	}
	return math.MaxInt
}
