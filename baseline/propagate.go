// SPDX-License-Identifier: MIT

package baseline

import (
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// propagate relaxes the buckets t1..t2 in increasing timestamp order.
func (ix *Index) propagate(g *temporal.Graph, t1, t2 int) {
	for t, bucket := range g.Buckets(t1, t2) {
		if len(bucket) == 0 {
			continue
		}
		before := ix.labels
		if ix.opts.Semantics == reach.Strict {
			for _, e := range bucket {
				ix.relaxEdge(e)
			}
		} else {
			ix.relaxFixpoint(bucket)
		}
		if ix.opts.Debug {
			ix.opts.Logger.Debug().
				Int("t", t).
				Int("edges", len(bucket)).
				Int64("labels", ix.labels-before).
				Msg("bucket relaxed")
		}
	}
}

// relaxFixpoint processes one bucket under non-strict semantics. Edges
// leaving a vertex are revisited whenever a label reaching that vertex at
// the bucket's timestamp was added or moved to a later departure.
func (ix *Index) relaxFixpoint(bucket []temporal.Edge) {
	bySrc := make(map[int][]temporal.Edge)
	order := make([]int, 0, len(bucket))
	for _, e := range bucket {
		if _, ok := bySrc[e.Src]; !ok {
			order = append(order, e.Src)
		}
		bySrc[e.Src] = append(bySrc[e.Src], e)
	}

	queued := make(map[int]bool, len(order))
	queue := append([]int(nil), order...)
	for _, u := range order {
		queued[u] = true
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		queued[u] = false
		for _, e := range bySrc[u] {
			if !ix.relaxEdge(e) {
				continue
			}
			if _, ok := bySrc[e.Dst]; ok && !queued[e.Dst] {
				queued[e.Dst] = true
				queue = append(queue, e.Dst)
			}
		}
	}
}

// relaxEdge offers every source reaching e.Src a label for e.Dst arriving
// at e.T. It reports whether any label changed.
func (ix *Index) relaxEdge(e temporal.Edge) bool {
	if e.Src == e.Dst {
		return false
	}
	changed := ix.record(e.Src, e.Dst, e.T, e.T)

	it := ix.rev[e.Src].Iterator()
	for it.HasNext() {
		s := int(it.Next())
		if s == e.Dst {
			continue
		}
		dep, ok := ix.usable(s, e.Src, e.T)
		if !ok {
			continue
		}
		if ix.record(s, e.Dst, dep, e.T) {
			changed = true
		}
	}
	return changed
}

// usable returns the latest departure from s among labels of s→u that can
// continue along an edge at time t.
func (ix *Index) usable(s, u, t int) (int, bool) {
	en, ok := ix.fwd[s].Get(&entry{v: uint32(u)})
	if !ok {
		return 0, false
	}
	for i := len(en.labels) - 1; i >= 0; i-- {
		if ix.opts.Semantics.Usable(int(en.labels[i].arr), t) {
			return int(en.labels[i].dep), true
		}
	}
	return 0, false
}

// record offers the label (dep, arr) for s→v, arr being the timestamp in
// progress. Labels of earlier timestamps all arrive no later, so the offer
// only matters when it departs strictly after the last label.
func (ix *Index) record(s, v, dep, arr int) bool {
	targets := ix.fwd[s]
	en, ok := targets.Get(&entry{v: uint32(v)})
	if !ok {
		en = &entry{v: uint32(v)}
		targets.Set(en)
		ix.rev[v].Add(uint32(s))
	}
	if k := len(en.labels); k > 0 {
		last := &en.labels[k-1]
		if int(last.dep) >= dep {
			return false
		}
		if int(last.arr) == arr {
			last.dep = int32(dep)
			return true
		}
	}
	en.labels = append(en.labels, label{dep: int32(dep), arr: int32(arr)})
	ix.labels++
	return true
}
