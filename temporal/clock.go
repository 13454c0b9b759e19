// SPDX-License-Identifier: MIT
//
// File: clock.go
// Role: Mapping between input timestamps and ticks.
//
// Indexes work in ticks: the dense range [1, TMax()]. For graphs built from
// an edge list, tick t is the t-th smallest distinct input timestamp, so a
// list stamped with epoch seconds costs one bucket per distinct timestamp
// and not one per second. Query windows arrive in input timestamps and go
// through Ticks; arrivals go back through Time.

package temporal

import (
	"slices"

	"github.com/katalvlaran/treach/reach"
)

// Ranked reports whether ticks are ranks of input timestamps (graphs from
// Build) rather than the timestamps themselves.
func (g *Graph) Ranked() bool { return g.times != nil }

// Time returns the input timestamp of tick t. Ticks outside the timeline,
// and every tick of an identity graph, map to themselves.
func (g *Graph) Time(t int) int {
	if g.times == nil || t < 1 || t >= len(g.times) {
		return t
	}
	return g.times[t]
}

// LastTime returns the input timestamp of the last tick (0 when empty).
func (g *Graph) LastTime() int {
	if g.times == nil {
		return g.tmax
	}
	return g.times[len(g.times)-1]
}

// Ticks maps a window over input timestamps onto the ticks whose timestamps
// fall inside it. The result is empty when no tick does.
//
// Complexity: O(log TMax()).
func (g *Graph) Ticks(w reach.Window) reach.Window {
	w = w.Normalize()
	if g.times == nil {
		return w
	}
	ts := g.times[1:]
	from, _ := slices.BinarySearch(ts, w.From)
	to, found := slices.BinarySearch(ts, w.To)
	if found {
		to++
	}
	return reach.Window{From: from + 1, To: to}
}
