// SPDX-License-Identifier: MIT

package dnc

import "github.com/RoaringBitmap/roaring"

// Earliest returns the earliest timestamp in [t1,t2] at which target is
// reached from source, composing the cover summaries left to right and
// descending into the first node whose summary reaches the target.
// source == target is not special-cased.
func (t *Tree) Earliest(source, target, t1, t2 int) (int, bool) {
	frontier := Singleton(source)
	want := uint32(target)
	for _, n := range t.Cover(t1, t2) {
		next := n.Rel.Apply(frontier)
		if next.Contains(want) {
			return descend(n, frontier, want), true
		}
		frontier = next
	}
	return 0, false
}

// descend narrows n to the leaf where target first enters the frontier.
// The caller guarantees n.Rel.Apply(frontier) contains target.
func descend(n *Node, frontier *roaring.Bitmap, target uint32) int {
	for !n.Leaf() {
		after := n.left.Rel.Apply(frontier)
		if after.Contains(target) || n.right == nil {
			n = n.left
			continue
		}
		frontier, n = after, n.right
	}
	return n.Lo
}
