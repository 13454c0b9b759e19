// SPDX-License-Identifier: MIT

// Package dnc provides the divide-and-conquer building blocks of the
// optimized reachability index: a reachability Relation over vertex ids and
// a segment Tree over the timeline whose nodes hold the Relation of their
// interval.
//
// Relation
//
//	R(u) is the set of vertices reachable from u within an interval,
//	excluding u itself (identity is implicit). Reachability over two
//	adjacent intervals A then B is the composition
//
//	    C(u) = A(u) ∪ B(u) ∪ ⋃_{w ∈ A(u)} B(w)
//
//	and Apply(F) = F ∪ ⋃_{u ∈ F} R(u) advances a frontier across an interval.
//	Images are roaring bitmaps.
//
// Tree
//
//   - Leaves cover single timestamps; a leaf's Relation is the bucket's
//     direct adjacency (reach.Strict) or its transitive closure
//     (reach.NonStrict, where edges of one timestamp chain).
//   - An internal node holds Compose(left, right). A node without a right
//     child (interval past the horizon) shares its left child's Relation.
//   - Capacity is a power of two; Extend doubles it as needed, the old root
//     becoming the left child, and recomposes only nodes intersecting the
//     appended timestamps, O(log H) internal nodes per new timestamp.
//   - Cover returns the canonical O(log H) nodes covering [t1,t2] in
//     timeline order.
//
// Complexity
//
//   - Build: O(H) leaves, H-1 compositions.
//   - Extend by k timestamps: O(k + log H) compositions.
//   - Cover: O(log H).
package dnc
