// SPDX-License-Identifier: MIT

package dnc

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// ErrShrink is returned by Extend for a horizon below the current one.
var ErrShrink = fmt.Errorf("%w: dnc: horizon cannot shrink", reach.ErrPreconditionViolation)

// ErrGraphNil is returned when Build or Extend receive a nil graph.
var ErrGraphNil = errors.New("dnc: graph is nil")

// Node is one interval of the tree.
type Node struct {
	Lo, Hi int
	Rel    *Relation

	left, right *Node
}

// Leaf reports whether the node covers a single timestamp.
func (n *Node) Leaf() bool { return n.Lo == n.Hi }



// Tree is a segment tree over [1, Capacity()] with summaries for [1, Horizon()].
type Tree struct {
	sem        reach.Semantics
	root       *Node
	capacity   int
	horizon    int
	recomposed int
}

// New returns an empty tree using the given hop semantics for leaves.
func New(sem reach.Semantics) *Tree {
	return &Tree{sem: sem, capacity: 1}
}

// Build returns a tree over the buckets 1..h of g.
func Build(g *temporal.Graph, h int, sem reach.Semantics) (*Tree, error) {
	t := New(sem)
	if err := t.Extend(g, h); err != nil {
		return nil, err
	}
	return t, nil
}

// Horizon returns the last summarized timestamp.
func (t *Tree) Horizon() int { return t.horizon }

// Capacity returns the number of timestamps the root spans.
func (t *Tree) Capacity() int { return t.capacity }

// Root returns the root node, nil while the horizon is 0.
func (t *Tree) Root() *Node { return t.root }

// Recomposed returns the number of nodes (re)computed by the last Build or Extend.
func (t *Tree) Recomposed() int { return t.recomposed }

// Extend summarizes buckets Horizon()+1..h of g. Nodes whose interval
// lies entirely at or before the old horizon are left untouched.
//
// Steps:
//  1. Double the capacity until it covers h; each doubling makes the old
//     root the left child of a new root.
//  2. Refill the nodes whose interval meets [Horizon()+1, h]: new leaves get
//     LeafRelation of their bucket, internal nodes recompose their children.
//     A node without a right child shares its left child's relation.
//
// Extend(g, Horizon()) is a no-op with Recomposed() == 0.
//
// Errors:
//
//   - ErrGraphNil if g is nil.
//   - ErrShrink if h < Horizon().
//
// Complexity:
//
//   - Nodes: O(k + log C) recomposed for k new buckets and capacity C.
//   - Time:  dominated by Compose along the refilled paths.
//   - Space: O(k) new nodes.
func (t *Tree) Extend(g *temporal.Graph, h int) error {
	if g == nil {
		return ErrGraphNil
	}
	if h < t.horizon {
		return fmt.Errorf("%w: %d < %d", ErrShrink, h, t.horizon)
	}
	t.recomposed = 0
	if h == t.horizon {
		return nil
	}

	for t.capacity < h {
		t.capacity *= 2
		if t.root != nil {
			t.root = &Node{Lo: 1, Hi: t.capacity, Rel: t.root.Rel, left: t.root}
		}
	}
	if t.root == nil {
		t.root = &Node{Lo: 1, Hi: t.capacity}
	}
	t.fill(g, t.root, t.horizon+1, h)
	t.horizon = h
	return nil
}

// fill recomputes n for the timestamps [a,b] ⊆ [n.Lo,n.Hi].
func (t *Tree) fill(g *temporal.Graph, n *Node, a, b int) {
	t.recomposed++
	if n.Leaf() {
		n.Rel = LeafRelation(g.Bucket(n.Lo), t.sem)
		return
	}
	mid := n.Lo + (n.Hi-n.Lo)/2
	if n.left == nil {
		n.left = &Node{Lo: n.Lo, Hi: mid}
	}
	if a <= mid {
		t.fill(g, n.left, a, min(b, mid))
	}
	if b > mid {
		if n.right == nil {
			n.right = &Node{Lo: mid + 1, Hi: n.Hi}
		}
		t.fill(g, n.right, max(a, mid+1), b)
	}
	if n.right == nil {
		n.Rel = n.left.Rel
	} else {
		n.Rel = Compose(n.left.Rel, n.right.Rel)
	}
}

// Cover returns the canonical nodes covering [t1,t2] ∩ [1,Horizon()],
// ordered by time. Composing their relations left to right yields the
// relation of the window. An empty intersection returns nil.
//
// Complexity: O(log C) nodes, found in O(log C) time for capacity C.
func (t *Tree) Cover(t1, t2 int) []*Node {
	t1 = max(t1, 1)
	t2 = min(t2, t.horizon)
	if t.root == nil || t1 > t2 {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || n.Hi < t1 || n.Lo > t2 {
			return
		}
		if t1 <= n.Lo && n.Hi <= t2 {
			out = append(out, n)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Bytes returns the summed size of every distinct node relation.
func (t *Tree) Bytes() int64 {
	var b int64
	t.Walk(func(n *Node) bool {
		if n.right != nil || n.Leaf() {
			b += n.Rel.Bytes()
		}
		return true
	})
	return b
}

// Nodes returns the number of allocated nodes.
func (t *Tree) Nodes() int {
	c := 0
	t.Walk(func(*Node) bool { c++; return true })
	return c
}

// Walk visits nodes in pre-order until fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	var visit func(n *Node) bool
	visit = func(n *Node) bool {
		if n == nil {
			return true
		}
		return fn(n) && visit(n.left) && visit(n.right)
	}
	visit(t.root)
}

// Verify checks that every internal node equals the composition of its
// children.
func (t *Tree) Verify() error {
	var err error
	t.Walk(func(n *Node) bool {
		if n.Leaf() || n.Lo > t.horizon {
			return true
		}
		want := n.left.Rel
		if n.right != nil {
			want = Compose(n.left.Rel, n.right.Rel)
		}
		if !n.Rel.Equal(want) {
			err = fmt.Errorf("%w: node [%d,%d] is not the composition of its children",
				reach.ErrInvariant, n.Lo, n.Hi)
			return false
		}
		return true
	})
	return err
}

// Frontier is the set of vertices reached so far during a query.
type Frontier = roaring.Bitmap

// Singleton returns a frontier holding only v.
func Singleton(v int) *Frontier { return roaring.BitmapOf(uint32(v)) }
