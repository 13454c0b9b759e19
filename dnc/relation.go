// SPDX-License-Identifier: MIT

package dnc

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// Relation maps a vertex to the vertices it reaches. The zero value is an
// empty relation ready to use.
type Relation struct {
	img map[uint32]*roaring.Bitmap
}

// NewRelation returns an empty relation.
func NewRelation() *Relation {
	return &Relation{img: make(map[uint32]*roaring.Bitmap)}
}

// Add records u→v. Self pairs are implicit and ignored.
func (r *Relation) Add(u, v int) {
	if u == v {
		return
	}
	if r.img == nil {
		r.img = make(map[uint32]*roaring.Bitmap)
	}
	bm, ok := r.img[uint32(u)]
	if !ok {
		bm = roaring.New()
		r.img[uint32(u)] = bm
	}
	bm.Add(uint32(v))
}

// Contains reports u→v; u→u always holds.
func (r *Relation) Contains(u, v int) bool {
	if u == v {
		return true
	}
	bm, ok := r.img[uint32(u)]
	return ok && bm.Contains(uint32(v))
}

// Image returns R(u) without u, or nil. The bitmap must not be modified.
func (r *Relation) Image(u int) *roaring.Bitmap { return r.img[uint32(u)] }

// Len returns the number of stored non-identity pairs.
func (r *Relation) Len() uint64 {
	var c uint64
	for _, bm := range r.img {
		c += bm.GetCardinality()
	}
	return c
}

// Bytes returns the serialized size of all images.
func (r *Relation) Bytes() int64 {
	var b int64
	for _, bm := range r.img {
		b += int64(bm.GetSizeInBytes())
	}
	return b
}

// Equal reports whether both relations hold the same pairs.
func (r *Relation) Equal(o *Relation) bool {
	if len(r.img) != len(o.img) {
		return false
	}
	for u, bm := range r.img {
		ob, ok := o.img[u]
		if !ok || !bm.Equals(ob) {
			return false
		}
	}
	return true
}

// Apply returns F ∪ ⋃_{u∈F} R(u). F is not modified.
func (r *Relation) Apply(frontier *roaring.Bitmap) *roaring.Bitmap {
	out := frontier.Clone()
	it := frontier.Iterator()
	for it.HasNext() {
		if bm, ok := r.img[it.Next()]; ok {
			out.Or(bm)
		}
	}
	return out
}

// Compose returns the relation of interval a followed by interval b.
func Compose(a, b *Relation) *Relation {
	c := NewRelation()
	for u, am := range a.img {
		cm := am.Clone()
		if bm, ok := b.img[u]; ok {
			cm.Or(bm)
		}
		it := am.Iterator()
		for it.HasNext() {
			if bm, ok := b.img[it.Next()]; ok {
				cm.Or(bm)
			}
		}
		cm.Remove(u)
		if !cm.IsEmpty() {
			c.img[u] = cm
		}
	}
	for u, bm := range b.img {
		if _, done := a.img[u]; !done {
			c.img[u] = bm.Clone()
		}
	}
	return c
}

// LeafRelation summarizes the edges of one timestamp.
func LeafRelation(edges []temporal.Edge, sem reach.Semantics) *Relation {
	r := NewRelation()
	for _, e := range edges {
		r.Add(e.Src, e.Dst)
	}
	if sem == reach.Strict || len(r.img) < 2 {
		return r
	}
	return r.closure()
}

// closure returns the transitive closure by a breadth-first pass per source.
func (r *Relation) closure() *Relation {
	c := NewRelation()
	for u := range r.img {
		seen := roaring.New()
		queue := []uint32{u}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			bm, ok := r.img[x]
			if !ok {
				continue
			}
			it := bm.Iterator()
			for it.HasNext() {
				y := it.Next()
				if seen.CheckedAdd(y) {
					queue = append(queue, y)
				}
			}
		}
		seen.Remove(u)
		if !seen.IsEmpty() {
			c.img[u] = seen
		}
	}
	return c
}
