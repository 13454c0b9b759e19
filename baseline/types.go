// SPDX-License-Identifier: MIT

package baseline

import (
	"errors"
	"unsafe"

	"github.com/RoaringBitmap/roaring"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/treach/reach"
)

// ErrGraphNil is returned when a nil graph is passed to Construct or Update.
var ErrGraphNil = errors.New("baseline: graph is nil")

// label is one Pareto-optimal journey summary: leave at dep, arrive at arr.
type label struct {
	dep int32
	arr int32
}

// LabelBytes is the memory accounted per stored label by Size.
const LabelBytes = int64(unsafe.Sizeof(label{}))

// entry holds the labels of one (source, target) pair.
type entry struct {
	v      uint32
	labels []label
}

func entryLess(a, b *entry) bool { return a.v < b.v }

// Index is the baseline reachability index. The zero value is not usable;
// call New.
type Index struct {
	opts    reach.Options
	n       int
	horizon int
	built   bool

	fwd    []*btree.BTreeG[*entry] // fwd[s]: targets of s ordered by id
	rev    []*roaring.Bitmap       // rev[v]: sources s ≠ v with a label s→v
	labels int64                   // total stored labels
}

// New returns an unbuilt index.
func New(opts ...reach.Option) *Index {
	return &Index{opts: reach.Resolve(opts...)}
}

func newTargets() *btree.BTreeG[*entry] {
	return btree.NewBTreeGOptions(entryLess, btree.Options{NoLocks: true})
}
