// SPDX-License-Identifier: MIT

package optimized

import (
	"errors"
	"time"

	"github.com/katalvlaran/treach/dnc"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// ErrGraphNil is returned when a nil graph is passed to Construct or Update.
var ErrGraphNil = errors.New("optimized: graph is nil")

// Index is the divide-and-conquer reachability index.
type Index struct {
	opts  reach.Options
	n     int
	tree  *dnc.Tree
	built bool
}

// New returns an unbuilt index.
func New(opts ...reach.Option) *Index {
	return &Index{opts: reach.Resolve(opts...)}
}

// Construct discards previous state and summarizes [1, floor(tmax·f)].
func (ix *Index) Construct(g *temporal.Graph, retained float64) error {
	if g == nil {
		return ErrGraphNil
	}
	h, err := reach.HorizonFor(g.TMax(), retained)
	if err != nil {
		return err
	}
	start := time.Now()
	tree, err := dnc.Build(g, h, ix.opts.Semantics)
	if err != nil {
		return err
	}
	ix.tree, ix.n, ix.built = tree, g.NumVertices(), true

	ix.opts.Logger.Info().
		Str("index", "optimized").
		Int("horizon", h).
		Int("nodes", tree.Nodes()).
		Int("capacity", tree.Capacity()).
		Int64("bytes", ix.Size()).
		Dur("took", time.Since(start)).
		Msg("index constructed")

	if ix.opts.Debug {
		return tree.Verify()
	}
	return nil
}

// Update extends the horizon to g.TMax(). A graph that did not grow past
// the horizon leaves the index unchanged.
func (ix *Index) Update(g *temporal.Graph) error {
	if !ix.built {
		return reach.ErrNotBuilt
	}
	if g == nil {
		return ErrGraphNil
	}
	if g.TMax() <= ix.tree.Horizon() {
		return nil
	}
	from := ix.tree.Horizon() + 1
	start := time.Now()
	if err := ix.tree.Extend(g, g.TMax()); err != nil {
		return err
	}
	ix.n = max(ix.n, g.NumVertices())

	ix.opts.Logger.Info().
		Str("index", "optimized").
		Int("from", from).
		Int("horizon", ix.tree.Horizon()).
		Int("recomposed", ix.tree.Recomposed()).
		Dur("took", time.Since(start)).
		Msg("index updated")

	if ix.opts.Debug {
		return ix.tree.Verify()
	}
	return nil
}

// Size returns the bytes held by node summaries (0 when unbuilt).
func (ix *Index) Size() int64 {
	if ix.tree == nil {
		return 0
	}
	return ix.tree.Bytes()
}

// Horizon returns the last summarized timestamp (0 when unbuilt).
func (ix *Index) Horizon() int {
	if ix.tree == nil {
		return 0
	}
	return ix.tree.Horizon()
}

// Recomposed returns the nodes recomputed by the last Construct or Update.
func (ix *Index) Recomposed() int {
	if ix.tree == nil {
		return 0
	}
	return ix.tree.Recomposed()
}

// Tree exposes the underlying decomposition, nil when unbuilt.
func (ix *Index) Tree() *dnc.Tree { return ix.tree }

// Query answers whether target is reachable from source within w, clipped
// to the horizon, and reports the earliest arrival.
func (ix *Index) Query(source, target int, w reach.Window) (reach.Result, error) {
	if !ix.built {
		return reach.Result{}, reach.ErrNotBuilt
	}
	if err := reach.CheckVertex(source, ix.n); err != nil {
		return reach.Result{}, err
	}
	if err := reach.CheckVertex(target, ix.n); err != nil {
		return reach.Result{}, err
	}
	w = w.Normalize()
	if source == target {
		return reach.Trivial(source, w), nil
	}
	res := reach.Unreachable(source, target, w)
	cw := w.Clip(ix.tree.Horizon())
	if a, ok := ix.tree.Earliest(source, target, cw.From, cw.To); ok {
		res.Reachable = true
		res.Arrival = a
	}
	if ix.opts.Debug {
		ix.opts.Logger.Debug().
			Int("source", source).
			Int("target", target).
			Stringer("window", cw).
			Int("cover", len(ix.tree.Cover(cw.From, cw.To))).
			Bool("reachable", res.Reachable).
			Msg("query")
	}
	return res, nil
}

// Reachable lists every vertex reachable from source within [1, Horizon()],
// source included, ascending.
func (ix *Index) Reachable(source int) ([]int, error) {
	if !ix.built {
		return nil, reach.ErrNotBuilt
	}
	if err := reach.CheckVertex(source, ix.n); err != nil {
		return nil, err
	}
	// the root relation summarizes [1, Horizon()]
	root := ix.tree.Root()
	if root == nil {
		return []int{source}, nil
	}
	img := root.Rel.Image(source)
	if img == nil || img.IsEmpty() {
		return []int{source}, nil
	}
	bm := img.Clone()
	bm.Add(uint32(source))
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out, nil
}
