// SPDX-License-Identifier: MIT

package baseline

import (
	"time"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// Construct discards any previous state and builds the index over
// [1, floor(g.TMax()·retained)].
//
// Steps:
//  1. Validate g and the fraction, then size the per-vertex tables.
//  2. Walk buckets 1..h in order. Every edge (u,v,t) starts the label (t,t)
//     for u→v and extends each source s whose label to u is usable at t.
//     Under NonStrict a bucket is relaxed to a fixpoint so chains inside one
//     timestamp propagate; under Strict one pass suffices.
//  3. Under debug, Verify the label order and the reverse index.
//
// Errors:
//
//   - ErrGraphNil if g is nil.
//   - reach.ErrInvalidConfiguration if retained is outside (0,1].
//   - reach.ErrInvariant from Verify (debug only).
//
// Complexity:
//
//   - Time:  O(Σ_t |E_t| · S_t · log n), S_t sources reaching the tails of
//     bucket t; the NonStrict fixpoint repeats a bucket at most its longest
//     same-timestamp chain times.
//   - Space: O(L) for L labels, plus one roaring bitmap per vertex.
func (ix *Index) Construct(g *temporal.Graph, retained float64) error {
	if g == nil {
		return ErrGraphNil
	}
	h, err := reach.HorizonFor(g.TMax(), retained)
	if err != nil {
		return err
	}

	ix.n, ix.horizon, ix.labels = 0, 0, 0
	ix.fwd, ix.rev = nil, nil
	ix.grow(g.NumVertices())

	start := time.Now()
	ix.propagate(g, 1, h)
	ix.horizon = h
	ix.built = true

	ix.opts.Logger.Info().
		Str("index", "baseline").
		Int("horizon", h).
		Int64("labels", ix.labels).
		Int64("bytes", ix.Size()).
		Dur("took", time.Since(start)).
		Msg("index constructed")

	if ix.opts.Debug {
		return ix.Verify()
	}
	return nil
}

// Update extends the horizon to g.TMax(), relaxing only the new buckets.
// A graph that did not grow past the horizon leaves the index unchanged.
// Labels already stored stay valid: an appended bucket can only add labels
// with a later arrival.
//
// Errors:
//
//   - reach.ErrNotBuilt before Construct.
//   - ErrGraphNil if g is nil.
//   - reach.ErrInvariant from Verify (debug only).
//
// Complexity: as Construct, over buckets Horizon()+1..g.TMax() only.
func (ix *Index) Update(g *temporal.Graph) error {
	if !ix.built {
		return reach.ErrNotBuilt
	}
	if g == nil {
		return ErrGraphNil
	}
	if g.TMax() <= ix.horizon {
		return nil
	}

	from := ix.horizon + 1
	before := ix.labels
	start := time.Now()
	ix.grow(g.NumVertices())
	ix.propagate(g, from, g.TMax())
	ix.horizon = g.TMax()

	ix.opts.Logger.Info().
		Str("index", "baseline").
		Int("from", from).
		Int("horizon", ix.horizon).
		Int64("new_labels", ix.labels-before).
		Dur("took", time.Since(start)).
		Msg("index updated")

	if ix.opts.Debug {
		return ix.Verify()
	}
	return nil
}

// Size returns the bytes held by all labels.
func (ix *Index) Size() int64 { return ix.labels * LabelBytes }

// Horizon returns the last timestamp accounted for (0 when unbuilt).
func (ix *Index) Horizon() int { return ix.horizon }

// Labels returns the number of stored labels.
func (ix *Index) Labels() int64 { return ix.labels }

// Pairs returns the number of (source, target) pairs with s ≠ t known reachable.
func (ix *Index) Pairs() int {
	c := 0
	for _, t := range ix.fwd {
		c += t.Len()
	}
	return c
}

// grow extends the per-vertex tables to n vertices.
func (ix *Index) grow(n int) {
	for len(ix.fwd) < n {
		ix.fwd = append(ix.fwd, newTargets())
		ix.rev = append(ix.rev, roaring.New())
	}
	ix.n = max(ix.n, n)
}
