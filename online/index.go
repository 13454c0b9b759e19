// SPDX-License-Identifier: MIT

package online

import (
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// Index exposes Search through the index capability set. It keeps a
// reference to the graph (the only engine that does) and a horizon that
// bounds every query window, mirroring what a built index would see.
type Index struct {
	opts    reach.Options
	g       *temporal.Graph
	horizon int
	built   bool
}

// NewIndex returns an unbuilt online index.
func NewIndex(opts ...reach.Option) *Index {
	return &Index{opts: reach.Resolve(opts...)}
}

// Construct records g and the horizon floor(tmax·f).
func (ix *Index) Construct(g *temporal.Graph, retained float64) error {
	if g == nil {
		return ErrGraphNil
	}
	h, err := reach.HorizonFor(g.TMax(), retained)
	if err != nil {
		return err
	}
	ix.g, ix.horizon, ix.built = g, h, true
	return nil
}

// Update moves the horizon to g.TMax().
func (ix *Index) Update(g *temporal.Graph) error {
	if !ix.built {
		return reach.ErrNotBuilt
	}
	if g == nil {
		return ErrGraphNil
	}
	ix.g = g
	ix.horizon = max(ix.horizon, g.TMax())
	return nil
}

// Size is always zero: nothing is precomputed.
func (ix *Index) Size() int64 { return 0 }

// Horizon returns the current horizon (0 when unbuilt).
func (ix *Index) Horizon() int { return ix.horizon }

// Query runs Search over the window clipped to the horizon.
func (ix *Index) Query(source, target int, w reach.Window) (reach.Result, error) {
	if !ix.built {
		return reach.Result{}, reach.ErrNotBuilt
	}
	w = w.Normalize()
	res, err := Search(ix.g, source, target, w.Clip(ix.horizon), reach.WithOptions(ix.opts))
	if err != nil {
		return res, err
	}
	res.Window = w
	return res, nil
}
