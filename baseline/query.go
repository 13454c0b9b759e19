// SPDX-License-Identifier: MIT

package baseline

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/treach/reach"
)

// Query answers whether target is reachable from source departing no
// earlier than w.From and arriving no later than w.To. The window is
// clipped to the horizon.
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
	cw := w.Clip(ix.horizon)
	if cw.Empty() {
		return res, nil
	}
	en, ok := ix.fwd[source].Get(&entry{v: uint32(target)})
	if !ok {
		return res, nil
	}
	i := sort.Search(len(en.labels), func(k int) bool { return int(en.labels[k].dep) >= cw.From })
	if i < len(en.labels) && int(en.labels[i].arr) <= cw.To {
		res.Reachable = true
		res.Arrival = int(en.labels[i].arr)
	}
	return res, nil
}

// Reachable lists every vertex reachable from source within [1, Horizon()],
// source included, in increasing id order.
func (ix *Index) Reachable(source int) ([]int, error) {
	if !ix.built {
		return nil, reach.ErrNotBuilt
	}
	if err := reach.CheckVertex(source, ix.n); err != nil {
		return nil, err
	}
	out := []int{source}
	ix.fwd[source].Scan(func(en *entry) bool {
		out = append(out, int(en.v))
		return true
	})
	sort.Ints(out)
	return out, nil
}

// Verify checks the label invariants of every pair.
func (ix *Index) Verify() error {
	var total int64
	for s, targets := range ix.fwd {
		var err error
		targets.Scan(func(en *entry) bool {
			total += int64(len(en.labels))
			if len(en.labels) == 0 {
				err = fmt.Errorf("%w: pair %d→%d has no labels", reach.ErrInvariant, s, en.v)
				return false
			}
			if !ix.rev[en.v].Contains(uint32(s)) {
				err = fmt.Errorf("%w: pair %d→%d missing from reverse index", reach.ErrInvariant, s, en.v)
				return false
			}
			for i, l := range en.labels {
				if int(l.arr) > ix.horizon || l.dep > l.arr {
					err = fmt.Errorf("%w: pair %d→%d label (%d,%d) outside horizon %d",
						reach.ErrInvariant, s, en.v, l.dep, l.arr, ix.horizon)
					return false
				}
				if i > 0 && (l.dep <= en.labels[i-1].dep || l.arr < en.labels[i-1].arr) {
					err = fmt.Errorf("%w: pair %d→%d labels not Pareto ordered at %d",
						reach.ErrInvariant, s, en.v, i)
					return false
				}
			}
			return true
		})
		if err != nil {
			return err
		}
	}
	if total != ix.labels {
		return fmt.Errorf("%w: counted %d labels, tracked %d", reach.ErrInvariant, total, ix.labels)
	}
	return nil
}
