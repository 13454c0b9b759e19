// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is local vertex 0; leaf i (1 ≤ i < n) exchanges two edges with the
//     hub at ti = cfg.at(i-1): leaf→hub then hub→leaf.
//
// Reachability between leaves depends on hop semantics: leaf i reaches leaf
// j iff tj ≥ ti (non-strict) or tj > ti (strict).

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor building a hub-and-spoke exchange.
func Star(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		hub := cfg.vertex(0)
		for i := 1; i < n; i++ {
			t := cfg.at(i - 1)
			el.add(cfg.vertex(i), hub, t)
			el.add(hub, cfg.vertex(i), t)
		}
		return nil
	}
}
