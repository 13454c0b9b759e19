// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// impl_random.go - RandomTemporal(n, m, tmax) and RandomSparse(n, p, tmax).
//
// Contract:
//   - n ≥ 2, tmax ≥ 1; RandomTemporal needs m ≥ 0, RandomSparse p ∈ [0,1].
//   - cfg.rng must be non-nil (else ErrNeedRandSource), except RandomSparse with p = 0.
//   - No self-loops are emitted.
//
// Determinism:
//   - RandomTemporal draws (src, dst, t) per edge in emission order.
//   - RandomSparse trials ordered pairs (i asc, j asc), drawing t only on success.

package builder

const (
	methodRandomTemporal = "RandomTemporal"
	methodRandomSparse   = "RandomSparse"
	minRandomVertices    = 2
)

// RandomTemporal emits m edges with uniform endpoints (src ≠ dst) and
// uniform timestamps in [1, tmax].
func RandomTemporal(n, m, tmax int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if err := validateMin(methodRandomTemporal, "n", n, minRandomVertices); err != nil {
			return err
		}
		if err := validateMin(methodRandomTemporal, "m", m, 0); err != nil {
			return err
		}
		if err := validateTime(methodRandomTemporal, "tmax", tmax); err != nil {
			return err
		}
		if err := requireRand(methodRandomTemporal, cfg); err != nil {
			return err
		}
		rng := cfg.rng
		for i := 0; i < m; i++ {
			u := rng.Intn(n)
			v := rng.Intn(n - 1)
			if v >= u {
				v++
			}
			el.add(cfg.vertex(u), cfg.vertex(v), 1+rng.Intn(tmax))
		}
		return nil
	}
}

// RandomSparse includes each ordered pair (i, j), i ≠ j, independently with
// probability p, at a uniform timestamp in [1, tmax].
func RandomSparse(n int, p float64, tmax int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if err := validateTime(methodRandomSparse, "tmax", tmax); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}
		if err := requireRand(methodRandomSparse, cfg); err != nil {
			return err
		}
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if rng.Float64() < p || p == 1 {
					el.add(cfg.vertex(i), cfg.vertex(j), 1+rng.Intn(tmax))
				}
			}
		}
		return nil
	}
}
