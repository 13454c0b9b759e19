// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// impl_path.go - Path(n) and Burst(n, t).
//
// Path emits i→i+1 at cfg.at(i), a journey that is valid under both hop
// semantics when the step is positive. Burst emits the same chain with every
// edge at timestamp t: under non-strict semantics 0 reaches every vertex,
// under strict semantics only 1.

package builder

const (
	methodPath   = "Path"
	methodBurst  = "Burst"
	minPathNodes = 2
)

// Path returns a Constructor for the temporal path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			el.add(cfg.vertex(i), cfg.vertex(i+1), cfg.at(i))
		}
		return nil
	}
}

// Burst returns a Constructor for the chain 0→1→…→n-1 at a single timestamp.
func Burst(n, t int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if err := validateMin(methodBurst, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := validateTime(methodBurst, "t", t); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			el.add(cfg.vertex(i), cfg.vertex(i+1), t)
		}
		return nil
	}
}
