// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got ≥ min, wrapping ErrTooFewVertices otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < 0 || p > 1 || p != p {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	return nil
}

// validateTime ensures t ≥ 1.
func validateTime(method, name string, t int) error {
	if t < 1 {
		return fmt.Errorf("%s: %s=%d: %w", method, name, t, ErrInvalidTime)
	}
	return nil
}

// requireRand rejects a config without RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}
