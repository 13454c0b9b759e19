// SPDX-License-Identifier: MIT

package reach

import (
	"fmt"
	"math"
)

// ValidateRetained checks that f lies in (0,1].
func ValidateRetained(f float64) error {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return fmt.Errorf("%w: retained fraction %v not in (0,1]", ErrInvalidConfiguration, f)
	}
	return nil
}

// ValidateUpdate checks that f lies in [0,1).
func ValidateUpdate(f float64) error {
	if math.IsNaN(f) || f < 0 || f >= 1 {
		return fmt.Errorf("%w: update fraction %v not in [0,1)", ErrInvalidConfiguration, f)
	}
	return nil
}

// HorizonFor returns floor(tmax·f) for a validated f.
func HorizonFor(tmax int, f float64) (int, error) {
	if err := ValidateRetained(f); err != nil {
		return 0, err
	}
	if tmax <= 0 {
		return 0, nil
	}
	h := int(math.Floor(float64(tmax) * f))
	if h > tmax {
		h = tmax
	}
	return h, nil
}

// Keep returns how many of k ordered items survive fraction f:
// floor(k·f), but at least one when k > 0.
func Keep(k int, f float64) int {
	if k <= 0 {
		return 0
	}
	n := int(math.Floor(float64(k) * f))
	if n < 1 {
		n = 1
	}
	if n > k {
		n = k
	}
	return n
}
