// SPDX-License-Identifier: MIT

package reach

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every package of the module. Callers branch with
// errors.Is; implementations attach context with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidConfiguration indicates a configuration value outside its domain
	// or an operation requested in the wrong lifecycle state.
	ErrInvalidConfiguration = errors.New("reach: invalid configuration")

	// ErrMalformedInput indicates an edge or query record that cannot be parsed.
	ErrMalformedInput = errors.New("reach: malformed input")

	// ErrPreconditionViolation indicates a caller-side contract breach,
	// such as a vertex id outside [0,n).
	ErrPreconditionViolation = errors.New("reach: precondition violation")

	// ErrNotBuilt indicates Update or Query on an index that was never constructed.
	ErrNotBuilt = fmt.Errorf("%w: index is not built", ErrInvalidConfiguration)

	// ErrInvariant is returned by debug-mode self checks when an internal
	// invariant does not hold. It always indicates a bug.
	ErrInvariant = errors.New("reach: internal invariant violated")
)

// CheckVertex reports ErrPreconditionViolation when v is outside [0,n).
func CheckVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: vertex %d outside [0,%d)", ErrPreconditionViolation, v, n)
	}
	return nil
}
