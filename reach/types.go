// SPDX-License-Identifier: MIT

package reach

import (
	"fmt"
	"strings"
)

// Window is an inclusive range of timestamps [From, To].
type Window struct {
	From int
	To   int
}

// Upto returns the window [1, bound].
func Upto(bound int) Window { return Window{From: 1, To: bound} }

// Normalize clamps From to 1. A window with From > To stays empty.
func (w Window) Normalize() Window {
	if w.From < 1 {
		w.From = 1
	}
	return w
}

// Empty reports whether the window contains no timestamp.
func (w Window) Empty() bool { return w.From > w.To }

// Clip restricts the window to [1, horizon].
func (w Window) Clip(horizon int) Window {
	w = w.Normalize()
	if w.To > horizon {
		w.To = horizon
	}
	return w
}

// String renders the window as "[from,to]".
func (w Window) String() string { return fmt.Sprintf("[%d,%d]", w.From, w.To) }

// Result is the answer to one reachability query.
// Arrival is meaningful only when Reachable is true.
type Result struct {
	Source    int
	Target    int
	Window    Window
	Reachable bool
	Arrival   int
}

// Trivial returns the answer for Source == Target: reachable at the window start.
func Trivial(v int, w Window) Result {
	w = w.Normalize()
	return Result{Source: v, Target: v, Window: w, Reachable: true, Arrival: w.From}
}

// Unreachable returns a negative answer for (s,t) in w.
func Unreachable(s, t int, w Window) Result {
	return Result{Source: s, Target: t, Window: w.Normalize()}
}

// Semantics selects the temporal ordering required between consecutive hops.
type Semantics int

const (
	// NonStrict allows consecutive hops with equal timestamps (t1 ≤ t2).
	NonStrict Semantics = iota
	// Strict requires strictly increasing timestamps (t1 < t2).
	Strict
)

// String returns "non-strict" or "strict".
func (s Semantics) String() string {
	if s == Strict {
		return "strict"
	}
	return "non-strict"
}

// Usable reports whether a hop at time next may follow an arrival at time arrival.
func (s Semantics) Usable(arrival, next int) bool {
	if s == Strict {
		return arrival < next
	}
	return arrival <= next
}

// ParseSemantics accepts "strict" and "non-strict" (also "nonstrict", "").
func ParseSemantics(s string) (Semantics, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "non-strict", "nonstrict", "non_strict":
		return NonStrict, nil
	case "strict":
		return Strict, nil
	default:
		return NonStrict, fmt.Errorf("%w: unknown semantics %q", ErrInvalidConfiguration, s)
	}
}

// MalformedPolicy decides what happens to a record that fails to parse.
type MalformedPolicy int

const (
	// Abort stops reading and returns ErrMalformedInput with the line number.
	Abort MalformedPolicy = iota
	// Skip drops the record, counts it and continues.
	Skip
)

// String returns "abort" or "skip".
func (p MalformedPolicy) String() string {
	if p == Skip {
		return "skip"
	}
	return "abort"
}

// ParseMalformedPolicy accepts "abort" (or "") and "skip".
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return Abort, nil
	case "skip":
		return Skip, nil
	default:
		return Abort, fmt.Errorf("%w: unknown malformed-record policy %q", ErrInvalidConfiguration, s)
	}
}
