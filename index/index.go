// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/treach/baseline"
	"github.com/katalvlaran/treach/online"
	"github.com/katalvlaran/treach/optimized"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// Index is the capability set {construct, update, size, query}.
type Index interface {
	// Construct builds the index over [1, floor(tmax·retained)].
	Construct(g *temporal.Graph, retained float64) error
	// Update extends the horizon to g.TMax() using only the new buckets.
	Update(g *temporal.Graph) error
	// Size returns the bytes held by the index summaries.
	Size() int64
	// Horizon returns the last timestamp accounted for (0 when unbuilt).
	Horizon() int
	// Query answers one (source, target, window) request.
	Query(source, target int, w reach.Window) (reach.Result, error)
}

var (
	_ Index = (*online.Index)(nil)
	_ Index = (*baseline.Index)(nil)
	_ Index = (*optimized.Index)(nil)
)

// Mode selects an engine.
type Mode int

const (
	// Online answers queries by searching the graph.
	Online Mode = iota
	// Baseline uses the exhaustive label-propagation index.
	Baseline
	// Optimized uses the divide-and-conquer index.
	Optimized
)

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Baseline:
		return "baseline"
	case Optimized:
		return "optimized"
	default:
		return "online"
	}
}

// ParseMode accepts "online", "baseline", "optimized" (alias "res").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return Online, nil
	case "baseline":
		return Baseline, nil
	case "optimized", "res":
		return Optimized, nil
	default:
		return Online, fmt.Errorf("%w: unknown mode %q", reach.ErrInvalidConfiguration, s)
	}
}

// New returns an unbuilt engine for mode.
func New(mode Mode, opts ...reach.Option) (Index, error) {
	switch mode {
	case Online:
		return online.NewIndex(opts...), nil
	case Baseline:
		return baseline.New(opts...), nil
	case Optimized:
		return optimized.New(opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", reach.ErrInvalidConfiguration, int(mode))
	}
}
