// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph types, sentinel errors and build options.

package temporal

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/treach/reach"
)

// Sentinel errors for temporal graph operations.
var (
	// ErrInvalidEdge indicates a negative vertex id, a tick outside
	// [1, MaxTick] or outside a ranked graph's timeline.
	ErrInvalidEdge = fmt.Errorf("%w: temporal: invalid edge", reach.ErrMalformedInput)

	// ErrNonMonotonicAppend indicates an appended edge that does not lie past TMax().
	ErrNonMonotonicAppend = fmt.Errorf("%w: temporal: append must extend the timeline", reach.ErrPreconditionViolation)
)

// Edge is a directed edge Src→Dst active at timestamp T.
type Edge struct {
	Src int
	Dst int
	T   int
}

// EdgeBytes is the in-memory footprint of one stored Edge.
const EdgeBytes = int64(unsafe.Sizeof(Edge{}))

// String renders the edge as "(src,dst,t)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d,%d)", e.Src, e.Dst, e.T) }

// MaxTick is the largest tick a Graph stores.
const MaxTick = math.MaxInt32

// Graph is the temporal graph storage.
//
// Edges are stored by tick. Graphs from New/AddEdge use input timestamps as
// ticks. Build ranks the distinct input timestamps instead and keeps the
// rank→timestamp table in times, so sparse timelines stay dense in memory.
//
// buckets[0] is unused so that buckets[t] addresses tick t directly.
// out[v] is kept sorted by T; appends in tick order stay O(1).
type Graph struct {
	n       int      // vertex count; ids are [0,n)
	m       int      // edge count
	tmax    int      // highest non-empty bucket
	buckets [][]Edge // buckets[t] for t in [1,tmax]
	out     [][]Edge // out[v] ordered by T
	times   []int    // times[t] is the input timestamp of tick t; nil means identity
}

// BuildOption configures Build/BuildFile.
type BuildOption func(*buildConfig)

type buildConfig struct {
	retained   float64
	policy     reach.MalformedPolicy
	undirected bool
	logger     zerolog.Logger
	skipped    *int
	err        error
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		retained: 1,
		policy:   reach.Abort,
		logger:   zerolog.Nop(),
	}
}

// WithRetainedFraction keeps only the first floor(k·f) distinct timestamps
// (at least one) of the input. f must lie in (0,1]; otherwise Build fails
// with reach.ErrInvalidConfiguration.
func WithRetainedFraction(f float64) BuildOption {
	return func(c *buildConfig) {
		if err := reach.ValidateRetained(f); err != nil {
			c.err = err
			return
		}
		c.retained = f
	}
}

// WithMalformedPolicy selects Abort (default) or Skip for unparsable records.
func WithMalformedPolicy(p reach.MalformedPolicy) BuildOption {
	return func(c *buildConfig) { c.policy = p }
}

// WithUndirected stores every input edge in both directions.
func WithUndirected() BuildOption {
	return func(c *buildConfig) { c.undirected = true }
}

// WithLogger sets the logger receiving build progress and skipped records.
func WithLogger(l zerolog.Logger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// WithSkipCount stores the number of records dropped under reach.Skip in *n.
func WithSkipCount(n *int) BuildOption {
	return func(c *buildConfig) { c.skipped = n }
}
