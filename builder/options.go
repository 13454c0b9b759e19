// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithStartTime sets the first timestamp of deterministic schedules.
// Panics if t < 1.
func WithStartTime(t int) BuilderOption {
	if t < 1 {
		panic("builder: WithStartTime(t<1)")
	}
	return func(c *builderConfig) { c.start = t }
}

// WithTimeStep sets the timestamp increment of deterministic schedules.
// A step of 0 puts every edge in the same bucket. Panics if step < 0.
func WithTimeStep(step int) BuilderOption {
	if step < 0 {
		panic("builder: WithTimeStep(step<0)")
	}
	return func(c *builderConfig) { c.step = step }
}

// WithVertexOffset shifts generated vertex ids, so several constructors can
// populate disjoint vertex ranges. Panics if off < 0.
func WithVertexOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithVertexOffset(off<0)")
	}
	return func(c *builderConfig) { c.offset = off }
}
