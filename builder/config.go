// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil (stochastic constructors then fail with ErrNeedRandSource)
//   • start  = 1   (first timestamp emitted by Path/Star)
//   • step   = 1   (timestamp increment of Path/Star)
//   • offset = 0   (added to every generated vertex id)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng    *rand.Rand
	start  int
	step   int
	offset int
}

const (
	defaultStartTime = 1
	defaultTimeStep  = 1
)

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		start: defaultStartTime,
		step:  defaultTimeStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// at returns the timestamp of the i-th step of a deterministic schedule.
func (c builderConfig) at(i int) int { return c.start + i*c.step }

// vertex maps a local index to the emitted vertex id.
func (c builderConfig) vertex(i int) int { return c.offset + i }
