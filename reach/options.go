// SPDX-License-Identifier: MIT

package reach

import "github.com/rs/zerolog"

// Option configures an engine (online search, baseline or optimized index).
type Option func(*Options)

// Options holds the knobs shared by every engine.
type Options struct {
	// Semantics is the hop ordering rule; NonStrict by default.
	Semantics Semantics

	// Logger receives construction/update progress; zerolog.Nop() by default.
	Logger zerolog.Logger

	// Debug enables verbose progress events and internal invariant checks.
	Debug bool
}

// DefaultOptions returns NonStrict semantics, a no-op logger and debug off.
func DefaultOptions() Options {
	return Options{
		Semantics: NonStrict,
		Logger:    zerolog.Nop(),
		Debug:     false,
	}
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSemantics sets the hop ordering rule.
func WithSemantics(s Semantics) Option {
	return func(o *Options) { o.Semantics = s }
}

// WithLogger sets the progress logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithDebug toggles verbose logging and invariant checks.
func WithDebug(on bool) Option {
	return func(o *Options) { o.Debug = on }
}

// WithOptions replaces every field with o; engines use it to forward
// their resolved options to helpers.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}
