// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Store and Matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDims is the dimension count used by the demo and most callers.
	DefaultDims = 2

	// DefaultCapacity is the initial number of cells the store reserves.
	// 0 lets the runtime pick.
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithCapacity: capacity must be non-negative"
	panicDimsInvalid     = "matrix: New: dimension count must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	capacity int // >= 0; DefaultCapacity
}

// WithCapacity pre-sizes the store for n cells.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{capacity: DefaultCapacity}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
