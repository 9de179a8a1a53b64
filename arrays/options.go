// SPDX-License-Identifier: MIT

// Package arrays: functional configuration for the tunable scans.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Each knob impacts exactly one operation and is covered by tests.
//   - Panic only on invalid parameters (programmer error), never on data.
package arrays

// ---------- Defaults (single source of truth) ----------
const (
	// DefaultDivisor is the divisor NoneMatch tests every element against.
	DefaultDivisor = 10

	// DefaultWindow is the distance below the maximum within which
	// FilterNearMax keeps elements (strictly: v > max - window).
	DefaultWindow = 10
)

// Panic messages for invalid option values.
const (
	panicDivisorInvalid = "arrays: WithDivisor(d): d must be > 0"
	panicWindowInvalid  = "arrays: WithWindow(w): w must be >= 0"
)

// Option mutates Options. Options are applied in order; last writer wins.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported;
// callers build it through Option constructors.
type Options struct {
	divisor int // NoneMatch divisor, > 0
	window  int // FilterNearMax window, >= 0
}

// WithDivisor sets the divisor used by NoneMatch.
// The value is converted to the element type at call time, so it must be
// representable there (e.g. <= 127 for int8).
//
// Panics if d <= 0.
func WithDivisor(d int) Option {
	if d <= 0 {
		panic(panicDivisorInvalid)
	}

	return func(o *Options) { o.divisor = d }
}

// WithWindow sets how far below the maximum FilterNearMax still keeps values.
// A window of 0 keeps nothing, since the comparison is strict.
// Like WithDivisor, the value must be representable in the element type.
//
// Panics if w < 0.
func WithWindow(w int) Option {
	if w < 0 {
		panic(panicWindowInvalid)
	}

	return func(o *Options) { o.window = w }
}

// gatherOptions applies user options on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		divisor: DefaultDivisor,
		window:  DefaultWindow,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
