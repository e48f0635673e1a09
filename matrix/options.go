// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Growable. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInitialRows is the raw row capacity of a fresh Growable.
	DefaultInitialRows = 1

	// DefaultInitialCols is the raw column capacity of a fresh Growable.
	DefaultInitialCols = 1

	// growthFactor multiplies an overflowing raw dimension until the write fits.
	growthFactor = 2
)

const panicCapacityInvalid = "matrix: WithInitialCapacity: rows and cols must be > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	initRows int // raw rows allocated up front; DefaultInitialRows
	initCols int // raw cols allocated up front; DefaultInitialCols
}

// WithInitialCapacity pre-allocates raw storage for rows×cols cells.
// The declared extent still starts at 0×0; capacity only avoids early doubling.
//
// Panics if rows <= 0 or cols <= 0.
// Complexity: O(1).
func WithInitialCapacity(rows, cols int) Option {
	if rows <= 0 || cols <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) {
		o.initRows = rows
		o.initCols = cols
	}
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		initRows: DefaultInitialRows,
		initCols: DefaultInitialCols,
	}
}

// gatherOptions applies opts left-to-right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
