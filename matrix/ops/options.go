// SPDX-License-Identifier: MIT

// Package ops: functional configuration for the iterative algorithms
// (the QR eigen solver, SVD built on it, and the matrix exponential).
//
//   - Option / Options follow the functional-options pattern.
//   - Default* constants are the single source of truth for zero-value behavior.
//   - WithX constructors panic on nonsensical values (programmer error).
package ops

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the number of QR iterations.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the relative threshold below which a sub-diagonal
	// entry counts as converged.
	DefaultTolerance = 1e-12

	// DefaultSeriesTerms is the number of Taylor terms Exp sums after scaling.
	DefaultSeriesTerms = 16
)

// ---------- Internal panic messages ----------

const (
	panicMaxIterationsInvalid = "ops: WithMaxIterations: n must be positive"
	panicToleranceInvalid     = "ops: WithTolerance: tol must be finite, non-negative"
	panicSeriesTermsInvalid   = "ops: WithSeriesTerms: n must be positive"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration. Each algorithm reads only the
// fields it needs and ignores the rest.
type Options struct {
	maxIterations int     // > 0; DefaultMaxIterations
	tolerance     float64 // >= 0; DefaultTolerance
	seriesTerms   int     // > 0; DefaultSeriesTerms
}

// WithMaxIterations sets the QR iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithTolerance sets the convergence threshold for sub-diagonal entries.
// A zero tolerance runs every iteration up to the cap.
// Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithSeriesTerms sets how many Taylor terms Exp sums. Panics if n <= 0.
func WithSeriesTerms(n int) Option {
	if n <= 0 {
		panic(panicSeriesTermsInvalid)
	}

	return func(o *Options) { o.seriesTerms = n }
}

// gatherOptions resolves opts on top of the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		seriesTerms:   DefaultSeriesTerms,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
