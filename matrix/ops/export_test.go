// SPDX-License-Identifier: MIT
// Test-only exports for package ops. Compiled only with `go test`.

package ops

// OptionsSnapshot is a read-only view of the resolved options.
type OptionsSnapshot struct {
	MaxIterations int
	Tolerance     float64
	SeriesTerms   int
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Eigenvalues and Exp do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{MaxIterations: o.maxIterations, Tolerance: o.tolerance, SeriesTerms: o.seriesTerms}
}

const (
	PanicMaxIterationsInvalid_TestOnly = panicMaxIterationsInvalid
	PanicToleranceInvalid_TestOnly     = panicToleranceInvalid
	PanicSeriesTermsInvalid_TestOnly   = panicSeriesTermsInvalid
)
