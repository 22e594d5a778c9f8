// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	fscalar "gonum.org/v1/gonum/floats/scalar"
)

// Float64 is the algebra of real numbers backed by float64.
// Equal compares within an absolute-or-relative epsilon.
type Float64 struct {
	eps float64
}

var _ Algebra[float64] = Float64{}

// NewFloat64 returns the real algebra configured by opts.
func NewFloat64(opts ...Option) Float64 {
	o := gatherOptions(opts...)

	return Float64{eps: o.eps}
}

// Epsilon returns the tolerance used by Equal.
func (f Float64) Epsilon() float64 { return f.eps }

// Zero returns 0.
func (Float64) Zero() float64 { return 0 }

// One returns 1.
func (Float64) One() float64 { return 1 }

// NegativeOne returns -1.
func (Float64) NegativeOne() float64 { return -1 }

// Add returns a + b.
func (Float64) Add(a, b float64) float64 { return a + b }

// Multiply returns a · b.
func (Float64) Multiply(a, b float64) float64 { return a * b }

// AdditiveInverse returns -a.
func (Float64) AdditiveInverse(a float64) float64 {
	return -a
}

// MultiplicativeInverse fails only for an exact zero; near-zero values are
// the caller's pivoting policy, not the algebra's.
func (Float64) MultiplicativeInverse(a float64) (float64, bool) {
	if a == 0 {
		return 0, false
	}

	return 1 / a, true
}

// Equal reports whether a and b agree within the absolute or relative epsilon.
func (f Float64) Equal(a, b float64) bool {
	return fscalar.EqualWithinAbsOrRel(a, b, f.eps, f.eps)
}

// Conjugate is the identity on the reals.
func (Float64) Conjugate(a float64) float64 { return a }

// FromFloat64 returns x unchanged.
func (Float64) FromFloat64(x float64) float64 { return x }

// Real returns a unchanged.
func (Float64) Real(a float64) float64 { return a }

// Abs returns |a|.
func (Float64) Abs(a float64) float64 { return math.Abs(a) }

// Sqrt has no real root for negative input.
func (Float64) Sqrt(a float64) (float64, bool) {
	if a < 0 || math.IsNaN(a) {
		return 0, false
	}

	return math.Sqrt(a), true
}
