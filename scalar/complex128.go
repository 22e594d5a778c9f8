// SPDX-License-Identifier: MIT

package scalar

import (
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs/cscalar"
)

// Complex128 is the algebra of complex numbers backed by complex128.
type Complex128 struct {
	eps float64
}

var _ Algebra[complex128] = Complex128{}

// NewComplex128 returns the complex algebra configured by opts.
func NewComplex128(opts ...Option) Complex128 {
	o := gatherOptions(opts...)

	return Complex128{eps: o.eps}
}

// Epsilon returns the tolerance used by Equal.
func (c Complex128) Epsilon() float64 { return c.eps }

// Zero returns 0+0i.
func (Complex128) Zero() complex128 { return 0 }

// One returns 1+0i.
func (Complex128) One() complex128 { return 1 }

// NegativeOne returns -1+0i.
func (Complex128) NegativeOne() complex128 { return -1 }

// Add returns a + b.
func (Complex128) Add(a, b complex128) complex128 { return a + b }

// Multiply returns a · b.
func (Complex128) Multiply(a, b complex128) complex128 { return a * b }

// AdditiveInverse returns -a.
func (Complex128) AdditiveInverse(a complex128) complex128 {
	return -a
}

// MultiplicativeInverse returns 1/a; only an exact zero has no inverse.
func (Complex128) MultiplicativeInverse(a complex128) (complex128, bool) {
	if a == 0 {
		return 0, false
	}

	return 1 / a, true
}

// Equal reports whether a and b agree within the absolute or relative epsilon.
func (c Complex128) Equal(a, b complex128) bool {
	return cscalar.EqualWithinAbsOrRel(a, b, c.eps, c.eps)
}

// Conjugate returns the complex conjugate of a.
func (Complex128) Conjugate(a complex128) complex128 { return cmplx.Conj(a) }

// FromFloat64 embeds x as x+0i.
func (Complex128) FromFloat64(x float64) complex128 { return complex(x, 0) }

// Real returns the real part of a.
func (Complex128) Real(a complex128) float64 { return real(a) }

// Abs returns the modulus |a|.
func (Complex128) Abs(a complex128) float64 { return cmplx.Abs(a) }

// Sqrt returns the principal square root; every complex number has one.
func (Complex128) Sqrt(a complex128) (complex128, bool) { return cmplx.Sqrt(a), true }
