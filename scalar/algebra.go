// SPDX-License-Identifier: MIT

package scalar

// Algebra describes the arithmetic of a scalar domain S.
//
// Every method is pure; implementations are small immutable values that may
// be shared freely across goroutines.
type Algebra[S any] interface {
	// Zero returns the additive identity.
	Zero() S

	// One returns the multiplicative identity.
	One() S

	// NegativeOne returns the additive inverse of One.
	NegativeOne() S

	// Add returns a + b.
	Add(a, b S) S

	// Multiply returns a · b.
	Multiply(a, b S) S

	// AdditiveInverse returns −a.
	AdditiveInverse(a S) S

	// MultiplicativeInverse returns 1/a. ok is false when a is the additive
	// identity, which has no inverse.
	MultiplicativeInverse(a S) (inv S, ok bool)

	// Equal reports whether a and b are equal under the domain's numeric
	// tolerance.
	Equal(a, b S) bool

	// Conjugate returns the complex conjugate of a (identity for reals).
	Conjugate(a S) S

	// FromFloat64 converts a plain number into the domain.
	FromFloat64(x float64) S

	// Real returns the real part of a.
	Real(a S) float64

	// Abs returns the modulus |a|.
	Abs(a S) float64

	// Sqrt returns the principal square root of a. ok is false when the
	// root does not exist in the domain (e.g. a negative real).
	Sqrt(a S) (root S, ok bool)
}

// Subtract returns a − b.
func Subtract[S any](alg Algebra[S], a, b S) S {
	return alg.Add(a, alg.AdditiveInverse(b))
}

// Divide returns a / b. ok is false when b has no multiplicative inverse.
func Divide[S any](alg Algebra[S], a, b S) (S, bool) {
	inv, ok := alg.MultiplicativeInverse(b)
	if !ok {
		var zero S
		return zero, false
	}

	return alg.Multiply(a, inv), true
}

// IsZero reports whether a equals the additive identity within tolerance.
func IsZero[S any](alg Algebra[S], a S) bool {
	return alg.Equal(a, alg.Zero())
}

// IsOne reports whether a equals the multiplicative identity within tolerance.
func IsOne[S any](alg Algebra[S], a S) bool {
	return alg.Equal(a, alg.One())
}

// Sum folds Add over values, starting from Zero.
func Sum[S any](alg Algebra[S], values ...S) S {
	acc := alg.Zero()
	for _, v := range values {
		acc = alg.Add(acc, v)
	}

	return acc
}
