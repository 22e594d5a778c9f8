// SPDX-License-Identifier: MIT
// Package ops — matrix exponential by scaling and squaring.
//
// exp(A) = exp(A/2^s)^(2^s). The scale s is the smallest power of two that
// brings the Frobenius norm of A/2^s to at most one half, where a truncated
// Taylor series (evaluated in Horner form) is accurate to the configured
// number of terms. The result is then squared s times.

package ops

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// expScaleTarget bounds the Frobenius norm of the scaled matrix.
const expScaleTarget = 0.5

// Exp returns the matrix exponential Σ_k A^k / k! of the square matrix a.
// The empty matrix maps to itself. Honours WithSeriesTerms.
func Exp[S any](a matrix.Matrix[S], opts ...Option) (matrix.Matrix[S], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opExp, err)
	}
	if a.IsEmpty() {
		return a, nil
	}
	o := gatherOptions(opts...)
	alg := a.Algebra()
	id, err := matrix.Identity(alg, a.Rows())
	if err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opExp, err)
	}

	// Stage 1: scale
	squarings := 0
	if norm := a.FrobeniusNorm(); norm > expScaleTarget {
		squarings = int(math.Ceil(math.Log2(norm / expScaleTarget)))
	}
	b := a.Scale(alg.FromFloat64(math.Ldexp(1, -squarings)))

	// Stage 2: I + B(I + B/2(I + B/3(...)))
	acc := id
	for k := o.seriesTerms; k >= 1; k-- {
		if acc, err = b.Mul(acc); err != nil {
			return matrix.Matrix[S]{}, opsErrorf(opExp, err)
		}
		if acc, err = id.Add(acc.Scale(alg.FromFloat64(1 / float64(k)))); err != nil {
			return matrix.Matrix[S]{}, opsErrorf(opExp, err)
		}
	}

	// Stage 3: square back
	for i := 0; i < squarings; i++ {
		if acc, err = acc.Mul(acc); err != nil {
			return matrix.Matrix[S]{}, opsErrorf(opExp, err)
		}
	}
	log.Debugf("Exp: %dx%d with %d terms and %d squarings", a.Rows(), a.Rows(), o.seriesTerms, squarings)

	return acc, nil
}
