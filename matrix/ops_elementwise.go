// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels over Matrix values: Hadamard product,
//     per-row and per-column scaling, and an explicit-tolerance comparison.
//
// Determinism:
//   - Fixed flat 0..n-1 or i→j loop orders; one fresh allocation per call.

package matrix

import (
	"fmt"
	"math"
)

// Hadamard returns the element-wise product a ∘ b.
func Hadamard[S any](a, b Matrix[S]) (Matrix[S], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return Matrix[S]{}, matrixErrorf(opHadamard, err)
	}
	flat := make([]S, len(a.data))
	for idx := range flat {
		flat[idx] = a.alg.Multiply(a.data[idx], b.data[idx])
	}

	return newMatrix(a.alg, a.rows, a.cols, flat), nil
}

// ScaleRows returns out[i,j] = scale_i · m[i,j], i.e. Diag(scale)·m.
func ScaleRows[S any](m Matrix[S], scale Vector[S]) (Matrix[S], error) {
	if err := ValidateVectorLen(scale, m.rows); err != nil {
		return Matrix[S]{}, matrixErrorf(opScaleRows, err)
	}
	flat := make([]S, len(m.data))
	var i, j int
	for i = 0; i < m.rows; i++ {
		base := i * m.cols
		for j = 0; j < m.cols; j++ {
			flat[base+j] = m.alg.Multiply(scale.data[i], m.data[base+j])
		}
	}

	return newMatrix(m.alg, m.rows, m.cols, flat), nil
}

// ScaleCols returns out[i,j] = m[i,j] · scale_j, i.e. m·Diag(scale).
func ScaleCols[S any](m Matrix[S], scale Vector[S]) (Matrix[S], error) {
	if err := ValidateVectorLen(scale, m.cols); err != nil {
		return Matrix[S]{}, matrixErrorf(opScaleCols, err)
	}
	flat := make([]S, len(m.data))
	var i, j int
	for i = 0; i < m.rows; i++ {
		base := i * m.cols
		for j = 0; j < m.cols; j++ {
			flat[base+j] = m.alg.Multiply(m.data[base+j], scale.data[j])
		}
	}

	return newMatrix(m.alg, m.rows, m.cols, flat), nil
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds entry-wise, with
// moduli taken through the algebra. Unlike Equal, the tolerances are explicit.
//
// Policy:
//   - a and b must have identical shapes.
//   - negative tolerances are treated as their absolute value; NaN or ±Inf
//     tolerances are rejected with ErrBadShape.
func AllClose[S any](a, b Matrix[S], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol=%v atol=%v: %w", rtol, atol, ErrBadShape))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range a.data {
		diff := a.alg.Abs(a.alg.Add(a.data[idx], a.alg.AdditiveInverse(b.data[idx])))
		if diff > atol+rtol*a.alg.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
