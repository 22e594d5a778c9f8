// SPDX-License-Identifier: MIT
// Package matrix — bridges to gonum's dense containers.
//
// Conversions always copy; a gonum matrix and the Matrix built from it never
// share storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
)

// FromGonum copies any gonum mat.Matrix into a real Matrix over alg.
func FromGonum(alg scalar.Algebra[float64], src mat.Matrix) (Matrix[float64], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[float64]{}, matrixErrorf(opFromGonum, err)
	}
	if src == nil {
		return Matrix[float64]{}, matrixErrorf(opFromGonum, fmt.Errorf("nil source: %w", ErrBadShape))
	}
	r, c := src.Dims()
	flat := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat[i*c+j] = src.At(i, j)
		}
	}

	return newMatrix(alg, r, c, flat), nil
}

// ToGonum copies m into a fresh *mat.Dense. The empty matrix has no gonum
// counterpart and yields nil.
func ToGonum(m Matrix[float64]) *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	flat := make([]float64, len(m.data))
	copy(flat, m.data)

	return mat.NewDense(m.rows, m.cols, flat)
}

// FromGonumComplex copies a gonum mat.CMatrix into a complex Matrix over alg.
func FromGonumComplex(alg scalar.Algebra[complex128], src mat.CMatrix) (Matrix[complex128], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[complex128]{}, matrixErrorf(opFromGonum, err)
	}
	if src == nil {
		return Matrix[complex128]{}, matrixErrorf(opFromGonum, fmt.Errorf("nil source: %w", ErrBadShape))
	}
	r, c := src.Dims()
	flat := make([]complex128, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat[i*c+j] = src.At(i, j)
		}
	}

	return newMatrix(alg, r, c, flat), nil
}

// ToGonumComplex copies m into a fresh *mat.CDense, or nil when m is empty.
func ToGonumComplex(m Matrix[complex128]) *mat.CDense {
	if m.IsEmpty() {
		return nil
	}
	flat := make([]complex128, len(m.data))
	copy(flat, m.data)

	return mat.NewCDense(m.rows, m.cols, flat)
}
