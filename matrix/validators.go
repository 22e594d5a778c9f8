// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and index checks.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap once more with their operation tag.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAlgebra ensures a scalar algebra is present.
func ValidateAlgebra[S any](alg scalar.Algebra[S]) error {
	if alg == nil {
		return validatorErrorf("ValidateAlgebra", ErrNilAlgebra)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// The empty 0×0 matrix is square.
func ValidateSquare[S any](m Matrix[S]) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape[S any](a, b Matrix[S]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
func ValidateMulCompatible[S any](a, b Matrix[S]) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < m.Rows().
func ValidateRowIndex[S any](m Matrix[S], i int) error {
	if i < 0 || i >= m.rows {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < m.Cols().
func ValidateColIndex[S any](m Matrix[S], j int) error {
	if j < 0 || j >= m.cols {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d)", j), ErrOutOfRange)
	}

	return nil
}

// ValidateVectorLen ensures v has exactly n entries.
func ValidateVectorLen[S any](v Vector[S], n int) error {
	if len(v.data) != n {
		return validatorErrorf("ValidateVectorLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameDim ensures two vectors have equal dimension.
func ValidateSameDim[S any](a, b Vector[S]) error {
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}
