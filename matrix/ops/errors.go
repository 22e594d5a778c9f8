// SPDX-License-Identifier: MIT
// Package ops: sentinel error set.
// Structural errors reuse the matrix sentinels (matrix.ErrNonSquare,
// matrix.ErrOutOfRange, matrix.ErrDivisionByZero); the ones below are specific
// to the algorithms in this package. Match all of them with errors.Is.

package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentReduction reports a broken internal invariant of row
	// reduction: a pivot that is not one, or non-zero entries left of it.
	ErrInconsistentReduction = errors.New("ops: inconsistent row reduction")

	// ErrSingularPivot is returned by LU when a diagonal pivot is zero.
	ErrSingularPivot = errors.New("ops: singular pivot")

	// ErrComplexEigenvalues is returned when a real matrix has eigenvalues
	// that only exist in a complex scalar domain.
	ErrComplexEigenvalues = errors.New("ops: complex eigenvalues require a complex scalar domain")

	// ErrNotEigenvalue is returned when A − λI is non-singular.
	ErrNotEigenvalue = errors.New("ops: value is not an eigenvalue")
)

// Operation tags for uniform error wrapping.
const (
	opMultiplyRow  = "MultiplyRowByScalar"
	opAddRow       = "AddScalarMultipleOfRowToRow"
	opExchangeRows = "ExchangeRows"
	opREF          = "RowEchelonForm"
	opRREF         = "ReducedRowEchelonForm"
	opInverse      = "Inverse"
	opSolve        = "SolveByGaussianElimination"
	opBackward     = "BackwardSubstitute"
	opLU           = "LU"
	opDeterminant  = "Determinant"
	opDetElim      = "DeterminantByElimination"
	opQR           = "QR"
	opEigenvalues  = "Eigenvalues"
	opEigenvector  = "EigenvectorForEigenvalue"
	opEig          = "Eig"
	opExp          = "Exp"
	opSVD          = "SVD"
)

// opsErrorf wraps err with an operation tag, preserving it for errors.Is.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
