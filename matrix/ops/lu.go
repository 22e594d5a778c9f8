// SPDX-License-Identifier: MIT
// Package ops — LU decomposition (Doolittle) with row pivoting.

package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// LUDecomposition holds P·A = L·U with L unit lower-triangular, U upper
// triangular and P a row permutation of the identity.
type LUDecomposition[S any] struct {
	L, U, P matrix.Matrix[S]
}

// LU decomposes the square matrix a with Doolittle's method.
//
// Blueprint:
//
//	Stage 1 (Validate): a must be square, else ErrNonSquare.
//	Stage 2 (Pivot): reorder rows with PartialPivot; the operator is P.
//	Stage 3 (Eliminate): for each column n build the elementary matrix L_n
//	  (identity with −U[i][n]/U[n][n] below the diagonal of column n) and set
//	  U ← L_n·U.
//	Stage 4 (Assemble): L[i][j] is the negated multiplier of L_j for i > j.
//
// A zero pivot U[n][n] with entries left to eliminate below it fails with
// ErrSingularPivot, which also matches matrix.ErrDivisionByZero.
// Complexity: O(n⁴) as written (one matrix product per column).
func LU[S any](a matrix.Matrix[S]) (LUDecomposition[S], error) {
	// Stage 1: Validate
	if err := matrix.ValidateSquare(a); err != nil {
		return LUDecomposition[S]{}, opsErrorf(opLU, fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), err))
	}
	alg := a.Algebra()
	n := a.Rows()

	// Stage 2: Pivot
	pv := PartialPivot(a)
	u := pv.Result

	// Stage 3: Eliminate
	multipliers := make([][]S, n) // multipliers[j][i] = (L_j)[i][j]
	var (
		col int
		ln  matrix.Matrix[S]
		err error
	)
	for col = 0; col < n; col++ {
		ln, multipliers[col], err = elementaryLower(alg, u, col)
		if err != nil {
			return LUDecomposition[S]{}, opsErrorf(opLU, err)
		}
		if u, err = ln.Mul(u); err != nil {
			return LUDecomposition[S]{}, opsErrorf(opLU, err)
		}
	}

	// Stage 4: Assemble
	zero, one := alg.Zero(), alg.One()
	l, err := matrix.FromIndexFunc(alg, n, n, func(i, j int) S {
		switch {
		case i == j:
			return one
		case i < j:
			return zero
		default:
			return alg.AdditiveInverse(multipliers[j][i])
		}
	})
	if err != nil {
		return LUDecomposition[S]{}, opsErrorf(opLU, err)
	}

	return LUDecomposition[S]{L: l, U: u, P: pv.Operator}, nil
}

// elementaryLower builds L_col for the running u and returns it along with
// its column of multipliers (indexed by row; rows ≤ col are zero).
func elementaryLower[S any](alg scalar.Algebra[S], u matrix.Matrix[S], col int) (matrix.Matrix[S], []S, error) {
	n := u.Rows()
	g := u.Data()
	zero, one := alg.Zero(), alg.One()
	mult := make([]S, n)
	for i := range mult {
		mult[i] = zero
	}
	pivot := g[col][col]
	for i := col + 1; i < n; i++ {
		q, ok := scalar.Divide(alg, g[i][col], pivot)
		if !ok {
			log.Debugf("LU: zero pivot at (%d,%d)", col, col)
			return matrix.Matrix[S]{}, nil, fmt.Errorf("U[%d][%d]: %w: %w", col, col, ErrSingularPivot, matrix.ErrDivisionByZero)
		}
		mult[i] = alg.AdditiveInverse(q)
	}
	ln, err := matrix.FromIndexFunc(alg, n, n, func(i, j int) S {
		switch {
		case i == j:
			return one
		case j == col && i > col:
			return mult[i]
		default:
			return zero
		}
	})
	if err != nil {
		return matrix.Matrix[S]{}, nil, err
	}

	return ln, mult, nil
}
