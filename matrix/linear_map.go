// SPDX-License-Identifier: MIT
// Package matrix — matrices of linear maps.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// FromLinearMap returns the matrix of f: S^n → S^m with respect to the
// standard bases, i.e. the matrix whose j-th column is f(e_j).
//
// f is called exactly n times. Linearity itself is not checked; outputs
// of differing dimension yield ErrNotLinear. n < 0 yields ErrBadShape and
// n == 0 yields the empty matrix.
func FromLinearMap[S any](alg scalar.Algebra[S], n int, f func(Vector[S]) Vector[S]) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromLinearMap, err)
	}
	if n < 0 {
		return Matrix[S]{}, matrixErrorf(opFromLinearMap, fmt.Errorf("domain dimension %d: %w", n, ErrBadShape))
	}
	if n == 0 {
		return Empty(alg), nil
	}
	one, zero := alg.One(), alg.Zero()
	cols := make([]Vector[S], n)
	for j := 0; j < n; j++ {
		e := VectorFromIndexFunc(alg, n, func(i int) S {
			if i == j {
				return one
			}
			return zero
		})
		cols[j] = f(e)
		if cols[j].Dim() != cols[0].Dim() {
			return Matrix[S]{}, matrixErrorf(opFromLinearMap, fmt.Errorf("f(e_%d) has dimension %d, want %d: %w", j, cols[j].Dim(), cols[0].Dim(), ErrNotLinear))
		}
	}

	return FromColumnVectors(alg, cols)
}
