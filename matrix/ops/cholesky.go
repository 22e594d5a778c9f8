// SPDX-License-Identifier: MIT
// Package ops — Cholesky decomposition of Hermitian positive-definite matrices.

package ops

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// CholeskyDecomposition holds the lower-triangular L with L·L* = A.
type CholeskyDecomposition[S any] struct {
	L matrix.Matrix[S]
}

// Cholesky factors a as L·L*. ok is false when a is not square, not
// Hermitian (compared with its adjoint first), or not positive-definite:
// some diagonal radicand is not a positive real or has no root in the
// scalar domain.
//
//	L[j][j] = sqrt(A[j][j] − Σ_{k<j} L[j][k]·conj(L[j][k]))
//	L[i][j] = (A[i][j] − Σ_{k<j} L[i][k]·conj(L[j][k])) / L[j][j],  i > j
func Cholesky[S any](a matrix.Matrix[S]) (CholeskyDecomposition[S], bool) {
	if !a.IsSquare() {
		log.Debugf("Cholesky: %dx%d is not square", a.Rows(), a.Cols())
		return CholeskyDecomposition[S]{}, false
	}
	if !a.IsHermitian() {
		log.Debug("Cholesky: matrix is not Hermitian")
		return CholeskyDecomposition[S]{}, false
	}
	alg := a.Algebra()
	n := a.Rows()
	src := a.Data()
	l := make([][]S, n)
	for i := range l {
		l[i] = make([]S, n)
		for j := range l[i] {
			l[i][j] = alg.Zero()
		}
	}

	var i, j, k int
	for j = 0; j < n; j++ {
		d := src[j][j]
		for k = 0; k < j; k++ {
			d = scalar.Subtract(alg, d, alg.Multiply(l[j][k], alg.Conjugate(l[j][k])))
		}
		if !alg.Equal(d, alg.Conjugate(d)) || alg.Real(d) <= 0 || scalar.IsZero(alg, d) {
			log.Debugf("Cholesky: radicand %v at column %d is not a positive real", d, j)
			return CholeskyDecomposition[S]{}, false
		}
		root, ok := alg.Sqrt(d)
		if !ok {
			log.Debugf("Cholesky: no square root of %v in the scalar domain", d)
			return CholeskyDecomposition[S]{}, false
		}
		l[j][j] = root

		for i = j + 1; i < n; i++ {
			s := src[i][j]
			for k = 0; k < j; k++ {
				s = scalar.Subtract(alg, s, alg.Multiply(l[i][k], alg.Conjugate(l[j][k])))
			}
			q, ok := scalar.Divide(alg, s, root)
			if !ok {
				return CholeskyDecomposition[S]{}, false
			}
			l[i][j] = q
		}
	}

	return CholeskyDecomposition[S]{L: fromGrid(alg, l)}, true
}
