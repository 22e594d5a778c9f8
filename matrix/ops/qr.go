// SPDX-License-Identifier: MIT
// Package ops — QR decomposition by Householder reflections.
// Reflectors are phase-aligned with the pivot entry so the same code serves
// real and complex scalars: for a pivot x_k the target is −(x_k/|x_k|)·‖x‖.

package ops

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// QRDecomposition holds A = Q·R with Q unitary and R upper triangular.
type QRDecomposition[S any] struct {
	Q, R matrix.Matrix[S]
}

// QR returns Q and R for the decomposition m = Q·R.
// It returns ErrNonSquare if m is not square.
// Complexity: O(n³) time, O(n²) memory where n = m.Rows().
func QR[S any](m matrix.Matrix[S]) (QRDecomposition[S], error) {
	// Stage 1: Validate input dimensions
	if err := matrix.ValidateSquare(m); err != nil {
		return QRDecomposition[S]{}, opsErrorf(opQR, err)
	}
	alg := m.Algebra()
	n := m.Rows()

	// Stage 2: Prepare working grids and Householder vector
	a := m.Data()              // becomes R
	qt := identityGrid(alg, n) // accumulates H_{n-1}···H_0 = Q*
	v := make([]S, n)

	// Stage 3: Execute Householder reflections
	var (
		k, i       int
		norm, tail float64 // ‖A[k:n][k]‖ and ‖A[k+1:n][k]‖
		beta       float64 // v*v
	)
	for k = 0; k < n; k++ {
		// 3.1: column norms; nothing to annihilate below the pivot
		tail = 0
		for i = k + 1; i < n; i++ {
			x := alg.Abs(a[i][k])
			tail += x * x
		}
		if tail == 0 {
			continue
		}
		pivotAbs := alg.Abs(a[k][k])
		norm = math.Sqrt(tail + pivotAbs*pivotAbs)

		// 3.2: alpha = −phase(A[k][k])·norm
		phase := alg.One()
		if pivotAbs != 0 {
			phase = alg.Multiply(a[k][k], alg.FromFloat64(1/pivotAbs))
		}
		alpha := alg.AdditiveInverse(alg.Multiply(phase, alg.FromFloat64(norm)))

		// 3.3: v = x − alpha·e_k
		beta = 0
		for i = k; i < n; i++ {
			v[i] = a[i][k]
			if i == k {
				v[i] = scalar.Subtract(alg, v[i], alpha)
			}
			x := alg.Abs(v[i])
			beta += x * x
		}
		if beta == 0 {
			continue
		}
		tau := alg.FromFloat64(2 / beta)

		// 3.4: apply H = I − tau·v·v* to A (from column k on) and to Q*
		reflect(alg, a, v, tau, k, k)
		reflect(alg, qt, v, tau, k, 0)
	}

	// Stage 4: Finalize; Q = (Q*)*
	q := fromGrid(alg, qt).Adjoint()

	return QRDecomposition[S]{Q: q, R: fromGrid(alg, a)}, nil
}

// reflect applies I − tau·v·v* to rows k.. of g, for columns from.. only.
func reflect[S any](alg scalar.Algebra[S], g [][]S, v []S, tau S, k, from int) {
	n := len(g)
	var i, j int
	for j = from; j < len(g[0]); j++ {
		sum := alg.Zero()
		for i = k; i < n; i++ {
			sum = alg.Add(sum, alg.Multiply(alg.Conjugate(v[i]), g[i][j]))
		}
		f := alg.Multiply(tau, sum)
		for i = k; i < n; i++ {
			g[i][j] = scalar.Subtract(alg, g[i][j], alg.Multiply(v[i], f))
		}
	}
}

// identityGrid returns the n×n identity as a grid.
func identityGrid[S any](alg scalar.Algebra[S], n int) [][]S {
	g := make([][]S, n)
	for i := range g {
		g[i] = make([]S, n)
		for j := range g[i] {
			g[i][j] = alg.Zero()
		}
		g[i][i] = alg.One()
	}

	return g
}
