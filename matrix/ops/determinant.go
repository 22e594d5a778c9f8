// SPDX-License-Identifier: MIT
// Package ops — determinants.

package ops

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// Determinant computes det(m) by cofactor expansion along the first row,
// skipping zero entries. The 0×0 determinant is one.
// Complexity: O(n!) worst case; use DeterminantByElimination for large n.
func Determinant[S any](m matrix.Matrix[S]) (S, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		var zero S
		return zero, opsErrorf(opDeterminant, err)
	}
	alg := m.Algebra()
	switch m.Rows() {
	case 0:
		return alg.One(), nil
	case 1:
		return m.At(0, 0)
	}

	row, err := m.Row(0)
	if err != nil {
		var zero S
		return zero, opsErrorf(opDeterminant, err)
	}
	acc := alg.Zero()
	sign := alg.One()
	for j, x := range row.Entries() {
		if !scalar.IsZero(alg, x) {
			minor, err := matrix.Exclude(m, 0, j)
			if err != nil {
				return acc, opsErrorf(opDeterminant, err)
			}
			sub, err := Determinant(minor)
			if err != nil {
				return acc, err
			}
			acc = alg.Add(acc, alg.Multiply(sign, alg.Multiply(x, sub)))
		}
		sign = alg.AdditiveInverse(sign)
	}

	return acc, nil
}

// DeterminantByElimination computes det(m) as the signed product of the
// pivots of Gaussian elimination with row exchanges. Complexity: O(n³).
func DeterminantByElimination[S any](m matrix.Matrix[S]) (S, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		var zero S
		return zero, opsErrorf(opDetElim, err)
	}
	alg := m.Algebra()
	n := m.Rows()
	g := m.Data()
	det := alg.One()

	var col, r int
	for col = 0; col < n; col++ {
		// largest-magnitude pivot in the column
		best := col
		for r = col + 1; r < n; r++ {
			if alg.Abs(g[r][col]) > alg.Abs(g[best][col]) {
				best = r
			}
		}
		if alg.Abs(g[best][col]) == 0 {
			return alg.Zero(), nil
		}
		if best != col {
			g[best], g[col] = g[col], g[best]
			det = alg.AdditiveInverse(det)
		}
		pivot := g[col][col]
		det = alg.Multiply(det, pivot)
		for r = col + 1; r < n; r++ {
			q, ok := scalar.Divide(alg, g[r][col], pivot)
			if !ok {
				return alg.Zero(), nil
			}
			addScaledRow(alg, g, r, col, alg.AdditiveInverse(q))
		}
	}

	return det, nil
}
