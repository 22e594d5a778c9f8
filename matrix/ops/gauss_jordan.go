// SPDX-License-Identifier: MIT
// Package ops — Gauss-Jordan elimination.
//
// The pivot search is local: at step k the rows are re-sorted by
// leading zeros and the pivot is the first non-zero entry of row k at or right
// of column k. No magnitude-based row selection happens here; LU uses
// PartialPivot for that.

package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// RowEchelonForm reduces m to row-echelon form: every non-zero row starts
// with a one, entries below each pivot are zero and pivot columns move right
// going down. Rows with no pivot are left as they are.
//
// Blueprint:
//
//	Stage 1: for pivotRow in [0, min(rows, cols)), re-sort rows by leading zeros.
//	Stage 2: find the first non-zero entry of pivotRow at or right of the diagonal.
//	Stage 3: scale the row so the pivot is one.
//	Stage 4: clear the entries below the pivot.
//
// Complexity: O(min(r,c)·r·c) time plus a row sort per step.
func RowEchelonForm[S any](m matrix.Matrix[S]) (matrix.Matrix[S], error) {
	alg := m.Algebra()
	rows, cols := m.Dims()
	limit := min(rows, cols)

	var pivotRow, pivotCol, r int
	for pivotRow = 0; pivotRow < limit; pivotRow++ {
		// Stage 1: pivot-sort
		g := Pivot(m).Result.Data()

		// Stage 2: locate pivot column
		pivotCol = firstNonZeroFrom(alg, g[pivotRow], pivotRow)
		if pivotCol < 0 {
			m = fromGrid(alg, g)
			continue
		}

		// Stage 3: normalise pivot to one
		inv, ok := alg.MultiplicativeInverse(g[pivotRow][pivotCol])
		if !ok {
			return matrix.Matrix[S]{}, opsErrorf(opREF, fmt.Errorf("pivot (%d,%d): %w", pivotRow, pivotCol, matrix.ErrDivisionByZero))
		}
		for j := range g[pivotRow] {
			g[pivotRow][j] = alg.Multiply(g[pivotRow][j], inv)
		}

		// Stage 4: clear below
		if err := checkPivotRow(alg, g[pivotRow], pivotRow, pivotCol); err != nil {
			return matrix.Matrix[S]{}, opsErrorf(opREF, err)
		}
		for r = pivotRow + 1; r < rows; r++ {
			entry := g[r][pivotCol]
			if scalar.IsZero(alg, entry) {
				continue
			}
			addScaledRow(alg, g, r, pivotRow, alg.AdditiveInverse(entry))
		}
		m = fromGrid(alg, g)
	}

	return m, nil
}

// ReducedRowEchelonForm reduces m to row-echelon form and then, from the last
// pivot row up, clears every entry above each pivot. The result is unique for
// a given m and RREF(RREF(m)) == RREF(m).
func ReducedRowEchelonForm[S any](m matrix.Matrix[S]) (matrix.Matrix[S], error) {
	ref, err := RowEchelonForm(m)
	if err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opRREF, err)
	}
	alg := ref.Algebra()
	rows, cols := ref.Dims()
	g := ref.Data()

	var pivotRow, pivotCol, r int
	for pivotRow = min(rows, cols) - 1; pivotRow >= 0; pivotRow-- {
		pivotCol = indexOfOne(alg, g[pivotRow])
		if pivotCol < 0 {
			continue
		}
		if err = checkPivotRow(alg, g[pivotRow], pivotRow, pivotCol); err != nil {
			return matrix.Matrix[S]{}, opsErrorf(opRREF, err)
		}
		for r = pivotRow - 1; r >= 0; r-- {
			entry := g[r][pivotCol]
			if scalar.IsZero(alg, entry) {
				continue
			}
			addScaledRow(alg, g, r, pivotRow, alg.AdditiveInverse(entry))
		}
	}

	return fromGrid(alg, g), nil
}

// Rank returns the number of non-zero rows in the row-echelon form of m.
func Rank[S any](m matrix.Matrix[S]) (int, error) {
	ref, err := RowEchelonForm(m)
	if err != nil {
		return 0, err
	}
	alg := ref.Algebra()
	rank := 0
	for _, row := range ref.Data() {
		if firstNonZeroFrom(alg, row, 0) >= 0 {
			rank++
		}
	}

	return rank, nil
}

// checkPivotRow verifies that row has a one at pivotCol and zeros to its left.
func checkPivotRow[S any](alg scalar.Algebra[S], row []S, pivotRow, pivotCol int) error {
	if !scalar.IsOne(alg, row[pivotCol]) {
		log.Errorf("row reduction: pivot (%d,%d) = %v, want one", pivotRow, pivotCol, row[pivotCol])
		return fmt.Errorf("pivot (%d,%d) is not one: %w", pivotRow, pivotCol, ErrInconsistentReduction)
	}
	for j := 0; j < pivotCol; j++ {
		if !scalar.IsZero(alg, row[j]) {
			log.Errorf("row reduction: entry (%d,%d) = %v left of pivot", pivotRow, j, row[j])
			return fmt.Errorf("entry (%d,%d) left of pivot is not zero: %w", pivotRow, j, ErrInconsistentReduction)
		}
	}

	return nil
}

// firstNonZeroFrom returns the first column ≥ from holding a non-zero entry, or -1.
func firstNonZeroFrom[S any](alg scalar.Algebra[S], row []S, from int) int {
	for j := from; j < len(row); j++ {
		if !scalar.IsZero(alg, row[j]) {
			return j
		}
	}

	return -1
}

// indexOfOne returns the first column holding the multiplicative identity, or -1.
func indexOfOne[S any](alg scalar.Algebra[S], row []S) int {
	for j, x := range row {
		if scalar.IsOne(alg, x) {
			return j
		}
	}

	return -1
}
