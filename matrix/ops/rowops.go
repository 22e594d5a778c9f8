// SPDX-License-Identifier: MIT
// Package ops — elementary row operations and leading-zero pivoting.
//
// Every operation copies its input through Matrix.Data, edits the copy and
// rebuilds a fresh matrix; the argument is never modified.
//
// Inputs are expected to come from a matrix constructor. The zero Matrix has
// no algebra and no rows: the index-taking operations reject it with
// ErrOutOfRange, and Pivot and PartialPivot return it unchanged with a zero
// Operator.

package ops

import (
	"sort"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// PivotResult is a row-reordered matrix together with the permutation that
// produced it: Operator · M = Result.
type PivotResult[S any] struct {
	Result   matrix.Matrix[S]
	Operator matrix.Matrix[S]
}

// fromGrid rebuilds a matrix from a grid produced in this package.
// g must be rectangular and alg non-nil, which holds for any grid derived
// from a constructed matrix; matrix.New cannot fail under those conditions.
// A nil alg is only reachable through the zero Matrix and yields it back.
func fromGrid[S any](alg scalar.Algebra[S], g [][]S) matrix.Matrix[S] {
	if alg == nil {
		return matrix.Matrix[S]{}
	}
	m, err := matrix.New(alg, g)
	if err != nil {
		log.Errorf("fromGrid: %v", err)
		return matrix.Matrix[S]{}
	}

	return m
}

// MultiplyRowByScalar returns m with every entry of row multiplied by s.
func MultiplyRowByScalar[S any](m matrix.Matrix[S], row int, s S) (matrix.Matrix[S], error) {
	if err := matrix.ValidateRowIndex(m, row); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opMultiplyRow, err)
	}
	alg := m.Algebra()
	g := m.Data()
	for j := range g[row] {
		g[row][j] = alg.Multiply(g[row][j], s)
	}

	return fromGrid(alg, g), nil
}

// AddRowToRow returns m with row target replaced by target + source.
func AddRowToRow[S any](m matrix.Matrix[S], target, source int) (matrix.Matrix[S], error) {
	if err := matrix.ValidateRowIndex(m, target); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opAddRow, err)
	}

	return AddScalarMultipleOfRowToRow(m, target, source, m.Algebra().One())
}

// AddScalarMultipleOfRowToRow returns m with row target replaced by
// target + s·source.
func AddScalarMultipleOfRowToRow[S any](m matrix.Matrix[S], target, source int, s S) (matrix.Matrix[S], error) {
	if err := matrix.ValidateRowIndex(m, target); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opAddRow, err)
	}
	if err := matrix.ValidateRowIndex(m, source); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opAddRow, err)
	}
	alg := m.Algebra()
	g := m.Data()
	addScaledRow(alg, g, target, source, s)

	return fromGrid(alg, g), nil
}

// addScaledRow performs g[target] += s·g[source] in place on a private grid.
func addScaledRow[S any](alg scalar.Algebra[S], g [][]S, target, source int, s S) {
	for j := range g[target] {
		g[target][j] = alg.Add(g[target][j], alg.Multiply(s, g[source][j]))
	}
}

// ExchangeRows returns m with rows i and j swapped.
func ExchangeRows[S any](m matrix.Matrix[S], i, j int) (matrix.Matrix[S], error) {
	if err := matrix.ValidateRowIndex(m, i); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opExchangeRows, err)
	}
	if err := matrix.ValidateRowIndex(m, j); err != nil {
		return matrix.Matrix[S]{}, opsErrorf(opExchangeRows, err)
	}
	g := m.Data()
	g[i], g[j] = g[j], g[i]

	return fromGrid(m.Algebra(), g), nil
}

// Pivot stably sorts the rows of m by ascending count of leading zero
// entries. Rows with equal counts keep their relative order.
func Pivot[S any](m matrix.Matrix[S]) PivotResult[S] {
	alg := m.Algebra()
	g := m.Data()
	zeros := make([]int, len(g))
	for i, row := range g {
		zeros[i] = leadingZeros(alg, row)
	}

	return permuteRows(alg, g, func(a, b int) bool { return zeros[a] < zeros[b] })
}

// PartialPivot sorts like Pivot but breaks ties on the leading-zero count by
// descending magnitude of the leading entry, so the largest available pivot
// comes first.
func PartialPivot[S any](m matrix.Matrix[S]) PivotResult[S] {
	alg := m.Algebra()
	g := m.Data()
	zeros := make([]int, len(g))
	lead := make([]float64, len(g))
	for i, row := range g {
		zeros[i] = leadingZeros(alg, row)
		if zeros[i] < len(row) {
			lead[i] = alg.Abs(row[zeros[i]])
		}
	}

	return permuteRows(alg, g, func(a, b int) bool {
		if zeros[a] != zeros[b] {
			return zeros[a] < zeros[b]
		}
		return lead[a] > lead[b]
	})
}

// permuteRows orders row indices with less (stable) and returns the reordered
// matrix and its permutation operator.
func permuteRows[S any](alg scalar.Algebra[S], g [][]S, less func(a, b int) bool) PivotResult[S] {
	n := len(g)
	if n == 0 {
		return PivotResult[S]{Result: fromGrid(alg, g), Operator: fromGrid(alg, g)}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool { return less(perm[x], perm[y]) })

	sorted := make([][]S, n)
	op := make([][]S, n)
	zero, one := alg.Zero(), alg.One()
	for i, src := range perm {
		sorted[i] = g[src]
		op[i] = make([]S, n)
		for j := range op[i] {
			op[i][j] = zero
		}
		op[i][src] = one
	}

	return PivotResult[S]{Result: fromGrid(alg, sorted), Operator: fromGrid(alg, op)}
}

// leadingZeros counts the entries equal to zero before the first non-zero one.
func leadingZeros[S any](alg scalar.Algebra[S], row []S) int {
	for j, x := range row {
		if !scalar.IsZero(alg, x) {
			return j
		}
	}

	return len(row)
}
