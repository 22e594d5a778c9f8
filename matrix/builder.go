// SPDX-License-Identifier: MIT
// Package matrix — constructors and structural builders.
//
// Every constructor validates its input (algebra present, rectangular data,
// non-negative shape) before allocating, and normalises zero-row or
// zero-column shapes to the canonical 0×0 empty matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// newMatrix adopts data (row-major, len rows*cols) without copying.
func newMatrix[S any](alg scalar.Algebra[S], rows, cols int, data []S) Matrix[S] {
	if rows == 0 || cols == 0 {
		return Matrix[S]{alg: alg}
	}

	return Matrix[S]{alg: alg, rows: rows, cols: cols, data: data}
}

// Empty returns the canonical 0×0 matrix over alg.
func Empty[S any](alg scalar.Algebra[S]) Matrix[S] {
	return Matrix[S]{alg: alg}
}

// New builds a matrix from row-major data. The input is copied.
// Jagged rows yield ErrNonRectangular; [] and [[], [], []] yield the empty matrix.
func New[S any](alg scalar.Algebra[S], data [][]S) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opNew, err)
	}
	rows := len(data)
	if rows == 0 {
		return Empty(alg), nil
	}
	cols := len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return Matrix[S]{}, matrixErrorf(opNew, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrNonRectangular))
		}
	}
	flat := make([]S, 0, rows*cols)
	for _, row := range data {
		flat = append(flat, row...)
	}

	return newMatrix(alg, rows, cols, flat), nil
}

// FromRowVectors builds a matrix whose i-th row is rows[i].
// All vectors must share one dimension (ErrNonRectangular otherwise).
func FromRowVectors[S any](alg scalar.Algebra[S], rows []Vector[S]) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromRowVectors, err)
	}
	if err := validateHomogeneous(rows); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromRowVectors, err)
	}
	if len(rows) == 0 {
		return Empty(alg), nil
	}
	n, c := len(rows), rows[0].Dim()
	flat := make([]S, 0, n*c)
	for _, v := range rows {
		flat = append(flat, v.data...)
	}

	return newMatrix(alg, n, c, flat), nil
}

// FromColumnVectors builds a matrix whose j-th column is cols[j].
// All vectors must share one dimension (ErrNonRectangular otherwise).
func FromColumnVectors[S any](alg scalar.Algebra[S], cols []Vector[S]) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromColumnVectors, err)
	}
	if err := validateHomogeneous(cols); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromColumnVectors, err)
	}
	if len(cols) == 0 {
		return Empty(alg), nil
	}
	r, c := cols[0].Dim(), len(cols)
	flat := make([]S, r*c)
	for j, v := range cols {
		for i, x := range v.data {
			flat[i*c+j] = x
		}
	}

	return newMatrix(alg, r, c, flat), nil
}

func validateHomogeneous[S any](vs []Vector[S]) error {
	for i := 1; i < len(vs); i++ {
		if vs[i].Dim() != vs[0].Dim() {
			return fmt.Errorf("vector %d has dimension %d, want %d: %w", i, vs[i].Dim(), vs[0].Dim(), ErrNonRectangular)
		}
	}

	return nil
}

// FromIndexFunc builds an r×c matrix with entry (i, j) = f(i, j).
// f is called in row-major order.
func FromIndexFunc[S any](alg scalar.Algebra[S], rows, cols int, f func(i, j int) S) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromIndexFunc, err)
	}
	if rows < 0 || cols < 0 {
		return Matrix[S]{}, matrixErrorf(opFromIndexFunc, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	if rows == 0 || cols == 0 {
		return Empty(alg), nil
	}
	flat := make([]S, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = f(i, j)
		}
	}

	return newMatrix(alg, rows, cols, flat), nil
}

// Identity returns the n×n identity matrix.
func Identity[S any](alg scalar.Algebra[S], n int) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opIdentity, err)
	}
	one, zero := alg.One(), alg.Zero()

	return FromIndexFunc(alg, n, n, func(i, j int) S {
		if i == j {
			return one
		}
		return zero
	})
}

// Zeros returns an r×c matrix of additive identities.
func Zeros[S any](alg scalar.Algebra[S], rows, cols int) (Matrix[S], error) {
	if err := ValidateAlgebra(alg); err != nil {
		return Matrix[S]{}, matrixErrorf(opFromIndexFunc, err)
	}
	zero := alg.Zero()

	return FromIndexFunc(alg, rows, cols, func(int, int) S { return zero })
}

// Diag returns the square matrix with v on its diagonal.
func Diag[S any](v Vector[S]) Matrix[S] {
	n := v.Dim()
	zero := v.alg.Zero()
	flat := make([]S, n*n)
	for i := range flat {
		flat[i] = zero
	}
	for i, x := range v.data {
		flat[i*n+i] = x
	}

	return newMatrix(v.alg, n, n, flat)
}

// Augment returns [left | right]. Both operands must have the same row count.
func Augment[S any](left, right Matrix[S]) (Matrix[S], error) {
	if left.rows != right.rows {
		return Matrix[S]{}, matrixErrorf(opAugment, fmt.Errorf("%d vs %d rows: %w", left.rows, right.rows, ErrDimensionMismatch))
	}
	rows, cols := left.rows, left.cols+right.cols
	flat := make([]S, 0, rows*cols)
	for i := 0; i < rows; i++ {
		flat = append(flat, left.data[i*left.cols:(i+1)*left.cols]...)
		flat = append(flat, right.data[i*right.cols:(i+1)*right.cols]...)
	}

	return newMatrix(left.alg, rows, cols, flat), nil
}

// Stack returns top above bottom. Both operands must have the same column count.
func Stack[S any](top, bottom Matrix[S]) (Matrix[S], error) {
	switch {
	case top.IsEmpty():
		return bottom, nil
	case bottom.IsEmpty():
		return top, nil
	case top.cols != bottom.cols:
		return Matrix[S]{}, matrixErrorf(opStack, fmt.Errorf("%d vs %d cols: %w", top.cols, bottom.cols, ErrDimensionMismatch))
	}
	flat := make([]S, 0, len(top.data)+len(bottom.data))
	flat = append(flat, top.data...)
	flat = append(flat, bottom.data...)

	return newMatrix(top.alg, top.rows+bottom.rows, top.cols, flat), nil
}

// Slice returns the sub-matrix of rows [r0, r1) and columns [c0, c1).
func Slice[S any](m Matrix[S], r0, c0, r1, c1 int) (Matrix[S], error) {
	if r0 < 0 || c0 < 0 || r0 > r1 || c0 > c1 || r1 > m.rows || c1 > m.cols {
		return Matrix[S]{}, matrixErrorf(opSlice, fmt.Errorf("[%d:%d, %d:%d] of %dx%d: %w", r0, r1, c0, c1, m.rows, m.cols, ErrOutOfRange))
	}
	rows, cols := r1-r0, c1-c0
	flat := make([]S, 0, rows*cols)
	for i := r0; i < r1; i++ {
		flat = append(flat, m.data[i*m.cols+c0:i*m.cols+c1]...)
	}

	return newMatrix(m.alg, rows, cols, flat), nil
}

// Exclude returns m without row and column (the minor used by cofactor expansion).
func Exclude[S any](m Matrix[S], row, col int) (Matrix[S], error) {
	if err := ValidateRowIndex(m, row); err != nil {
		return Matrix[S]{}, matrixErrorf(opExclude, err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return Matrix[S]{}, matrixErrorf(opExclude, err)
	}
	flat := make([]S, 0, (m.rows-1)*(m.cols-1))
	for i := 0; i < m.rows; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j != col {
				flat = append(flat, m.at(i, j))
			}
		}
	}

	return newMatrix(m.alg, m.rows-1, m.cols-1, flat), nil
}
