// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Matrix is an immutable, rectangular, row-major grid of scalars.
//
// The zero value is not usable; build matrices with New, FromRowVectors,
// FromColumnVectors, FromIndexFunc, Identity or Zeros. Copying a Matrix value
// is cheap and safe: the backing slice is never written after construction.
type Matrix[S any] struct {
	alg        scalar.Algebra[S]
	rows, cols int
	data       []S // len == rows*cols, never mutated
}

// Algebra returns the scalar algebra the matrix was built with.
func (m Matrix[S]) Algebra() scalar.Algebra[S] { return m.alg }

// Rows returns the number of rows.
func (m Matrix[S]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[S]) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m Matrix[S]) Dims() (int, int) { return m.rows, m.cols }

// IsSquare reports whether Rows == Cols.
func (m Matrix[S]) IsSquare() bool { return m.rows == m.cols }

// IsEmpty reports whether m is the canonical 0×0 matrix.
func (m Matrix[S]) IsEmpty() bool { return m.rows == 0 }

// at reads (i, j) without bounds checks; callers guarantee validity.
func (m Matrix[S]) at(i, j int) S { return m.data[i*m.cols+j] }

// At returns the entry at (i, j) or ErrOutOfRange.
func (m Matrix[S]) At(i, j int) (S, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero S
		return zero, matrixErrorf(opAt, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange))
	}

	return m.at(i, j), nil
}

// Row returns row i as a Vector.
func (m Matrix[S]) Row(i int) (Vector[S], error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return Vector[S]{}, matrixErrorf(opRow, err)
	}

	return m.row(i), nil
}

func (m Matrix[S]) row(i int) Vector[S] {
	out := make([]S, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return Vector[S]{alg: m.alg, data: out}
}

// Col returns column j as a Vector.
func (m Matrix[S]) Col(j int) (Vector[S], error) {
	if err := ValidateColIndex(m, j); err != nil {
		return Vector[S]{}, matrixErrorf(opCol, err)
	}

	return m.col(j), nil
}

func (m Matrix[S]) col(j int) Vector[S] {
	out := make([]S, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.at(i, j)
	}

	return Vector[S]{alg: m.alg, data: out}
}

// RowVectors returns every row as a Vector, top to bottom.
func (m Matrix[S]) RowVectors() []Vector[S] {
	out := make([]Vector[S], m.rows)
	for i := range out {
		out[i] = m.row(i)
	}

	return out
}

// ColumnVectors returns every column as a Vector, left to right.
func (m Matrix[S]) ColumnVectors() []Vector[S] {
	out := make([]Vector[S], m.cols)
	for j := range out {
		out[j] = m.col(j)
	}

	return out
}

// Diagonal returns the entries (i, i) for i < min(Rows, Cols).
func (m Matrix[S]) Diagonal() Vector[S] {
	n := min(m.rows, m.cols)
	out := make([]S, n)
	for i := 0; i < n; i++ {
		out[i] = m.at(i, i)
	}

	return Vector[S]{alg: m.alg, data: out}
}

// Data returns a deep copy of the entries as a row-major [][]S.
// The result may be modified freely by the caller.
func (m Matrix[S]) Data() [][]S {
	out := make([][]S, m.rows)
	for i := range out {
		row := make([]S, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// Equal reports whether m and other have the same shape and all entries are
// equal under m's algebra.
func (m Matrix[S]) Equal(other Matrix[S]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for idx := range m.data {
		if !m.alg.Equal(m.data[idx], other.data[idx]) {
			return false
		}
	}

	return true
}

// String renders rows on separate lines; intended for debugging only.
func (m Matrix[S]) String() string {
	var s string
	for i := 0; i < m.rows; i++ {
		s += fmt.Sprintf("%v\n", m.data[i*m.cols:(i+1)*m.cols])
	}

	return s
}
