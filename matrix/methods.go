// SPDX-License-Identifier: MIT
// Package matrix — arithmetic on Matrix values.
//
// Determinism & Policy:
//   - Fixed i→j (and i→k→j for Mul) loop orders.
//   - Inputs are never mutated; every result is a freshly allocated matrix.

package matrix

import "fmt"

// Add returns m + other (element-wise).
func (m Matrix[S]) Add(other Matrix[S]) (Matrix[S], error) {
	if err := ValidateSameShape(m, other); err != nil {
		return Matrix[S]{}, matrixErrorf(opAdd, err)
	}
	flat := make([]S, len(m.data))
	for idx := range flat {
		flat[idx] = m.alg.Add(m.data[idx], other.data[idx])
	}

	return newMatrix(m.alg, m.rows, m.cols, flat), nil
}

// Subtract returns m − other (element-wise).
func (m Matrix[S]) Subtract(other Matrix[S]) (Matrix[S], error) {
	if err := ValidateSameShape(m, other); err != nil {
		return Matrix[S]{}, matrixErrorf(opSub, err)
	}
	flat := make([]S, len(m.data))
	for idx := range flat {
		flat[idx] = m.alg.Add(m.data[idx], m.alg.AdditiveInverse(other.data[idx]))
	}

	return newMatrix(m.alg, m.rows, m.cols, flat), nil
}

// Mul returns the matrix product m × other.
// Requires m.Cols() == other.Rows(); the product of two empty matrices is empty.
func (m Matrix[S]) Mul(other Matrix[S]) (Matrix[S], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return Matrix[S]{}, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", m.rows, m.cols, other.rows, other.cols, err))
	}
	rows, inner, cols := m.rows, m.cols, other.cols
	flat := make([]S, rows*cols)
	zero := m.alg.Zero()
	for idx := range flat {
		flat[idx] = zero
	}
	var i, j, k int
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			av := m.at(i, k)
			for j = 0; j < cols; j++ {
				flat[i*cols+j] = m.alg.Add(flat[i*cols+j], m.alg.Multiply(av, other.at(k, j)))
			}
		}
	}

	return newMatrix(m.alg, rows, cols, flat), nil
}

// Apply returns the matrix–vector product m·v.
func (m Matrix[S]) Apply(v Vector[S]) (Vector[S], error) {
	if err := ValidateVectorLen(v, m.cols); err != nil {
		return Vector[S]{}, matrixErrorf(opApply, err)
	}
	out := make([]S, m.rows)
	for i := 0; i < m.rows; i++ {
		acc := m.alg.Zero()
		for j := 0; j < m.cols; j++ {
			acc = m.alg.Add(acc, m.alg.Multiply(m.at(i, j), v.data[j]))
		}
		out[i] = acc
	}

	return Vector[S]{alg: m.alg, data: out}, nil
}

// Scale returns s·m.
func (m Matrix[S]) Scale(s S) Matrix[S] {
	flat := make([]S, len(m.data))
	for idx, v := range m.data {
		flat[idx] = m.alg.Multiply(v, s)
	}

	return newMatrix(m.alg, m.rows, m.cols, flat)
}

// Transpose returns mᵀ.
func (m Matrix[S]) Transpose() Matrix[S] {
	flat := make([]S, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			flat[j*m.rows+i] = m.at(i, j)
		}
	}

	return newMatrix(m.alg, m.cols, m.rows, flat)
}

// Adjoint returns the conjugate transpose m*.
// For real algebras it equals Transpose.
func (m Matrix[S]) Adjoint() Matrix[S] {
	flat := make([]S, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			flat[j*m.rows+i] = m.alg.Conjugate(m.at(i, j))
		}
	}

	return newMatrix(m.alg, m.cols, m.rows, flat)
}

// Trace returns the sum of the entries (i, i) for i < min(Rows, Cols).
func (m Matrix[S]) Trace() S {
	acc := m.alg.Zero()
	for i, n := 0, min(m.rows, m.cols); i < n; i++ {
		acc = m.alg.Add(acc, m.at(i, i))
	}

	return acc
}

// Set returns a copy of m with entry (i, j) replaced by v.
func (m Matrix[S]) Set(i, j int, v S) (Matrix[S], error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return Matrix[S]{}, matrixErrorf(opSet, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange))
	}
	flat := make([]S, len(m.data))
	copy(flat, m.data)
	flat[i*m.cols+j] = v

	return newMatrix(m.alg, m.rows, m.cols, flat), nil
}

// IsHermitian reports whether m is square and equals its adjoint within
// tolerance. For real algebras this is plain symmetry.
func (m Matrix[S]) IsHermitian() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			if !m.alg.Equal(m.at(i, j), m.alg.Conjugate(m.at(j, i))) {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry strictly below the diagonal is zero.
func (m Matrix[S]) IsUpperTriangular() bool {
	zero := m.alg.Zero()
	for i := 1; i < m.rows; i++ {
		for j := 0; j < min(i, m.cols); j++ {
			if !m.alg.Equal(m.at(i, j), zero) {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether every entry strictly above the diagonal is zero.
func (m Matrix[S]) IsLowerTriangular() bool {
	return m.Transpose().IsUpperTriangular()
}
