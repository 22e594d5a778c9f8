// SPDX-License-Identifier: MIT

package matrix

// IsSymmetric reports whether m is square and m_ij = m_ji within tolerance.
// Unlike IsHermitian no conjugation is applied.
func (m Matrix[S]) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if !m.alg.Equal(m.at(i, j), m.at(j, i)) {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal entry is zero.
func (m Matrix[S]) IsDiagonal() bool {
	return m.IsUpperTriangular() && m.IsLowerTriangular()
}

// IsIdentity reports whether m is the square identity within tolerance.
// The empty matrix counts as the 0×0 identity.
func (m Matrix[S]) IsIdentity() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			want := m.alg.Zero()
			if i == j {
				want = m.alg.One()
			}
			if !m.alg.Equal(m.at(i, j), want) {
				return false
			}
		}
	}

	return true
}

// IsUnitary reports whether m is square and m*·m is the identity.
// Over the reals this is orthogonality.
func (m Matrix[S]) IsUnitary() bool {
	if m.rows != m.cols {
		return false
	}
	p, err := m.Adjoint().Mul(m)
	if err != nil {
		return false
	}

	return p.IsIdentity()
}
