// SPDX-License-Identifier: MIT
// Package ops_test contains shared fixtures and property checks.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

var (
	reals     scalar.Algebra[float64]    = scalar.NewFloat64()
	complexes scalar.Algebra[complex128] = scalar.NewComplex128()
)

// MustNew builds a real matrix or fails the test.
func MustNew(t *testing.T, data [][]float64) matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New(reals, data)
	require.NoError(t, err)

	return m
}

// MustNewComplex builds a complex matrix or fails the test.
func MustNewComplex(t *testing.T, data [][]complex128) matrix.Matrix[complex128] {
	t.Helper()
	m, err := matrix.New(complexes, data)
	require.NoError(t, err)

	return m
}

// MustMul returns a·b or fails the test.
func MustMul[S any](t *testing.T, a, b matrix.Matrix[S]) matrix.Matrix[S] {
	t.Helper()
	p, err := a.Mul(b)
	require.NoError(t, err)

	return p
}

// RequireMatrix asserts got equals want under the algebra tolerance.
func RequireMatrix(t *testing.T, want [][]float64, got matrix.Matrix[float64]) {
	t.Helper()
	w := MustNew(t, want)
	require.Truef(t, w.Equal(got), "want:\n%vgot:\n%v", w, got)
}

// propUnitLowerTriangular checks diag(L)=1 and L[i,j]=0 for j>i.
func propUnitLowerTriangular[S any](t *testing.T, l matrix.Matrix[S]) {
	t.Helper()
	require.True(t, l.IsSquare(), "L must be square")
	require.True(t, l.IsLowerTriangular(), "L must be lower triangular:\n%v", l)
	for i, d := range l.Diagonal().Entries() {
		require.Truef(t, scalar.IsOne(l.Algebra(), d), "diag(L)[%d] = %v, want one", i, d)
	}
}

// propUpperTriangular checks U[i,j]=0 for i>j.
func propUpperTriangular[S any](t *testing.T, u matrix.Matrix[S]) {
	t.Helper()
	require.True(t, u.IsUpperTriangular(), "U must be upper triangular:\n%v", u)
}

// propPermutation checks that every row and column of p holds exactly one
// one and zeros elsewhere.
func propPermutation[S any](t *testing.T, p matrix.Matrix[S]) {
	t.Helper()
	alg := p.Algebra()
	require.True(t, p.IsSquare(), "P must be square")
	n := p.Rows()
	rowOnes := make([]int, n)
	colOnes := make([]int, n)
	for i, row := range p.Data() {
		for j, x := range row {
			switch {
			case scalar.IsOne(alg, x):
				rowOnes[i]++
				colOnes[j]++
			case !scalar.IsZero(alg, x):
				t.Fatalf("P[%d][%d] = %v is neither zero nor one", i, j, x)
			}
		}
	}
	for i := 0; i < n; i++ {
		require.Equalf(t, 1, rowOnes[i], "row %d of P", i)
		require.Equalf(t, 1, colOnes[i], "column %d of P", i)
	}
}

// propReconstructionLU verifies L·U = P·A.
func propReconstructionLU[S any](t *testing.T, a, l, u, p matrix.Matrix[S]) {
	t.Helper()
	lu := MustMul(t, l, u)
	pa := MustMul(t, p, a)
	require.Truef(t, lu.Equal(pa), "L·U:\n%vP·A:\n%v", lu, pa)
}

// propIdentity checks that m is the identity of its size.
func propIdentity[S any](t *testing.T, m matrix.Matrix[S]) {
	t.Helper()
	id, err := matrix.Identity(m.Algebra(), m.Rows())
	require.NoError(t, err)
	require.Truef(t, m.Equal(id), "want identity, got:\n%v", m)
}
