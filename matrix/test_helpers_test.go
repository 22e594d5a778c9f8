// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the container tests.
//   - Keep all data finite and well-formed so tolerance policy never interferes.

package matrix_test

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

// MustNew builds a real matrix from rows or fails the test.
func MustNew(t *testing.T, data [][]float64) matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New(reals, data)
	require.NoError(t, err)

	return m
}

// MustNewComplex builds a complex matrix from rows or fails the test.
func MustNewComplex(t *testing.T, data [][]complex128) matrix.Matrix[complex128] {
	t.Helper()
	m, err := matrix.New(complexes, data)
	require.NoError(t, err)

	return m
}

// RequireMatrix asserts that got equals want within the algebra tolerance.
func RequireMatrix(t *testing.T, want [][]float64, got matrix.Matrix[float64]) {
	t.Helper()
	w := MustNew(t, want)
	require.Truef(t, w.Equal(got), "want:\n%vgot:\n%v", w, got)
}
