// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	m, err := matrix.FromGonum(reals, src)
	require.NoError(t, err)
	RequireMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	src.Set(0, 0, 42)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "conversion must copy")

	back := matrix.ToGonum(m)
	require.True(t, mat.Equal(back, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))

	fromT, err := matrix.FromGonum(reals, src.T())
	require.NoError(t, err)
	r, c := fromT.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	require.Nil(t, matrix.ToGonum(matrix.Empty(reals)))

	_, err = matrix.FromGonum(reals, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestGonumComplexRoundTrip(t *testing.T) {
	src := mat.NewCDense(2, 2, []complex128{1, 2i, -3i, 4})

	m, err := matrix.FromGonumComplex(complexes, src)
	require.NoError(t, err)
	require.True(t, m.Equal(MustNewComplex(t, [][]complex128{{1, 2i}, {-3i, 4}})))

	back := matrix.ToGonumComplex(m.Adjoint())
	require.Equal(t, complex(0, 3), back.At(0, 1))
	require.Equal(t, complex(0, -2), back.At(1, 0))
}
