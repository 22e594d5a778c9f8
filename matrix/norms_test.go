// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestVector_PNorm(t *testing.T) {
	v := matrix.NewVector(reals, 3, -4)

	n, err := v.PNorm(1)
	require.NoError(t, err)
	require.InDelta(t, 7.0, n, 1e-12)

	n, err = v.PNorm(2)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, 1e-12)

	n, err = v.PNorm(3)
	require.NoError(t, err)
	require.InDelta(t, math.Cbrt(27+64), n, 1e-12)

	n, err = v.PNorm(math.Inf(1))
	require.NoError(t, err)
	require.InDelta(t, 4.0, n, 1e-12)

	// moduli of complex entries: |3+4i| = 5, |i| = 1
	n, err = matrix.NewVector(complexes, 3+4i, 1i).PNorm(1)
	require.NoError(t, err)
	require.InDelta(t, 6.0, n, 1e-12)

	n, err = matrix.NewVector(reals).PNorm(2)
	require.NoError(t, err)
	require.Zero(t, n)

	for _, p := range []float64{0.5, 0, -1, math.NaN()} {
		_, err = v.PNorm(p)
		require.ErrorIs(t, err, matrix.ErrInvalidNorm, "p=%v", p)
	}
}

func TestVector_SumAndSupNorm(t *testing.T) {
	v := matrix.NewVector(reals, 1, -7, 2)
	require.InDelta(t, 10.0, v.SumNorm(), 1e-12)
	require.InDelta(t, 7.0, v.SupNorm(), 1e-12)

	c := matrix.NewVector(complexes, 3+4i, -2)
	require.InDelta(t, 7.0, c.SumNorm(), 1e-12)
	require.InDelta(t, 5.0, c.SupNorm(), 1e-12)

	require.Zero(t, matrix.NewVector(reals).SumNorm())
	require.Zero(t, matrix.NewVector(reals).SupNorm())
}

func TestMatrix_Norms(t *testing.T) {
	a := MustNew(t, [][]float64{{1, -2}, {2, 4}})
	require.InDelta(t, 5.0, a.FrobeniusNorm(), 1e-12)
	require.InDelta(t, 4.0, a.MaxNorm(), 1e-12)

	c := MustNewComplex(t, [][]complex128{{1i, 0}, {0, 1 - 1i}})
	require.InDelta(t, math.Sqrt(3), c.FrobeniusNorm(), 1e-12)

	empty, err := matrix.New(reals, nil)
	require.NoError(t, err)
	require.Zero(t, empty.FrobeniusNorm())
	require.Zero(t, empty.MaxNorm())
}
