// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestVector_Construction(t *testing.T) {
	entries := []float64{1, 2, 3}
	v := matrix.NewVector(reals, entries...)
	entries[0] = 99

	require.Equal(t, 3, v.Dim())
	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	sq := matrix.VectorFromIndexFunc(reals, 4, func(i int) float64 { return float64(i * i) })
	require.Equal(t, []float64{0, 1, 4, 9}, sq.Entries())

	require.Equal(t, []float64{0, 0}, matrix.ZeroVector(reals, 2).Entries())
}

func TestVector_Arithmetic(t *testing.T) {
	a := matrix.NewVector(reals, 1, 2, 3)
	b := matrix.NewVector(reals, 4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, sum.Entries())

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, diff.Entries())

	require.Equal(t, []float64{2, 4, 6}, a.Scale(2).Entries())

	dot, err := a.InnerProduct(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, dot)

	_, err = a.Add(matrix.NewVector(reals, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.InnerProduct(matrix.NewVector(reals, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVector_InnerProductConjugatesSecondOperand(t *testing.T) {
	v := matrix.NewVector(complexes, 1i, 1)
	w := matrix.NewVector(complexes, 1i, 2)

	got, err := v.InnerProduct(w)
	require.NoError(t, err)
	// i·conj(i) + 1·2 = 1 + 2
	require.Equal(t, complex(3, 0), got)
}

func TestVector_OuterProduct(t *testing.T) {
	a := matrix.NewVector(reals, 1, 2)
	b := matrix.NewVector(reals, 3, 4, 5)

	RequireMatrix(t, [][]float64{{3, 4, 5}, {6, 8, 10}}, a.OuterProduct(b))
}

func TestVector_ProjectOnto(t *testing.T) {
	v := matrix.NewVector(reals, 2, 3)
	u := matrix.NewVector(reals, 1, 0)

	p, err := v.ProjectOnto(u)
	require.NoError(t, err)
	require.True(t, p.Equal(matrix.NewVector(reals, 2, 0)))

	_, err = v.ProjectOnto(matrix.ZeroVector(reals, 2))
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

func TestVector_NormAndCross(t *testing.T) {
	require.Equal(t, 5.0, matrix.NewVector(reals, 3, 4).Norm())
	require.InDelta(t, math.Sqrt(2), matrix.NewVector(complexes, 1i, 1).Norm(), 1e-12)

	x := matrix.NewVector(reals, 1, 0, 0)
	y := matrix.NewVector(reals, 0, 1, 0)
	z, err := x.CrossProduct(y)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, z.Entries())

	_, err = matrix.NewVector(reals, 1, 2).CrossProduct(y)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVector_Equal(t *testing.T) {
	a := matrix.NewVector(reals, 1, 2)
	require.True(t, a.Equal(matrix.NewVector(reals, 1+1e-9, 2)))
	require.False(t, a.Equal(matrix.NewVector(reals, 1, 2.5)))
	require.False(t, a.Equal(matrix.NewVector(reals, 1, 2, 0)))
}
