// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestProperties(t *testing.T) {
	sym := MustNew(t, [][]float64{{1, 2}, {2, 3}})
	require.True(t, sym.IsSymmetric())
	require.False(t, sym.IsDiagonal())
	require.False(t, MustNew(t, [][]float64{{1, 2}, {0, 3}}).IsSymmetric())
	require.False(t, MustNew(t, [][]float64{{1, 2, 3}}).IsSymmetric())

	// complex symmetric is not Hermitian
	cs := MustNewComplex(t, [][]complex128{{1, 1i}, {1i, 1}})
	require.True(t, cs.IsSymmetric())
	require.False(t, cs.IsHermitian())

	require.True(t, MustNew(t, [][]float64{{2, 0}, {0, -1}}).IsDiagonal())

	id, err := matrix.Identity(reals, 3)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())
	require.True(t, id.IsUnitary())
	require.False(t, MustNew(t, [][]float64{{1, 0}, {0, 2}}).IsIdentity())
	require.False(t, MustNew(t, [][]float64{{1, 0}}).IsIdentity())
}

func TestIsUnitary(t *testing.T) {
	c, s := math.Cos(0.3), math.Sin(0.3)
	require.True(t, MustNew(t, [][]float64{{c, -s}, {s, c}}).IsUnitary())
	require.False(t, MustNew(t, [][]float64{{1, 1}, {0, 1}}).IsUnitary())
	require.False(t, MustNew(t, [][]float64{{1, 0, 0}, {0, 1, 0}}).IsUnitary())

	h := 1 / math.Sqrt2
	u := MustNewComplex(t, [][]complex128{
		{complex(h, 0), complex(0, h)},
		{complex(0, h), complex(h, 0)},
	})
	require.True(t, u.IsUnitary())
}

func TestFromLinearMap(t *testing.T) {
	// (x, y, z) -> (x + 2y, 3z)
	f := func(v matrix.Vector[float64]) matrix.Vector[float64] {
		e := v.Entries()
		return matrix.NewVector(reals, e[0]+2*e[1], 3*e[2])
	}
	m, err := matrix.FromLinearMap(reals, 3, f)
	require.NoError(t, err)
	RequireMatrix(t, [][]float64{{1, 2, 0}, {0, 0, 3}}, m)

	x := matrix.NewVector(reals, 1, -1, 2)
	got, err := m.Apply(x)
	require.NoError(t, err)
	require.True(t, got.Equal(f(x)))

	empty, err := matrix.FromLinearMap(reals, 0, f)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = matrix.FromLinearMap(reals, -1, f)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromLinearMap(nil, 2, f)
	require.ErrorIs(t, err, matrix.ErrNilAlgebra)

	// output dimension depends on the input
	ragged := func(v matrix.Vector[float64]) matrix.Vector[float64] {
		if e := v.Entries(); e[0] == 1 {
			return matrix.NewVector(reals, 1)
		}
		return matrix.NewVector(reals, 0, 0)
	}
	_, err = matrix.FromLinearMap(reals, 2, ragged)
	require.ErrorIs(t, err, matrix.ErrNotLinear)
}
