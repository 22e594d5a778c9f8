// SPDX-License-Identifier: MIT
package ops_test

import (
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/ops"
)

// EigenSuite groups tests for the QR-iteration eigen solver.
type EigenSuite struct {
	suite.Suite
	twoByTwo  matrix.Matrix[float64]
	threeBy3  matrix.Matrix[float64]
	rotation  matrix.Matrix[float64]
	rotationC matrix.Matrix[complex128]
	symmetric [][]float64
}

func (s *EigenSuite) SetupTest() {
	s.twoByTwo = MustNew(s.T(), [][]float64{{2, 1}, {2, 3}})
	s.threeBy3 = MustNew(s.T(), [][]float64{{-1, 2, 2}, {-1, -4, -2}, {-3, 9, 7}})
	s.rotation = MustNew(s.T(), [][]float64{{0, -1}, {1, 0}})
	s.rotationC = MustNewComplex(s.T(), [][]complex128{{0, -1}, {1, 0}})
	s.symmetric = [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
}

// TestTwoByTwo: eigenvalues come out in convergence order, largest first.
func (s *EigenSuite) TestTwoByTwo() {
	vals, err := ops.Eigenvalues(s.twoByTwo)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{4, 1}, vals.Entries(), 1e-9)
}

// TestThreeByThree: non-symmetric input with eigenvalues 3, -2, 1.
func (s *EigenSuite) TestThreeByThree() {
	vals, err := ops.Eigenvalues(s.threeBy3)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{3, -2, 1}, vals.Entries(), 1e-9)
}

// TestEigenvectors: vectors are normalised so the last coordinate is one.
func (s *EigenSuite) TestEigenvectors() {
	cases := []struct {
		a      matrix.Matrix[float64]
		lambda float64
		want   []float64
	}{
		{s.twoByTwo, 4, []float64{0.5, 1}},
		{s.twoByTwo, 1, []float64{-1, 1}},
		{s.threeBy3, 3, []float64{1.0 / 3, -1.0 / 3, 1}},
		{s.threeBy3, -2, []float64{0, -1, 1}},
		{s.threeBy3, 1, []float64{0.5, -0.5, 1}},
	}
	for _, tc := range cases {
		v, err := ops.EigenvectorForEigenvalue(tc.a, tc.lambda)
		require.NoError(s.T(), err)
		require.InDeltaSlice(s.T(), tc.want, v.Entries(), 1e-9, "λ = %v", tc.lambda)
	}
}

// TestEigPairsSatisfyEquation: A·v = λ·v for every pair.
func (s *EigenSuite) TestEigPairsSatisfyEquation() {
	pairs, err := ops.Eig(s.threeBy3)
	require.NoError(s.T(), err)
	require.Len(s.T(), pairs, 3)
	for _, p := range pairs {
		av, err := s.threeBy3.Apply(p.Eigenvector)
		require.NoError(s.T(), err)
		require.True(s.T(), av.Equal(p.Eigenvector.Scale(p.Eigenvalue)), "λ = %v, v = %v", p.Eigenvalue, p.Eigenvector.Entries())
		last, err := p.Eigenvector.At(p.Eigenvector.Dim() - 1)
		require.NoError(s.T(), err)
		require.InDelta(s.T(), 1.0, last, 1e-9)
	}
}

// TestRealRotationFails: a rotation has no real eigenvalues.
func (s *EigenSuite) TestRealRotationFails() {
	_, err := ops.Eigenvalues(s.rotation)
	require.ErrorIs(s.T(), err, ops.ErrComplexEigenvalues)

	_, err = ops.Eig(s.rotation)
	require.ErrorIs(s.T(), err, ops.ErrComplexEigenvalues)
}

// TestComplexRotation: over complex scalars the rotation yields ±i.
func (s *EigenSuite) TestComplexRotation() {
	vals, err := ops.Eigenvalues(s.rotationC)
	require.NoError(s.T(), err)
	got := vals.Entries()
	require.Len(s.T(), got, 2)
	for _, want := range []complex128{1i, -1i} {
		found := false
		for _, g := range got {
			if cmplx.Abs(g-want) < 1e-9 {
				found = true
			}
		}
		require.True(s.T(), found, "missing eigenvalue %v in %v", want, got)
	}

	pairs, err := ops.Eig(s.rotationC)
	require.NoError(s.T(), err)
	for _, p := range pairs {
		av, err := s.rotationC.Apply(p.Eigenvector)
		require.NoError(s.T(), err)
		require.True(s.T(), av.Equal(p.Eigenvector.Scale(p.Eigenvalue)))
	}
}

// TestMatchesGonum: symmetric input agrees with gonum's solver.
func (s *EigenSuite) TestMatchesGonum() {
	a := MustNew(s.T(), s.symmetric)
	vals, err := ops.Eigenvalues(a)
	require.NoError(s.T(), err)
	got := vals.Entries()
	sort.Float64s(got)

	var eig mat.Eigen
	require.True(s.T(), eig.Factorize(matrix.ToGonum(a), mat.EigenNone))
	var want []float64
	for _, c := range eig.Values(nil) {
		want = append(want, real(c))
	}
	sort.Float64s(want)

	require.InDeltaSlice(s.T(), want, got, 1e-9)
}

// TestNotEigenvalue: A − λI non-singular.
func (s *EigenSuite) TestNotEigenvalue() {
	_, err := ops.EigenvectorForEigenvalue(s.twoByTwo, 5)
	require.ErrorIs(s.T(), err, ops.ErrNotEigenvalue)
}

// TestIterationCap: a tight cap still yields the diagonal estimate.
func (s *EigenSuite) TestIterationCap() {
	vals, err := ops.Eigenvalues(s.threeBy3, ops.WithMaxIterations(30))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{3, -2, 1}, vals.Entries(), 1e-5)

	// one iteration is far from converged but still returns every entry
	vals, err = ops.Eigenvalues(s.threeBy3, ops.WithMaxIterations(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, vals.Dim())
}

// TestNonSquare covers the structural precondition.
func (s *EigenSuite) TestNonSquare() {
	wide := MustNew(s.T(), [][]float64{{1, 2}})
	_, err := ops.Eigenvalues(wide)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	_, err = ops.EigenvectorForEigenvalue(wide, 1)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
}

// TestTriangularIsImmediate: an already triangular matrix needs no iteration.
func (s *EigenSuite) TestTriangularIsImmediate() {
	upper := MustNew(s.T(), [][]float64{{5, 1, 2}, {0, 3, 4}, {0, 0, -1}})
	vals, err := ops.Eigenvalues(upper, ops.WithMaxIterations(1))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{5, 3, -1}, vals.Entries(), 1e-12)
}

func TestEigenSuite(t *testing.T) {
	suite.Run(t, new(EigenSuite))
}
