// SPDX-License-Identifier: MIT
// Package ops — thin singular value decomposition through the eigenpairs of
// the Gram matrix A*·A.
//
// The eigenvalues λ_i of A*·A are real and non-negative; σ_i = √λ_i. Right
// singular vectors span the eigenspaces of A*·A and are orthonormalised with
// Gram-Schmidt across repeated values. Left singular vectors follow as
// u_i = A·v_i / σ_i. Singular values that the algebra cannot tell from zero
// are dropped, so the factors are thin: U is m×r, Σ is r×r and V is n×r with
// r the numerical rank.

package ops

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// SingularValueDecomposition holds A = U·Σ·V* with orthonormal columns in U
// and V and the singular values on the diagonal of Σ in descending order.
type SingularValueDecomposition[S any] struct {
	U, Sigma, V matrix.Matrix[S]
}

// Rank returns the number of non-zero singular values.
func (d SingularValueDecomposition[S]) Rank() int { return d.Sigma.Rows() }

// Values returns the singular values in descending order.
func (d SingularValueDecomposition[S]) Values() []float64 {
	alg := d.Sigma.Algebra()
	out := make([]float64, 0, d.Sigma.Rows())
	for _, s := range d.Sigma.Diagonal().Entries() {
		out = append(out, alg.Real(s))
	}

	return out
}

// SVD returns the thin singular value decomposition of a. The eigenvalues
// of A*·A are found with Eigenvalues and honour the same options. The empty
// matrix, and any matrix whose singular values are all zero, decompose into
// empty factors.
func SVD[S any](a matrix.Matrix[S], opts ...Option) (SingularValueDecomposition[S], error) {
	alg := a.Algebra()
	if err := matrix.ValidateAlgebra(alg); err != nil {
		return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
	}
	empty := SingularValueDecomposition[S]{U: matrix.Empty(alg), Sigma: matrix.Empty(alg), V: matrix.Empty(alg)}
	if a.IsEmpty() {
		return empty, nil
	}

	// Stage 1: spectrum of the Gram matrix, descending
	gram, err := a.Adjoint().Mul(a)
	if err != nil {
		return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
	}
	values, err := Eigenvalues(gram, opts...)
	if err != nil {
		return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
	}
	lambdas := make([]float64, 0, values.Dim())
	for _, l := range values.Entries() {
		lambdas = append(lambdas, math.Max(alg.Real(l), 0))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(lambdas)))

	// Stage 2: one orthonormal eigenspace basis per distinct value
	var (
		sigmas []S
		vs, us []matrix.Vector[S]
	)
	for i, j := 0, 0; i < len(lambdas); i = j {
		for j = i + 1; j < len(lambdas) && alg.Equal(alg.FromFloat64(lambdas[i]), alg.FromFloat64(lambdas[j])); j++ {
		}
		sigma := math.Sqrt(lambdas[i])
		if scalar.IsZero(alg, alg.FromFloat64(sigma)) {
			break
		}
		basis, err := eigenspace(gram, alg.FromFloat64(lambdas[i]))
		if err != nil {
			return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
		}
		want := len(vs) + j - i
		for _, v := range basis {
			if len(vs) == want {
				break
			}
			if q, ok := orthonormalise(v, vs); ok {
				vs = append(vs, q)
			}
		}
		if len(vs) < want {
			return SingularValueDecomposition[S]{}, opsErrorf(opSVD, fmt.Errorf("σ² = %v: eigenspace short by %d: %w", lambdas[i], want-len(vs), ErrNotEigenvalue))
		}
		inv := alg.FromFloat64(1 / sigma)
		for _, v := range vs[len(us):] {
			av, err := a.Apply(v)
			if err != nil {
				return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
			}
			us = append(us, av.Scale(inv))
			sigmas = append(sigmas, alg.FromFloat64(sigma))
		}
	}
	log.Debugf("SVD: %dx%d has numerical rank %d", a.Rows(), a.Cols(), len(sigmas))
	if len(sigmas) == 0 {
		return empty, nil
	}

	// Stage 3: assemble the thin factors
	u, err := matrix.FromColumnVectors(alg, us)
	if err != nil {
		return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
	}
	v, err := matrix.FromColumnVectors(alg, vs)
	if err != nil {
		return SingularValueDecomposition[S]{}, opsErrorf(opSVD, err)
	}

	return SingularValueDecomposition[S]{U: u, Sigma: matrix.Diag(matrix.NewVector(alg, sigmas...)), V: v}, nil
}

// eigenspace returns one vector per free variable of (h − λI)·x = 0.
func eigenspace[S any](h matrix.Matrix[S], lambda S) ([]matrix.Vector[S], error) {
	alg := h.Algebra()
	g, e, err := shiftedEchelon(h, lambda)
	if err != nil {
		return nil, err
	}
	if len(e.free) == 0 {
		return nil, fmt.Errorf("λ = %v: %w", lambda, ErrNotEigenvalue)
	}
	out := make([]matrix.Vector[S], 0, len(e.free))
	for _, f := range e.free {
		x := make([]S, e.n)
		for k := range x {
			x[k] = alg.Zero()
		}
		x[f] = alg.One()
		if err = substitute(alg, g, e, x); err != nil {
			return nil, err
		}
		out = append(out, matrix.NewVector(alg, x...))
	}

	return out, nil
}

// orthonormalise removes from v its components along the orthonormal basis
// and rescales the rest to unit length. It reports false when nothing
// distinguishable from zero is left.
func orthonormalise[S any](v matrix.Vector[S], basis []matrix.Vector[S]) (matrix.Vector[S], bool) {
	alg := v.Algebra()
	before := v.Norm()
	if before == 0 {
		return v, false
	}
	for _, q := range basis {
		c, err := v.InnerProduct(q)
		if err != nil {
			return v, false
		}
		if v, err = v.Subtract(q.Scale(c)); err != nil {
			return v, false
		}
	}
	after := v.Norm()
	if after == 0 || scalar.IsZero(alg, alg.FromFloat64(after/before)) {
		return v, false
	}

	return v.Scale(alg.FromFloat64(1 / after)), true
}
