// SPDX-License-Identifier: MIT
// Package ops — eigenvalues by unshifted QR iteration and eigenvectors by
// elimination on A − λI.
//
// Convergence policy:
//
//	The iteration A ← R·Q stops once every sub-diagonal entry satisfies
//	|a(i+1,i)| ≤ tol·(|a(i,i)| + |a(i+1,i+1)|), or |a(i+1,i)| ≤ tol when
//	that sum is zero, or after the iteration cap. The diagonal is then read
//	block by block: a converged 1×1 block is an eigenvalue, an unconverged
//	2×2 block is solved with the quadratic formula, and a larger unconverged
//	block contributes its diagonal entries as the best current estimate.
package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// EigenPair is an eigenvalue with an eigenvector normalised so that its last
// non-zero coordinate is one.
type EigenPair[S any] struct {
	Eigenvalue  S
	Eigenvector matrix.Vector[S]
}

// Eigenvalues returns the eigenvalues of the square matrix a in the order the
// iteration leaves them on the diagonal (for distinct magnitudes: descending
// by modulus). Reaching the iteration cap is not an error: blocks that have
// not separated yet are read as estimates. Over a real algebra, a 2×2 block
// with a negative discriminant fails with ErrComplexEigenvalues.
func Eigenvalues[S any](a matrix.Matrix[S], opts ...Option) (matrix.Vector[S], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return matrix.Vector[S]{}, opsErrorf(opEigenvalues, err)
	}
	o := gatherOptions(opts...)
	alg := a.Algebra()
	n := a.Rows()

	// Stage 1: iterate A ← R·Q
	cur := a
	iter := 0
	for ; iter < o.maxIterations && !quasiConverged(alg, cur, o.tolerance); iter++ {
		qr, err := QR(cur)
		if err != nil {
			return matrix.Vector[S]{}, opsErrorf(opEigenvalues, err)
		}
		if cur, err = qr.R.Mul(qr.Q); err != nil {
			return matrix.Vector[S]{}, opsErrorf(opEigenvalues, err)
		}
	}
	log.Debugf("Eigenvalues: %dx%d stopped after %d of %d iterations", n, n, iter, o.maxIterations)

	// Stage 2: read the diagonal blocks
	g := cur.Data()
	values := make([]S, 0, n)
	var i, j int
	for i = 0; i < n; i = j + 1 {
		// j is the last row of the unconverged block starting at i
		for j = i; j+1 < n && !subDiagonalConverged(alg, g, j, o.tolerance); j++ {
		}
		switch j - i {
		case 0:
			values = append(values, g[i][i])
		case 1:
			l1, l2, err := eigen2x2(alg, g[i][i], g[i][i+1], g[i+1][i], g[i+1][i+1])
			if err != nil {
				return matrix.Vector[S]{}, opsErrorf(opEigenvalues, fmt.Errorf("block at %d: %w", i, err))
			}
			log.Debugf("Eigenvalues: 2x2 block at %d resolved in closed form", i)
			values = append(values, l1, l2)
		default:
			log.Warningf("Eigenvalues: %dx%d block at %d unconverged after %d iterations; returning its diagonal", j-i+1, j-i+1, i, iter)
			for k := i; k <= j; k++ {
				values = append(values, g[k][k])
			}
		}
	}

	return matrix.NewVector(alg, values...), nil
}

// quasiConverged reports whether every sub-diagonal entry of m is negligible.
func quasiConverged[S any](alg scalar.Algebra[S], m matrix.Matrix[S], tol float64) bool {
	g := m.Data()
	for i := 0; i+1 < len(g); i++ {
		if !subDiagonalConverged(alg, g, i, tol) {
			return false
		}
	}

	return true
}

// subDiagonalConverged tests |g[i+1][i]| against the neighbouring diagonal.
func subDiagonalConverged[S any](alg scalar.Algebra[S], g [][]S, i int, tol float64) bool {
	sub := alg.Abs(g[i+1][i])
	scale := alg.Abs(g[i][i]) + alg.Abs(g[i+1][i+1])
	if scale == 0 {
		return sub <= tol
	}

	return sub <= tol*scale
}

// eigen2x2 returns the roots of λ² − tr·λ + det for the block [[a b] [c d]],
// the "+" root first.
func eigen2x2[S any](alg scalar.Algebra[S], a, b, c, d S) (S, S, error) {
	var zero S
	tr := alg.Add(a, d)
	det := scalar.Subtract(alg, alg.Multiply(a, d), alg.Multiply(b, c))
	disc := scalar.Subtract(alg, alg.Multiply(tr, tr), alg.Multiply(alg.FromFloat64(4), det))

	root := alg.Zero()
	if !scalar.IsZero(alg, disc) {
		r, ok := alg.Sqrt(disc)
		if !ok {
			return zero, zero, fmt.Errorf("discriminant %v: %w", disc, ErrComplexEigenvalues)
		}
		root = r
	}
	half := alg.FromFloat64(0.5)

	return alg.Multiply(alg.Add(tr, root), half), alg.Multiply(scalar.Subtract(alg, tr, root), half), nil
}

// EigenvectorForEigenvalue solves (a − λI)·x = 0 and returns the solution
// with the last free variable set to one, scaled so that its last non-zero
// coordinate is one. If a − λI is non-singular it fails with
// ErrNotEigenvalue.
func EigenvectorForEigenvalue[S any](a matrix.Matrix[S], lambda S) (matrix.Vector[S], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return matrix.Vector[S]{}, opsErrorf(opEigenvector, err)
	}
	alg := a.Algebra()
	n := a.Rows()

	// Stage 1: [A − λI | 0] in row-echelon form
	g, e, err := shiftedEchelon(a, lambda)
	if err != nil {
		return matrix.Vector[S]{}, opsErrorf(opEigenvector, err)
	}
	if len(e.free) == 0 {
		return matrix.Vector[S]{}, opsErrorf(opEigenvector, fmt.Errorf("λ = %v: %w", lambda, ErrNotEigenvalue))
	}

	// Stage 2: substitute with the last free variable at one
	x := make([]S, n)
	for j := range x {
		x[j] = alg.Zero()
	}
	x[e.free[len(e.free)-1]] = alg.One()
	if err = substitute(alg, g, e, x); err != nil {
		return matrix.Vector[S]{}, opsErrorf(opEigenvector, err)
	}

	// Stage 3: normalise by the last non-zero coordinate
	for j := n - 1; j >= 0; j-- {
		if scalar.IsZero(alg, x[j]) {
			continue
		}
		inv, ok := alg.MultiplicativeInverse(x[j])
		if !ok {
			break
		}
		for k := range x {
			x[k] = alg.Multiply(x[k], inv)
		}
		break
	}

	return matrix.NewVector(alg, x...), nil
}

// shiftedEchelon reduces [a − λI | 0] to row-echelon form and analyses its
// pivot structure. The free variables span the eigenspace of λ.
func shiftedEchelon[S any](a matrix.Matrix[S], lambda S) ([][]S, echelon, error) {
	alg := a.Algebra()
	n := a.Rows()
	id, err := matrix.Identity(alg, n)
	if err != nil {
		return nil, echelon{}, err
	}
	shifted, err := a.Subtract(id.Scale(lambda))
	if err != nil {
		return nil, echelon{}, err
	}
	zeros, err := matrix.Zeros(alg, n, 1)
	if err != nil {
		return nil, echelon{}, err
	}
	aug, err := matrix.Augment(shifted, zeros)
	if err != nil {
		return nil, echelon{}, err
	}
	ref, err := RowEchelonForm(aug)
	if err != nil {
		return nil, echelon{}, err
	}
	g := ref.Data()

	return g, analyseEchelon(alg, g, n), nil
}

// Eig returns every eigenvalue of a paired with its eigenvector, in the
// order produced by Eigenvalues.
func Eig[S any](a matrix.Matrix[S], opts ...Option) ([]EigenPair[S], error) {
	values, err := Eigenvalues(a, opts...)
	if err != nil {
		return nil, opsErrorf(opEig, err)
	}
	pairs := make([]EigenPair[S], 0, values.Dim())
	for _, lambda := range values.Entries() {
		vec, err := EigenvectorForEigenvalue(a, lambda)
		if err != nil {
			return nil, opsErrorf(opEig, err)
		}
		pairs = append(pairs, EigenPair[S]{Eigenvalue: lambda, Eigenvector: vec})
	}

	return pairs, nil
}
