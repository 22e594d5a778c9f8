// SPDX-License-Identifier: MIT
// Package matrix — vector and matrix norms.
//
// Norms are real-valued whatever the scalar type: entries are reduced to
// their moduli through Algebra.Abs and the reduction itself is gonum's.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/scalar"
	"gonum.org/v1/gonum/floats"
)

// moduli returns |x_i| for every entry.
func moduli[S any](alg scalar.Algebra[S], data []S) []float64 {
	out := make([]float64, len(data))
	for i, x := range data {
		out[i] = alg.Abs(x)
	}

	return out
}

// PNorm returns the p-norm (Σ|v_i|^p)^(1/p). p = +Inf selects the sup norm.
// p must be ≥ 1 (NaN and p < 1 yield ErrInvalidNorm). The empty vector has norm 0.
func (v Vector[S]) PNorm(p float64) (float64, error) {
	if math.IsNaN(p) || p < 1 {
		return 0, matrixErrorf(opPNorm, fmt.Errorf("p=%v: %w", p, ErrInvalidNorm))
	}
	if len(v.data) == 0 {
		return 0, nil
	}

	return floats.Norm(moduli(v.alg, v.data), p), nil
}

// SumNorm returns Σ|v_i| (the 1-norm).
func (v Vector[S]) SumNorm() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(moduli(v.alg, v.data), 1)
}

// SupNorm returns max|v_i| (the ∞-norm).
func (v Vector[S]) SupNorm() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(moduli(v.alg, v.data), math.Inf(1))
}

// FrobeniusNorm returns sqrt(Σ|m_ij|²).
func (m Matrix[S]) FrobeniusNorm() float64 {
	if len(m.data) == 0 {
		return 0
	}

	return floats.Norm(moduli(m.alg, m.data), 2)
}

// MaxNorm returns the largest entry modulus max|m_ij|.
func (m Matrix[S]) MaxNorm() float64 {
	if len(m.data) == 0 {
		return 0
	}

	return floats.Norm(moduli(m.alg, m.data), math.Inf(1))
}
