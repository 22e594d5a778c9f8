// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// Vector is an immutable, fixed-length sequence of scalars.
type Vector[S any] struct {
	alg  scalar.Algebra[S]
	data []S
}

// NewVector builds a vector from entries. The input is copied.
func NewVector[S any](alg scalar.Algebra[S], entries ...S) Vector[S] {
	data := make([]S, len(entries))
	copy(data, entries)

	return Vector[S]{alg: alg, data: data}
}

// VectorFromIndexFunc builds an n-vector with entry i = f(i).
func VectorFromIndexFunc[S any](alg scalar.Algebra[S], n int, f func(i int) S) Vector[S] {
	data := make([]S, max(n, 0))
	for i := range data {
		data[i] = f(i)
	}

	return Vector[S]{alg: alg, data: data}
}

// ZeroVector returns the n-vector of additive identities.
func ZeroVector[S any](alg scalar.Algebra[S], n int) Vector[S] {
	zero := alg.Zero()

	return VectorFromIndexFunc(alg, n, func(int) S { return zero })
}

// Algebra returns the scalar algebra of v.
func (v Vector[S]) Algebra() scalar.Algebra[S] { return v.alg }

// Dim returns the number of entries.
func (v Vector[S]) Dim() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v Vector[S]) At(i int) (S, error) {
	if i < 0 || i >= len(v.data) {
		var zero S
		return zero, matrixErrorf(opAt, fmt.Errorf("%d of %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Entries returns a copy of the entries.
func (v Vector[S]) Entries() []S {
	out := make([]S, len(v.data))
	copy(out, v.data)

	return out
}

// Add returns v + w.
func (v Vector[S]) Add(w Vector[S]) (Vector[S], error) {
	if err := ValidateSameDim(v, w); err != nil {
		return Vector[S]{}, matrixErrorf(opAdd, err)
	}

	return VectorFromIndexFunc(v.alg, len(v.data), func(i int) S {
		return v.alg.Add(v.data[i], w.data[i])
	}), nil
}

// Subtract returns v − w.
func (v Vector[S]) Subtract(w Vector[S]) (Vector[S], error) {
	if err := ValidateSameDim(v, w); err != nil {
		return Vector[S]{}, matrixErrorf(opSub, err)
	}

	return VectorFromIndexFunc(v.alg, len(v.data), func(i int) S {
		return scalar.Subtract(v.alg, v.data[i], w.data[i])
	}), nil
}

// Scale returns s·v.
func (v Vector[S]) Scale(s S) Vector[S] {
	return VectorFromIndexFunc(v.alg, len(v.data), func(i int) S {
		return v.alg.Multiply(v.data[i], s)
	})
}

// InnerProduct returns ⟨v, w⟩ = Σ v_i · conj(w_i).
func (v Vector[S]) InnerProduct(w Vector[S]) (S, error) {
	if err := ValidateSameDim(v, w); err != nil {
		var zero S
		return zero, matrixErrorf(opInnerProduct, err)
	}
	acc := v.alg.Zero()
	for i := range v.data {
		acc = v.alg.Add(acc, v.alg.Multiply(v.data[i], v.alg.Conjugate(w.data[i])))
	}

	return acc, nil
}

// OuterProduct returns the |v|×|w| matrix with entries v_i · w_j.
func (v Vector[S]) OuterProduct(w Vector[S]) Matrix[S] {
	rows, cols := len(v.data), len(w.data)
	flat := make([]S, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = v.alg.Multiply(v.data[i], w.data[j])
		}
	}

	return newMatrix(v.alg, rows, cols, flat)
}

// ProjectOnto returns the projection of v onto u: (⟨v,u⟩/⟨u,u⟩)·u.
// Projecting onto the zero vector yields ErrDivisionByZero.
func (v Vector[S]) ProjectOnto(u Vector[S]) (Vector[S], error) {
	uu, err := u.InnerProduct(u)
	if err != nil {
		return Vector[S]{}, matrixErrorf(opProjectOnto, err)
	}
	inv, ok := v.alg.MultiplicativeInverse(uu)
	if !ok {
		return Vector[S]{}, matrixErrorf(opProjectOnto, ErrDivisionByZero)
	}
	vu, err := v.InnerProduct(u)
	if err != nil {
		return Vector[S]{}, matrixErrorf(opProjectOnto, err)
	}

	return u.Scale(v.alg.Multiply(vu, inv)), nil
}

// Norm returns the Euclidean norm sqrt(Σ|v_i|²).
func (v Vector[S]) Norm() float64 {
	var sum float64
	for _, x := range v.data {
		a := v.alg.Abs(x)
		sum += a * a
	}

	return math.Sqrt(sum)
}

// CrossProduct returns v × w for 3-dimensional vectors.
func (v Vector[S]) CrossProduct(w Vector[S]) (Vector[S], error) {
	if len(v.data) != 3 || len(w.data) != 3 {
		return Vector[S]{}, matrixErrorf(opCrossProduct, ErrDimensionMismatch)
	}
	alg := v.alg
	term := func(i, j int) S {
		return scalar.Subtract(alg, alg.Multiply(v.data[i], w.data[j]), alg.Multiply(v.data[j], w.data[i]))
	}

	return NewVector(alg, term(1, 2), term(2, 0), term(0, 1)), nil
}

// Equal reports whether v and w have the same dimension and equal entries.
func (v Vector[S]) Equal(w Vector[S]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if !v.alg.Equal(v.data[i], w.data[i]) {
			return false
		}
	}

	return true
}
