// SPDX-License-Identifier: MIT
// Package ops — matrix inverse via Gauss-Jordan elimination.

package ops

import (
	"github.com/katalvlaran/linalg/matrix"
)

// Inverse returns the inverse of the square matrix m.
//
// Blueprint:
//
//	Stage 1 (Validate): m must be square, else ErrNonSquare.
//	Stage 2 (Reduce): RREF of [m | I].
//	Stage 3 (Split): if the left block is I the right block is m⁻¹.
//
// A singular m is not an error: ok is false and inv is the zero Matrix.
// Complexity: O(n³).
func Inverse[S any](m matrix.Matrix[S]) (inv matrix.Matrix[S], ok bool, err error) {
	// Stage 1: Validate
	if err = matrix.ValidateSquare(m); err != nil {
		return matrix.Matrix[S]{}, false, opsErrorf(opInverse, err)
	}
	n := m.Rows()
	id, err := matrix.Identity(m.Algebra(), n)
	if err != nil {
		return matrix.Matrix[S]{}, false, opsErrorf(opInverse, err)
	}

	// Stage 2: Reduce
	aug, err := matrix.Augment(m, id)
	if err != nil {
		return matrix.Matrix[S]{}, false, opsErrorf(opInverse, err)
	}
	rref, err := ReducedRowEchelonForm(aug)
	if err != nil {
		return matrix.Matrix[S]{}, false, opsErrorf(opInverse, err)
	}

	// Stage 3: Split
	left, err := matrix.Slice(rref, 0, 0, n, n)
	if err != nil {
		return matrix.Matrix[S]{}, false, opsErrorf(opInverse, err)
	}
	if !left.Equal(id) {
		log.Debugf("Inverse: %dx%d matrix is singular", n, n)
		return matrix.Matrix[S]{}, false, nil
	}
	right, err := matrix.Slice(rref, 0, n, n, 2*n)
	if err != nil {
		return matrix.Matrix[S]{}, false, opsErrorf(opInverse, err)
	}

	return right, true, nil
}
