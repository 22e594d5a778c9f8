// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions MUST return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilAlgebra is returned when a container is built without a scalar algebra.
	ErrNilAlgebra = errors.New("matrix: nil scalar algebra")

	// ErrNonRectangular indicates jagged input data or heterogeneous vectors.
	ErrNonRectangular = errors.New("matrix: data is not rectangular")

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or entry index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDivisionByZero is returned when an operation needs the inverse of a
	// scalar that has none (e.g. projecting onto the zero vector).
	ErrDivisionByZero = errors.New("matrix: division by a non-invertible scalar")

	// ErrInvalidNorm is returned for a norm order outside [1, +Inf].
	ErrInvalidNorm = errors.New("matrix: invalid norm order")

	// ErrNotLinear is returned when a map handed to FromLinearMap does not
	// produce vectors of one consistent dimension.
	ErrNotLinear = errors.New("matrix: map output has inconsistent dimension")
)

// Operation tags for uniform error wrapping.
const (
	opNew               = "New"
	opFromRowVectors    = "FromRowVectors"
	opFromColumnVectors = "FromColumnVectors"
	opFromIndexFunc     = "FromIndexFunc"
	opIdentity          = "Identity"
	opAt                = "At"
	opRow               = "Row"
	opCol               = "Col"
	opSet               = "Set"
	opAdd               = "Add"
	opSub               = "Subtract"
	opMul               = "Mul"
	opApply             = "Apply"
	opAugment           = "Augment"
	opStack             = "Stack"
	opSlice             = "Slice"
	opExclude           = "Exclude"
	opInnerProduct      = "InnerProduct"
	opProjectOnto       = "ProjectOnto"
	opCrossProduct      = "CrossProduct"
	opFromGonum         = "FromGonum"
	opHadamard          = "Hadamard"
	opScaleRows         = "ScaleRows"
	opScaleCols         = "ScaleCols"
	opAllClose          = "AllClose"
	opPNorm             = "PNorm"
	opFromLinearMap     = "FromLinearMap"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
