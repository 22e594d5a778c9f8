// SPDX-License-Identifier: MIT

// Package matrix provides immutable, generic dense containers for linear
// algebra: Matrix[S] and Vector[S].
//
// What & Why:
//
//	Both containers are parameterised by a scalar type S and carry the
//	scalar.Algebra[S] that defines arithmetic on S. Every operation returns a
//	fresh value; nothing is ever mutated after construction, so a Matrix or
//	Vector may be shared across goroutines without synchronisation.
//
// Shape policy:
//
//	Matrices are strictly rectangular. Jagged input is rejected at
//	construction with ErrNonRectangular. Any matrix with zero rows or zero
//	columns is normalised to the canonical 0×0 empty matrix.
//
// Errors:
//
//	All public functions return package sentinels (see errors.go) wrapped
//	with an operation tag; match them with errors.Is.
//
// Complexity:
//
//	Rows/Cols/At are O(1). Structural operations (Transpose, Add, Set, …)
//	are O(r*c) because they materialise a new value. Mul is O(r*n*c).
//
// Norms & properties:
//
//	Vectors expose p-norms (PNorm, SumNorm, SupNorm, Norm) and matrices the
//	Frobenius and max norms, all real-valued and reduced with gonum/floats.
//	Symmetry, diagonality, identity and unitarity are reported under the
//	algebra's tolerance. FromLinearMap turns a map S^n → S^m into its matrix.
//
// Interop:
//
//	FromGonum / ToGonum convert between Matrix[float64] and gonum's mat.Dense.
package matrix
