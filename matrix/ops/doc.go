// SPDX-License-Identifier: MIT

// Package ops implements the classical dense-matrix algorithms on top of the
// generic containers in package matrix.
//
// What:
//
//   - Elementary row operations and leading-zero pivoting.
//   - Gauss-Jordan elimination: REF, RREF, Inverse, Rank and linear solving.
//   - LU (Doolittle with row pivoting), Cholesky and Householder QR.
//   - Determinants by cofactor expansion or by elimination.
//   - Eigenvalues by unshifted QR iteration and eigenvectors by elimination.
//   - Thin singular value decomposition from the eigenpairs of A*·A.
//   - The matrix exponential by scaling and squaring.
//
// Every function is generic over the scalar type S and works through the
// scalar.Algebra[S] carried by its input. Inputs are never mutated and are
// expected to come from a matrix constructor; the zero Matrix carries no
// algebra and is treated as an empty matrix where an operation allows one.
//
// Errors:
//
//	Structural problems (non-square input, bad indices) and numerical failures
//	(zero LU pivot, complex eigenvalues in a real domain) are returned as
//	errors wrapping the package sentinels or those of package matrix.
//	Non-results that callers are expected to branch on (singular inverse,
//	non-positive-definite Cholesky input, inconsistent systems) are ordinary
//	return values.
//
// Logging:
//
//	The package logs through github.com/op/go-logging under the module name
//	"linalg". The default level is WARNING; raise it with
//	logging.SetLevel(logging.DEBUG, "linalg") to trace convergence.
package ops
