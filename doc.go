// SPDX-License-Identifier: MIT

// Package linalg is a small, generic dense linear-algebra kernel: immutable
// matrices and vectors over any scalar field, plus the classical
// elimination and factorization algorithms built on them.
//
// What is in the box?
//
//	• Scalars: a field abstraction with real (float64) and complex (complex128)
//	  implementations and a configurable equality tolerance
//	• Containers: Matrix[S] and Vector[S], value-semantic and immutable
//	• Row operations: scale, add, exchange, pivot and partial pivot
//	• Gauss–Jordan: REF, RREF, rank, inverse and linear-system solving
//	• Factorizations: LU (Doolittle, with permutation), Cholesky, Householder QR,
//	  thin SVD
//	• Determinants: cofactor expansion and elimination
//	• Eigen: eigenvalues by QR iteration, eigenvectors by elimination
//	• Norms, matrix properties, linear maps and the matrix exponential
//
// Everything is organized under three packages:
//
//	scalar/      — Algebra[S] plus the Float64 and Complex128 fields
//	matrix/      — Matrix[S], Vector[S], builders, norms, validators, gonum bridges
//	matrix/ops/  — row operations, solvers, decompositions, eigen solver, Exp
//
// Quick example:
//
//	alg := scalar.NewFloat64()
//	a, _ := matrix.New(alg, [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
//	chol, ok := ops.Cholesky(a) // ok == true, chol.L is lower triangular
//
//	go get github.com/katalvlaran/linalg
package linalg
