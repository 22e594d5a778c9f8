// SPDX-License-Identifier: MIT

// Package scalar defines the field-like operation set every algorithm in
// linalg is generic over.
//
// An Algebra[S] is a value-level descriptor for a scalar type S: it supplies
// the additive and multiplicative identities, the two inverses, tolerance
// based equality, conjugation and conversion from plain float64 values.
// Matrices and vectors carry their Algebra with them, so kernels never need
// to know whether they operate on real or complex numbers.
//
// Two domains ship with the package:
//
//   - Float64     — real numbers; Conjugate is the identity, Sqrt fails on
//     negative radicands.
//   - Complex128  — complex numbers; Conjugate flips the imaginary part,
//     Sqrt is always defined.
//
// The multiplicative inverse is partial: it reports ok=false for the
// additive identity instead of producing ±Inf or NaN. Callers must branch
// on that flag.
package scalar
