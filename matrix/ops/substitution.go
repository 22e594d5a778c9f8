// SPDX-License-Identifier: MIT
// Package ops — linear systems: backward substitution over augmented
// row-echelon forms and the Gaussian-elimination solver built on it.

package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// SolutionKind tags the outcome of solving A·x = b.
type SolutionKind int

const (
	// UniqueSolution means exactly one x satisfies the system.
	UniqueSolution SolutionKind = iota
	// UnderdeterminedSolution means the solutions form a family parametrised
	// by the free variables.
	UnderdeterminedSolution
	// NoSolution means the system is inconsistent.
	NoSolution
)

// String implements fmt.Stringer.
func (k SolutionKind) String() string {
	switch k {
	case UniqueSolution:
		return "unique"
	case UnderdeterminedSolution:
		return "underdetermined"
	case NoSolution:
		return "none"
	default:
		return fmt.Sprintf("SolutionKind(%d)", int(k))
	}
}

// LinearSolution is the tagged result of a linear solve.
//
// For UniqueSolution, Solution is the answer. For UnderdeterminedSolution,
// Solution is the particular solution with every free variable set to zero
// and FreeVariables lists their indices in ascending order. For NoSolution
// both are empty.
type LinearSolution[S any] struct {
	Kind          SolutionKind
	Solution      matrix.Vector[S]
	FreeVariables []int
}

// echelon describes the pivot structure of an augmented echelon form with
// n unknowns (the last column is the right-hand side).
type echelon struct {
	n            int
	pivotCols    []int // per row; -1 when the coefficient part is zero
	free         []int
	inconsistent bool
}

func analyseEchelon[S any](alg scalar.Algebra[S], g [][]S, n int) echelon {
	e := echelon{n: n, pivotCols: make([]int, len(g))}
	isPivot := make([]bool, n)
	for r, row := range g {
		p := firstNonZeroFrom(alg, row[:n], 0)
		e.pivotCols[r] = p
		switch {
		case p >= 0:
			isPivot[p] = true
		case !scalar.IsZero(alg, row[n]):
			e.inconsistent = true
		}
	}
	for j, ok := range isPivot {
		if !ok {
			e.free = append(e.free, j)
		}
	}

	return e
}

// substitute solves the echelon system bottom-up. x holds the preset values
// of the free variables and receives the pivot variables.
func substitute[S any](alg scalar.Algebra[S], g [][]S, e echelon, x []S) error {
	var r, j int
	for r = len(g) - 1; r >= 0; r-- {
		p := e.pivotCols[r]
		if p < 0 {
			continue
		}
		acc := g[r][e.n]
		for j = p + 1; j < e.n; j++ {
			acc = scalar.Subtract(alg, acc, alg.Multiply(g[r][j], x[j]))
		}
		v, ok := scalar.Divide(alg, acc, g[r][p])
		if !ok {
			return fmt.Errorf("pivot (%d,%d): %w", r, p, matrix.ErrDivisionByZero)
		}
		x[p] = v
	}

	return nil
}

// BackwardSubstitute solves the system whose augmented row-echelon form is
// ref: the last column is the right-hand side, the others the coefficients.
// ref must have at least one column.
func BackwardSubstitute[S any](ref matrix.Matrix[S]) (LinearSolution[S], error) {
	alg := ref.Algebra()
	if ref.Cols() == 0 {
		return LinearSolution[S]{Kind: UniqueSolution, Solution: matrix.NewVector(alg)}, nil
	}
	g := ref.Data()
	e := analyseEchelon(alg, g, ref.Cols()-1)
	if e.inconsistent {
		return LinearSolution[S]{Kind: NoSolution}, nil
	}

	x := make([]S, e.n)
	for j := range x {
		x[j] = alg.Zero()
	}
	if err := substitute(alg, g, e, x); err != nil {
		return LinearSolution[S]{}, opsErrorf(opBackward, err)
	}

	sol := LinearSolution[S]{Kind: UniqueSolution, Solution: matrix.NewVector(alg, x...)}
	if len(e.free) > 0 {
		sol.Kind = UnderdeterminedSolution
		sol.FreeVariables = e.free
	}

	return sol, nil
}

// SolveByGaussianElimination solves A·x = b by reducing [A | b] to
// row-echelon form and substituting backwards. b must have A.Rows() entries.
func SolveByGaussianElimination[S any](a matrix.Matrix[S], b matrix.Vector[S]) (LinearSolution[S], error) {
	if err := matrix.ValidateVectorLen(b, a.Rows()); err != nil {
		return LinearSolution[S]{}, opsErrorf(opSolve, err)
	}
	alg := a.Algebra()
	rhs, err := matrix.FromColumnVectors(alg, []matrix.Vector[S]{b})
	if err != nil {
		return LinearSolution[S]{}, opsErrorf(opSolve, err)
	}
	aug, err := matrix.Augment(a, rhs)
	if err != nil {
		return LinearSolution[S]{}, opsErrorf(opSolve, err)
	}
	ref, err := RowEchelonForm(aug)
	if err != nil {
		return LinearSolution[S]{}, opsErrorf(opSolve, err)
	}
	sol, err := BackwardSubstitute(ref)
	if err != nil {
		return LinearSolution[S]{}, opsErrorf(opSolve, err)
	}

	return sol, nil
}
