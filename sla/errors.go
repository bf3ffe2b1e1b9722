// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sla implements the sparse linear algebra core used by the solid
// solver: a CRS-like builder, a symmetric skyline view, ILU(0) and the
// CG / PCG iterative drivers.
package sla

import "errors"

// sentinel errors. Callers match these with errors.Is; context is added
// with fmt.Errorf("%w: ...") at the call site, not by redefining the
// sentinel.
var (
	// ErrIndexOutOfRange means add/get was called with a row or column
	// outside [0, n). This is always a programmer error in assembly code.
	ErrIndexOutOfRange = errors.New("sla: index out of range")

	// ErrAsymmetricPattern means SkylineView construction found unequal
	// numbers of strict-lower and strict-upper stored entries.
	ErrAsymmetricPattern = errors.New("sla: nonzero pattern is not symmetric")

	// ErrZeroPivot means ILU(0) produced a diagonal pivot that rounds to
	// zero. (BoundaryEnforcer reports a zero diagonal with
	// femcore.ErrMissingDiagonal instead.)
	ErrZeroPivot = errors.New("sla: zero pivot")

	// ErrNotReordered means SkylineView was built from a SparseBuilder
	// whose rows were never passed through Reorder.
	ErrNotReordered = errors.New("sla: builder rows are not sorted")

	// ErrNonPositiveCurvature means the CG denominator (p, A*p) became
	// non-positive within tolerance; the iteration is aborted and the
	// current iterate returned rather than dividing by it.
	ErrNonPositiveCurvature = errors.New("sla: cg breakdown: non-positive curvature")
)

// DidNotConvergeError is returned by LinearSolver when the iteration cap
// is reached before the residual tolerance is met. It is not fatal: the
// caller receives the best available solution alongside it.
type DidNotConvergeError struct {
	Iterations int     // iterations actually performed
	Residual   float64 // final infinity-norm residual
}

func (e *DidNotConvergeError) Error() string {
	return "sla: did not converge within the iteration budget"
}
