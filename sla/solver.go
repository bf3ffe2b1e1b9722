// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sla

import "math"

// Operator is the opaque linear operator CG/PCG act on; *SparseBuilder
// satisfies it directly.
type Operator interface {
	MV(x, y []float64) error
}

// Preconditioner applies z = M^-1 * r for PCG.
type Preconditioner interface {
	Apply(r, z []float64) error
}

// IluPreconditioner is the M = L*U preconditioner built from an
// IluFactor. Its scratch vectors are allocated once, at construction,
// and reused for every Apply call of a solve.
type IluPreconditioner struct {
	factor *IluFactor
	bufL   []float64
	bufU   []float64
}

// NewIluPreconditioner wraps factor for use as a PCG preconditioner.
func NewIluPreconditioner(factor *IluFactor) *IluPreconditioner {
	n := factor.Skyline().N()
	return &IluPreconditioner{factor: factor, bufL: make([]float64, n), bufU: make([]float64, n)}
}

// Apply computes z = U^-1 (L^-1 r) via the factor's forward/back solves.
func (p *IluPreconditioner) Apply(r, z []float64) error {
	copy(p.bufL, r)
	p.factor.LowerSolve(p.bufL, p.bufU)
	copy(p.bufL, p.bufU)
	p.factor.UpperSolve(p.bufL, z)
	return nil
}

// IterativeResult reports how a CG/PCG run concluded.
type IterativeResult struct {
	Iterations int     // iterations actually performed
	Residual   float64 // final ||b - A*x||_inf
}

func infNorm(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func axpy(alpha float64, x []float64, y []float64) { // y += alpha*x
	for i := range y {
		y[i] += alpha * x[i]
	}
}

// CG solves A*x = b for a symmetric positive-definite A via the
// unpreconditioned Conjugate Gradient method (Saad, "Iterative Methods
// for Sparse Linear Systems"). x0 is the initial guess; maxIter and tol
// bound the iteration and set the residual infinity-norm stopping
// threshold.
//
// If the loop exits on the iteration cap, CG returns the best available
// x together with a *DidNotConvergeError; it never fails outright except
// on CG breakdown (ErrNonPositiveCurvature), in which case the current
// iterate is likewise returned.
func CG(a Operator, b, x0 []float64, maxIter int, tol float64) ([]float64, IterativeResult, error) {
	n := len(b)
	x := append([]float64(nil), x0...)
	r := make([]float64, n)
	if err := a.MV(x, r); err != nil {
		return x, IterativeResult{}, err
	}
	for i := range r {
		r[i] = b[i] - r[i]
	}
	p := append([]float64(nil), r...)
	t := make([]float64, n)

	rr := dot(r, r)
	res := infNorm(r)
	if res < tol {
		return x, IterativeResult{Iterations: 0, Residual: res}, nil
	}

	for iter := 1; iter <= maxIter; iter++ {
		if err := a.MV(p, t); err != nil {
			return x, IterativeResult{Iterations: iter - 1, Residual: res}, err
		}
		pt := dot(p, t)
		if pt < 0 || isZero(pt) {
			return x, IterativeResult{Iterations: iter - 1, Residual: res}, ErrNonPositiveCurvature
		}
		alpha := rr / pt
		axpy(alpha, p, x)
		axpy(-alpha, t, r)
		res = infNorm(r)
		if res < tol {
			return x, IterativeResult{Iterations: iter, Residual: res}, nil
		}
		rrNew := dot(r, r)
		beta := rrNew / rr
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rr = rrNew
	}
	return x, IterativeResult{Iterations: maxIter, Residual: res}, &DidNotConvergeError{Iterations: maxIter, Residual: res}
}

// PCG solves A*x = b via ILU(0)-preconditioned Conjugate Gradient.
// Termination is on the residual infinity norm (not the preconditioned
// residual), per spec. Note: per the design notes in SPEC_FULL.md, the caller is
// expected to seed x0 with b itself, as the original implementation
// does; PCG does not second-guess the caller's initial guess.
func PCG(a Operator, m Preconditioner, b, x0 []float64, maxIter int, tol float64) ([]float64, IterativeResult, error) {
	n := len(b)
	x := append([]float64(nil), x0...)
	r := make([]float64, n)
	if err := a.MV(x, r); err != nil {
		return x, IterativeResult{}, err
	}
	for i := range r {
		r[i] = b[i] - r[i]
	}
	z := make([]float64, n)
	if err := m.Apply(r, z); err != nil {
		return x, IterativeResult{}, err
	}
	p := append([]float64(nil), z...)
	t := make([]float64, n)

	rz := dot(r, z)
	res := infNorm(r)
	if res < tol {
		return x, IterativeResult{Iterations: 0, Residual: res}, nil
	}

	for iter := 1; iter <= maxIter; iter++ {
		if err := a.MV(p, t); err != nil {
			return x, IterativeResult{Iterations: iter - 1, Residual: res}, err
		}
		pt := dot(p, t)
		if pt < 0 || isZero(pt) {
			return x, IterativeResult{Iterations: iter - 1, Residual: res}, ErrNonPositiveCurvature
		}
		alpha := rz / pt
		axpy(alpha, p, x)
		axpy(-alpha, t, r)
		res = infNorm(r)
		if res < tol {
			return x, IterativeResult{Iterations: iter, Residual: res}, nil
		}
		if err := m.Apply(r, z); err != nil {
			return x, IterativeResult{Iterations: iter, Residual: res}, err
		}
		rzNew := dot(r, z)
		beta := rzNew / rz
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rz = rzNew
	}
	return x, IterativeResult{Iterations: maxIter, Residual: res}, &DidNotConvergeError{Iterations: maxIter, Residual: res}
}
