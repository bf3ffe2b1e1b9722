// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sla

import "fmt"

// IluFactor is an ILU(0) factorization over a SkylineView's pattern: no
// fill-in is introduced, so the factor's nonzero pattern equals the
// parent's. L is stored with an implicit unit diagonal; U carries the
// pivots in diagU. The factorization follows the symmetric CSLR scheme
// described by Il'in / Balandin: each L_kq and U_kj is obtained from a
// dot product over the intersection of two rows' sparsity patterns, so
// no search beyond the stored pattern is ever needed.
type IluFactor struct {
	sky       *SkylineView
	diagU     []float64
	lOffdiag  []float64
	uOffdiag  []float64
	colToRows map[int][]int // column c -> slot indices s with sky.Col(s)==c
}

// Skyline returns the parent pattern. The IluFactor owns it: releasing
// the IluFactor releases both.
func (f *IluFactor) Skyline() *SkylineView { return f.sky }

// matchDot returns Σ a[s]*b[t] over slots s in [aStart,aEnd) and t in
// [bStart,bEnd) whose sky.Col match, exploiting that both ranges are
// sorted ascending by column (the invariant Reorder/SkylineView give us).
func matchDot(sky *SkylineView, aStart, aEnd int, a []float64, bStart, bEnd int, b []float64) float64 {
	var sum float64
	i, j := aStart, bStart
	for i < aEnd && j < bEnd {
		ci, cj := sky.Col(i), sky.Col(j)
		switch {
		case ci == cj:
			sum += a[i] * b[j]
			i++
			j++
		case ci < cj:
			i++
		default:
			j++
		}
	}
	return sum
}

// NewIluFactor computes the ILU(0) factorization of sky. It fails with
// ErrZeroPivot if any pivot rounds to zero.
func NewIluFactor(sky *SkylineView) (*IluFactor, error) {
	n := sky.N()
	f := &IluFactor{
		sky:      sky,
		diagU:    make([]float64, n),
		lOffdiag: make([]float64, sky.NNZTri()),
		uOffdiag: make([]float64, sky.NNZTri()),
	}

	// column -> rows containing it in their strict-lower pattern, built
	// once so step 3 (U_kj for j>k) does not rescan every row.
	f.colToRows = make(map[int][]int, n)
	for slot := 0; slot < sky.NNZTri(); slot++ {
		c := sky.Col(slot)
		f.colToRows[c] = append(f.colToRows[c], slot)
	}

	for k := 0; k < n; k++ {
		kStart, kEnd := sky.RowRange(k)

		// step 1: L_kq for each q in row k's pattern
		for slot := kStart; slot < kEnd; slot++ {
			q := sky.Col(slot)
			qStart, qEnd := sky.RowRange(q)
			sum := matchDot(sky, kStart, kEnd, f.lOffdiag, qStart, qEnd, f.uOffdiag)
			f.lOffdiag[slot] = (sky.L(slot) - sum) / f.diagU[q]
		}

		// step 2: diagonal pivot U_kk
		var diagSum float64
		for slot := kStart; slot < kEnd; slot++ {
			diagSum += f.lOffdiag[slot] * f.uOffdiag[slot]
		}
		f.diagU[k] = sky.Diag(k) - diagSum
		if isZero(f.diagU[k]) {
			return nil, fmt.Errorf("%w: U[%d][%d] rounds to zero", ErrZeroPivot, k, k)
		}

		// step 3: U_kj for every row j>k whose pattern contains k
		for _, slot := range f.colToRows[k] {
			j := sky.RowOf(slot)
			jStart, jEnd := sky.RowRange(j)
			sum := matchDot(sky, kStart, kEnd, f.lOffdiag, jStart, jEnd, f.uOffdiag)
			f.uOffdiag[slot] = sky.U(slot) - sum
		}
	}
	return f, nil
}

// isZero reports whether v is indistinguishable from zero at double
// precision; spec.md calls for a min-positive-threshold comparison.
func isZero(v float64) bool {
	const dblMin = 2.2250738585072014e-308
	if v < 0 {
		v = -v
	}
	return v < dblMin
}

// LowerMV computes y = L*x where L = I + strict-lower(L). O(nnz).
func (f *IluFactor) LowerMV(x, y []float64) {
	n := f.sky.N()
	for i := 0; i < n; i++ {
		start, end := f.sky.RowRange(i)
		sum := x[i]
		for slot := start; slot < end; slot++ {
			sum += f.lOffdiag[slot] * x[f.sky.Col(slot)]
		}
		y[i] = sum
	}
}

// UpperMV computes y = U*x where U carries diagU on the diagonal and the
// strict-upper triangle off it. O(nnz).
func (f *IluFactor) UpperMV(x, y []float64) {
	n := f.sky.N()
	for i := 0; i < n; i++ {
		y[i] = f.diagU[i] * x[i]
	}
	for i := 0; i < n; i++ {
		start, end := f.sky.RowRange(i)
		for slot := start; slot < end; slot++ {
			col := f.sky.Col(slot)
			y[col] += f.uOffdiag[slot] * x[i]
		}
	}
}

// LowerSolve solves L*x = b by forward substitution (unit diagonal, no
// division). b is only read, never written, unlike UpperSolve. x and b
// may alias the same slice.
func (f *IluFactor) LowerSolve(b, x []float64) {
	n := f.sky.N()
	x[0] = b[0]
	for i := 1; i < n; i++ {
		start, end := f.sky.RowRange(i)
		sum := b[i]
		for slot := start; slot < end; slot++ {
			sum -= f.lOffdiag[slot] * x[f.sky.Col(slot)]
		}
		x[i] = sum
	}
}

// UpperSolve solves U*x = b by back substitution. b is mutated in place
// as entries are eliminated; callers must pass a throwaway copy. x and b
// may alias the same slice.
func (f *IluFactor) UpperSolve(b, x []float64) {
	n := f.sky.N()
	for i := n - 1; i >= 0; i-- {
		xi := b[i] / f.diagU[i]
		x[i] = xi
		start, end := f.sky.RowRange(i)
		for slot := start; slot < end; slot++ {
			col := f.sky.Col(slot)
			b[col] -= xi * f.uOffdiag[slot]
		}
	}
}
