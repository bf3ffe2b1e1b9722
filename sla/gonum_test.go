// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sla

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// Test_sla08 cross-checks MV and CG against a dense gonum reference
// solve on a small SPD system, independent of the skyline/ILU path
// the other tests exercise.
func Test_sla08_gonum_crosscheck(tst *testing.T) {
	dense := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	b := NewSparseBuilder(3, 3)
	for i := range dense {
		for j := range dense[i] {
			if dense[i][j] != 0 {
				if err := b.Add(i, j, dense[i][j]); err != nil {
					tst.Fatalf("Add(%d,%d): %v", i, j, err)
				}
			}
		}
	}
	b.Reorder()

	rhs := []float64{1, 2, 3}

	y := make([]float64, 3)
	if err := b.MV(rhs, y); err != nil {
		tst.Fatalf("MV: %v", err)
	}

	flat := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			flat[3*i+j] = dense[i][j]
		}
	}
	A := mat.NewDense(3, 3, flat)
	x := mat.NewVecDense(3, rhs)
	var want mat.VecDense
	want.MulVec(A, x)
	for i := 0; i < 3; i++ {
		if diff := y[i] - want.AtVec(i); math.Abs(diff) > 1e-12 {
			tst.Fatalf("MV[%d] = %v, gonum wants %v", i, y[i], want.AtVec(i))
		}
	}

	var lu mat.LU
	lu.Factorize(A)
	var gonumX mat.VecDense
	rhsVec := mat.NewVecDense(3, rhs)
	if err := lu.SolveVecTo(&gonumX, false, rhsVec); err != nil {
		tst.Fatalf("gonum LU solve: %v", err)
	}

	x0 := append([]float64(nil), rhs...)
	cgX, _, err := CG(b, rhs, x0, 100, 1e-12)
	if err != nil {
		tst.Fatalf("CG: %v", err)
	}
	for i := 0; i < 3; i++ {
		if diff := cgX[i] - gonumX.AtVec(i); math.Abs(diff) > 1e-8 {
			tst.Fatalf("CG[%d] = %v, gonum LU wants %v", i, cgX[i], gonumX.AtVec(i))
		}
	}
}
