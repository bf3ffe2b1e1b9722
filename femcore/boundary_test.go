// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"testing"

	"github.com/cpmech/gosl/utl"

	"github.com/zbw2577/solidfem/material"
)

// scenario 5: symmetric BC preservation on a 30x30 tangent.
func Test_femcore04_symmetric_bc(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("femcore04: BoundaryEnforcer preserves symmetry")

	task := newPatchTask()
	elem, err := NewTet10(task.GaussPoints)
	if err != nil {
		tst.Fatalf("NewTet10: %v", err)
	}
	model, err := material.New(task.Material, task.Params)
	if err != nil {
		tst.Fatalf("material.New: %v", err)
	}
	kernel := &ElementKernel{Elem: elem, Model: model}

	a, f, err := NewAssemblyDriver(task, kernel).Assemble()
	if err != nil {
		tst.Fatalf("Assemble: %v", err)
	}

	n := task.Mesh.NDof() // 30
	preDiag := make([]float64, n)
	for i := 0; i < n; i++ {
		preDiag[i], _ = a.Get(i, i)
	}

	bcs := []PrescribedBC{
		{Node: 0, Values: [3]float64{0, 0, 0}, Mask: 0b001}, // dof 0
		{Node: 1, Values: [3]float64{1e-3, 0, 0}, Mask: 0b001}, // dof 3
	}
	if err := ApplyPrescribed(a, f, bcs); err != nil {
		tst.Fatalf("ApplyPrescribed: %v", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vij, _ := a.Get(i, j)
			vji, _ := a.Get(j, i)
			if diff := vij - vji; diff > 1e-14 || diff < -1e-14 {
				tst.Fatalf("A[%d][%d]=%v != A[%d][%d]=%v after BC application", i, j, vij, j, i, vji)
			}
		}
	}

	for _, dof := range []int{0, 3} {
		postDiag, err := a.Get(dof, dof)
		if err != nil {
			tst.Fatalf("Get(%d,%d): %v", dof, dof, err)
		}
		utl.CheckScalar(tst, "diag preserved", 1e-14, preDiag[dof], postDiag)
	}
}
