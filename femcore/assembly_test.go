// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"testing"

	"github.com/cpmech/gosl/utl"

	"github.com/zbw2577/solidfem/material"
)

func newPatchTask() *Task {
	mesh := &Mesh{
		Nodes:    referenceTet10(),
		Elements: [][10]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	return &Task{
		Mesh:        mesh,
		Material:    material.A5,
		Params:      material.Params{1000, 500},
		Solver:      SolverConfig{Type: CG, Tolerance: 1e-10, MaxIterations: 200},
		GaussPoints: 4,
	}
}

// scenario 6: assembling the same mesh twice yields byte-identical CRS
// storage.
func Test_femcore03_deterministic_assembly(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("femcore03: deterministic assembly")

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

	a1, _, err := NewAssemblyDriver(task, kernel).Assemble()
	if err != nil {
		tst.Fatalf("Assemble 1: %v", err)
	}
	a2, _, err := NewAssemblyDriver(task, kernel).Assemble()
	if err != nil {
		tst.Fatalf("Assemble 2: %v", err)
	}

	n := task.Mesh.NDof()
	if a1.Rows() != a2.Rows() || a1.Cols() != a2.Cols() {
		tst.Fatalf("dimension mismatch between two assemblies")
	}
	for i := 0; i < n; i++ {
		cols1, vals1 := a1.RowEntries(i)
		cols2, vals2 := a2.RowEntries(i)
		if len(cols1) != len(cols2) {
			tst.Fatalf("row %d: nnz mismatch %d vs %d", i, len(cols1), len(cols2))
		}
		for k := range cols1 {
			if cols1[k] != cols2[k] {
				tst.Fatalf("row %d slot %d: column mismatch %d vs %d", i, k, cols1[k], cols2[k])
			}
			if vals1[k] != vals2[k] {
				tst.Fatalf("row %d slot %d: value mismatch %v vs %v (not byte-identical)", i, k, vals1[k], vals2[k])
			}
		}
	}
}
