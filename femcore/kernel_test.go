// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"testing"

	"github.com/cpmech/gosl/utl"

	"github.com/zbw2577/solidfem/material"
)

// referenceTet10 returns the node coordinates of the unit reference
// tetrahedron in the local order shp's shape functions expect: corners
// (0,0,0),(1,0,0),(0,1,0),(0,0,1), then mid-edge nodes 01,12,20,03,13,23.
func referenceTet10() []Node {
	return []Node{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0.5, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: 0, Y: 0.5, Z: 0},
		{X: 0, Y: 0, Z: 0.5},
		{X: 0.5, Y: 0, Z: 0.5},
		{X: 0, Y: 0.5, Z: 0.5},
	}
}

// scenario 4: TET10 patch test.
func Test_femcore01_patch(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("femcore01: TET10 patch test under constant uniaxial strain")

	// eps is kept in the small-strain regime on purpose: the A5 model's
	// stress is the finite-strain sigma = (lambda*I1*I + 2*mu*C)/detF, not
	// its linearization lambda*eps + 2*mu*eps, so the Green-Lagrange
	// O(eps^2) term must stay below the check tolerance for the linear
	// expected values below to hold.
	const lambda, mu, eps = 1000.0, 500.0, 1e-6

	// every node of a single TET10 lies on its boundary, so the linear
	// field u = (eps*X, 0, 0) is prescribed at all ten nodes; with only
	// the corners fixed, the free mid-edge nodes would relax away from it.
	mesh := &Mesh{
		Nodes:    referenceTet10(),
		Elements: [][10]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	var bcs []PrescribedBC
	for n, node := range mesh.Nodes {
		bcs = append(bcs, PrescribedBC{Node: n, Values: [3]float64{eps * node.X, 0, 0}, Mask: 0b111})
	}
	task := &Task{
		Mesh:        mesh,
		Material:    material.A5,
		Params:      material.Params{lambda, mu},
		BCs:         bcs,
		Solver:      SolverConfig{Type: CG, Tolerance: 1e-12, MaxIterations: 500},
		GaussPoints: 4,
	}

	facade, err := NewSolverFacade(task)
	if err != nil {
		tst.Fatalf("NewSolverFacade: %v", err)
	}
	result, err := facade.Solve()
	if err != nil {
		tst.Fatalf("Solve: %v", err)
	}

	for n, node := range mesh.Nodes {
		wantUx := eps * node.X
		utl.CheckScalar(tst, "ux", 1e-8, result.Displacements[3*n+0], wantUx)
		utl.CheckScalar(tst, "uy", 1e-8, result.Displacements[3*n+1], 0)
		utl.CheckScalar(tst, "uz", 1e-8, result.Displacements[3*n+2], 0)
	}

	sigma := result.Stresses[0]
	utl.CheckScalar(tst, "sigma_xx", 1e-8, sigma[0][0], lambda*eps+2*mu*eps)
	utl.CheckScalar(tst, "sigma_yy", 1e-8, sigma[1][1], lambda*eps)
	utl.CheckScalar(tst, "sigma_zz", 1e-8, sigma[2][2], lambda*eps)
	utl.CheckScalar(tst, "sigma_xy", 1e-8, sigma[0][1], 0)
	utl.CheckScalar(tst, "sigma_xz", 1e-8, sigma[0][2], 0)
	utl.CheckScalar(tst, "sigma_yz", 1e-8, sigma[1][2], 0)
}

// ElementKernel's two deformation-gradient formulations must agree on an
// affine deformation, per spec.md section 4.6 step 4.
func Test_femcore02_formulations_agree(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("femcore02: reference and inverse F formulations agree")

	const eps = 2e-3
	nodes := referenceTet10()
	var xref, xcur [10][3]float64
	for i, nd := range nodes {
		xref[i] = nd.Array()
		xcur[i] = [3]float64{nd.X * (1 + eps), nd.Y, nd.Z}
	}

	elem, err := NewTet10(4)
	if err != nil {
		tst.Fatalf("NewTet10: %v", err)
	}
	model, err := material.New(material.A5, material.Params{1000, 500})
	if err != nil {
		tst.Fatalf("material.New: %v", err)
	}
	gp := elem.GaussRule()[0]

	kDirect := &ElementKernel{Elem: elem, Model: model, UseInverseF: false}
	kInverse := &ElementKernel{Elem: elem, Model: model, UseInverseF: true}

	sDirect, err := kDirect.Stress(xref, xcur, gp)
	if err != nil {
		tst.Fatalf("direct Stress: %v", err)
	}
	sInverse, err := kInverse.Stress(xref, xcur, gp)
	if err != nil {
		tst.Fatalf("inverse Stress: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			utl.CheckScalar(tst, "sigma", 1e-8, sDirect[i][j], sInverse[i][j])
		}
	}
}
