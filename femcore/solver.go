// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"fmt"

	"github.com/zbw2577/solidfem/material"
	"github.com/zbw2577/solidfem/shp"
	"github.com/zbw2577/solidfem/sla"
)

// SolveResult is what SolverFacade.Solve hands back to the exporter
// collaborator: the displacement vector (node-major, x then y then z per
// node) and, per element, the Cauchy stress at its first Gauss point.
type SolveResult struct {
	Displacements   []float64
	Stresses        [][3][3]float64
	Iterations      int
	Residual        float64
	DegenerateCount int
}

// SolverFacade owns every resource a solve needs for its duration and
// releases them on every exit path, replacing the source's process-wide
// "active solver" pointer used for crash-path cleanup (spec.md section
// 9). cleanup is a stack of release functions run in LIFO order by
// release, called via defer from Solve so it fires on panics too.
type SolverFacade struct {
	task    *Task
	kernel  *ElementKernel
	cleanup []func()
}

// NewSolverFacade validates task and builds the facade. Validation
// failures (empty mesh, unsupported Gauss point count, rejected material
// parameters) are reported as ErrUnsupportedConfiguration before any
// allocation happens, per spec.md section 6; element type and dof count
// are not fields of Task and are checked by the inp loader instead.
func NewSolverFacade(task *Task) (*SolverFacade, error) {
	if task.Mesh == nil || task.Mesh.NElements() == 0 {
		return nil, fmt.Errorf("%w: empty mesh", ErrUnsupportedConfiguration)
	}
	gp := task.GaussPoints
	if gp == 0 {
		gp = 4
	}
	elem, err := NewTet10(gp)
	if err != nil {
		return nil, err
	}
	model, err := material.New(task.Material, task.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedConfiguration, err)
	}
	kernel := &ElementKernel{Elem: elem, Model: model, UseInverseF: task.UseInverseF}
	return &SolverFacade{task: task, kernel: kernel}, nil
}

// Elem returns the Element variant this facade was built for, so a
// caller assembling an export record can ask it for its VTK cell tag
// instead of hard-coding one.
func (s *SolverFacade) Elem() Element { return s.kernel.Elem }

// release runs every registered cleanup in LIFO order. Safe to call
// more than once; cleanup is cleared after running.
func (s *SolverFacade) release() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
	s.cleanup = nil
}

// Solve runs the full pipeline: assemble, apply boundary conditions,
// solve the linear system (CG or ILU-preconditioned CG), then recover
// the Cauchy stress of every element at its first Gauss point. All
// intermediate allocations are released via the cleanup stack before
// returning, on every exit path including panics.
func (s *SolverFacade) Solve() (result *SolveResult, err error) {
	defer s.release()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("femcore: panic during solve: %v", r)
		}
	}()

	driver := NewAssemblyDriver(s.task, s.kernel)
	a, f, err := driver.Assemble()
	if err != nil {
		return nil, err
	}
	s.cleanup = append(s.cleanup, func() { a = nil })

	if err := ApplyPrescribed(a, f, s.task.BCs); err != nil {
		return nil, err
	}

	n := a.Rows()
	x0 := append([]float64(nil), f...)

	var x []float64
	var iterResult sla.IterativeResult
	var convErr error // *sla.DidNotConvergeError, carried as a non-fatal status
	switch s.task.Solver.Type {
	case PCGILU:
		sky, skyErr := sla.NewSkylineView(a)
		if skyErr != nil {
			return nil, skyErr
		}
		factor, iluErr := sla.NewIluFactor(sky)
		if iluErr != nil {
			return nil, iluErr
		}
		precond := sla.NewIluPreconditioner(factor)
		var solveErr error
		x, iterResult, solveErr = sla.PCG(a, precond, f, x0, s.task.Solver.MaxIterations, s.task.Solver.Tolerance)
		if solveErr != nil {
			if _, ok := solveErr.(*sla.DidNotConvergeError); !ok {
				return nil, solveErr
			}
			convErr = solveErr
		}
	case CG, Cholesky:
		// CHOLESKY is reserved per spec.md section 6; fall back to CG
		// until a direct skyline factorization is specified.
		var solveErr error
		x, iterResult, solveErr = sla.CG(a, f, x0, s.task.Solver.MaxIterations, s.task.Solver.Tolerance)
		if solveErr != nil {
			if _, ok := solveErr.(*sla.DidNotConvergeError); !ok {
				return nil, solveErr
			}
			convErr = solveErr
		}
	default:
		return nil, fmt.Errorf("%w: solver type %v", ErrUnsupportedConfiguration, s.task.Solver.Type)
	}
	if len(x) != n {
		return nil, fmt.Errorf("femcore: solution length mismatch")
	}

	stresses := make([][3][3]float64, s.task.Mesh.NElements())
	rule := s.kernel.Elem.GaussRule()
	for e := 0; e < s.task.Mesh.NElements(); e++ {
		xref := driver.elementCoords(e)
		var xcur [shp.NodesPerElement][3]float64
		for a2, nodeIdx := range s.task.Mesh.Elements[e] {
			xcur[a2] = [3]float64{
				xref[a2][0] + x[3*nodeIdx+0],
				xref[a2][1] + x[3*nodeIdx+1],
				xref[a2][2] + x[3*nodeIdx+2],
			}
		}
		sigma, err := s.kernel.Stress(xref, xcur, rule[0])
		if err != nil {
			continue
		}
		stresses[e] = sigma
	}

	return &SolveResult{
		Displacements:   x,
		Stresses:        stresses,
		Iterations:      iterResult.Iterations,
		Residual:        iterResult.Residual,
		DegenerateCount: driver.DegenerateCount,
	}, convErr
}
