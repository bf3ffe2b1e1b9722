// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the JSON input loader: it reads a solver Task,
// mesh and prescribed boundary conditions from a single document and
// produces the femcore.Task the solver facade consumes. The document
// shape mirrors mallano-gofem/inp/msh.go's mesh JSON (Verts/Cells here
// become Nodes/Elements).
package inp

import (
	"encoding/json"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/zbw2577/solidfem/femcore"
	"github.com/zbw2577/solidfem/material"
)

// taskDoc is the "task" object of the input document.
type taskDoc struct {
	Dof         int    `json:"dof"`
	ElementType string `json:"element_type"`
	Material    struct {
		Tag    string    `json:"tag"`
		Params []float64 `json:"params"`
	} `json:"material"`
	Solver struct {
		Type          string  `json:"type"`
		Tolerance     float64 `json:"tolerance"`
		MaxIterations int     `json:"max_iterations"`
	} `json:"solver"`
}

// solutionParamsDoc is the "solution_params" object.
type solutionParamsDoc struct {
	NodesPerElement int `json:"nodes_per_element"`
	GaussNodesCount int `json:"gauss_nodes_count"`
}

// boundaryDoc is one entry of "prescribed_boundary".
type boundaryDoc struct {
	Node   int        `json:"node"`
	Values [3]float64 `json:"values"`
	Mask   uint8      `json:"mask"`
}

// Document is the top-level JSON document consumed by the loader.
type Document struct {
	Task               taskDoc           `json:"task"`
	SolutionParams     solutionParamsDoc `json:"solution_params"`
	Nodes              [][3]float64      `json:"nodes"`
	Elements           [][10]int         `json:"elements"`
	PrescribedBoundary []boundaryDoc     `json:"prescribed_boundary"`
}

// ReadDocument reads and unmarshals fn into a Document. Unlike the
// teacher's ReadMat/ReadMsh, which log and return nil on error, this
// loader returns the error: femcore's facade path wants a single error
// value to propagate, not a log side-effect and a nil pointer to guard.
func ReadDocument(fn string) (*Document, error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("inp: cannot open input file %s: %v", fn, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("inp: cannot unmarshal input file %s: %v", fn, err)
	}
	return &doc, nil
}

// materialTag maps the document's material.tag string onto material.Tag.
func materialTag(s string) (material.Tag, error) {
	switch s {
	case "A5":
		return material.A5, nil
	case "CompressibleNeoHookean":
		return material.CompressibleNeoHookean, nil
	default:
		return 0, chk.Err("inp: unknown material tag %q", s)
	}
}

// solverType maps the document's solver.type string onto femcore.SolverType.
func solverType(s string) (femcore.SolverType, error) {
	switch s {
	case "CG":
		return femcore.CG, nil
	case "PCG_ILU":
		return femcore.PCGILU, nil
	case "CHOLESKY":
		return femcore.Cholesky, nil
	default:
		return 0, chk.Err("inp: unknown solver type %q", s)
	}
}

// ToTask converts the loaded document into a femcore.Task, validating
// the invariants spec.md section 6 requires before assembly: dof must
// be 3, element_type must be "tet10", nodes_per_element must agree with
// the TET10 node count, and every named tag/type must be recognized. The
// first three checks fail with femcore.ErrUnsupportedConfiguration.
func (d *Document) ToTask() (*femcore.Task, error) {
	if d.Task.Dof != femcore.DofsPerNode {
		return nil, fmt.Errorf("%w: inp: dof = %d, only %d is supported", femcore.ErrUnsupportedConfiguration, d.Task.Dof, femcore.DofsPerNode)
	}
	if d.Task.ElementType != "tet10" {
		return nil, fmt.Errorf("%w: inp: element_type = %q, only %q is supported", femcore.ErrUnsupportedConfiguration, d.Task.ElementType, "tet10")
	}
	if d.SolutionParams.NodesPerElement != 10 {
		return nil, fmt.Errorf("%w: inp: nodes_per_element = %d, inconsistent with tet10", femcore.ErrUnsupportedConfiguration, d.SolutionParams.NodesPerElement)
	}

	matTag, err := materialTag(d.Task.Material.Tag)
	if err != nil {
		return nil, err
	}
	var params material.Params
	for i, v := range d.Task.Material.Params {
		if i >= material.MaxParams {
			break
		}
		params[i] = v
	}

	solvType, err := solverType(d.Task.Solver.Type)
	if err != nil {
		return nil, err
	}

	nodes := make([]femcore.Node, len(d.Nodes))
	for i, c := range d.Nodes {
		nodes[i] = femcore.Node{X: c[0], Y: c[1], Z: c[2]}
	}

	bcs := make([]femcore.PrescribedBC, len(d.PrescribedBoundary))
	for i, b := range d.PrescribedBoundary {
		bcs[i] = femcore.PrescribedBC{Node: b.Node, Values: b.Values, Mask: b.Mask}
	}

	return &femcore.Task{
		Mesh: &femcore.Mesh{
			Nodes:    nodes,
			Elements: d.Elements,
		},
		Material:    matTag,
		Params:      params,
		BCs:         bcs,
		GaussPoints: d.SolutionParams.GaussNodesCount,
		Solver: femcore.SolverConfig{
			Type:          solvType,
			Tolerance:     d.Task.Solver.Tolerance,
			MaxIterations: d.Task.Solver.MaxIterations,
		},
	}, nil
}
