// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"fmt"

	"github.com/zbw2577/solidfem/material"
	"github.com/zbw2577/solidfem/shp"
)

// DofsPerNode is fixed at 3 (x,y,z displacement); spec.md's Task entity
// names it as a field but the only value this solver ever accepts is 3.
const DofsPerNode = 3

// Node is a mesh vertex: an ordered triple of coordinates.
type Node struct {
	X, Y, Z float64
}

// Array returns the node's coordinates as a [3]float64.
func (n Node) Array() [3]float64 { return [3]float64{n.X, n.Y, n.Z} }

// Mesh owns the node and element arrays. Element node indices are
// 0-based and index into Nodes; node ordering within an element follows
// shp's fixed local convention (corners 0-3, mid-edges 4-9).
type Mesh struct {
	Nodes    []Node
	Elements [][shp.NodesPerElement]int
}

// NNodes returns the number of nodes, NElements the number of elements.
func (m *Mesh) NNodes() int    { return len(m.Nodes) }
func (m *Mesh) NElements() int { return len(m.Elements) }

// NDof returns the total displacement-dof count, 3 per node.
func (m *Mesh) NDof() int { return DofsPerNode * len(m.Nodes) }

// SolverType selects the linear solve strategy for a Task.
type SolverType int

const (
	CG SolverType = iota
	PCGILU
	Cholesky
)

func (t SolverType) String() string {
	switch t {
	case CG:
		return "CG"
	case PCGILU:
		return "PCG_ILU"
	case Cholesky:
		return "CHOLESKY"
	default:
		return fmt.Sprintf("SolverType(%d)", int(t))
	}
}

// SolverConfig holds the linear-solver knobs recognized by the facade.
type SolverConfig struct {
	Type          SolverType
	Tolerance     float64
	MaxIterations int
}

// PrescribedBC is a single-node essential boundary condition: up to
// three constrained axes selected by Mask (bit 0 = x, bit 1 = y, bit 2 =
// z); Values holds the prescribed displacement for each constrained
// axis, unconstrained axes are ignored.
type PrescribedBC struct {
	Node   int
	Values [3]float64
	Mask   uint8
}

// Has reports whether axis (0=x,1=y,2=z) is constrained by this BC.
func (bc PrescribedBC) Has(axis int) bool { return bc.Mask&(1<<uint(axis)) != 0 }

// Task bundles everything one solve needs: mesh, material, boundary
// conditions and solver settings. GaussPoints selects the TET10
// quadrature rule point count (4 or 5; NewSolverFacade treats 0 as 4).
type Task struct {
	Mesh        *Mesh
	Material    material.Tag
	Params      material.Params
	BCs         []PrescribedBC
	Solver      SolverConfig
	GaussPoints int
	// UseInverseF selects the cross-check deformation-gradient
	// formulation (F^-1 computed against reference coordinates, then
	// inverted) in place of the canonical direct formulation.
	UseInverseF bool
}
