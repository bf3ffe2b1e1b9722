// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"fmt"

	"github.com/zbw2577/solidfem/shp"
)

// Element is the capability a solid element variant must provide: its
// shape functions, their local-coordinate gradients, its Gauss rule and
// its VTK cell-type tag. This replaces the historical function-pointer
// table keyed by element type with a value satisfying an interface;
// TET10 is the only variant today but the seam is open for more.
type Element interface {
	// Shape evaluates the element's shape functions at parent
	// coordinate (r,s,t); reserved for interpolating a field (e.g.
	// displacement) at an arbitrary point inside the element rather
	// than at a node or Gauss point. No current operation needs an
	// off-node interpolation, so this has no call site yet.
	Shape(r, s, t float64) [shp.NodesPerElement]float64
	LocalGrad(r, s, t float64) [shp.NodesPerElement][3]float64
	GaussRule() []shp.GaussPoint
	// Export returns the VTK cell-type code the out package writes
	// into a CELLS record for this element variant.
	Export() int
}

// tet10 is the Element implementation backed by shp's TET10 closed-form
// shape functions.
type tet10 struct {
	rule []shp.GaussPoint
}

func (e *tet10) Shape(r, s, t float64) [shp.NodesPerElement]float64 {
	return shp.Tet10Values(r, s, t)
}

func (e *tet10) LocalGrad(r, s, t float64) [shp.NodesPerElement][3]float64 {
	return shp.Tet10LocalGrad(r, s, t)
}

func (e *tet10) GaussRule() []shp.GaussPoint { return e.rule }

func (e *tet10) Export() int { return shp.VtkQuadraticTetra }

// NewTet10 returns a TET10 Element configured with the given Gauss rule
// (4 or 5 points). It fails with ErrUnsupportedConfiguration for any
// other point count, which NewSolverFacade surfaces at construction
// rather than at first assembly.
func NewTet10(gaussPoints int) (Element, error) {
	if gaussPoints != 4 && gaussPoints != 5 {
		return nil, fmt.Errorf("%w: unsupported gauss point count %d", ErrUnsupportedConfiguration, gaussPoints)
	}
	return &tet10{rule: shp.GaussRule(gaussPoints)}, nil
}
