// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"log"

	"github.com/zbw2577/solidfem/sla"
)

// elemGaussKey identifies one (element, gauss point) pair in the
// ShapeGradients cache AssemblyDriver builds for reuse by stress
// post-processing, per spec.md's Lifecycles paragraph.
type elemGaussKey struct {
	Elem, Gauss int
}

// AssemblyDriver scatters every element's local tangent into a
// SparseBuilder, in deterministic (ascending element index) order so
// repeated assemblies of the same mesh reproduce bit-identical sums
// (spec.md section 5, "Ordering").
type AssemblyDriver struct {
	Task   *Task
	Kernel *ElementKernel

	cache           map[elemGaussKey]ShapeGradients
	DegenerateCount int
}

// NewAssemblyDriver builds a driver for task using kernel as the
// per-element constitutive/geometric evaluator.
func NewAssemblyDriver(task *Task, kernel *ElementKernel) *AssemblyDriver {
	return &AssemblyDriver{Task: task, Kernel: kernel, cache: make(map[elemGaussKey]ShapeGradients)}
}

// elementCoords gathers the reference coordinates of element e's nodes
// in local order.
func (d *AssemblyDriver) elementCoords(e int) [10][3]float64 {
	var x [10][3]float64
	for a, nodeIdx := range d.Task.Mesh.Elements[e] {
		x[a] = d.Task.Mesh.Nodes[nodeIdx].Array()
	}
	return x
}

// Assemble builds the global tangent stiffness and a zero right-hand
// side vector of the right length; BoundaryEnforcer fills in the
// prescribed-displacement contributions to the RHS afterwards. It
// implements spec.md section 4.7: for every element, compute the local
// tangent at every Gauss point and scatter it, caching ShapeGradients
// along the way.
func (d *AssemblyDriver) Assemble() (*sla.SparseBuilder, []float64, error) {
	n := d.Task.Mesh.NDof()
	a := sla.NewSparseBuilder(n, n)
	f := make([]float64, n)

	for e := 0; e < d.Task.Mesh.NElements(); e++ {
		xref := d.elementCoords(e)
		stiff, cached, degenerate, err := d.Kernel.LocalTangent(xref)
		if err != nil {
			return nil, nil, err
		}
		if degenerate > 0 {
			log.Printf("femcore: element %d: %d degenerate Gauss point(s) skipped", e, degenerate)
		}
		d.DegenerateCount += degenerate
		for g, sg := range cached {
			d.cache[elemGaussKey{e, g}] = sg
		}

		nodes := d.Task.Mesh.Elements[e]
		for la := 0; la < 10; la++ {
			for lb := 0; lb < 10; lb++ {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						v := stiff[3*la+i][3*lb+j]
						if v == 0 {
							continue
						}
						gi := 3*nodes[la] + i
						gj := 3*nodes[lb] + j
						if err := a.Add(gi, gj, v); err != nil {
							return nil, nil, err
						}
					}
				}
			}
		}
	}
	a.Reorder()
	return a, f, nil
}

// ShapeGradientsAt returns the cached ShapeGradients for (element,
// gauss) computed during Assemble, for reuse by stress post-processing.
func (d *AssemblyDriver) ShapeGradientsAt(element, gauss int) (ShapeGradients, bool) {
	sg, ok := d.cache[elemGaussKey{element, gauss}]
	return sg, ok
}
