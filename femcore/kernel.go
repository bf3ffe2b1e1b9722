// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"fmt"
	"math"

	"github.com/zbw2577/solidfem/material"
	"github.com/zbw2577/solidfem/shp"
)

// ShapeGradients is the per (element, Gauss point) quantity spec.md asks
// the AssemblyDriver to cache: the global-coordinate shape gradients and
// the Jacobian determinant at that point, grounded on
// mallano-gofem/shp's Ipoint caching idiom.
type ShapeGradients struct {
	G    [shp.NodesPerElement][3]float64 // G[a][i] = dN_a/dX_i
	DetJ float64
}

// jacobian3 and its small helpers are local to this file: femcore has no
// need of a general dense-matrix type, only fixed 3x3 operations.
type jacobian3 = [3][3]float64

func invert3(j jacobian3) (inv jacobian3, det float64, ok bool) {
	det = j[0][0]*(j[1][1]*j[2][2]-j[1][2]*j[2][1]) -
		j[0][1]*(j[1][0]*j[2][2]-j[1][2]*j[2][0]) +
		j[0][2]*(j[1][0]*j[2][1]-j[1][1]*j[2][0])
	if math.Abs(det) < 1e-300 {
		return inv, det, false
	}
	invDet := 1.0 / det
	inv[0][0] = (j[1][1]*j[2][2] - j[1][2]*j[2][1]) * invDet
	inv[0][1] = (j[0][2]*j[2][1] - j[0][1]*j[2][2]) * invDet
	inv[0][2] = (j[0][1]*j[1][2] - j[0][2]*j[1][1]) * invDet
	inv[1][0] = (j[1][2]*j[2][0] - j[1][0]*j[2][2]) * invDet
	inv[1][1] = (j[0][0]*j[2][2] - j[0][2]*j[2][0]) * invDet
	inv[1][2] = (j[0][2]*j[1][0] - j[0][0]*j[1][2]) * invDet
	inv[2][0] = (j[1][0]*j[2][1] - j[1][1]*j[2][0]) * invDet
	inv[2][1] = (j[0][1]*j[2][0] - j[0][0]*j[2][1]) * invDet
	inv[2][2] = (j[0][0]*j[1][1] - j[0][1]*j[1][0]) * invDet
	return inv, det, true
}

// computeShapeGradients implements spec.md section 4.6 steps 1-3: the
// Jacobian of the coordinate map X at Gauss point gp, its inverse and
// determinant, and the global-coordinate shape gradients. A near-zero
// determinant is reported as ErrDegenerateElement rather than silently
// producing Inf/NaN gradients.
func computeShapeGradients(elem Element, x [shp.NodesPerElement][3]float64, gp shp.GaussPoint) (ShapeGradients, error) {
	dN := elem.LocalGrad(gp.R, gp.S, gp.T)

	var j jacobian3
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			var sum float64
			for a := 0; a < shp.NodesPerElement; a++ {
				sum += dN[a][i] * x[a][k]
			}
			j[i][k] = sum
		}
	}

	jinv, det, ok := invert3(j)
	if !ok || math.Abs(det) < 1e-12 {
		return ShapeGradients{}, fmt.Errorf("%w: det J = %v", ErrDegenerateElement, det)
	}

	var sg ShapeGradients
	sg.DetJ = det
	for a := 0; a < shp.NodesPerElement; a++ {
		for i := 0; i < 3; i++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += jinv[i][k] * dN[a][k]
			}
			sg.G[a][i] = sum
		}
	}
	return sg, nil
}

// ElementKernel evaluates, for one element, the constant local tangent
// stiffness (section 4.6 steps 1-3 and 7-8, over reference-configuration
// shape gradients - the material tensor is uniform so the tangent is
// geometrically linear) and, separately, the Cauchy stress at a chosen
// Gauss point from the solved displacement field (steps 4-6).
//
// Disambiguation of the "reference" vs "inverse" deformation-gradient
// formulation (spec.md section 4.6 step 4, resolved against the original
// C solver's two branches): the canonical/reference formulation computes
// shape gradients against the undeformed node array X once (no
// inversion needed since F = dx/dX is direct); the inverse formulation
// computes gradients against the deformed array x and inverts to obtain
// F from F^-1 = dX/dx. Both must agree within round-off on an affine
// deformation, which Test_femcore02_formulations_agree exercises.
type ElementKernel struct {
	Elem        Element
	Model       material.Model
	UseInverseF bool
}

// LocalTangent assembles the element's 30x30 tangent stiffness from the
// (constant) fourth-rank tensor and the reference-configuration shape
// gradients at every Gauss point (section 4.6 step 8); the returned block
// is exactly symmetric. It also returns the per-Gauss-point
// ShapeGradients for AssemblyDriver to cache, and the count of Gauss
// points skipped as degenerate.
func (k *ElementKernel) LocalTangent(xref [shp.NodesPerElement][3]float64) (stiff [30][30]float64, cached []ShapeGradients, degenerate int, err error) {
	c := k.Model.Tangent()
	for _, gp := range k.Elem.GaussRule() {
		sg, gerr := computeShapeGradients(k.Elem, xref, gp)
		if gerr != nil {
			degenerate++
			continue
		}
		cached = append(cached, sg)
		scale := math.Abs(sg.DetJ) * gp.Weight
		for a := 0; a < shp.NodesPerElement; a++ {
			for b := 0; b < shp.NodesPerElement; b++ {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						var sum float64
						for kk := 0; kk < 3; kk++ {
							for l := 0; l < 3; l++ {
								sum += sg.G[a][kk] * c[i][kk][j][l] * sg.G[b][l]
							}
						}
						stiff[3*a+i][3*b+j] += sum * scale
					}
				}
			}
		}
	}
	// the (a,i,b,j) and (b,j,a,i) sums above run in different orders and
	// can differ in the last bit; average each mirrored pair so the block
	// is bit-for-bit symmetric.
	for p := 0; p < 30; p++ {
		for q := p + 1; q < 30; q++ {
			v := 0.5 * (stiff[p][q] + stiff[q][p])
			stiff[p][q], stiff[q][p] = v, v
		}
	}
	if len(cached) == 0 {
		return stiff, cached, degenerate, fmt.Errorf("%w: every gauss point degenerate", ErrDegenerateElement)
	}
	return stiff, cached, degenerate, nil
}

// Stress evaluates the Cauchy stress tensor at Gauss point gp from the
// reference coordinates xref and the current (deformed) coordinates
// xcur, following section 4.6 steps 4-6.
func (k *ElementKernel) Stress(xref, xcur [shp.NodesPerElement][3]float64, gp shp.GaussPoint) ([3][3]float64, error) {
	f, err := k.deformationGradient(xref, xcur, gp)
	if err != nil {
		return [3][3]float64{}, err
	}
	return k.Model.Stress(f), nil
}

func (k *ElementKernel) deformationGradient(xref, xcur [shp.NodesPerElement][3]float64, gp shp.GaussPoint) ([3][3]float64, error) {
	var f [3][3]float64
	if !k.UseInverseF {
		sg, err := computeShapeGradients(k.Elem, xref, gp)
		if err != nil {
			return f, err
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				var sum float64
				for a := 0; a < shp.NodesPerElement; a++ {
					sum += xcur[a][i] * sg.G[a][j]
				}
				f[i][j] = sum
			}
		}
		return f, nil
	}

	sg, err := computeShapeGradients(k.Elem, xcur, gp)
	if err != nil {
		return f, err
	}
	var finv [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for a := 0; a < shp.NodesPerElement; a++ {
				sum += xref[a][i] * sg.G[a][j]
			}
			finv[i][j] = sum
		}
	}
	inv, det, ok := invert3(finv)
	if !ok || math.Abs(det) < 1e-12 {
		return f, fmt.Errorf("%w: singular F^-1", ErrDegenerateElement)
	}
	return inv, nil
}
