// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements the isoparametric shape functions and Gauss
// quadrature tables for the 10-node quadratic tetrahedron (TET10), the
// only element type this solver supports.
package shp

// NodesPerElement is the fixed node count of a TET10 element: four
// corner vertices plus six mid-edge nodes.
const NodesPerElement = 10

// Tet10 evaluates the shape functions N_a(r,s,t) of the TET10 element at
// parent coordinate (r,s,t), writing into N (length NodesPerElement).
// Corner nodes follow N = (2*xi-1)*xi for each barycentric coordinate
// xi in {l,r,s,t} with l = 1-r-s-t; mid-edge nodes follow N = 4*xi_i*xi_j.
// Node ordering is the fixed local order used throughout this package:
// 0-3 are corners (l,r,s,t), 4-9 are mid-edge nodes.
func Tet10(N *[NodesPerElement]float64, r, s, t float64) {
	l := 1.0 - r - s - t
	N[0] = l * (2.0*l - 1.0)
	N[1] = r * (2.0*r - 1.0)
	N[2] = s * (2.0*s - 1.0)
	N[3] = t * (2.0*t - 1.0)
	N[4] = 4.0 * l * r
	N[5] = 4.0 * r * s
	N[6] = 4.0 * s * l
	N[7] = 4.0 * l * t
	N[8] = 4.0 * r * t
	N[9] = 4.0 * s * t
}

// Tet10Values evaluates the TET10 shape functions at (r,s,t) and returns
// them directly; convenience wrapper over Tet10 for call sites that do
// not need to reuse a scratch array.
func Tet10Values(r, s, t float64) [NodesPerElement]float64 {
	var N [NodesPerElement]float64
	Tet10(&N, r, s, t)
	return N
}

// Tet10LocalGrad evaluates the local-coordinate derivatives dN_a/d{r,s,t}
// of the TET10 shape functions at (r,s,t). dN[a][0..2] holds
// dN_a/dr, dN_a/ds, dN_a/dt respectively.
func Tet10LocalGrad(r, s, t float64) [NodesPerElement][3]float64 {
	var dN [NodesPerElement][3]float64

	// corner nodes
	dN[0] = [3]float64{4.0*(r+s+t) - 3.0, 4.0*(r+s+t) - 3.0, 4.0*(r+s+t) - 3.0}
	dN[1] = [3]float64{4.0*r - 1.0, 0, 0}
	dN[2] = [3]float64{0, 4.0*s - 1.0, 0}
	dN[3] = [3]float64{0, 0, 4.0*t - 1.0}

	// mid-edge nodes
	dN[4] = [3]float64{4.0 - 8.0*r - 4.0*s - 4.0*t, -4.0 * r, -4.0 * r}
	dN[5] = [3]float64{4.0 * s, 4.0 * r, 0}
	dN[6] = [3]float64{-4.0 * s, 4.0 - 4.0*r - 8.0*s - 4.0*t, -4.0 * s}
	dN[7] = [3]float64{-4.0 * t, -4.0 * t, 4.0 - 4.0*r - 4.0*s - 8.0*t}
	dN[8] = [3]float64{4.0 * t, 0, 4.0 * r}
	dN[9] = [3]float64{0, 4.0 * t, 4.0 * s}

	return dN
}
