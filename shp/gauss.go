// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// GaussPoint is one integration point of a TET10 quadrature rule: its
// weight (already folded with the tetrahedral volume factor 1/6 -
// callers must not multiply by 1/6 again) and parent coordinates.
type GaussPoint struct {
	Weight  float64
	R, S, T float64
}

// the 4-point rule constants (Keast / standard TET10 degree-2 rule).
const (
	tet4PtA = 0.58541020
	tet4PtB = 0.13819660
)

// GaussRule4 returns the 4-point TET10 quadrature rule: equal weights of
// 1/24, nodes at the four permutations of (a,b,b,b) in barycentric
// coordinates.
func GaussRule4() []GaussPoint {
	a, b := tet4PtA, tet4PtB
	const w = 1.0 / 24.0
	return []GaussPoint{
		{Weight: w, R: a, S: b, T: b},
		{Weight: w, R: b, S: a, T: b},
		{Weight: w, R: b, S: b, T: a},
		{Weight: w, R: b, S: b, T: b},
	}
}

// GaussRule5 returns the 5-point TET10 quadrature rule: a centroid point
// with weight -4/30 and four points at the permutations of (1/2,1/6,1/6)
// with weight 9/120.
func GaussRule5() []GaussPoint {
	const (
		centroidW = -4.0 / 30.0
		cornerW   = 9.0 / 120.0
		half      = 1.0 / 2.0
		sixth     = 1.0 / 6.0
		quarter   = 1.0 / 4.0
	)
	return []GaussPoint{
		{Weight: centroidW, R: quarter, S: quarter, T: quarter},
		{Weight: cornerW, R: half, S: sixth, T: sixth},
		{Weight: cornerW, R: sixth, S: half, T: sixth},
		{Weight: cornerW, R: sixth, S: sixth, T: half},
		{Weight: cornerW, R: sixth, S: sixth, T: sixth},
	}
}

// GaussRule returns the named TET10 rule (4 or 5 points). It panics on
// any other count: callers must validate the configured rule before the
// element database is built, not per Gauss-point evaluation.
func GaussRule(nPoints int) []GaussPoint {
	switch nPoints {
	case 4:
		return GaussRule4()
	case 5:
		return GaussRule5()
	default:
		panic("shp: unsupported TET10 Gauss rule point count")
	}
}
