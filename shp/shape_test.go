// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "testing"

// partition of unity: shape functions must sum to 1 everywhere in the
// parent domain, and their local derivatives must sum to 0.
func TestTet10PartitionOfUnity(t *testing.T) {
	pts := append(GaussRule4(), GaussRule5()...)
	for _, ip := range pts {
		N := Tet10Values(ip.R, ip.S, ip.T)
		var sum float64
		for _, n := range N {
			sum += n
		}
		if diff := sum - 1.0; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("shape functions do not sum to 1 at (%v,%v,%v): got %v", ip.R, ip.S, ip.T, sum)
		}
		dN := Tet10LocalGrad(ip.R, ip.S, ip.T)
		var sumR, sumS, sumT float64
		for _, d := range dN {
			sumR += d[0]
			sumS += d[1]
			sumT += d[2]
		}
		for _, v := range []float64{sumR, sumS, sumT} {
			if v > 1e-12 || v < -1e-12 {
				t.Fatalf("local derivatives do not sum to 0 at (%v,%v,%v): got %v,%v,%v", ip.R, ip.S, ip.T, sumR, sumS, sumT)
			}
		}
	}
}

// at the 4 corner nodes, N_a must be 1 at its own node and 0 at the
// other 3 corners (the interpolation property restricted to corners).
func TestTet10InterpolatesCorners(t *testing.T) {
	corners := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for a, c := range corners {
		N := Tet10Values(c[0], c[1], c[2])
		if diff := N[a] - 1.0; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("N[%d] at its own corner: got %v, want 1", a, N[a])
		}
		for b := 0; b < 4; b++ {
			if b == a {
				continue
			}
			if N[b] > 1e-12 || N[b] < -1e-12 {
				t.Fatalf("N[%d] at corner %d: got %v, want 0", b, a, N[b])
			}
		}
	}
}

func TestGaussRuleWeightsSumToVolumeFactor(t *testing.T) {
	for _, rule := range [][]GaussPoint{GaussRule4(), GaussRule5()} {
		var sum float64
		for _, ip := range rule {
			sum += ip.Weight
		}
		// weights already fold in the tetrahedral volume factor 1/6
		if diff := sum - 1.0/6.0; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("gauss weights sum to %v, want 1/6", sum)
		}
	}
}

func TestGaussRuleUnsupportedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unsupported rule")
		}
	}()
	GaussRule(3)
}
