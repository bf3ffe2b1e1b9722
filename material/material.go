// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the hyperelastic constitutive models this
// solver exercises: A5 (linear-in-strain Cauchy stress) and compressible
// neo-Hookean. Both are parameterised solely by the Lamé constants
// lambda and mu, matching spec.md's "only the first two [of ten
// parameters] are used here".
package material

import (
	"fmt"
	"math"
)

// Tag identifies a material model variant, mirroring the tagged-union
// shape of spec.md's Material entity.
type Tag int

const (
	A5 Tag = iota
	CompressibleNeoHookean
)

func (t Tag) String() string {
	switch t {
	case A5:
		return "A5"
	case CompressibleNeoHookean:
		return "CompressibleNeoHookean"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// MaxParams is the fixed slot count of a material parameter record; only
// the first two (lambda, mu) are consumed today.
const MaxParams = 10

// Params holds up to MaxParams scalar parameters for a tagged material.
type Params [MaxParams]float64

// Lambda returns the first Lamé constant.
func (p Params) Lambda() float64 { return p[0] }

// Mu returns the second Lamé constant (shear modulus).
func (p Params) Mu() float64 { return p[1] }

// Model computes the Cauchy stress and the fourth-rank constitutive
// tensor for a deformation state given the deformation gradient F.
type Model interface {
	// Stress returns the Cauchy stress tensor sigma at F.
	Stress(f [3][3]float64) (sigma [3][3]float64)
	// Tangent returns the fourth-rank constitutive tensor C_ijkl used to
	// form the element's local tangent stiffness.
	Tangent() [3][3][3][3]float64
}

// mat3 holds small dense 3x3 helpers shared by the model implementations;
// kept local to this package since femcore works with its own Jacobian
// routines and has no need of a general matrix type.
type mat3 = [3][3]float64

func mat3Mul(a, b mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a[i][k] * b[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

func mat3Transpose(a mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[j][i]
		}
	}
	return r
}

func mat3Det(a mat3) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

func mat3Trace(a mat3) float64 { return a[0][0] + a[1][1] + a[2][2] }

// logSafe returns ln(J), or -Inf for a non-positive J instead of NaN.
// ElementKernel does not check the sign of det F before calling into a
// Model, so an inverted deformation can reach this branch.
func logSafe(j float64) float64 {
	if j <= 0 {
		return math.Inf(-1)
	}
	return math.Log(j)
}

var identity3 = mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// rightCauchyGreen returns spec.md's C = 1/2(F^T*F - I), the Green-
// Lagrange-strain-shaped tensor the A5 formula is written in terms of,
// and its first invariant i1 = tr(C).
func rightCauchyGreen(f mat3) (c mat3, i1 float64) {
	ftf := mat3Mul(mat3Transpose(f), f)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = 0.5 * (ftf[i][j] - identity3[i][j])
		}
	}
	i1 = mat3Trace(c)
	return
}

// New returns the Model for the given tag and parameters. It fails with
// a femcore-agnostic error if mu is not positive, since a degenerate
// shear modulus makes the constitutive tensor singular, or if the tag is
// unknown; lambda is not checked.
func New(tag Tag, p Params) (Model, error) {
	lambda, mu := p.Lambda(), p.Mu()
	if mu <= 0 {
		return nil, fmt.Errorf("material: mu must be positive, got %v", mu)
	}
	switch tag {
	case A5:
		return &a5{lambda: lambda, mu: mu}, nil
	case CompressibleNeoHookean:
		return &neoHookean{lambda: lambda, mu: mu}, nil
	default:
		return nil, fmt.Errorf("material: unsupported tag %v", tag)
	}
}

// isotropicTangent builds C_ijkl = lambda*d_ij*d_kl + mu*(d_ik*d_jl + d_il*d_jk),
// the standard linear-elastic fourth-rank tensor shared by both models
// (spec.md restricts the tangent to this closed form; only the Cauchy
// stress differs between A5 and the neo-Hookean branch).
func isotropicTangent(lambda, mu float64) [3][3][3][3]float64 {
	var c [3][3][3][3]float64
	delta := func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = lambda*delta(i, j)*delta(k, l) + mu*(delta(i, k)*delta(j, l)+delta(i, l)*delta(j, k))
				}
			}
		}
	}
	return c
}
