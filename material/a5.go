// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

// a5 implements the A5 model: Cauchy stress sigma = (lambda*i1*I + 2*mu*C) / detF,
// per spec.md section 4.6 step 6. This is the only branch exercised by
// the literal end-to-end scenarios.
type a5 struct {
	lambda, mu float64
}

func (m *a5) Stress(f [3][3]float64) [3][3]float64 {
	c, i1 := rightCauchyGreen(f)
	detF := mat3Det(f)
	var sigma [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sigma[i][j] = (m.lambda*i1*identity3[i][j] + 2*m.mu*c[i][j]) / detF
		}
	}
	return sigma
}

func (m *a5) Tangent() [3][3][3][3]float64 {
	return isotropicTangent(m.lambda, m.mu)
}
