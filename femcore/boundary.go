// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femcore

import (
	"fmt"

	"github.com/zbw2577/solidfem/sla"
)

// ApplyPrescribed enforces essential (prescribed-displacement) boundary
// conditions on the assembled system by symmetric elimination, per
// spec.md section 4.8. This replaces the teacher's Lagrange-multiplier
// EssentialBcs machinery (fem/essenbcs.go augments the system with extra
// rows/columns per constraint); elimination instead keeps the system
// size fixed and zeros coupling in place, which is the simpler contract
// this spec calls for.
//
// For each prescribed dof I with value u:
//   - save s = K_II (fail with ErrMissingDiagonal if zero),
//   - for every row j != I with a stored K_jI, subtract K_jI*u from f_j
//     and zero K_jI; zero K_Ij wherever stored,
//   - restore K_II = s and set f_I = s*u.
func ApplyPrescribed(a *sla.SparseBuilder, f []float64, bcs []PrescribedBC) error {
	for _, bc := range bcs {
		for axis := 0; axis < 3; axis++ {
			if !bc.Has(axis) {
				continue
			}
			i := 3*bc.Node + axis
			u := bc.Values[axis]

			s, err := a.Get(i, i)
			if err != nil {
				return err
			}
			if s == 0 {
				return fmt.Errorf("%w: dof %d", ErrMissingDiagonal, i)
			}

			cols, _ := a.RowEntries(i)
			colSet := append([]int(nil), cols...)
			for _, j := range colSet {
				if j == i {
					continue
				}
				if err := a.SetEntry(i, j, 0); err != nil {
					return err
				}
			}

			for j := 0; j < a.Rows(); j++ {
				if j == i {
					continue
				}
				kji, err := a.Get(j, i)
				if err != nil {
					return err
				}
				if kji == 0 {
					continue
				}
				f[j] -= kji * u
				if err := a.SetEntry(j, i, 0); err != nil {
					return err
				}
			}

			if err := a.SetEntry(i, i, s); err != nil {
				return err
			}
			f[i] = s * u
		}
	}
	return nil
}
