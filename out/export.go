// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes the solver's mesh-with-fields result as a
// VTK-like ASCII text record: points, cells (tagged with the Element's
// own VTK cell-type code, 24 for TET10), point-data displacement
// vectors and cell-data stress tensors. It replaces mallano-gofem/out's
// gosl/plt-based plotting and time-series machinery, which this
// solver has no use for (spec.md's Non-goals exclude visualization),
// keeping only the package's role as the solve's external
// record-writing collaborator.
package out

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/zbw2577/solidfem/femcore"
)

// Record is the mesh-with-fields document written by Write: the
// element variant (asked for its VTK cell-type tag), the nodal
// coordinates and connectivity of the task just solved, paired with
// the SolveResult's displacement and stress fields.
type Record struct {
	Elem   femcore.Element
	Mesh   *femcore.Mesh
	Result *femcore.SolveResult
}

// WriteFile creates fn and writes rec to it, per spec.md section 6.
func WriteFile(fn string, rec Record) error {
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("out: cannot create %s: %w", fn, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := Write(w, rec); err != nil {
		return err
	}
	return w.Flush()
}

// Write renders rec in the ASCII format onto w:
//
//	POINTS <n>
//	<x> <y> <z>
//	...
//	CELLS <n> <type>
//	<10 node indices>
//	...
//	POINT_DATA <n> displacement
//	<ux> <uy> <uz>
//	...
//	CELL_DATA <n> stress
//	<sxx> <syy> <szz> <sxy> <sxz> <syz>
//	...
func Write(w io.Writer, rec Record) error {
	mesh := rec.Mesh
	result := rec.Result
	nn := mesh.NNodes()
	ne := mesh.NElements()

	if _, err := fmt.Fprintf(w, "POINTS %d\n", nn); err != nil {
		return err
	}
	for _, nd := range mesh.Nodes {
		if _, err := fmt.Fprintf(w, "%.15e %.15e %.15e\n", nd.X, nd.Y, nd.Z); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "CELLS %d %d\n", ne, rec.Elem.Export()); err != nil {
		return err
	}
	for _, conn := range mesh.Elements {
		if _, err := fmt.Fprintf(w, "%d %d %d %d %d %d %d %d %d %d\n",
			conn[0], conn[1], conn[2], conn[3], conn[4],
			conn[5], conn[6], conn[7], conn[8], conn[9]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "POINT_DATA %d displacement\n", nn); err != nil {
		return err
	}
	for n := 0; n < nn; n++ {
		ux := result.Displacements[3*n+0]
		uy := result.Displacements[3*n+1]
		uz := result.Displacements[3*n+2]
		if _, err := fmt.Fprintf(w, "%.15e %.15e %.15e\n", ux, uy, uz); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "CELL_DATA %d stress\n", ne); err != nil {
		return err
	}
	for _, sigma := range result.Stresses {
		if _, err := fmt.Fprintf(w, "%.15e %.15e %.15e %.15e %.15e %.15e\n",
			sigma[0][0], sigma[1][1], sigma[2][2],
			sigma[0][1], sigma[0][2], sigma[1][2]); err != nil {
			return err
		}
	}
	return nil
}
