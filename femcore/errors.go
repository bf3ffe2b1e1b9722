// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package femcore implements the TET10 solid-mechanics core: element
// kernels, assembly, boundary-condition elimination and the solver
// facade that ties them to the sla linear-algebra package.
package femcore

import "errors"

// ErrDegenerateElement marks a Gauss point whose Jacobian determinant
// rounds to zero; the point's contribution is skipped and logged. It is
// fatal to the assembly only when every Gauss point of an element is
// degenerate.
var ErrDegenerateElement = errors.New("femcore: degenerate element (det J ~ 0)")

// ErrUnsupportedConfiguration marks an input that fails validation
// before assembly: in the inp loader an element type other than tet10, a
// dof count other than 3 or a nodes_per_element other than 10; at facade
// construction an empty mesh, a Gauss rule other than 4 or 5 points, or
// material parameters the material package rejects.
var ErrUnsupportedConfiguration = errors.New("femcore: unsupported configuration")

// ErrMissingDiagonal marks a prescribed dof whose diagonal stiffness
// entry is zero; BoundaryEnforcer cannot rescale a zero pivot.
var ErrMissingDiagonal = errors.New("femcore: missing diagonal at prescribed dof")
