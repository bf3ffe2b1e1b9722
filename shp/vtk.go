// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// VtkQuadraticTetra is the VTK cell-type code for the 10-node quadratic
// tetrahedron, used by package out when writing the mesh-with-fields
// text record. TET10's local node order (4 corners then 6 mid-edge
// nodes) matches VTK's own quadratic-tetra ordering, so no node
// renumbering is needed on export.
const VtkQuadraticTetra = 24
