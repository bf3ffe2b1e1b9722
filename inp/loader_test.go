// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbw2577/solidfem/femcore"
	"github.com/zbw2577/solidfem/material"
)

const sampleDoc = `{
  "task": {"dof": 3, "element_type": "tet10",
            "material": {"tag": "A5", "params": [1000, 500]},
            "solver": {"type": "PCG_ILU", "tolerance": 1e-10, "max_iterations": 500}},
  "solution_params": {"nodes_per_element": 10, "gauss_nodes_count": 5},
  "nodes": [[0,0,0],[1,0,0],[0,1,0],[0,0,1],
            [0.5,0,0],[0.5,0.5,0],[0,0.5,0],[0,0,0.5],[0.5,0,0.5],[0,0.5,0.5]],
  "elements": [[0,1,2,3,4,5,6,7,8,9]],
  "prescribed_boundary": [{"node": 0, "values": [0,0,0], "mask": 7}]
}`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func Test_inp01_read_and_convert(t *testing.T) {
	fn := writeTemp(t, sampleDoc)

	doc, err := ReadDocument(fn)
	require.NoError(t, err)
	assert.Equal(t, "tet10", doc.Task.ElementType)
	assert.Len(t, doc.Nodes, 10)

	task, err := doc.ToTask()
	require.NoError(t, err)
	assert.Equal(t, material.A5, task.Material)
	assert.Equal(t, femcore.PCGILU, task.Solver.Type)
	assert.Equal(t, 5, task.GaussPoints)
	assert.Len(t, task.BCs, 1)
	assert.Equal(t, uint8(7), task.BCs[0].Mask)
}

func Test_inp02_rejects_unsupported_element_type(t *testing.T) {
	bad := `{"task": {"dof": 3, "element_type": "hex20",
            "material": {"tag": "A5", "params": [1,1]},
            "solver": {"type": "CG", "tolerance": 1e-8, "max_iterations": 100}},
            "solution_params": {"nodes_per_element": 10, "gauss_nodes_count": 4},
            "nodes": [], "elements": [], "prescribed_boundary": []}`
	fn := writeTemp(t, bad)

	doc, err := ReadDocument(fn)
	require.NoError(t, err)
	_, err = doc.ToTask()
	require.Error(t, err)
}

func Test_inp03_missing_file(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
