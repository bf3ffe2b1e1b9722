// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sla

import (
	"fmt"
	"math"
)

// SparseBuilder is a CRS-like sparse matrix builder: an ordered list of
// IndexedRow that supports accumulation during assembly and, after a
// single Reorder pass, row-sweep algorithms such as mv, SkylineView and
// ILU(0).
//
// Assembly visits (i,j) pairs in essentially random order, so rows are
// kept unsorted while they grow; Reorder sorts every row exactly once.
type SparseBuilder struct {
	rows    int
	cols    int
	storage []IndexedRow
	ordered bool
}

// NewSparseBuilder allocates a builder for an rows x cols matrix. Each
// row starts with capacity ceil(2*sqrt(cols)), a bandwidth hint typical
// of FE connectivity.
func NewSparseBuilder(rows, cols int) *SparseBuilder {
	hint := int(math.Ceil(2 * math.Sqrt(float64(cols))))
	b := &SparseBuilder{rows: rows, cols: cols, storage: make([]IndexedRow, rows)}
	for i := range b.storage {
		b.storage[i] = newIndexedRow(hint)
	}
	return b
}

// Rows returns the number of rows.
func (b *SparseBuilder) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *SparseBuilder) Cols() int { return b.cols }

// Ordered reports whether Reorder has been called since the last mutation
// that could have broken the sorted invariant.
func (b *SparseBuilder) Ordered() bool { return b.ordered }

func (b *SparseBuilder) checkBounds(i, j int) error {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return fmt.Errorf("%w: (%d,%d) outside (%d,%d)", ErrIndexOutOfRange, i, j, b.rows, b.cols)
	}
	return nil
}

// Add accumulates v into entry (i,j). Out-of-range indices fail loudly:
// unlike the historical C implementation this guards against programmer
// error instead of silently dropping the write.
func (b *SparseBuilder) Add(i, j int, v float64) error {
	if err := b.checkBounds(i, j); err != nil {
		return err
	}
	b.storage[i].add(j, v)
	b.ordered = false
	return nil
}

// Get returns the current value at (i,j), or 0 if the entry was never
// touched.
func (b *SparseBuilder) Get(i, j int) (float64, error) {
	if err := b.checkBounds(i, j); err != nil {
		return 0, err
	}
	return b.storage[i].get(j), nil
}

// set overwrites an existing entry in place; used by BoundaryEnforcer,
// which only ever zeroes entries already present in the pattern.
func (b *SparseBuilder) set(i, j int, v float64) error {
	if err := b.checkBounds(i, j); err != nil {
		return err
	}
	b.storage[i].set(j, v)
	return nil
}

// SetEntry overwrites an existing (i,j) entry in place without touching
// the ordered invariant (it never changes a row's column set). It exists
// for BoundaryEnforcer, the only caller outside this package allowed to
// poke at already-assembled entries directly.
func (b *SparseBuilder) SetEntry(i, j int, v float64) error {
	return b.set(i, j, v)
}

// RowNNZ returns the number of stored entries in row i.
func (b *SparseBuilder) RowNNZ(i int) int { return b.storage[i].used }

// RowEntries returns the (column, value) pairs of row i, in whatever
// order they are currently stored (sorted if Ordered()).
func (b *SparseBuilder) RowEntries(i int) (cols []int, vals []float64) {
	r := &b.storage[i]
	return r.indices[:r.used], r.values[:r.used]
}

// Reorder sorts every row by ascending column index. It must be called
// exactly once between assembly and any row-sweep consumer (mv,
// SkylineView, ILU). Because Add always merges in-place, no row ever
// contains a duplicate column, so Reorder never needs to merge entries.
func (b *SparseBuilder) Reorder() {
	for i := range b.storage {
		b.storage[i].sortByColumn()
	}
	b.ordered = true
}

// MV computes y = A*x in O(nnz). x and y must have length Cols()/Rows()
// respectively; y is overwritten, not accumulated into.
func (b *SparseBuilder) MV(x, y []float64) error {
	if len(x) != b.cols || len(y) != b.rows {
		return fmt.Errorf("%w: mv dimension mismatch", ErrIndexOutOfRange)
	}
	for i := 0; i < b.rows; i++ {
		r := &b.storage[i]
		var sum float64
		for k := 0; k < r.used; k++ {
			sum += r.values[k] * x[r.indices[k]]
		}
		y[i] = sum
	}
	return nil
}
