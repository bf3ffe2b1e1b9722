// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sla

import "sort"

// IndexedRow is a dynamic, possibly unsorted, list of (column, value)
// pairs. It backs one row of a SparseBuilder. Growth is amortised: when
// capacity is exhausted, Add doubles it.
type IndexedRow struct {
	cap     int
	used    int
	indices []int
	values  []float64
}

// newIndexedRow allocates a row with the given initial capacity hint.
func newIndexedRow(capHint int) IndexedRow {
	if capHint < 1 {
		capHint = 1
	}
	return IndexedRow{
		cap:     capHint,
		indices: make([]int, capHint),
		values:  make([]float64, capHint),
	}
}

// find returns the slot of column j within the used prefix, or -1.
func (r *IndexedRow) find(j int) int {
	for k := 0; k < r.used; k++ {
		if r.indices[k] == j {
			return k
		}
	}
	return -1
}

// add accumulates v into column j, appending a new slot if j is not yet
// present. Capacity doubles when the row is full; existing values are
// preserved across the resize.
func (r *IndexedRow) add(j int, v float64) {
	if slot := r.find(j); slot >= 0 {
		r.values[slot] += v
		return
	}
	if r.used == r.cap {
		newCap := r.cap * 2
		newIdx := make([]int, newCap)
		newVal := make([]float64, newCap)
		copy(newIdx, r.indices[:r.used])
		copy(newVal, r.values[:r.used])
		r.indices, r.values, r.cap = newIdx, newVal, newCap
	}
	r.indices[r.used] = j
	r.values[r.used] = v
	r.used++
}

// get returns the stored value at column j, or 0 if absent.
func (r *IndexedRow) get(j int) float64 {
	if slot := r.find(j); slot >= 0 {
		return r.values[slot]
	}
	return 0
}

// set overwrites the value at column j if j is present; it is a no-op
// otherwise (BoundaryEnforcer only zeroes entries that already exist).
func (r *IndexedRow) set(j int, v float64) {
	if slot := r.find(j); slot >= 0 {
		r.values[slot] = v
	}
}

// sortByColumn reorders the used prefix by ascending column index.
// Assembly never produces duplicate columns within a row (add merges
// in-place), so the base Go sort is sufficient and stable enough for our
// purposes; we use sort.Sort over a small adapter to avoid an allocation
// per call for the common small-row case.
func (r *IndexedRow) sortByColumn() {
	sort.Sort(rowSortView{r})
}

// rowSortView adapts the used prefix of an IndexedRow to sort.Interface.
type rowSortView struct{ r *IndexedRow }

func (v rowSortView) Len() int { return v.r.used }
func (v rowSortView) Less(i, j int) bool {
	return v.r.indices[i] < v.r.indices[j]
}
func (v rowSortView) Swap(i, j int) {
	v.r.indices[i], v.r.indices[j] = v.r.indices[j], v.r.indices[i]
	v.r.values[i], v.r.values[j] = v.r.values[j], v.r.values[i]
}
