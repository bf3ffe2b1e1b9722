// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sla

import "fmt"

// SkylineView (CSLR: compressed sparse lower+diagonal+row) is an
// immutable, symmetric-pattern view derived from a reordered
// SparseBuilder. It stores the diagonal separately and keeps the strict
// lower and strict upper triangles over one shared index vector, which
// halves index storage relative to storing both triangles independently
// and gives cache-friendly row sweeps for ILU(0) and triangular solves.
type SkylineView struct {
	n      int
	diag   []float64
	lVals  []float64
	uVals  []float64
	colIdx []int
	rowPtr []int
	rowOf  []int // rowOf[slot] is the row owning triangle slot
}

// N returns the matrix order.
func (s *SkylineView) N() int { return s.n }

// NNZTri returns the number of stored strict-lower (== strict-upper)
// entries.
func (s *SkylineView) NNZTri() int { return len(s.colIdx) }

// Diag returns the diagonal entry A_ii.
func (s *SkylineView) Diag(i int) float64 { return s.diag[i] }

// RowRange returns [start, end) into the triangle arrays for row i's
// strict-lower entries.
func (s *SkylineView) RowRange(i int) (start, end int) { return s.rowPtr[i], s.rowPtr[i+1] }

// Col returns the column of the k-th strict-lower entry.
func (s *SkylineView) Col(k int) int { return s.colIdx[k] }

// L returns A_ik for the k-th strict-lower entry (row i owns slot k).
func (s *SkylineView) L(k int) float64 { return s.lVals[k] }

// U returns A_ki, the symmetrically-paired strict-upper entry for slot k.
func (s *SkylineView) U(k int) float64 { return s.uVals[k] }

// RowOf returns the row owning triangle slot k.
func (s *SkylineView) RowOf(k int) int { return s.rowOf[k] }

// NewSkylineView builds the symmetric skyline view of a reordered
// SparseBuilder. The builder must have been passed through Reorder()
// exactly once; Reorder does not need to be called again afterwards
// because SkylineView only reads the builder once, at construction.
func NewSkylineView(a *SparseBuilder) (*SkylineView, error) {
	if !a.Ordered() {
		return nil, ErrNotReordered
	}
	if a.rows != a.cols {
		return nil, fmt.Errorf("%w: skyline requires a square matrix", ErrIndexOutOfRange)
	}
	n := a.rows

	var lowerCount, upperCount int
	rowPtr := make([]int, n+1)
	for i := 0; i < n; i++ {
		cols, _ := a.RowEntries(i)
		for _, j := range cols {
			switch {
			case j < i:
				lowerCount++
			case j > i:
				upperCount++
			}
		}
		rowPtr[i+1] = lowerCount
	}
	if lowerCount != upperCount {
		return nil, fmt.Errorf("%w: %d strict-lower vs %d strict-upper entries", ErrAsymmetricPattern, lowerCount, upperCount)
	}

	s := &SkylineView{
		n:      n,
		diag:   make([]float64, n),
		lVals:  make([]float64, lowerCount),
		uVals:  make([]float64, lowerCount),
		colIdx: make([]int, lowerCount),
		rowPtr: rowPtr,
	}

	s.rowOf = make([]int, lowerCount)
	cursor := make([]int, n)
	copy(cursor, rowPtr[:n])
	for i := 0; i < n; i++ {
		cols, vals := a.RowEntries(i)
		for k, j := range cols {
			switch {
			case j == i:
				s.diag[i] = vals[k]
			case j < i:
				slot := cursor[i]
				s.colIdx[slot] = j
				s.lVals[slot] = vals[k]
				s.rowOf[slot] = i
				cursor[i]++
			}
		}
	}
	// second pass: fill U by locating, for each strict-lower slot (i,j),
	// the symmetric partner A_ji stored in row j's strict-upper part.
	for i := 0; i < n; i++ {
		start, end := s.rowPtr[i], s.rowPtr[i+1]
		for slot := start; slot < end; slot++ {
			j := s.colIdx[slot]
			v, err := a.Get(j, i)
			if err != nil {
				return nil, err
			}
			s.uVals[slot] = v
		}
	}
	return s, nil
}
