// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// checkFixedDofs validates the fixed degrees of freedom: strictly ascending,
// within [0, size), one prescribed value each.
func checkFixedDofs(fixedDofs []int, fixedVals []float64, size int) error {
	if len(fixedDofs) != len(fixedVals) {
		return chk.Err("number of fixed dofs (%d) does not match number of fixed values (%d)", len(fixedDofs), len(fixedVals))
	}
	for i, dof := range fixedDofs {
		if dof < 0 || dof >= size {
			return chk.Err("fixed dof %d out of range [0,%d)", dof, size)
		}
		if i > 0 && dof <= fixedDofs[i-1] {
			return chk.Err("fixed dofs must be strictly ascending. got %d after %d", dof, fixedDofs[i-1])
		}
	}
	return nil
}

// eliminateColumns sorts A by column and moves the contribution of each
// fixed column to the right-hand side: b[row] -= val * fixedVal for every
// entry in a fixed column. The returned slice is column-sorted.
func eliminateColumns(A []Entry, b []float64, fixedDofs []int, fixedVals []float64) []Entry {
	sort.Slice(A, func(i, j int) bool { return A[i].J < A[j].J })
	for k, dof := range fixedDofs {
		lo := sort.Search(len(A), func(i int) bool { return A[i].J >= dof })
		for i := lo; i < len(A) && A[i].J == dof; i++ {
			b[A[i].I] -= A[i].Val * fixedVals[k]
		}
	}
	return A
}

// isFixed reports whether dof appears in the ascending list fixedDofs
func isFixed(fixedDofs []int, dof int) bool {
	i := sort.SearchInts(fixedDofs, dof)
	return i < len(fixedDofs) && fixedDofs[i] == dof
}

// ReduceSystem eliminates the fixed degrees of freedom from the system
// (A, b) by moving their columns to the right-hand side and removing their
// rows and columns. The remaining dofs are renumbered contiguously in their
// original order; the reduced right-hand side is returned alongside.
func ReduceSystem(A []Entry, b []float64, fixedDofs []int, fixedVals []float64) (Ar []Entry, br []float64, err error) {
	if err = checkFixedDofs(fixedDofs, fixedVals, len(b)); err != nil {
		return
	}
	A = eliminateColumns(A, b, fixedDofs, fixedVals)

	// renumbering that skips the fixed dofs
	renum := make([]int, len(b))
	next := 0
	for dof := range renum {
		if isFixed(fixedDofs, dof) {
			renum[dof] = -1
			continue
		}
		renum[dof] = next
		next++
	}

	Ar = make([]Entry, 0, len(A))
	for _, e := range A {
		if renum[e.I] < 0 || renum[e.J] < 0 {
			continue
		}
		Ar = append(Ar, Entry{renum[e.I], renum[e.J], e.Val})
	}
	br = make([]float64, 0, next)
	for dof, v := range b {
		if renum[dof] >= 0 {
			br = append(br, v)
		}
	}
	return
}

// SetBoundaryConditions enforces the fixed degrees of freedom in place,
// keeping the system size: columns of fixed dofs are moved to the right-hand
// side and dropped, rows of fixed dofs are cleared with a single unit entry
// left on the diagonal, and the right-hand side entries of fixed dofs are
// set to the prescribed values.
func SetBoundaryConditions(A []Entry, b []float64, fixedDofs []int, fixedVals []float64) (As []Entry, bs []float64, err error) {
	if err = checkFixedDofs(fixedDofs, fixedVals, len(b)); err != nil {
		return
	}
	A = eliminateColumns(A, b, fixedDofs, fixedVals)

	// the diagonal of a fixed dof may be split across several entries, so
	// only the first occurrence becomes the unit entry
	diagSet := make(map[int]bool, len(fixedDofs))
	As = make([]Entry, 0, len(A))
	for _, e := range A {
		switch {
		case isFixed(fixedDofs, e.I) && e.I == e.J:
			if !diagSet[e.I] {
				As = append(As, Entry{e.I, e.J, 1})
				diagSet[e.I] = true
			}
		case isFixed(fixedDofs, e.I) || isFixed(fixedDofs, e.J):
			// dropped
		default:
			As = append(As, e)
		}
	}
	for _, dof := range fixedDofs {
		if !diagSet[dof] {
			As = append(As, Entry{dof, dof, 1})
		}
	}

	bs = b
	for k, dof := range fixedDofs {
		bs[dof] = fixedVals[k]
	}
	return
}
