// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mech assembles global linear systems for elasticity problems
// discretized with virtual elements: stiffness matrices over polygonal and
// polyhedral meshes, body-force and traction right-hand sides, Dirichlet
// boundary conditions, stress recovery, and pressure-force coupling.
//
// Matrices are accumulated as coordinate-format entry lists where duplicate
// (row, column) pairs are additive. Degrees of freedom are numbered
// ndim*node+component.
package mech

import "github.com/cpmech/gosl/la"

// Verbose activates progress messages during assembly
var Verbose bool

// Entry is one additive coordinate-format matrix entry
type Entry struct {
	I, J int
	Val  float64
}

// ToTriplet converts an entry list to a sparse triplet with the given
// dimensions, ready for a linear solver.
func ToTriplet(A []Entry, m, n int) (T *la.Triplet) {
	T = new(la.Triplet)
	T.Init(m, n, len(A))
	for _, e := range A {
		T.Put(e.I, e.J, e.Val)
	}
	return
}

// DenseOf accumulates an entry list into a dense m by n matrix. Duplicate
// entries sum.
func DenseOf(A []Entry, m, n int) (res *la.Matrix) {
	res = la.NewMatrix(m, n)
	for _, e := range A {
		res.Set(e.I, e.J, res.Get(e.I, e.J)+e.Val)
	}
	return
}
