// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vem implements the per-element matrices of the first-order
// virtual element method for linear elasticity on general polygonal and
// polyhedral cells. The element projector is assembled from four local
// matrices (Nr, Nc, Wr, Wc) whose rows are indexed by degree of freedom
// (ndim values per node) and whose columns span the rigid-body and
// constant-strain modes.
package vem

import (
	"sort"

	"github.com/cpmech/gosl/la"

	"github.com/geomech/govem/geom"
)

// LocalIndexing extracts the sorted set of node ids referenced by faces and
// returns it along with a map from global id to local position. The local
// ids follow the global ordering, so scattering element results back to
// global arrays stays monotone.
func LocalIndexing(faces []int) (indexing []int, reindex map[int]int) {
	seen := make(map[int]bool)
	for _, id := range faces {
		seen[id] = true
	}
	indexing = make([]int, 0, len(seen))
	for id := range seen {
		indexing = append(indexing, id)
	}
	sort.Ints(indexing)
	reindex = make(map[int]int, len(indexing))
	for loc, id := range indexing {
		reindex[id] = loc
	}
	return
}

// Q2D computes the q-values of a polygonal element: the integral of each
// scaled nodal basis function gradient, obtained from the outward normals of
// the two edges adjacent to each node divided by four times the element
// area. Corner coordinates must be ordered counter-clockwise, 2 values per
// node. The result holds 2 values per node.
func Q2D(corners []float64) (q []float64) {
	n := len(corners) / 2
	area := geom.FaceIntegral(2, corners, nil)
	q = make([]float64, 2*n)
	for i := 0; i < n; i++ {
		inext := (i + 1) % n
		dx := corners[2*inext] - corners[2*i]
		dy := corners[2*inext+1] - corners[2*i+1]

		// outward normal times edge length, split between the endpoints
		q[2*i] += dy / (4 * area)
		q[2*i+1] += -dx / (4 * area)
		q[2*inext] += dy / (4 * area)
		q[2*inext+1] += -dx / (4 * area)
	}
	return
}

// Q3D computes the q-values of a polyhedral element: for each node, the sum
// over its adjacent faces of the outward normal scaled by the integral of
// the nodal basis function over the face, divided by two times the element
// volume. pts holds the locally indexed corner coordinates, faceCorners the
// local corner indices per face, and normals the outward unit face normals
// (3 values per face). The result holds 3 values per node.
//
// With volume set to 1 the q-values are half the basis-function-weighted
// face normal integrals, which is what the pressure-coupling terms need.
func Q3D(pts []float64, faceCorners, numFaceCorners []int, volume float64, normals []float64) (q []float64) {
	n := len(pts) / 3
	q = make([]float64, 3*n)
	pos := 0
	for f := 0; f < len(numFaceCorners); f++ {
		nfc := numFaceCorners[f]
		fc := faceCorners[pos : pos+nfc]
		corners := geom.PickPoints(pts, 3, fc)
		tris, _ := geom.TessellateFace(3, corners, false)
		for c := 0; c < nfc; c++ {
			cnext := (c + 1) % nfc
			t1 := tris[2*c]
			t2 := tris[2*c+1]
			a1 := geom.TriArea(t1[:3], t1[3:6], t1[6:])
			a2 := geom.TriArea(t2[:3], t2[3:6], t2[6:])
			for d := 0; d < 3; d++ {
				q[3*fc[c]+d] += a1 * normals[3*f+d] / (2 * volume)
				q[3*fc[cnext]+d] += a2 * normals[3*f+d] / (2 * volume)
			}
		}
		pos += nfc
	}
	return
}

// setNodeBlock2D fills the 2x3 block of mat belonging to node i. The block
// pattern is
//
//	| e1  0  e2 |
//	|  0  e3 e4 |
func setNodeBlock2D(mat *la.Matrix, i int, e1, e2, e3, e4 float64) {
	mat.Set(2*i, 0, e1)
	mat.Set(2*i, 2, e2)
	mat.Set(2*i+1, 1, e3)
	mat.Set(2*i+1, 2, e4)
}

// setNodeBlock3D fills the 3x6 block of mat belonging to node i. The block
// pattern is
//
//	| e1  0  0  e2  0  e3 |
//	|  0  e4  0  e5 e6  0 |
//	|  0  0  e7  0  e8 e9 |
func setNodeBlock3D(mat *la.Matrix, i int, e1, e2, e3, e4, e5, e6, e7, e8, e9 float64) {
	mat.Set(3*i, 0, e1)
	mat.Set(3*i, 3, e2)
	mat.Set(3*i, 5, e3)
	mat.Set(3*i+1, 1, e4)
	mat.Set(3*i+1, 3, e5)
	mat.Set(3*i+1, 4, e6)
	mat.Set(3*i+2, 2, e7)
	mat.Set(3*i+2, 4, e8)
	mat.Set(3*i+2, 5, e9)
}

// Nr2D assembles the (2n x 3) matrix spanning the rigid-body modes of a
// polygonal element: two translations and one rotation about the average
// point of the corners.
func Nr2D(corners []float64) (Nr *la.Matrix) {
	n := len(corners) / 2
	mid := geom.AvgPoint(corners, 2)
	Nr = la.NewMatrix(2*n, 3)
	for i := 0; i < n; i++ {
		dx := corners[2*i] - mid[0]
		dy := corners[2*i+1] - mid[1]
		setNodeBlock2D(Nr, i, 1, dy, 1, -dx)
	}
	return
}

// Nc2D assembles the (2n x 3) matrix spanning the constant-strain modes of a
// polygonal element, with offsets taken from the average point of the
// corners.
func Nc2D(corners []float64) (Nc *la.Matrix) {
	n := len(corners) / 2
	mid := geom.AvgPoint(corners, 2)
	Nc = la.NewMatrix(2*n, 3)
	for i := 0; i < n; i++ {
		dx := corners[2*i] - mid[0]
		dy := corners[2*i+1] - mid[1]
		setNodeBlock2D(Nc, i, dx, dy, dy, dx)
	}
	return
}

// Wr2D assembles the (2n x 3) dual basis of the rigid-body modes from the
// element q-values.
func Wr2D(q []float64) (Wr *la.Matrix) {
	n := len(q) / 2
	Wr = la.NewMatrix(2*n, 3)
	for i := 0; i < n; i++ {
		qx := q[2*i]
		qy := q[2*i+1]
		setNodeBlock2D(Wr, i, 1.0/float64(n), qy, 1.0/float64(n), -qx)
	}
	return
}

// Wc2D assembles the (2n x 3) dual basis of the constant-strain modes from
// the element q-values.
func Wc2D(q []float64) (Wc *la.Matrix) {
	n := len(q) / 2
	Wc = la.NewMatrix(2*n, 3)
	for i := 0; i < n; i++ {
		qx := q[2*i]
		qy := q[2*i+1]
		setNodeBlock2D(Wc, i, 2*qx, qy, 2*qy, qx)
	}
	return
}

// Nr3D assembles the (3n x 6) matrix spanning the rigid-body modes of a
// polyhedral element: three translations and three rotations about the
// average point of the corners.
func Nr3D(corners []float64) (Nr *la.Matrix) {
	n := len(corners) / 3
	mid := geom.AvgPoint(corners, 3)
	Nr = la.NewMatrix(3*n, 6)
	for i := 0; i < n; i++ {
		dx := corners[3*i] - mid[0]
		dy := corners[3*i+1] - mid[1]
		dz := corners[3*i+2] - mid[2]
		setNodeBlock3D(Nr, i, 1, dy, -dz, 1, -dx, dz, 1, -dy, dx)
	}
	return
}

// Nc3D assembles the (3n x 6) matrix spanning the constant-strain modes of a
// polyhedral element, with offsets taken from the average point of the
// corners.
func Nc3D(corners []float64) (Nc *la.Matrix) {
	n := len(corners) / 3
	mid := geom.AvgPoint(corners, 3)
	Nc = la.NewMatrix(3*n, 6)
	for i := 0; i < n; i++ {
		dx := corners[3*i] - mid[0]
		dy := corners[3*i+1] - mid[1]
		dz := corners[3*i+2] - mid[2]
		setNodeBlock3D(Nc, i, dx, dy, dz, dy, dx, dz, dz, dy, dx)
	}
	return
}

// Wr3D assembles the (3n x 6) dual basis of the rigid-body modes from the
// element q-values.
func Wr3D(q []float64) (Wr *la.Matrix) {
	n := len(q) / 3
	Wr = la.NewMatrix(3*n, 6)
	for i := 0; i < n; i++ {
		qx := q[3*i]
		qy := q[3*i+1]
		qz := q[3*i+2]
		setNodeBlock3D(Wr, i, 1.0/float64(n), qy, -qz, 1.0/float64(n), -qx, qz, 1.0/float64(n), -qy, qx)
	}
	return
}

// Wc3D assembles the (3n x 6) dual basis of the constant-strain modes from
// the element q-values.
func Wc3D(q []float64) (Wc *la.Matrix) {
	n := len(q) / 3
	Wc = la.NewMatrix(3*n, 6)
	for i := 0; i < n; i++ {
		qx := q[3*i]
		qy := q[3*i+1]
		qz := q[3*i+2]
		setNodeBlock3D(Wc, i, 2*qx, qy, qz, 2*qy, qx, qz, 2*qz, qy, qx)
	}
	return
}

// ImP computes I - P where P = Nr*Wrᵀ + Nc*Wcᵀ is the element projector
// onto the span of the rigid-body and constant-strain modes. The result is
// square with one row per degree of freedom.
func ImP(Nr, Nc, Wr, Wc *la.Matrix) (imp *la.Matrix) {
	ndof := Nr.M
	pr := la.NewMatrix(ndof, ndof)
	pc := la.NewMatrix(ndof, ndof)
	la.MatMatMul(pr, 1, Nr, Wr.GetTranspose())
	la.MatMatMul(pc, 1, Nc, Wc.GetTranspose())
	imp = la.NewMatrix(ndof, ndof)
	for i := 0; i < ndof; i++ {
		for j := 0; j < ndof; j++ {
			v := -pr.Get(i, j) - pc.Get(i, j)
			if i == j {
				v += 1
			}
			imp.Set(i, j, v)
		}
	}
	return
}
