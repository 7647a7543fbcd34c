// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/geomech/govem/geom"

// bodyForce2D adds the contribution of a constant body force density bf
// (force per area) over one polygonal cell to the right-hand side b. Each
// node receives the force integrated over its tributary area, the two fan
// triangles adjacent to the node.
func bodyForce2D(pts []float64, corners []int, bf []float64, b []float64) {
	n := len(corners)
	cpts := geom.PickPoints(pts, 2, corners)
	tris, _ := geom.TessellateFace(2, cpts, false)
	for t, tri := range tris {
		area := geom.TriArea(tri[:2], tri[2:4], tri[4:])
		node := corners[(t/2+t%2)%n]
		for d := 0; d < 2; d++ {
			b[2*node+d] += area * bf[d]
		}
	}
}

// bodyForce3D adds the contribution of a constant body force density bf
// (force per volume) over one polyhedral cell to the right-hand side b. The
// tributary volume of each node is the sum of the tetrahedra connecting its
// adjacent fan triangles to the cell centroid. faceCorners holds global node
// ids per face.
func bodyForce3D(pts []float64, faceCorners, numFaceCorners []int, centroid []float64, bf []float64, b []float64) {
	pos := 0
	for f := 0; f < len(numFaceCorners); f++ {
		nfc := numFaceCorners[f]
		fc := faceCorners[pos : pos+nfc]
		cpts := geom.PickPoints(pts, 3, fc)
		tris, _ := geom.TessellateFace(3, cpts, false)
		for t, tri := range tris {
			vol := geom.TetVolume(tri[:3], tri[3:6], tri[6:], centroid)
			node := fc[(t/2+t%2)%nfc]
			for d := 0; d < 3; d++ {
				b[3*node+d] += vol * bf[d]
			}
		}
		pos += nfc
	}
}

// appliedForces2D adds edge tractions to the right-hand side b. neumannEdges
// holds two node ids per loaded edge and neumannForces the traction (force
// per length, 2 values) of each edge. Each edge node carries half the edge
// length.
func appliedForces2D(pts []float64, neumannEdges []int, neumannForces []float64, b []float64) {
	for e := 0; e < len(neumannEdges)/2; e++ {
		n1 := neumannEdges[2*e]
		n2 := neumannEdges[2*e+1]
		half := 0.5 * geom.Dist(pts[2*n1:2*n1+2], pts[2*n2:2*n2+2])
		for d := 0; d < 2; d++ {
			b[2*n1+d] += half * neumannForces[2*e+d]
			b[2*n2+d] += half * neumannForces[2*e+d]
		}
	}
}

// appliedForces3D adds face tractions to the right-hand side b. neumannFaces
// holds indices into the mesh face list (faceCorners with offsets faceOffsets)
// and neumannForces the traction (force per area, 3 values) of each loaded
// face. Each face node carries its tributary area from the fan tessellation.
func appliedForces3D(pts []float64, faceCorners, numFaceCorners, faceOffsets []int, neumannFaces []int, neumannForces []float64, b []float64) {
	for k, fi := range neumannFaces {
		nfc := numFaceCorners[fi]
		fc := faceCorners[faceOffsets[fi] : faceOffsets[fi]+nfc]
		cpts := geom.PickPoints(pts, 3, fc)
		tris, _ := geom.TessellateFace(3, cpts, false)
		for t, tri := range tris {
			area := geom.TriArea(tri[:3], tri[3:6], tri[6:])
			node := fc[(t/2+t%2)%nfc]
			for d := 0; d < 3; d++ {
				b[3*node+d] += area * neumannForces[3*k+d]
			}
		}
	}
}
