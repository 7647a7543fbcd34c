// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/geomech/govem/vem"
)

// checkCellArrays validates the lengths of the per-cell material and load
// arrays against the cell count
func checkCellArrays(ncells, dim int, young, poisson, bodyForce []float64) error {
	if len(young) != ncells || len(poisson) != ncells {
		return chk.Err("need one Young's modulus and one Poisson's ratio per cell: got %d and %d for %d cells", len(young), len(poisson), ncells)
	}
	if len(bodyForce) != dim*ncells {
		return chk.Err("need %d body force components per cell: got %d values for %d cells", dim, len(bodyForce), ncells)
	}
	return nil
}

// AssembleSystem2D assembles the global stiffness matrix and right-hand
// side of a plane-strain elasticity problem over a polygonal mesh.
//
// pts holds the node coordinates (2 per node), cellCorners the concatenated
// counter-clockwise corner ids per cell and numCellCorners the corner count
// per cell. young, poisson and bodyForce (2 values, force per area) are
// given per cell. neumannEdges holds two node ids per loaded boundary edge
// with the traction (force per length, 2 values per edge) in neumannForces.
//
// Dirichlet conditions are prescribed through fixedDofs (strictly ascending
// global dof numbers, dof = 2*node+component) and fixedVals. With reduce
// set, the fixed dofs are eliminated and the remaining ones renumbered
// contiguously; otherwise they are kept with unit diagonal rows. size is
// the number of dofs of the returned system.
func AssembleSystem2D(pts []float64, cellCorners, numCellCorners []int, young, poisson, bodyForce []float64,
	fixedDofs []int, fixedVals []float64, neumannEdges []int, neumannForces []float64,
	stab vem.StabilityChoice, reduce bool) (A []Entry, b []float64, size int, err error) {

	if err = checkCellArrays(len(numCellCorners), 2, young, poisson, bodyForce); err != nil {
		return nil, nil, 0, err
	}
	ndof := len(pts)
	b = make([]float64, ndof)

	pos := 0
	for c := 0; c < len(numCellCorners); c++ {
		nc := numCellCorners[c]
		corners := cellCorners[pos : pos+nc]
		if Verbose {
			io.Pf("assembling 2D cell %d (%d corners)\n", c, nc)
		}

		K, e := vem.StiffnessMatrix2D(pts, corners, young[c], poisson[c], stab)
		if e != nil {
			return nil, nil, 0, e
		}
		for i := 0; i < K.M; i++ {
			gi := 2*corners[i/2] + i%2
			for j := 0; j < K.N; j++ {
				gj := 2*corners[j/2] + j%2
				A = append(A, Entry{gi, gj, K.Get(i, j)})
			}
		}

		bodyForce2D(pts, corners, bodyForce[2*c:2*c+2], b)
		pos += nc
	}

	appliedForces2D(pts, neumannEdges, neumannForces, b)

	if reduce {
		A, b, err = ReduceSystem(A, b, fixedDofs, fixedVals)
	} else {
		A, b, err = SetBoundaryConditions(A, b, fixedDofs, fixedVals)
	}
	if err != nil {
		return nil, nil, 0, err
	}
	return A, b, len(b), nil
}

// faceOffsets returns the position of each face's first corner id within
// the concatenated faceCorners list
func faceOffsets(numFaceCorners []int) []int {
	offsets := make([]int, len(numFaceCorners))
	pos := 0
	for f, nfc := range numFaceCorners {
		offsets[f] = pos
		pos += nfc
	}
	return offsets
}

// AssembleSystem3D assembles the global stiffness matrix and right-hand
// side of an elasticity problem over a polyhedral mesh.
//
// pts holds the node coordinates (3 per node). The mesh topology is given
// as numCellFaces (faces per cell), numFaceCorners (corners per face, flat
// over all cells) and faceCorners (global corner ids per face with outward
// winding, flat). young, poisson and bodyForce (3 values, force per volume)
// are given per cell. neumannFaces holds indices into the flat face list
// with the traction (force per area, 3 values per face) in neumannForces.
//
// Dirichlet handling matches AssembleSystem2D, with dof = 3*node+component.
func AssembleSystem3D(pts []float64, numCellFaces, numFaceCorners, faceCorners []int, young, poisson, bodyForce []float64,
	fixedDofs []int, fixedVals []float64, neumannFaces []int, neumannForces []float64,
	stab vem.StabilityChoice, reduce bool) (A []Entry, b []float64, size int, err error) {

	if err = checkCellArrays(len(numCellFaces), 3, young, poisson, bodyForce); err != nil {
		return nil, nil, 0, err
	}
	ndof := len(pts)
	b = make([]float64, ndof)
	offsets := faceOffsets(numFaceCorners)

	face := 0
	for c := 0; c < len(numCellFaces); c++ {
		ncf := numCellFaces[c]
		cellNumFC := numFaceCorners[face : face+ncf]
		cellFC := faceCorners[offsets[face] : offsets[face+ncf-1]+cellNumFC[ncf-1]]
		if Verbose {
			io.Pf("assembling 3D cell %d (%d faces)\n", c, ncf)
		}

		K, centroid, indexing, e := vem.StiffnessMatrix3D(pts, cellFC, cellNumFC, young[c], poisson[c], stab)
		if e != nil {
			return nil, nil, 0, e
		}
		for i := 0; i < K.M; i++ {
			gi := 3*indexing[i/3] + i%3
			for j := 0; j < K.N; j++ {
				gj := 3*indexing[j/3] + j%3
				A = append(A, Entry{gi, gj, K.Get(i, j)})
			}
		}

		bodyForce3D(pts, cellFC, cellNumFC, centroid, bodyForce[3*c:3*c+3], b)
		face += ncf
	}

	appliedForces3D(pts, faceCorners, numFaceCorners, offsets, neumannFaces, neumannForces, b)

	if reduce {
		A, b, err = ReduceSystem(A, b, fixedDofs, fixedVals)
	} else {
		A, b, err = SetBoundaryConditions(A, b, fixedDofs, fixedVals)
	}
	if err != nil {
		return nil, nil, 0, err
	}
	return A, b, len(b), nil
}
