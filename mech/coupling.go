// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/geomech/govem/geom"
	"github.com/geomech/govem/vem"
)

// PotentialGradForce3D computes the nodal forces arising from a
// cell-constant potential field (e.g. a fluid pressure) over a polyhedral
// mesh: for each cell, the force on node n is the integral of the potential
// against the gradient of the nodal basis function,
//
//	f_n = field[cell] * ∮ φ_n n dA
//
// taken over the cell boundary. The mesh topology arguments match
// AssembleSystem3D. With getMatrix set, the linear map from cell values to
// nodal forces is also returned as coordinate entries with rows the global
// dofs (3*node+component) and columns the cell indices.
func PotentialGradForce3D(pts []float64, numCellFaces, numFaceCorners, faceCorners []int, field []float64,
	getMatrix bool) (fgrad []float64, div []Entry, err error) {

	fgrad = make([]float64, len(pts))
	offsets := faceOffsets(numFaceCorners)

	face := 0
	for c := 0; c < len(numCellFaces); c++ {
		ncf := numCellFaces[c]
		cellNumFC := numFaceCorners[face : face+ncf]
		cellFC := faceCorners[offsets[face] : offsets[face+ncf-1]+cellNumFC[ncf-1]]

		indexing, reindex := vem.LocalIndexing(cellFC)
		localFaces := make([]int, len(cellFC))
		for i, id := range cellFC {
			localFaces[i] = reindex[id]
		}
		localPts := geom.PickPoints(pts, 3, indexing)

		normals, _, _, _, _, e := geom.CellGeometry(localPts, localFaces, cellNumFC)
		if e != nil {
			return nil, nil, e
		}

		// with unit volume the q-values are half the basis-weighted
		// boundary normal integrals
		q := vem.Q3D(localPts, localFaces, cellNumFC, 1.0, normals)
		for i, id := range indexing {
			for d := 0; d < 3; d++ {
				qv := 2 * q[3*i+d]
				fgrad[3*id+d] += field[c] * qv
				if getMatrix {
					div = append(div, Entry{3*id + d, c, qv})
				}
			}
		}
		face += ncf
	}
	return
}
