// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gosl/la"

	"github.com/geomech/govem/geom"
	"github.com/geomech/govem/vem"
)

// stressLocal3D computes the element-constant stress (or strain) of one
// polyhedral cell from the local displacements and returns the recovery
// operator rows (6 x ndof) together with the recovered Voigt vector.
func stressLocal3D(pts []float64, faceCorners, numFaceCorners []int, young, poisson float64, localDisp []float64, doStress bool) (op *la.Matrix, sigma []float64, err error) {
	normals, _, _, _, volume, err := geom.CellGeometry(pts, faceCorners, numFaceCorners)
	if err != nil {
		return nil, nil, err
	}
	q := vem.Q3D(pts, faceCorners, numFaceCorners, volume, normals)
	Wc := vem.Wc3D(q)

	op = Wc.GetTranspose()
	if doStress {
		D := vem.D3D(young, poisson)
		tmp := la.NewMatrix(6, Wc.M)
		la.MatMatMul(tmp, 1, D, op)
		op = tmp

		// undo the doubled-shear convention of the local matrices
		for i := 3; i < 6; i++ {
			for j := 0; j < op.N; j++ {
				op.Set(i, j, 0.5*op.Get(i, j))
			}
		}
	}

	sigma = make([]float64, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < op.N; j++ {
			sigma[i] += op.Get(i, j) * localDisp[j]
		}
	}
	return
}

// ComputeStress3D recovers the element-constant stress of every cell of a
// polyhedral mesh from the global displacement vector disp (3 values per
// node, dof = 3*node+component). The mesh topology arguments match
// AssembleSystem3D; young and poisson are per cell.
//
// With doStress unset the strain tensor is recovered instead (shear
// components as tensor strains, not engineering strains). With doMatrix set,
// the linear recovery operator is also returned as coordinate entries with
// rows 6*cell+component and columns the global dofs, so that smat applied to
// disp reproduces the stress values.
func ComputeStress3D(pts []float64, numCellFaces, numFaceCorners, faceCorners []int, young, poisson []float64,
	disp []float64, doMatrix, doStress bool) (stress [][]float64, smat []Entry, err error) {

	ncells := len(numCellFaces)
	stress = make([][]float64, ncells)
	offsets := faceOffsets(numFaceCorners)

	face := 0
	for c := 0; c < ncells; c++ {
		ncf := numCellFaces[c]
		cellNumFC := numFaceCorners[face : face+ncf]
		cellFC := faceCorners[offsets[face] : offsets[face+ncf-1]+cellNumFC[ncf-1]]

		indexing, reindex := vem.LocalIndexing(cellFC)
		localFaces := make([]int, len(cellFC))
		for i, id := range cellFC {
			localFaces[i] = reindex[id]
		}
		localPts := geom.PickPoints(pts, 3, indexing)

		localDisp := make([]float64, 3*len(indexing))
		for i, id := range indexing {
			copy(localDisp[3*i:3*i+3], disp[3*id:3*id+3])
		}

		op, sigma, e := stressLocal3D(localPts, localFaces, cellNumFC, young[c], poisson[c], localDisp, doStress)
		if e != nil {
			return nil, nil, e
		}
		stress[c] = sigma

		if doMatrix {
			for i := 0; i < 6; i++ {
				for j := 0; j < op.N; j++ {
					smat = append(smat, Entry{6*c + i, 3*indexing[j/3] + j%3, op.Get(i, j)})
				}
			}
		}
		face += ncf
	}
	return
}
