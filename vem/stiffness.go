// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/geomech/govem/geom"
)

// StabilityChoice selects how the stabilization term of the element
// stiffness matrix is scaled.
type StabilityChoice int

const (
	// StabSimple scales the identity by volume*tr(D)/tr(NcᵀNc)
	StabSimple StabilityChoice = iota

	// StabHarmonic scales the identity by the harmonic-mean variant
	// volume*tr(D)*invtrace(NcᵀNc)/9
	StabHarmonic

	// StabDRecipe uses a diagonal matrix with entries
	// max(volume^(1/3), Kc_ii) taken from the consistency term
	StabDRecipe
)

// trace returns the sum of the diagonal entries of a square matrix
func trace(mat *la.Matrix) (res float64) {
	for i := 0; i < mat.M; i++ {
		res += mat.Get(i, i)
	}
	return
}

// traceGram returns tr(AᵀA), the squared Frobenius norm of A
func traceGram(a *la.Matrix) (res float64) {
	for i := 0; i < a.M; i++ {
		for j := 0; j < a.N; j++ {
			res += a.Get(i, j) * a.Get(i, j)
		}
	}
	return
}

// invTraceGram returns the sum of the reciprocal diagonal entries of AᵀA
func invTraceGram(a *la.Matrix) (res float64) {
	for j := 0; j < a.N; j++ {
		djj := 0.0
		for i := 0; i < a.M; i++ {
			djj += a.Get(i, j) * a.Get(i, j)
		}
		res += 1.0 / djj
	}
	return
}

// stabDiagonal computes the diagonal of the stabilization scaling matrix S.
// kc is the consistency part of the stiffness matrix, needed only by the
// StabDRecipe choice. The volume exponent is 1/3 regardless of dimension.
func stabDiagonal(D, Nc, kc *la.Matrix, volume float64, choice StabilityChoice) (s []float64) {
	ndof := Nc.M
	s = make([]float64, ndof)
	switch choice {
	case StabSimple:
		alpha := volume * trace(D) / traceGram(Nc)
		for i := 0; i < ndof; i++ {
			s[i] = alpha
		}
	case StabHarmonic:
		alpha := volume * trace(D) * invTraceGram(Nc) / 9.0
		for i := 0; i < ndof; i++ {
			s[i] = alpha
		}
	case StabDRecipe:
		hd := math.Cbrt(volume)
		for i := 0; i < ndof; i++ {
			s[i] = utl.Max(hd, kc.Get(i, i))
		}
	default:
		chk.Panic("stabDiagonal: unknown stability choice %d", choice)
	}
	return
}

// FinalAssembly combines the consistency and stabilization terms into the
// element stiffness matrix
//
//	K = volume * Wc*D*Wcᵀ + (I-P)ᵀ * S * (I-P)
//
// where S is the diagonal scaling selected by stab.
func FinalAssembly(Wc, D, Nc, imp *la.Matrix, stab StabilityChoice, volume float64) (K *la.Matrix) {
	ndof := Wc.M
	nmodes := Wc.N

	// consistency term
	wcd := la.NewMatrix(ndof, nmodes)
	la.MatMatMul(wcd, volume, Wc, D)
	K = la.NewMatrix(ndof, ndof)
	la.MatMatMul(K, 1, wcd, Wc.GetTranspose())

	// stabilization term
	s := stabDiagonal(D, Nc, K, volume, stab)
	for i := 0; i < ndof; i++ {
		for j := 0; j < ndof; j++ {
			v := 0.0
			for k := 0; k < ndof; k++ {
				v += imp.Get(k, i) * s[k] * imp.Get(k, j)
			}
			K.Set(i, j, K.Get(i, j)+v)
		}
	}
	return
}

// StiffnessMatrix2D computes the stiffness matrix of a single polygonal
// element under plane strain. pts holds the global node coordinates (2
// values per node) and cornerIxs the node ids of the polygon in
// counter-clockwise order. The rows and columns of K follow cornerIxs, two
// degrees of freedom per node.
func StiffnessMatrix2D(pts []float64, cornerIxs []int, young, poisson float64, stab StabilityChoice) (K *la.Matrix, err error) {
	corners := geom.PickPoints(pts, 2, cornerIxs)
	if signed := geom.PolygonArea2D(corners); signed <= 0 {
		return nil, chk.Err("StiffnessMatrix2D: element has nonpositive signed area %g. corners must wind counter-clockwise", signed)
	}
	area := geom.FaceIntegral(2, corners, nil)
	q := Q2D(corners)
	D := D2D(young, poisson)
	Nr := Nr2D(corners)
	Nc := Nc2D(corners)
	Wr := Wr2D(q)
	Wc := Wc2D(q)
	imp := ImP(Nr, Nc, Wr, Wc)
	K = FinalAssembly(Wc, D, Nc, imp, stab, area)
	return
}

// StiffnessMatrix3D computes the stiffness matrix of a single polyhedral
// element. pts holds the global node coordinates (3 values per node),
// faceCorners the concatenated global corner ids of each face with outward
// winding, and numFaceCorners the corner count per face. The rows and
// columns of K follow indexing, the sorted set of node ids the element
// references, three degrees of freedom per node. The element centroid is
// returned as a side output.
func StiffnessMatrix3D(pts []float64, faceCorners, numFaceCorners []int, young, poisson float64, stab StabilityChoice) (K *la.Matrix, centroid []float64, indexing []int, err error) {
	indexing, reindex := LocalIndexing(faceCorners)
	localFaces := make([]int, len(faceCorners))
	for i, id := range faceCorners {
		localFaces[i] = reindex[id]
	}
	localPts := geom.PickPoints(pts, 3, indexing)

	normals, _, centroid, _, volume, err := geom.CellGeometry(localPts, localFaces, numFaceCorners)
	if err != nil {
		return nil, nil, nil, err
	}

	q := Q3D(localPts, localFaces, numFaceCorners, volume, normals)
	D := D3D(young, poisson)
	Nr := Nr3D(localPts)
	Nc := Nc3D(localPts)
	Wr := Wr3D(q)
	Wc := Wc3D(q)
	imp := ImP(Nr, Nc, Wr, Wc)
	K = FinalAssembly(Wc, D, Nc, imp, stab, volume)
	return
}
