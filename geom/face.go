// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// PolygonArea2D returns the signed shoelace area of a simple 2D polygon
// whose corner coordinates are stored consecutively in pts. The area is
// positive for counter-clockwise winding.
func PolygonArea2D(pts []float64) (area float64) {
	n := len(pts) / 2
	for i := 0; i < n; i++ {
		inext := (i + 1) % n
		area += 0.5 * (pts[2*i]*pts[2*inext+1] - pts[2*inext]*pts[2*i+1])
	}
	return
}

// PolygonCentroid2D returns the geometric centroid of a simple 2D polygon
// whose corner coordinates are stored consecutively in pts.
//
// The centroid (Cx, Cy) is computed from the shoelace formula
//
//	C_d = 1/(6A) Σ_{i} (d_i + d_{i+1}) (x_i y_{i+1} - x_{i+1} y_i)
//
// where A is the signed area.
func PolygonCentroid2D(pts []float64) (res []float64) {
	res = make([]float64, 2)
	n := len(pts) / 2
	area := 0.0
	for i := 0; i < n; i++ {
		inext := (i + 1) % n
		fac := pts[2*i]*pts[2*inext+1] - pts[2*inext]*pts[2*i+1]
		area += 0.5 * fac
		for d := 0; d < 2; d++ {
			res[d] += (pts[2*i+d] + pts[2*inext+d]) * fac
		}
	}
	res[0] /= 6 * area
	res[1] /= 6 * area
	return
}

// PolygonCentroid3D returns the centroid of an (approximately) planar
// polygon embedded in 3D space, by fanning triangles about the average
// point. Might be inaccurate for strongly non-convex faces.
func PolygonCentroid3D(pts []float64) (res []float64) {
	res = make([]float64, 3)
	n := len(pts) / 3
	inside := AvgPoint(pts, 3)
	area := 0.0
	for i := 0; i < n; i++ {
		inext := (i + 1) % n
		a := TriArea(pts[3*i:3*i+3], pts[3*inext:3*inext+3], inside)
		area += a
		for d := 0; d < 3; d++ {
			res[d] += a * (pts[3*i+d] + pts[3*inext+d] + inside[d]) / 3.0
		}
	}
	for d := 0; d < 3; d++ {
		res[d] /= area
	}
	return
}

// faceCentroid computes the centroid of a face living in dim-space
func faceCentroid(corners []float64, dim int) []float64 {
	switch dim {
	case 2:
		return PolygonCentroid2D(corners)
	case 3:
		return PolygonCentroid3D(corners)
	}
	chk.Panic("faceCentroid: dimension must be 2 or 3. dim=%d is invalid", dim)
	return nil
}

// TessellateFace splits a polygonal face, defined by its corner coordinates
// stored consecutively in corners, into 2n triangles fanned through the face
// centroid and the edge midpoints, so that each original edge contributes
// two triangles sharing the midpoint. Each returned triangle holds its three
// corner coordinates consecutively (3*dim values, the first point being the
// face centroid). The face centroid is returned as a side output.
//
// If the face is already a triangle and skipIfTri is set, the original
// triangle is returned unchanged (area-preserving exact case).
func TessellateFace(dim int, corners []float64, skipIfTri bool) (tris [][]float64, centroid []float64) {
	n := len(corners) / dim
	centroid = faceCentroid(corners, dim)
	if skipIfTri && n == 3 {
		tri := make([]float64, 3*dim)
		copy(tri, corners)
		return [][]float64{tri}, centroid
	}
	tris = make([][]float64, 0, 2*n)
	mid := make([]float64, dim)
	for c := 0; c < n; c++ {
		cnext := (c + 1) % n
		Mid(mid, corners[dim*c:dim*c+dim], corners[dim*cnext:dim*cnext+dim])

		// first triangle: centroid, corner, edge midpoint
		tri1 := make([]float64, 0, 3*dim)
		tri1 = append(tri1, centroid...)
		tri1 = append(tri1, corners[dim*c:dim*c+dim]...)
		tri1 = append(tri1, mid...)
		tris = append(tris, tri1)

		// second triangle: centroid, edge midpoint, next corner
		tri2 := make([]float64, 0, 3*dim)
		tri2 = append(tri2, centroid...)
		tri2 = append(tri2, mid...)
		tri2 = append(tri2, corners[dim*cnext:dim*cnext+dim]...)
		tris = append(tris, tri2)
	}
	return
}

// FaceIntegral computes the integral over a (possibly mildly non-planar)
// face of the piecewise-linear nodal basis function whose corner values are
// given in cornerVals, by summing the areas of the fan triangles from
// TessellateFace weighted by the value at the corner each triangle belongs
// to. A nil cornerVals integrates the constant 1, i.e. returns the face area
// (the element "volume" in 2D).
//
// Corner coordinates must be ordered consecutively around the face.
func FaceIntegral(dim int, corners []float64, cornerVals []float64) (res float64) {
	n := len(corners) / dim
	tris, _ := TessellateFace(dim, corners, false)
	for i := 0; i < n; i++ {
		t1 := tris[2*i]
		t2 := tris[2*i+1]
		inext := (i + 1) % n
		fval1, fval2 := 1.0, 1.0
		if cornerVals != nil {
			fval1 = cornerVals[i]
			fval2 = cornerVals[inext]
		}
		res += TriArea(t1[:dim], t1[dim:2*dim], t1[2*dim:]) * fval1
		res += TriArea(t2[:dim], t2[dim:2*dim], t2[2*dim:]) * fval2
	}
	return
}

// FaceGeometry computes the unit normal and the centroid of a polygonal
// face embedded in 3D space. The normal is the area-weighted average of the
// fan-triangle normals, subsequently normalized, which tolerates mild
// non-planarity. Its orientation follows the corner winding.
func FaceGeometry(corners []float64) (normal, centroid []float64) {
	tris, centroid := TessellateFace(3, corners, false)
	normal = make([]float64, 3)
	tn := make([]float64, 3)
	for _, tri := range tris {
		TriNormal(tn, tri[:3], tri[3:6], tri[6:])
		for d := 0; d < 3; d++ {
			normal[d] += tn[d]
		}
	}
	nrm := Norm(normal)
	for d := 0; d < 3; d++ {
		normal[d] /= nrm
	}
	return
}
