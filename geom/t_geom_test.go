// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_points01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("points01. point algebra")

	p := []float64{1, 2, 3}
	q := []float64{4, 6, 8}
	res := make([]float64, 3)

	Add(res, p, q)
	chk.Array(tst, "p+q", 1e-17, res, []float64{5, 8, 11})

	Sub(res, q, p)
	chk.Array(tst, "q-p", 1e-17, res, []float64{3, 4, 5})

	Mid(res, p, q)
	chk.Array(tst, "mid(p,q)", 1e-17, res, []float64{2.5, 4, 5.5})

	LinComb(res, 2, p, -1, q)
	chk.Array(tst, "2p-q", 1e-17, res, []float64{-2, -2, -2})

	chk.Float64(tst, "norm(q-p)", 1e-15, Dist(p, q), 7.0710678118654755)

	avg := AvgPoint([]float64{0, 0, 1, 0, 1, 1, 0, 1}, 2)
	chk.Array(tst, "avg(square)", 1e-17, avg, []float64{0.5, 0.5})

	pick := PickPoints([]float64{0, 0, 0, 1, 0, 0, 1, 1, 0}, 3, []int{2, 0})
	chk.Array(tst, "pick", 1e-17, pick, []float64{1, 1, 0, 0, 0, 0})
}

func Test_points02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("points02. triangle and tetrahedron measures")

	a := []float64{0, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{0, 1, 0}
	d := []float64{0, 0, 1}

	chk.Float64(tst, "area(abc)", 1e-15, TriArea(a, b, c), 0.5)
	chk.Float64(tst, "vol(abcd)", 1e-15, TetVolume(a, b, c, d), 1.0/6.0)
	chk.Float64(tst, "vol(abdc)", 1e-15, TetVolume(a, b, d, c), 1.0/6.0) // volume is unsigned

	n := make([]float64, 3)
	TriNormal(n, a, b, c)
	chk.Array(tst, "normal(abc)", 1e-15, n, []float64{0, 0, 0.5}) // length equals area
}

func Test_tess01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tess01. face tessellation preserves area")

	// unit square
	square := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	tris, centroid := TessellateFace(2, square, false)
	chk.Int(tst, "ntris(square)", len(tris), 8)
	chk.Array(tst, "centroid(square)", 1e-15, centroid, []float64{0.5, 0.5})
	area := 0.0
	for _, tri := range tris {
		area += TriArea(tri[:2], tri[2:4], tri[4:])
	}
	chk.Float64(tst, "area(square)", 1e-14, area, 1.0)

	// pentagon: compare against the shoelace area
	pentagon := []float64{0, 0, 2, 0, 2.5, 1, 1, 2.2, -0.5, 1}
	shoelace := PolygonArea2D(pentagon)
	tris, _ = TessellateFace(2, pentagon, false)
	chk.Int(tst, "ntris(pentagon)", len(tris), 10)
	area = 0.0
	for _, tri := range tris {
		area += TriArea(tri[:2], tri[2:4], tri[4:])
	}
	io.Pforan("pentagon: shoelace=%v fan=%v\n", shoelace, area)
	chk.Float64(tst, "area(pentagon)", 1e-14, area, shoelace)

	// triangle with skipIfTri: passed through unchanged
	triangle := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	tris, _ = TessellateFace(3, triangle, true)
	chk.Int(tst, "ntris(triangle)", len(tris), 1)
	chk.Array(tst, "triangle passthrough", 1e-17, tris[0], triangle)
}

func Test_faceint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("faceint01. face integrals of linear fields")

	square := []float64{0, 0, 1, 0, 1, 1, 0, 1}

	// constant 1 integrates to the area
	chk.Float64(tst, "int(1)", 1e-14, FaceIntegral(2, square, nil), 1.0)

	// linear field f=x: exact integral over the unit square is 1/2
	xvals := []float64{0, 1, 1, 0}
	chk.Float64(tst, "int(x)", 1e-14, FaceIntegral(2, square, xvals), 0.5)

	// each nodal basis function carries a quarter of the area
	for i := 0; i < 4; i++ {
		vals := make([]float64, 4)
		vals[i] = 1
		chk.Float64(tst, io.Sf("int(phi%d)", i), 1e-14, FaceIntegral(2, square, vals), 0.25)
	}
}

func Test_facegeom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("facegeom01. normal and centroid of a 3D face")

	// unit square at z=2, counter-clockwise seen from above
	corners := []float64{0, 0, 2, 1, 0, 2, 1, 1, 2, 0, 1, 2}
	normal, centroid := FaceGeometry(corners)
	chk.Array(tst, "normal", 1e-15, normal, []float64{0, 0, 1})
	chk.Array(tst, "centroid", 1e-15, centroid, []float64{0.5, 0.5, 2})

	// reversed winding flips the normal
	reversed := []float64{0, 1, 2, 1, 1, 2, 1, 0, 2, 0, 0, 2}
	normal, _ = FaceGeometry(reversed)
	chk.Array(tst, "normal(reversed)", 1e-15, normal, []float64{0, 0, -1})
}

func Test_cellgeom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cellgeom01. unit cube geometry")

	pts := []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
		1, 0, 1,
		1, 1, 1,
		0, 1, 1,
	}
	faceCorners := []int{
		0, 3, 2, 1, // bottom
		4, 5, 6, 7, // top
		0, 1, 5, 4, // y=0
		1, 2, 6, 5, // x=1
		2, 3, 7, 6, // y=1
		3, 0, 4, 7, // x=0
	}
	numFaceCorners := []int{4, 4, 4, 4, 4, 4}

	normals, centroids, cellCentroid, starPoint, volume, err := CellGeometry(pts, faceCorners, numFaceCorners)
	if err != nil {
		tst.Errorf("CellGeometry failed: %v", err)
		return
	}
	chk.Float64(tst, "volume", 1e-14, volume, 1.0)
	chk.Array(tst, "cell centroid", 1e-14, cellCentroid, []float64{0.5, 0.5, 0.5})
	chk.Array(tst, "star point", 1e-14, starPoint, []float64{0.5, 0.5, 0.5})
	chk.Array(tst, "normals", 1e-14, normals, []float64{
		0, 0, -1,
		0, 0, 1,
		0, -1, 0,
		1, 0, 0,
		0, 1, 0,
		-1, 0, 0,
	})
	chk.Array(tst, "face centroids", 1e-14, centroids, []float64{
		0.5, 0.5, 0,
		0.5, 0.5, 1,
		0.5, 0, 0.5,
		1, 0.5, 0.5,
		0.5, 1, 0.5,
		0, 0.5, 0.5,
	})
}

func Test_starpt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("starpt01. star-point search projects violated faces")

	// half-spaces of the unit cube
	centroids := []float64{
		0.5, 0.5, 0,
		0.5, 0.5, 1,
		0.5, 0, 0.5,
		1, 0.5, 0.5,
		0.5, 1, 0.5,
		0, 0.5, 0.5,
	}
	normals := []float64{
		0, 0, -1,
		0, 0, 1,
		0, -1, 0,
		1, 0, 0,
		0, 1, 0,
		-1, 0, 0,
	}

	// the seed (the corner average) violates the x=1 face and must be
	// projected back: 3 - 1.1*2 = 0.8
	pt, err := FindStarPoint([]float64{3, 0.5, 0.5}, centroids, normals)
	if err != nil {
		tst.Errorf("FindStarPoint failed: %v", err)
		return
	}
	chk.Array(tst, "projected point", 1e-14, pt, []float64{0.8, 0.5, 0.5})
	if !IsStarPoint(pt, centroids, normals) {
		tst.Errorf("projected point is not a star point")
		return
	}

	// two half-spaces facing each other admit no star point
	centroids = []float64{0, 0, 0, 1, 0, 0}
	normals = []float64{1, 0, 0, -1, 0, 0}
	_, err = FindStarPoint([]float64{0.5, 0, 0}, centroids, normals)
	if err == nil {
		tst.Errorf("FindStarPoint should have failed on contradictory half-spaces")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_cellgeom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cellgeom02. inward winding is rejected")

	pts := []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
		1, 0, 1,
		1, 1, 1,
		0, 1, 1,
	}

	// all windings reversed: normals point into the cell
	faceCorners := []int{
		1, 2, 3, 0,
		7, 6, 5, 4,
		4, 5, 1, 0,
		5, 6, 2, 1,
		6, 7, 3, 2,
		7, 4, 0, 3,
	}
	numFaceCorners := []int{4, 4, 4, 4, 4, 4}

	_, _, _, _, _, err := CellGeometry(pts, faceCorners, numFaceCorners)
	if err == nil {
		tst.Errorf("CellGeometry should have failed on inward normals")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_cellgeom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cellgeom03. star-shaped non-convex prism")

	// prism over an L-shaped cross section ([0,2]x[0,2] minus [1,2]x[1,2]):
	// only points with x<=1 and y<=1 see every face
	pts := []float64{
		0, 0, 0,
		2, 0, 0,
		2, 1, 0,
		1, 1, 0,
		1, 2, 0,
		0, 2, 0,
		0, 0, 1,
		2, 0, 1,
		2, 1, 1,
		1, 1, 1,
		1, 2, 1,
		0, 2, 1,
	}
	faceCorners := []int{
		0, 5, 4, 3, 2, 1, // bottom
		6, 7, 8, 9, 10, 11, // top
		0, 1, 7, 6,
		1, 2, 8, 7,
		2, 3, 9, 8, // notch, y=1
		3, 4, 10, 9, // notch, x=1
		4, 5, 11, 10,
		5, 0, 6, 11,
	}
	numFaceCorners := []int{6, 6, 4, 4, 4, 4, 4, 4}

	normals, centroids, cellCentroid, starPoint, volume, err := CellGeometry(pts, faceCorners, numFaceCorners)
	if err != nil {
		tst.Errorf("CellGeometry failed: %v", err)
		return
	}
	chk.Float64(tst, "volume", 1e-13, volume, 3.0)
	chk.Array(tst, "cell centroid", 1e-13, cellCentroid, []float64{2.5 / 3.0, 2.5 / 3.0, 0.5})

	// the centroid lies in the star region, so it supersedes the search
	// result
	chk.Array(tst, "star point", 1e-13, starPoint, cellCentroid)
	if !IsStarPoint(starPoint, centroids, normals) {
		tst.Errorf("star point does not see all faces")
		return
	}
	chk.Array(tst, "notch normals", 1e-14, normals[12:18], []float64{0, 1, 0, 1, 0, 0})
}
