// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometry engine behind the virtual element
// assembly: point algebra on flat coordinate slices, tessellation of
// polygonal faces into triangles, face integrals of nodal basis functions,
// and star-point based integration of polyhedral cells.
//
// Points are never wrapped in structs; a point set is a flat []float64 with
// node i occupying pts[dim*i : dim*i+dim], and everything else refers to
// points by index. Callers own the arrays.
package geom

import "math"

// LinComb computes the linear combination res := α*p + β*q of two points
func LinComb(res []float64, α float64, p []float64, β float64, q []float64) {
	for i := 0; i < len(res); i++ {
		res[i] = α*p[i] + β*q[i]
	}
}

// Add computes the sum res := p + q of two points
func Add(res, p, q []float64) {
	LinComb(res, 1, p, 1, q)
}

// Sub computes the difference res := p - q of two points
func Sub(res, p, q []float64) {
	LinComb(res, 1, p, -1, q)
}

// Mid computes the midpoint res := (p + q) / 2 of two points
func Mid(res, p, q []float64) {
	LinComb(res, 0.5, p, 0.5, q)
}

// Norm returns the Euclidean norm of a vector
func Norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dist returns the Euclidean distance between two points
func Dist(p, q []float64) float64 {
	sum := 0.0
	for i := 0; i < len(p); i++ {
		d := p[i] - q[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// AvgPoint returns the "average" point of a set of points stored flat in
// pts, defined as the coordinate-wise mean. Note that this point is not
// necessarily the same as the geometric centroid.
func AvgPoint(pts []float64, dim int) (res []float64) {
	res = make([]float64, dim)
	n := len(pts) / dim
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			res[d] += pts[dim*i+d]
		}
	}
	for d := 0; d < dim; d++ {
		res[d] /= float64(n)
	}
	return
}

// PickPoints collects the coordinates of a selection of points, given by
// index, consecutively in a new flat slice
func PickPoints(pts []float64, dim int, ids []int) (res []float64) {
	res = make([]float64, 0, dim*len(ids))
	for _, id := range ids {
		res = append(res, pts[dim*id:dim*id+dim]...)
	}
	return
}

// Det3 returns the determinant of the 3×3 matrix whose rows (or columns;
// equivalent here) are the vectors a, b and c
func Det3(a, b, c []float64) float64 {
	return a[0]*(b[1]*c[2]-b[2]*c[1]) - a[1]*(b[0]*c[2]-b[2]*c[0]) + a[2]*(b[0]*c[1]-b[1]*c[0])
}

// TriArea returns the (unsigned) area of a triangle embedded in 2D or 3D
// space, computed with Heron's formula from the corner points a, b and c
func TriArea(a, b, c []float64) float64 {
	l1 := Dist(b, a)
	l2 := Dist(c, b)
	l3 := Dist(a, c)
	s := 0.5 * (l1 + l2 + l3)
	return math.Sqrt(s * (s - l1) * (s - l2) * (s - l3))
}

// TriNormal computes the normal of a triangle embedded in 3D space, scaled
// by the triangle area, and writes it to n (3D only)
func TriNormal(n []float64, a, b, c []float64) {
	v1 := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v2 := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n[0] = 0.5 * (v1[1]*v2[2] - v1[2]*v2[1])
	n[1] = 0.5 * (v1[2]*v2[0] - v1[0]*v2[2])
	n[2] = 0.5 * (v1[0]*v2[1] - v1[1]*v2[0])
}

// TetVolume returns the unsigned volume of the tetrahedron with corner
// points a, b, c and d
func TetVolume(a, b, c, d []float64) float64 {
	v1 := make([]float64, 3)
	v2 := make([]float64, 3)
	v3 := make([]float64, 3)
	Sub(v1, a, d)
	Sub(v2, b, d)
	Sub(v3, c, d)
	return math.Abs(Det3(v1, v2, v3)) / 6.0
}
