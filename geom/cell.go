// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// starTol is the tolerance used when classifying a point against the plane
// of a face during the star-point search
const starTol = 1e-13

// IsBehindFace reports whether point pt lies strictly behind the plane of
// the face with the given centroid and outward normal, i.e. on the interior
// side. Points closer than starTol to the plane count as behind. It also
// returns the signed distance from the plane along normal.
func IsBehindFace(pt, centroid, normal []float64) (behind bool, dist float64) {
	for d := 0; d < 3; d++ {
		dist += (pt[d] - centroid[d]) * normal[d]
	}
	return dist < starTol, dist
}

// IsStarPoint reports whether pt sees every face of the cell from the
// interior side. centroids and normals hold the per-face centroids and
// outward normals, 3 values per face.
func IsStarPoint(pt []float64, centroids, normals []float64) bool {
	nfaces := len(normals) / 3
	for f := 0; f < nfaces; f++ {
		if behind, _ := IsBehindFace(pt, centroids[3*f:3*f+3], normals[3*f:3*f+3]); !behind {
			return false
		}
	}
	return true
}

// FindStarPoint searches for a point that lies behind every face of the
// cell, starting from the average of the cell corner points. Whenever a
// face is violated, the candidate is reflected past that face by 1.1 times
// its projection distance; the search succeeds once all faces pass
// consecutively. Fails for cells that are not star-shaped (or too distorted
// for this simple iteration) after 20 sweeps over the faces.
func FindStarPoint(pts, centroids, normals []float64) (pt []float64, err error) {
	nfaces := len(normals) / 3
	pt = AvgPoint(pts, 3)
	passes := 0
	maxIter := 20 * nfaces
	for it := 0; it < maxIter; it++ {
		f := it % nfaces
		behind, dist := IsBehindFace(pt, centroids[3*f:3*f+3], normals[3*f:3*f+3])
		if behind {
			passes++
			if passes == nfaces {
				return pt, nil
			}
			continue
		}
		passes = 0
		for d := 0; d < 3; d++ {
			pt[d] -= 1.1 * dist * normals[3*f+d]
		}
	}
	return nil, chk.Err("FindStarPoint: cannot locate star point. cell might not be star-shaped")
}

// inwardNormals reports whether the face normals of a cell point, on
// average, towards the cell interior. It compares each normal against the
// direction from the mean of the face centroids to the face centroid.
func inwardNormals(centroids, normals []float64) bool {
	nfaces := len(centroids) / 3
	inside := AvgPoint(centroids, 3)
	sum := 0.0
	for f := 0; f < nfaces; f++ {
		for d := 0; d < 3; d++ {
			sum += (centroids[3*f+d] - inside[d]) * normals[3*f+d]
		}
	}
	return sum < 0
}

// CellGeometry computes the per-face outward unit normals and centroids, the
// cell centroid, a star point, and the volume of a general polyhedral cell.
//
// pts holds the cell corner coordinates (3 values per corner, locally
// indexed), faceCorners the concatenated corner indices of each face
// (outward winding), and numFaceCorners the corner count per face.
//
// The volume and centroid follow from the tetrahedra connecting the star
// point to the fan triangles of each face. If the resulting centroid is
// itself a star point it replaces the initial one, since it is usually the
// better-conditioned choice. An error is returned when the winding yields
// inward normals or when no star point can be found.
func CellGeometry(pts []float64, faceCorners, numFaceCorners []int) (normals, centroids, cellCentroid, starPoint []float64, volume float64, err error) {
	nfaces := len(numFaceCorners)
	normals = make([]float64, 3*nfaces)
	centroids = make([]float64, 3*nfaces)
	pos := 0
	for f := 0; f < nfaces; f++ {
		nfc := numFaceCorners[f]
		if nfc < 3 {
			err = chk.Err("CellGeometry: face %d has %d corners. need at least 3", f, nfc)
			return
		}
		corners := PickPoints(pts, 3, faceCorners[pos:pos+nfc])
		n, c := FaceGeometry(corners)
		copy(normals[3*f:], n)
		copy(centroids[3*f:], c)
		pos += nfc
	}
	if inwardNormals(centroids, normals) {
		err = chk.Err("CellGeometry: faces are numbered with inward-pointing normals. reverse the corner winding")
		return
	}
	starPoint, err = FindStarPoint(pts, centroids, normals)
	if err != nil {
		return
	}

	// volume and centroid from star-point tetrahedra
	cellCentroid = make([]float64, 3)
	pos = 0
	for f := 0; f < nfaces; f++ {
		nfc := numFaceCorners[f]
		corners := PickPoints(pts, 3, faceCorners[pos:pos+nfc])
		tris, _ := TessellateFace(3, corners, true)
		for _, tri := range tris {
			tv := TetVolume(tri[:3], tri[3:6], tri[6:], starPoint)
			volume += tv
			for d := 0; d < 3; d++ {
				cellCentroid[d] += tv * (tri[d] + tri[3+d] + tri[6+d] + starPoint[d]) / 4.0
			}
		}
		pos += nfc
	}
	for d := 0; d < 3; d++ {
		cellCentroid[d] /= volume
	}
	if IsStarPoint(cellCentroid, centroids, normals) {
		copy(starPoint, cellCentroid)
	}
	return
}
