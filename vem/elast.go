// Copyright 2025 The Govem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vem

import "github.com/cpmech/gosl/la"

// D2D returns the 3x3 plane-strain elasticity matrix in Voigt ordering
// (xx, yy, xy) for the given Young's modulus and Poisson's ratio. The shear
// entry is four times the textbook value because the dual basis matrices
// carry the compensating factor of one half on each side.
func D2D(young, poisson float64) (D *la.Matrix) {
	fac := young / ((1 + poisson) * (1 - 2*poisson))
	D = la.NewMatrix(3, 3)
	D.Set(0, 0, fac*(1-poisson))
	D.Set(0, 1, fac*poisson)
	D.Set(1, 0, fac*poisson)
	D.Set(1, 1, fac*(1-poisson))
	D.Set(2, 2, fac*2*(1-2*poisson))
	return
}

// D3D returns the 6x6 elasticity matrix in Voigt ordering
// (xx, yy, zz, xy, yz, xz) for the given Young's modulus and Poisson's
// ratio, with the same doubled-shear convention as D2D.
func D3D(young, poisson float64) (D *la.Matrix) {
	fac := young / ((1 + poisson) * (1 - 2*poisson))
	D = la.NewMatrix(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				D.Set(i, j, fac*(1-poisson))
			} else {
				D.Set(i, j, fac*poisson)
			}
		}
		D.Set(3+i, 3+i, fac*2*(1-2*poisson))
	}
	return
}
