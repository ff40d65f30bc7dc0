// seehuhn.de/go/reproj - a raster reprojection engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package reproj

import "math"

// gaussianSolve performs Gaussian elimination with partial pivoting on the
// n x (n+rhs) augmented matrix a, in place. The pivot for column i is the
// row r >= i with maximum |a[r][i]|; if that maximum is exactly zero, the
// system is singular and gaussianSolve returns false. On success a is left
// in a state where back substitution (done by the caller) recovers the
// solution for each of the rhs right-hand-side columns appended after the
// first n columns of a.
func gaussianSolve(a [][]float64, n, rhs int) bool {
	for i := 0; i < n; i++ {
		pivot := i
		best := math.Abs(a[i][i])
		for r := i + 1; r < n; r++ {
			if v := math.Abs(a[r][i]); v > best {
				best = v
				pivot = r
			}
		}
		if best == 0 {
			return false
		}
		a[i], a[pivot] = a[pivot], a[i]

		for r := i + 1; r < n; r++ {
			factor := a[r][i] / a[i][i]
			if factor == 0 {
				continue
			}
			for c := i; c < n+rhs; c++ {
				a[r][c] -= factor * a[i][c]
			}
		}
	}
	return true
}

// backSubstitute solves the upper-triangular n x (n+rhs) augmented matrix
// a (as left by gaussianSolve) for the rhs-th right-hand-side column,
// writing the result into x.
func backSubstitute(a [][]float64, n, rhsCol int, x []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := a[i][rhsCol]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}
}

// solveAffine finds the affine coefficients (a00, a01, a02, a10, a11, a12)
// such that, for each of the three given correspondences,
//
//	u_i = a00*x_i + a01*y_i + a02
//	v_i = a10*x_i + a11*y_i + a12
//
// where (x_i, y_i) = src[i] and (u_i, v_i) = dst[i]. Both equations share
// the same 3x3 coefficient matrix in (x, y, 1), so the spec's 6x6
// block-diagonal system is solved here as one 3x5 augmented matrix with
// two right-hand-side columns (u and v) instead of two separate 3x4
// solves — mathematically identical, one elimination pass instead of two.
// Returns ok == false if the three source points are collinear (singular
// system): a degenerate triangle cannot be fit.
func solveAffine(src, dst [3]Coord) (m [6]float64, ok bool) {
	a := make([][]float64, 3)
	for i := range a {
		a[i] = []float64{src[i].X, src[i].Y, 1, dst[i].X, dst[i].Y}
	}

	if !gaussianSolve(a, 3, 2) {
		return m, false
	}

	coefU := make([]float64, 3)
	coefV := make([]float64, 3)
	backSubstitute(a, 3, 3, coefU)
	backSubstitute(a, 3, 4, coefV)

	m[0], m[1], m[2] = coefU[0], coefU[1], coefU[2] // a00, a01, a02
	m[3], m[4], m[5] = coefV[0], coefV[1], coefV[2] // a10, a11, a12
	return m, true
}
