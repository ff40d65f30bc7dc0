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

import (
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
)

// affine is a 2D affine map u = A*x + B*y + C, v = D*x + E*y + F. It is
// the package's working representation for the per-triangle transform
// solved by solveAffine, kept separate from matrix.Matrix's PDF-style
// [a b c d e f] layout (x'=a*x+c*y+e, y'=b*x+d*y+f) and from
// golang.org/x/image/math/f64.Aff3's row-major layout, since each
// consumer wants a different axis order.
type affine struct {
	A, B, C float64
	D, E, F float64
}

// identityAffine is the identity transform.
var identityAffine = affine{A: 1, E: 1}

// apply evaluates the transform at p.
func (m affine) apply(p Coord) Coord {
	return Coord{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// translateAffine returns the transform p -> p + (tx, ty).
func translateAffine(tx, ty float64) affine {
	return affine{A: 1, B: 0, C: tx, D: 0, E: 1, F: ty}
}

// scaleAffine returns the transform (x, y) -> (sx*x, sy*y).
func scaleAffine(sx, sy float64) affine {
	return affine{A: sx, B: 0, C: 0, D: 0, E: sy, F: 0}
}

// compose returns the transform p -> f(g(p)).
func compose(f, g affine) affine {
	return affine{
		A: f.A*g.A + f.B*g.D,
		B: f.A*g.B + f.B*g.E,
		C: f.A*g.C + f.B*g.F + f.C,
		D: f.D*g.A + f.E*g.D,
		E: f.D*g.B + f.E*g.E,
		F: f.D*g.C + f.E*g.F + f.F,
	}
}

// invert returns the inverse of m, or ok == false if m is singular.
func (m affine) invert() (affine, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		return affine{}, false
	}
	invA := m.E / det
	invB := -m.B / det
	invD := -m.D / det
	invE := m.A / det
	invC := -(invA*m.C + invB*m.F)
	invF := -(invD*m.C + invE*m.F)
	return affine{A: invA, B: invB, C: invC, D: invD, E: invE, F: invF}, true
}

// toMatrix converts m to seehuhn.de/go/geom/matrix's [a b c d e f] layout
// (x' = a*x + c*y + e, y' = b*x + d*y + f).
func (m affine) toMatrix() matrix.Matrix {
	return matrix.Matrix{m.A, m.D, m.B, m.E, m.C, m.F}
}

// toAff3 converts m to golang.org/x/image/math/f64.Aff3's row-major
// layout, as consumed directly by draw.Transformer.Transform.
func (m affine) toAff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
