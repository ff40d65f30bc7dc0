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
	"math"
	"testing"
)

func coordClose(a, b Coord, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestAffineIdentity(t *testing.T) {
	p := Coord{X: 3, Y: -7}
	if got := identityAffine.apply(p); got != p {
		t.Errorf("identityAffine.apply(%v) = %v, want unchanged", p, got)
	}
}

func TestAffineComposeOrder(t *testing.T) {
	// compose(f, g) must apply g first, then f: translate-then-scale vs
	// scale-then-translate give different results for a non-origin point.
	translate := translateAffine(10, 0)
	scale := scaleAffine(2, 2)

	p := Coord{X: 1, Y: 1}
	gotFG := compose(translate, scale).apply(p) // scale then translate
	want := Coord{X: 2*1 + 10, Y: 2 * 1}
	if gotFG != want {
		t.Errorf("compose(translate, scale).apply(%v) = %v, want %v", p, gotFG, want)
	}

	gotGF := compose(scale, translate).apply(p) // translate then scale
	want2 := Coord{X: 2 * (1 + 10), Y: 2 * 1}
	if gotGF != want2 {
		t.Errorf("compose(scale, translate).apply(%v) = %v, want %v", p, gotGF, want2)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	m := affine{A: 2, B: 0.5, C: 3, D: -1, E: 1.5, F: -4}
	inv, ok := m.invert()
	if !ok {
		t.Fatal("invert reported a non-singular matrix as singular")
	}

	for _, p := range []Coord{{X: 0, Y: 0}, {X: 5, Y: -3}, {X: -2, Y: 8}} {
		roundTrip := inv.apply(m.apply(p))
		if !coordClose(roundTrip, p, 1e-9) {
			t.Errorf("invert round-trip for %v: got %v", p, roundTrip)
		}
	}
}

func TestAffineInvertSingular(t *testing.T) {
	// Rows are linearly dependent: determinant A*E - B*D = 2*2 - 1*4 = 0.
	m := affine{A: 2, B: 1, D: 4, E: 2}
	if _, ok := m.invert(); ok {
		t.Fatal("invert did not detect a singular matrix")
	}
}

func TestAffineConversions(t *testing.T) {
	m := affine{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}

	mat := m.toMatrix()
	if mat[0] != m.A || mat[1] != m.D || mat[2] != m.B || mat[3] != m.E || mat[4] != m.C || mat[5] != m.F {
		t.Errorf("toMatrix layout mismatch: %v", mat)
	}

	a3 := m.toAff3()
	if a3[0] != m.A || a3[1] != m.B || a3[2] != m.C || a3[3] != m.D || a3[4] != m.E || a3[5] != m.F {
		t.Errorf("toAff3 layout mismatch: %v", a3)
	}
}
