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

func TestEuclidMod(t *testing.T) {
	cases := []struct {
		a, m, want float64
	}{
		{370, 360, 10},
		{-10, 360, 350},
		{-370, 360, 350},
		{0, 360, 0},
		{359.5, 360, 359.5},
	}
	for _, c := range cases {
		got := euclidMod(c.a, c.m)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("euclidMod(%v, %v) = %v, want %v", c.a, c.m, got, c.want)
		}
		if got < 0 || got >= c.m {
			t.Errorf("euclidMod(%v, %v) = %v, out of [0, %v)", c.a, c.m, got, c.m)
		}
	}
}

func TestClampFinite(t *testing.T) {
	domain := Extent{LLx: -10, LLy: -20, URx: 10, URy: 20}

	got := clampFinite(Coord{X: math.Inf(1), Y: math.Inf(-1)}, domain)
	if got.X != domain.URx || got.Y != domain.LLy {
		t.Errorf("clampFinite(+Inf,-Inf) = %v, want (%v,%v)", got, domain.URx, domain.LLy)
	}

	got = clampFinite(Coord{X: math.NaN(), Y: 5}, domain)
	if got.X != domain.LLx || got.Y != 5 {
		t.Errorf("clampFinite(NaN,5) = %v, want (%v,5)", got, domain.LLx)
	}

	finite := Coord{X: 3, Y: 4}
	if got := clampFinite(finite, domain); got != finite {
		t.Errorf("clampFinite changed a finite point: got %v, want %v", got, finite)
	}
}

func TestCorners(t *testing.T) {
	e := Extent{LLx: 0, LLy: 0, URx: 10, URy: 20}
	tl, tr, br, bl := corners(e)
	want := [4]Coord{{X: 0, Y: 20}, {X: 10, Y: 20}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	got := [4]Coord{tl, tr, br, bl}
	if got != want {
		t.Errorf("corners(%v) = %v, want %v", e, got, want)
	}
}

func TestBoundingBox(t *testing.T) {
	e := boundingBox(Coord{X: 1, Y: 5}, Coord{X: -3, Y: 2}, Coord{X: 4, Y: -1})
	want := Extent{LLx: -3, LLy: -1, URx: 4, URy: 5}
	if e != want {
		t.Errorf("boundingBox(...) = %v, want %v", e, want)
	}
}

func TestExtentsIntersect(t *testing.T) {
	a := Extent{LLx: 0, LLy: 0, URx: 10, URy: 10}
	b := Extent{LLx: 10, LLy: 10, URx: 20, URy: 20} // touches at a corner
	if !extentsIntersect(a, b) {
		t.Error("touching extents should intersect")
	}
	c := Extent{LLx: 11, LLy: 11, URx: 20, URy: 20}
	if extentsIntersect(a, c) {
		t.Error("disjoint extents should not intersect")
	}
}

func TestCrossSign(t *testing.T) {
	// a->b is the +x direction; p above the line should be a left turn
	// (positive cross), p below a right turn (negative).
	a, b := Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0}
	above := cross(a, b, Coord{X: 0.5, Y: 1})
	below := cross(a, b, Coord{X: 0.5, Y: -1})
	if above <= 0 || below >= 0 {
		t.Errorf("cross signs wrong: above=%v below=%v", above, below)
	}
}
