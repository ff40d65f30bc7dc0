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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Coord is a point in some projection's coordinate space. Components may
// be non-finite when a [Transform] is evaluated outside its domain.
type Coord = vec.Vec2

// Extent is an axis-aligned rectangle in some projection's coordinate
// space, with LLx <= URx and LLy <= URy.
type Extent = rect.Rect

// Transform maps a coordinate from one projection to another. It may
// return a [Coord] with non-finite components when c lies outside the
// transform's domain.
type Transform func(c Coord) Coord

// isEmptyExtent reports whether e is the empty-extent sentinel produced by
// emptyExtent. An empty extent absorbs any point unioned into it.
func isEmptyExtent(e Extent) bool {
	return e.LLx > e.URx || e.LLy > e.URy
}

// emptyExtent returns the sentinel empty extent.
func emptyExtent() Extent {
	return Extent{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
}

// extentWidth returns the width of e.
func extentWidth(e Extent) float64 { return e.URx - e.LLx }

// extentHeight returns the height of e.
func extentHeight(e Extent) float64 { return e.URy - e.LLy }

// extentTopLeft returns the top-left corner of e, i.e. the corner with
// minimum x and maximum y, matching the convention that y grows upward in
// projection space while row 0 of a raster is at the top.
func extentTopLeft(e Extent) Coord { return Coord{X: e.LLx, Y: e.URy} }

// unionPoint extends e to include c, treating an empty e as absorbing.
func unionPoint(e Extent, c Coord) Extent {
	if !math.IsInf(c.X, 0) && !math.IsNaN(c.X) {
		e.LLx = math.Min(e.LLx, c.X)
		e.URx = math.Max(e.URx, c.X)
	}
	if !math.IsInf(c.Y, 0) && !math.IsNaN(c.Y) {
		e.LLy = math.Min(e.LLy, c.Y)
		e.URy = math.Max(e.URy, c.Y)
	}
	return e
}

// extentsIntersect reports whether a and b overlap (touching at an edge
// counts as intersecting).
func extentsIntersect(a, b Extent) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}

// corners returns the four corners of e in clockwise order starting at the
// top-left: top-left, top-right, bottom-right, bottom-left.
func corners(e Extent) (tl, tr, br, bl Coord) {
	tl = Coord{X: e.LLx, Y: e.URy}
	tr = Coord{X: e.URx, Y: e.URy}
	br = Coord{X: e.URx, Y: e.LLy}
	bl = Coord{X: e.LLx, Y: e.LLy}
	return
}

// boundingBox returns the axis-aligned bounding box of the given points.
func boundingBox(pts ...Coord) Extent {
	e := emptyExtent()
	for _, p := range pts {
		e = unionPoint(e, p)
	}
	return e
}

// euclidMod returns a mod m, with the result in [0, m) for m > 0. Unlike
// Go's %, this never returns a negative result.
func euclidMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

// clampFinite replaces non-finite components of c by clamping that axis to
// the bounds of domain. Finite components are left untouched. This tames
// inverse-projection outputs of +/-Inf at projection singularities (e.g.
// the poles under a Mercator projection).
func clampFinite(c Coord, domain Extent) Coord {
	if math.IsNaN(c.X) || math.IsInf(c.X, 0) {
		if math.IsInf(c.X, -1) || math.IsNaN(c.X) {
			c.X = domain.LLx
		} else {
			c.X = domain.URx
		}
	}
	if math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
		if math.IsInf(c.Y, -1) || math.IsNaN(c.Y) {
			c.Y = domain.LLy
		} else {
			c.Y = domain.URy
		}
	}
	return c
}

// allFinite reports whether every component of every given point is finite.
func allFinite(pts ...Coord) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// cross returns the z-component of (b-a) x (p-a). The clipper's
// inside test and the ear-clipping test both rely on its sign; clockwise
// winding is assumed throughout this package.
func cross(a, b, p Coord) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
