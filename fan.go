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

// fanTriangulate splits a clipped, clockwise-wound ring of 3..N vertices
// into a flat list of triangles: a trivial fan for N=3,4, ear-clipping for
// N>=5. Ear-clipping is O(N^2), which is adequate for the N<=8 or so rings
// that Sutherland-Hodgman against a rectangle can ever produce from a
// convex quad (section 4.4).
func fanTriangulate(ring []Coord) [][3]Coord {
	n := len(ring)
	switch {
	case n < 3:
		return nil
	case n == 3:
		return [][3]Coord{{ring[0], ring[1], ring[2]}}
	case n == 4:
		return [][3]Coord{
			{ring[0], ring[1], ring[2]},
			{ring[0], ring[2], ring[3]},
		}
	}
	return earClip(ring)
}

// earClip triangulates a clockwise-wound simple polygon with >= 5
// vertices by repeatedly cutting off ears.
func earClip(ring []Coord) [][3]Coord {
	idx := make([]int, len(ring))
	for i := range idx {
		idx[i] = i
	}

	var tris [][3]Coord
	for len(idx) > 3 {
		n := len(idx)
		cut := -1
		for i := 0; i < n; i++ {
			prev := idx[(i-1+n)%n]
			cur := idx[i]
			next := idx[(i+1)%n]
			if isEar(ring, idx, prev, cur, next) {
				cut = i
				break
			}
		}
		if cut < 0 {
			// Degenerate/self-intersecting input: fall back to cutting
			// the first vertex rather than looping forever.
			cut = 0
		}

		n = len(idx)
		prev := idx[(cut-1+n)%n]
		cur := idx[cut]
		next := idx[(cut+1)%n]
		tris = append(tris, [3]Coord{ring[prev], ring[cur], ring[next]})

		idx = append(idx[:cut], idx[cut+1:]...)
	}
	if len(idx) == 3 {
		tris = append(tris, [3]Coord{ring[idx[0]], ring[idx[1]], ring[idx[2]]})
	}
	return tris
}

// isEar reports whether the triangle (prev, cur, next) is an ear of the
// clockwise polygon: it must turn the same way as the ring's winding, and
// no other ring vertex may lie inside it.
func isEar(ring []Coord, idx []int, prev, cur, next int) bool {
	a, b, c := ring[prev], ring[cur], ring[next]

	// Clockwise winding means interior turns have cross(a,b,c) <= 0 by the
	// same convention used for the clipper's inside test; an ear must be
	// a strictly convex (non-degenerate) turn.
	if cross(a, b, c) >= 0 {
		return false
	}

	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		if pointInTriangle(ring[j], a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies inside or on the boundary of
// triangle (a, b, c), using sign-consistency of the cross products.
func pointInTriangle(p, a, b, c Coord) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
