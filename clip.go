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

// clipEdge is one directed edge of the axis-aligned clip rectangle, in
// clockwise winding order (top, right, bottom, left), matching the
// winding assumed for input polygons.
type clipEdge struct {
	a, b Coord
}

// rectEdges decomposes an axis-aligned rectangle into its four directed
// edges in clockwise order: top, right, bottom, left.
func rectEdges(r Extent) [4]clipEdge {
	tl, tr, br, bl := corners(r)
	return [4]clipEdge{
		{tl, tr}, // top
		{tr, br}, // right
		{br, bl}, // bottom
		{bl, tl}, // left
	}
}

// inside reports whether p is on the interior side of the directed edge e,
// using the clockwise-winding convention cross(b-a, p-a) <= 0. Points
// exactly on the edge are treated as inside; this is documented behavior
// (section 4.1 open question), not a bug.
func (e clipEdge) inside(p Coord) bool {
	return cross(e.a, e.b, p) <= 0
}

// intersect returns the point where segment s->t crosses the line through
// edge e. If the segment is parallel to e (zero denominator), t is
// returned unchanged; callers never hit this in practice because e's
// edges are axis-aligned and s, t straddle them by construction.
func (e clipEdge) intersect(s, t Coord) Coord {
	x1, y1 := e.a.X, e.a.Y
	x2, y2 := e.b.X, e.b.Y
	x3, y3 := s.X, s.Y
	x4, y4 := t.X, t.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return t
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	px := (a*(x3-x4) - (x1-x2)*b) / denom
	py := (a*(y3-y4) - (y1-y2)*b) / denom
	return Coord{X: px, Y: py}
}

// clipPolygon clips a closed, clockwise-wound polygon against the
// axis-aligned rectangle clip using Sutherland-Hodgman (section 4.3). The
// result is a new vertex slice (possibly empty, possibly the input
// polygon unchanged if it was already entirely inside clip).
func clipPolygon(poly []Coord, clip Extent) []Coord {
	edges := rectEdges(clip)

	// Ping-pong between two scratch buffers to avoid per-edge allocation.
	// Both buffers are fresh copies so the caller's poly slice is never
	// mutated in place.
	bufA := append([]Coord(nil), poly...)
	bufB := make([]Coord, 0, len(poly)+4)
	in, out := bufA, bufB

	for _, edge := range edges {
		out = out[:0]
		n := len(in)
		if n == 0 {
			break
		}
		s := in[n-1]
		for _, e := range in {
			eIn := edge.inside(e)
			sIn := edge.inside(s)
			switch {
			case eIn && sIn:
				out = append(out, e)
			case eIn && !sIn:
				out = append(out, edge.intersect(s, e), e)
			case !eIn && sIn:
				out = append(out, edge.intersect(s, e))
			}
			s = e
		}
		in, out = out, in
	}

	result := make([]Coord, len(in))
	copy(result, in)
	return result
}
