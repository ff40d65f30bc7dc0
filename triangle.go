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

// Triangle is one leaf of a Mesh: three vertices known in both the source
// and the target projection, plus a flag for the source world-wrap seam.
type Triangle struct {
	// Source holds the three vertices in source-projection coordinates.
	Source [3]Coord

	// Target holds the three vertices in target-projection coordinates,
	// in the same vertex order as Source.
	Target [3]Coord

	// NeedsShift is true iff this triangle straddles the source
	// projection's world-wrap seam. When true, Source.X values span more
	// than half but less than a full WorldWidth and must be reduced
	// modulo WorldWidth into a single world copy before any affine math
	// (section 4.1 step 2, section 4.5 step 1).
	NeedsShift bool
}

// degenerate reports whether all three source vertices coincide.
func (t Triangle) degenerate() bool {
	a, b, c := t.Source[0], t.Source[1], t.Source[2]
	return a == b && b == c
}

// Mesh is the full triangulation of a target extent: an ordered but
// order-irrelevant sequence of triangles, plus the aggregate flag
// WrapsX = OR of triangle.NeedsShift. A Mesh is built once per render
// request, read only, and then discarded.
type Mesh struct {
	Triangles []Triangle
	WrapsX    bool
}

// SourceExtent returns the union of all triangles' source vertices.
//
// If m.WrapsX, every vertex's x is first reduced modulo sourceWorldWidth
// before being unioned, and if the resulting extent's x bounds fall above
// sourceDomain.URx the whole extent is shifted back by one world width.
// Without this a mesh straddling the seam would otherwise produce a
// spurious world-wide source extent (section 4.7).
//
// Calling SourceExtent twice returns equal results; it never mutates m.
func (m Mesh) SourceExtent(sourceWorldWidth float64, sourceDomain Extent) Extent {
	e := emptyExtent()

	if !m.WrapsX {
		for _, t := range m.Triangles {
			for _, v := range t.Source {
				e = unionPoint(e, v)
			}
		}
		return e
	}

	for _, t := range m.Triangles {
		for _, v := range t.Source {
			v.X = euclidMod(v.X, sourceWorldWidth)
			e = unionPoint(e, v)
		}
	}
	if !isEmptyExtent(e) && e.LLx > sourceDomain.URx {
		e.LLx -= sourceWorldWidth
		e.URx -= sourceWorldWidth
	}
	return e
}
