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

// Triangulator builds an adaptive triangular mesh covering a target
// extent. It is pure and stateless between calls to BuildMesh: no field is
// mutated and no I/O is performed (section 5).
type Triangulator struct {
	// Fwd maps a coordinate from source to target projection.
	Fwd Transform

	// Inv maps a coordinate from target to source projection.
	Inv Transform

	// SourceProj describes the source projection (domain, world width,
	// wrap and global flags).
	SourceProj ProjectionInfo

	// ErrorThreshold is the acceptable midpoint reprojection error, in
	// source-projection units (section 4.2). The squared value is what is
	// actually compared against, to avoid a square root per quad.
	ErrorThreshold float64

	// MaxDepth is the hard recursion ceiling; leaf count is bounded by
	// 4^MaxDepth. Must be >= 0.
	MaxDepth int
}

// BuildMesh triangulates targetExtent into a Mesh (section 4.1).
func (t *Triangulator) BuildMesh(targetExtent Extent) Mesh {
	b := &meshBuilder{t: t, errThreshold2: t.ErrorThreshold * t.ErrorThreshold}

	tl, tr, br, bl := corners(targetExtent)
	tlSrc, trSrc, brSrc, blSrc := t.Inv(tl), t.Inv(tr), t.Inv(br), t.Inv(bl)

	b.refineQuad(tl, tr, br, bl, tlSrc, trSrc, brSrc, blSrc, t.MaxDepth)

	return Mesh{Triangles: b.triangles, WrapsX: b.wrapsX}
}

// meshBuilder accumulates triangles during recursive refinement.
type meshBuilder struct {
	t             *Triangulator
	errThreshold2 float64
	triangles     []Triangle
	wrapsX        bool
}

// refineQuad implements section 4.1's refineQuad. The quad corners a, b,
// c, d are in target space, clockwise (top-left, top-right, bottom-right,
// bottom-left for the root call, and the same relative order for every
// recursive sub-quad); aSrc..dSrc are their pre-computed inverse
// projections.
func (b *meshBuilder) refineQuad(a, bb, c, d, aSrc, bSrc, cSrc, dSrc Coord, depth int) {
	srcQuadExtent := boundingBox(aSrc, bSrc, cSrc, dSrc)

	proj := b.t.SourceProj
	if proj.HasExtent && !extentsIntersect(proj.Extent, srcQuadExtent) {
		return
	}

	var srcCoverageX float64
	if proj.WorldWidth > 0 {
		srcCoverageX = extentWidth(srcQuadExtent) / proj.WorldWidth
	}
	wrapping := proj.CanWrapX && srcCoverageX > wrapCoverageLow && srcCoverageX < wrapCoverageHigh

	if depth > 0 {
		forceSubdivide := proj.IsGlobal && !wrapping && srcCoverageX > MaxTriangleWidthFrac

		needsSubdivide := forceSubdivide
		if !forceSubdivide {
			needsSubdivide = b.midpointError(a, c, aSrc, bSrc, cSrc, dSrc, wrapping, proj) > b.errThreshold2
		}

		if needsSubdivide {
			b.subdivide(a, bb, c, d, depth)
			return
		}
	}

	// Leaf quad.
	if proj.HasExtent && !allInside(proj.Extent, aSrc, bSrc, cSrc, dSrc) {
		b.emitClipped(a, bb, c, d, aSrc, bSrc, cSrc, dSrc)
		return
	}

	b.emitQuad(a, bb, c, d, aSrc, bSrc, cSrc, dSrc, wrapping)
}

// midpointError estimates the squared midpoint reprojection error for the
// quad (a, c are opposite target corners; aSrc..dSrc are the four source
// corners in the same a,b,c,d order) (section 4.1 step 3).
func (b *meshBuilder) midpointError(a, c, aSrc, bSrc, cSrc, dSrc Coord, wrapping bool, proj ProjectionInfo) float64 {
	center := midpoint(a, c)
	centerSrc := b.t.Inv(center)

	estimX := (aSrc.X + bSrc.X + cSrc.X + dSrc.X) / 4
	estimY := (aSrc.Y + bSrc.Y + cSrc.Y + dSrc.Y) / 4

	cx := centerSrc.X
	if wrapping && proj.WorldWidth > 0 {
		estimX = euclidMod(estimX, proj.WorldWidth)
		cx = euclidMod(cx, proj.WorldWidth)
	}

	dx := estimX - cx
	dy := estimY - centerSrc.Y
	return dx*dx + dy*dy
}

// subdivide computes the four edge midpoints of the target quad, inverse
// projects each, and recurses into the four sub-quads NW, NE, SE, SW, each
// in the same clockwise corner order as their parent.
func (b *meshBuilder) subdivide(a, bb, c, d Coord, depth int) {
	top := midpoint(a, bb)
	right := midpoint(bb, c)
	bottom := midpoint(c, d)
	left := midpoint(d, a)
	center := midpoint(a, c)

	topSrc := b.t.Inv(top)
	rightSrc := b.t.Inv(right)
	bottomSrc := b.t.Inv(bottom)
	leftSrc := b.t.Inv(left)
	centerSrc := b.t.Inv(center)
	aSrc, bSrc, cSrc, dSrc := b.t.Inv(a), b.t.Inv(bb), b.t.Inv(c), b.t.Inv(d)

	depth--
	b.refineQuad(a, top, center, left, aSrc, topSrc, centerSrc, leftSrc, depth)          // NW
	b.refineQuad(top, bb, right, center, topSrc, bSrc, rightSrc, centerSrc, depth)       // NE
	b.refineQuad(center, right, c, bottom, centerSrc, rightSrc, cSrc, bottomSrc, depth)  // SE
	b.refineQuad(left, center, bottom, d, leftSrc, centerSrc, bottomSrc, dSrc, depth)    // SW
}

// emitQuad emits the unclipped quad as two triangles along the a-c
// diagonal, both with clockwise winding, inheriting needsShift (section
// 4.1 step 6).
func (b *meshBuilder) emitQuad(a, bb, c, d, aSrc, bSrc, cSrc, dSrc Coord, needsShift bool) {
	b.addTriangle(Triangle{
		Source:     [3]Coord{aSrc, cSrc, dSrc},
		Target:     [3]Coord{a, c, d},
		NeedsShift: needsShift,
	})
	b.addTriangle(Triangle{
		Source:     [3]Coord{aSrc, bSrc, cSrc},
		Target:     [3]Coord{a, bb, c},
		NeedsShift: needsShift,
	})
}

// emitClipped implements section 4.1 step 5: clamp non-finite source
// corners into the domain, clip the source-space quad against the source
// domain, and emit the resulting triangles with forward-projected target
// vertices and needsShift = false.
func (b *meshBuilder) emitClipped(a, bb, c, d, aSrc, bSrc, cSrc, dSrc Coord) {
	domain := b.t.SourceProj.Extent

	aSrc = clampFinite(aSrc, domain)
	bSrc = clampFinite(bSrc, domain)
	cSrc = clampFinite(cSrc, domain)
	dSrc = clampFinite(dSrc, domain)

	ring := clipPolygon([]Coord{aSrc, bSrc, cSrc, dSrc}, domain)
	if len(ring) < 3 {
		return // benign: quad projects entirely outside the source domain
	}

	for _, tri := range fanTriangulate(ring) {
		srcTri := tri
		targetTri := [3]Coord{b.t.Fwd(tri[0]), b.t.Fwd(tri[1]), b.t.Fwd(tri[2])}
		b.addTriangle(Triangle{Source: srcTri, Target: targetTri, NeedsShift: false})
	}
}

// addTriangle appends t to the mesh unless it is degenerate, maintaining
// the invariant Mesh.WrapsX == OR of triangle.NeedsShift (section 3): the
// builder's wrapsX flag is set only here, for triangles actually kept.
func (b *meshBuilder) addTriangle(t Triangle) {
	if t.degenerate() {
		return
	}
	b.triangles = append(b.triangles, t)
	if t.NeedsShift {
		b.wrapsX = true
	}
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Coord) Coord {
	return Coord{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// allInside reports whether every one of pts lies within extent.
func allInside(extent Extent, pts ...Coord) bool {
	for _, p := range pts {
		if p.X < extent.LLx || p.X > extent.URx || p.Y < extent.LLy || p.Y > extent.URy {
			return false
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return false
		}
	}
	return true
}
