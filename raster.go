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
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Source is one source image tile together with its extent in
// source-projection coordinates.
type Source struct {
	Extent Extent
	Image  image.Image
}

// Renderer rasterizes a Mesh by compositing source image tiles under a
// per-triangle affine transform from source-projection space to
// destination pixels (section 4.5). A Renderer holds only fixed
// configuration; Render mutates nothing but the caller's destination
// image.
type Renderer struct {
	// SourceResolution is the size of one source pixel in
	// source-projection units, shared by every Source image.
	SourceResolution float64

	// SourceDomain is the source projection's valid domain. Its width
	// gives the world-wrap shift distance and its center the wrap
	// threshold used in steps 1 and 7. Ignored unless HasSourceDomain.
	SourceDomain Extent

	// HasSourceDomain reports whether SourceDomain should be used for
	// world-wrap shifting. A Renderer without a source domain never
	// shifts, even for triangles with NeedsShift set, since there is
	// nothing to reduce modulo.
	HasSourceDomain bool

	// TargetResolution is target-projection units per destination pixel.
	TargetResolution float64

	// TargetExtent is the target-projection extent that dst covers.
	TargetExtent Extent

	// Interpolator selects the resampling kernel used to warp each source
	// tile. Nil defaults to golang.org/x/image/draw.BiLinear.
	Interpolator xdraw.Interpolator

	// DebugColor, if non-nil, makes Render additionally stroke every
	// triangle's target-space outline in this color after compositing
	// (section 6).
	DebugColor color.Color
}

// Render composites sources through mesh onto dst (section 4.5).
func (r *Renderer) Render(dst draw.Image, mesh Mesh, sources []Source) {
	var shiftDistance, shiftThreshold float64
	if r.HasSourceDomain {
		shiftDistance = extentWidth(r.SourceDomain)
		shiftThreshold = (r.SourceDomain.LLx + r.SourceDomain.URx) / 2
	}
	targetTL := extentTopLeft(r.TargetExtent)

	interp := r.Interpolator
	if interp == nil {
		interp = xdraw.BiLinear
	}

	for _, tri := range mesh.Triangles {
		r.renderTriangle(dst, tri, sources, shiftDistance, shiftThreshold, targetTL, interp)
	}

	if r.DebugColor != nil {
		r.drawDebugOverlay(dst, mesh, targetTL)
	}
}

// renderTriangle implements the numbered steps of section 4.5 for one mesh
// triangle.
func (r *Renderer) renderTriangle(dst draw.Image, tri Triangle, sources []Source, shiftDistance, shiftThreshold float64, targetTL Coord, interp xdraw.Interpolator) {
	// Step 1: fold a world-wrapping triangle's source x's into one world copy.
	src := tri.Source
	if tri.NeedsShift && r.HasSourceDomain {
		for i := range src {
			src[i].X = euclidMod(src[i].X, shiftDistance)
		}
	}

	// Step 2: target vertices as destination pixel coordinates, Y-flipped.
	var destPx [3]Coord
	for i, tv := range tri.Target {
		destPx[i] = Coord{
			X: (tv.X - targetTL.X) / r.TargetResolution,
			Y: -(tv.Y - targetTL.Y) / r.TargetResolution,
		}
	}

	// Step 3: numerical stabilization. srcShiftX/Y is the (already
	// modulo-reduced, if step 1 fired) first vertex coordinate: the exact
	// value subtracted out here, which step 7 below must reuse unchanged
	// so a source image's own coordinate frame realigns with the
	// stabilized frame the affine was fit against.
	srcShiftX, srcShiftY := src[0].X, src[0].Y
	stable := [3]Coord{
		{X: 0, Y: 0},
		{X: src[1].X - srcShiftX, Y: src[1].Y - srcShiftY},
		{X: src[2].X - srcShiftX, Y: src[2].Y - srcShiftY},
	}

	// Step 4: solve for the affine mapping stabilized source space to
	// destination pixels.
	coeffs, ok := solveAffine(stable, destPx)
	if !ok {
		return // three source vertices collinear: triangle can't be fit
	}
	fit := affine{A: coeffs[0], B: coeffs[1], C: coeffs[2], D: coeffs[3], E: coeffs[4], F: coeffs[5]}

	// Step 6: enlarge the destination triangle toward its centroid and use
	// it as the clip mask for every source composited into this triangle.
	enlarged := enlargeTriangle(destPx, r.SourceResolution)
	bbox := triPixelBounds(enlarged, dst.Bounds())
	if bbox.Empty() {
		return
	}
	mask := buildTriangleMask(enlarged, bbox)

	scratch := image.NewRGBA(bbox)

	for _, s := range sources {
		// Step 7: compose this source's own translate/scale onto the fit.
		tl := extentTopLeft(s.Extent)
		tx := tl.X - srcShiftX
		ty := tl.Y - srcShiftY
		if tri.NeedsShift && r.HasSourceDomain && tl.X < shiftThreshold {
			tx += shiftDistance
		}
		offset := translateAffine(tx, ty)
		scale := scaleAffine(r.SourceResolution, -r.SourceResolution)

		// Inflate the image's footprint by half a pixel on every side
		// before anything else, so adjacent tiles overlap slightly instead
		// of leaving a hairline seam between them.
		sr := s.Image.Bounds()
		w, h := float64(sr.Dx()), float64(sr.Dy())
		inflate := affine{A: (w + 1) / w, C: -0.5, E: (h + 1) / h, F: -0.5}

		// composed maps this source image's own pixel coordinates straight
		// to absolute destination pixels, matching scratch's own addressing
		// (image.NewRGBA(bbox) keeps bbox's own, non-zero-based origin, not
		// a local (0,0) frame). Interpolator.Transform's matrix is
		// source-to-destination (its parameter is literally named s2d), so
		// composed is passed as is: no shift to a local frame, no invert.
		composed := compose(fit, compose(offset, compose(scale, inflate)))

		interp.Transform(scratch, composed.toAff3(), s.Image, sr, xdraw.Over, nil)
	}

	draw.DrawMask(dst, bbox, scratch, bbox.Min, mask, image.Point{}, draw.Over)
}

// enlargeTriangle displaces each vertex away from the triangle's centroid
// by margin destination pixels, producing the small overdraw along shared
// edges that hides seams between adjacent triangles (section 4.5 step 6).
// Per the open design question recorded in section 9, margin is applied
// directly in destination pixels, unscaled by the triangle's own size.
func enlargeTriangle(tri [3]Coord, margin float64) [3]Coord {
	cx := (tri[0].X + tri[1].X + tri[2].X) / 3
	cy := (tri[0].Y + tri[1].Y + tri[2].Y) / 3

	var out [3]Coord
	for i, v := range tri {
		dx, dy := v.X-cx, v.Y-cy
		length := math.Hypot(dx, dy)
		if length == 0 {
			out[i] = v
			continue
		}
		out[i] = Coord{X: v.X + dx/length*margin, Y: v.Y + dy/length*margin}
	}
	return out
}

// triPixelBounds returns the integer pixel bounding box of tri, clamped to
// clip.
func triPixelBounds(tri [3]Coord, clip image.Rectangle) image.Rectangle {
	minX := math.Floor(min(tri[0].X, tri[1].X, tri[2].X))
	maxX := math.Ceil(max(tri[0].X, tri[1].X, tri[2].X))
	minY := math.Floor(min(tri[0].Y, tri[1].Y, tri[2].Y))
	maxY := math.Ceil(max(tri[0].Y, tri[1].Y, tri[2].Y))

	r := image.Rect(int(minX), int(minY), int(maxX), int(maxY))
	return r.Intersect(clip)
}

// buildTriangleMask rasterizes tri, given in the same global pixel
// coordinates as bbox, to an antialiased alpha mask covering bbox, using
// golang.org/x/image/vector in place of a hand-rolled scanline coverage
// accumulator.
func buildTriangleMask(tri [3]Coord, bbox image.Rectangle) *image.Alpha {
	w, h := bbox.Dx(), bbox.Dy()
	rz := vector.NewRasterizer(w, h)

	toLocal := func(c Coord) (float32, float32) {
		return float32(c.X - float64(bbox.Min.X)), float32(c.Y - float64(bbox.Min.Y))
	}

	x0, y0 := toLocal(tri[0])
	x1, y1 := toLocal(tri[1])
	x2, y2 := toLocal(tri[2])

	rz.MoveTo(x0, y0)
	rz.LineTo(x1, y1)
	rz.LineTo(x2, y2)
	rz.LineTo(x0, y0)
	rz.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rz.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return mask
}

// drawDebugOverlay strokes every triangle's target-space outline in
// r.DebugColor (section 6: debug overlays).
func (r *Renderer) drawDebugOverlay(dst draw.Image, mesh Mesh, targetTL Coord) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rz := vector.NewRasterizer(w, h)

	toPixel := func(c Coord) (float32, float32) {
		x := (c.X - targetTL.X) / r.TargetResolution
		y := -(c.Y - targetTL.Y) / r.TargetResolution
		return float32(x - float64(bounds.Min.X)), float32(y - float64(bounds.Min.Y))
	}

	const lineWidth = 0.5 // destination pixels
	for _, tri := range mesh.Triangles {
		for i := 0; i < 3; i++ {
			a := tri.Target[i]
			b := tri.Target[(i+1)%3]
			ax, ay := toPixel(a)
			bx, by := toPixel(b)
			addThinQuad(rz, ax, ay, bx, by, lineWidth)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rz.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	draw.DrawMask(dst, bounds, image.NewUniform(r.DebugColor), image.Point{}, mask, image.Point{}, draw.Over)
}

// addThinQuad adds a thin quadrilateral approximating the line segment
// (ax,ay)-(bx,by) with the given half-width to rz, since
// golang.org/x/image/vector only fills closed paths and has no stroke
// primitive of its own.
func addThinQuad(rz *vector.Rasterizer, ax, ay, bx, by, halfWidth float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*halfWidth, dx/length*halfWidth

	rz.MoveTo(ax+nx, ay+ny)
	rz.LineTo(bx+nx, by+ny)
	rz.LineTo(bx-nx, by-ny)
	rz.LineTo(ax-nx, ay-ny)
	rz.LineTo(ax+nx, ay+ny)
	rz.ClosePath()
}
