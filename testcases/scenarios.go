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

package testcases

import (
	"math"

	"seehuhn.de/go/reproj"
)

func identity(c reproj.Coord) reproj.Coord { return c }

func scale(factor float64) reproj.Transform {
	return func(c reproj.Coord) reproj.Coord {
		return reproj.Coord{X: c.X * factor, Y: c.Y * factor}
	}
}

// Identity is scenario S1: fwd = inv = identity, source domain covers the
// target extent entirely, so the mesh must stay at its coarsest two
// triangles.
var Identity = Scenario{
	Name: "identity",
	Fwd:  identity,
	Inv:  identity,
	SourceProj: reproj.ProjectionInfo{
		Extent:    reproj.Extent{LLx: -1000, LLy: -1000, URx: 1000, URy: 1000},
		HasExtent: true,
	},
	TargetExtent:   reproj.Extent{LLx: 0, LLy: 0, URx: 256, URy: 256},
	TargetRes:      1,
	ErrorThreshold: 1,
	MaxDepth:       4,
}

// ScaleDouble is scenario S2: an exact linear map has zero midpoint error
// at any scale, so the mesh again stays at two triangles regardless of
// maxDepth.
var ScaleDouble = Scenario{
	Name: "scale_double",
	Fwd:  scale(2),
	Inv:  scale(0.5),
	SourceProj: reproj.ProjectionInfo{
		Extent:    reproj.Extent{LLx: -1000, LLy: -1000, URx: 1000, URy: 1000},
		HasExtent: true,
	},
	TargetExtent:   reproj.Extent{LLx: 0, LLy: 0, URx: 256, URy: 256},
	TargetRes:      1,
	ErrorThreshold: 1,
	MaxDepth:       4,
}

// wobbleCurvature is chosen so that for every axis-aligned quad this
// scenario's refinement ever visits (root half-width 128, then 64 after
// one subdivision), the quad-midpoint bilinear estimate used by
// Triangulator.midpointError differs from the true value by far more than
// errorThreshold, forcing a full subdivision at both levels (section 8
// scenario S3). Because wobbleInv's only non-linear term is a pure
// quadratic in x, the squared error at a quad of half-width hx works out
// to exactly (wobbleCurvature * hx^2)^2, independent of the quad's
// position -- see DESIGN.md for the derivation.
const wobbleCurvature = 0.01

// wobbleInv is a deliberately non-linear inverse projection: y is passed
// through unchanged, x gets a quadratic term whose curvature is constant,
// so every quad's bilinear-corner-average error is exactly determined by
// its size (see wobbleCurvature).
func wobbleInv(c reproj.Coord) reproj.Coord {
	return reproj.Coord{X: c.X + wobbleCurvature*c.X*c.X, Y: c.Y}
}

// Wobble is scenario S3: a non-linear inv whose midpoint error is well
// above errorThreshold at every depth the shallow maxDepth=2 cap allows,
// forcing a full subdivision at both levels.
var Wobble = Scenario{
	Name:           "wobble",
	Fwd:            identity,
	Inv:            wobbleInv,
	SourceProj:     reproj.ProjectionInfo{},
	TargetExtent:   reproj.Extent{LLx: 0, LLy: 0, URx: 256, URy: 256},
	TargetRes:      1,
	ErrorThreshold: 1,
	MaxDepth:       2,
}

// DomainClip is scenario S4: the source domain is much smaller than the
// quad's inverse image, so every leaf triangle must come from
// source-domain clipping and fan triangulation rather than the unclipped
// two-triangle split.
var DomainClip = Scenario{
	Name: "domain_clip",
	Fwd:  scale(2),
	Inv:  scale(0.5),
	SourceProj: reproj.ProjectionInfo{
		Extent:    reproj.Extent{LLx: 0, LLy: 0, URx: 10, URy: 10},
		HasExtent: true,
	},
	// inv of this extent spans (-5,-5,15,15), well outside the domain.
	TargetExtent:   reproj.Extent{LLx: -10, LLy: -10, URx: 30, URy: 30},
	TargetRes:      1,
	ErrorThreshold: 0.01,
	MaxDepth:       0,
}

// wrapTo180 reduces x into [-180, 180), the same convention a real
// longitude-wrapping projection uses.
func wrapTo180(x float64) float64 {
	const world = 360
	r := math.Mod(x+180, world)
	if r < 0 {
		r += world
	}
	return r - 180
}

// cylindricalInv/cylindricalFwd model a toy "plate carree"-like projection
// that is continuous except for wrapping x into [-180, 180) at the
// dateline, for exercising the seam-crossing path without pulling in any
// real projection math. A target quad spanning continuous x 170..190 has
// inv corners (170, -170), reproducing section 8 scenario S5 exactly.
func cylindricalInv(c reproj.Coord) reproj.Coord {
	return reproj.Coord{X: wrapTo180(c.X), Y: c.Y}
}
func cylindricalFwd(c reproj.Coord) reproj.Coord {
	return reproj.Coord{X: wrapTo180(c.X), Y: c.Y}
}

// DatelineWrap is scenario S5: a target quad whose inverse straddles the
// +/-180 seam of a world-wrapping source projection.
var DatelineWrap = Scenario{
	Name: "dateline_wrap",
	Fwd:  cylindricalFwd,
	Inv:  cylindricalInv,
	SourceProj: reproj.ProjectionInfo{
		Extent:     reproj.Extent{LLx: -180, LLy: -90, URx: 180, URy: 90},
		HasExtent:  true,
		WorldWidth: 360,
		CanWrapX:   true,
		IsGlobal:   true,
	},
	TargetExtent:   reproj.Extent{LLx: 170, LLy: 0, URx: 190, URy: 10},
	TargetRes:      1,
	ErrorThreshold: 1,
	MaxDepth:       0,
}

// All is the full scenario registry, analogous to the teacher's
// testcases.All category map.
var All = []Scenario{Identity, ScaleDouble, Wobble, DomainClip, DatelineWrap}
