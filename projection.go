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

// ProjectionInfo describes the properties of the source projection that
// the Triangulator needs in order to classify and bound quads. It is
// supplied by the caller; the package never constructs projection math
// itself.
type ProjectionInfo struct {
	// Extent is the projection's valid domain, used for source-domain
	// clamping and clipping (section 4.1 step 5). Ignored unless
	// HasExtent is set.
	Extent Extent

	// HasExtent reports whether Extent should be applied. A Triangulator
	// with HasExtent == false never clips or clamps against the source
	// domain.
	HasExtent bool

	// WorldWidth is the span of the projection's valid x range. For
	// wrapping projections, moving by one WorldWidth returns to the same
	// physical location.
	WorldWidth float64

	// CanWrapX reports whether the projection wraps around the x axis
	// (the "dateline" case).
	CanWrapX bool

	// IsGlobal is a heuristic flag used only to force subdivision of very
	// large quads that would otherwise pass the error-threshold test with
	// a single overly-wide triangle (section 4.1 step 3).
	IsGlobal bool
}

// Default tuning constants (section 6).
const (
	// MaxSubdivisionDepth is the typical hard recursion ceiling for
	// Triangulator.MaxDepth. Leaf count is bounded by 4^MaxDepth.
	MaxSubdivisionDepth = 10

	// MaxTriangleWidthFrac is the typical forced-subdivision threshold, as
	// a fraction of the source projection's world width. A non-wrapping
	// quad on a global projection whose source bounding box exceeds this
	// fraction of the world width is subdivided regardless of error.
	MaxTriangleWidthFrac = 0.25

	// DefaultErrorThreshold is a typical default for Triangulator.ErrorThreshold,
	// expressed in source-projection units: half of one source pixel when
	// a source pixel spans one source-projection unit.
	DefaultErrorThreshold = 0.5
)

// wrapCoverageLow and wrapCoverageHigh bound the srcCoverageX ratio
// (section 4.1 step 2) that classifies a quad as wrapping: a true wrap
// produces one wide bounding box spanning close to (but not exceeding) a
// full world width, while an ordinary single-world quad has coverage at
// most 1.
const (
	wrapCoverageLow  = 0.5
	wrapCoverageHigh = 1.0
)
