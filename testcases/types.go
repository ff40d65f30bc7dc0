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

// Package testcases collects synthetic projections and fixed triangulation
// scenarios used by cmd/reprojdemo. The root package's tests build their
// own equivalent fixtures inline and do not import this package.
package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/reproj"
)

// Scenario defines a single triangulation test: a source/target projection
// pair and the parameters to feed a [reproj.Triangulator].
type Scenario struct {
	Name           string
	Fwd            reproj.Transform
	Inv            reproj.Transform
	SourceProj     reproj.ProjectionInfo
	TargetExtent   reproj.Extent
	TargetRes      float64
	ErrorThreshold float64
	MaxDepth       int
}

// Triangulator builds the [reproj.Triangulator] described by s.
func (s Scenario) Triangulator() *reproj.Triangulator {
	return &reproj.Triangulator{
		Fwd:            s.Fwd,
		Inv:            s.Inv,
		SourceProj:     s.SourceProj,
		ErrorThreshold: s.ErrorThreshold,
		MaxDepth:       s.MaxDepth,
	}
}

// Checkerboard renders a synthetic w x h RGBA tile with alternating cell
// colors, standing in for a decoded source image tile without any real
// tile-fetch or decode machinery (out of scope per the core's external
// interfaces).
func Checkerboard(w, h, cell int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}
