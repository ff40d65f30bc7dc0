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

// Package reproj reprojects a raster image from a source map projection
// into a target map projection.
//
// The package triangulates the target extent into an adaptively refined
// mesh ([Triangulator]), then rasterizes each triangle of the resulting
// [Mesh] by an affine map from source-projection space to destination
// pixels ([Renderer]). Both halves are synchronous and allocate no global
// state; a [Mesh] is built once per render and discarded afterwards.
//
// The package does not fetch tiles, decode imagery, or implement any
// particular map projection: [Transform] functions and source images are
// supplied by the caller.
package reproj
