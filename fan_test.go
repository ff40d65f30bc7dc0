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

import "testing"

func polygonArea(ring []Coord) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

func triArea(t [3]Coord) float64 {
	return polygonArea(t[:])
}

func TestFanTriangulateSmall(t *testing.T) {
	if got := fanTriangulate([]Coord{{X: 0}, {X: 1}}); got != nil {
		t.Errorf("fanTriangulate(2 verts) = %v, want nil", got)
	}

	tri := []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	got := fanTriangulate(tri)
	if len(got) != 1 || got[0] != [3]Coord{tri[0], tri[1], tri[2]} {
		t.Errorf("fanTriangulate(triangle) = %v, want passthrough", got)
	}
}

// TestFanTriangulateCoversArea checks that for convex rings of various
// sizes, the triangles produced exactly tile the ring's area (a standard
// correctness check for any ear-clipping implementation).
func TestFanTriangulateCoversArea(t *testing.T) {
	// Clockwise winding, matching the package's convention (y grows
	// upward; corners() walks top-left -> top-right -> bottom-right ->
	// bottom-left).
	rings := map[string][]Coord{
		"quad": {{X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 0}},
		"pentagon": {
			{X: 2, Y: 4}, {X: 4, Y: 3}, {X: 3, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 3},
		},
		"hexagon": {
			{X: 2, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 1},
			{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 3},
		},
	}

	for name, ring := range rings {
		t.Run(name, func(t *testing.T) {
			want := polygonArea(ring)
			tris := fanTriangulate(ring)

			var got float64
			for _, tri := range tris {
				got += triArea(tri)
			}

			const eps = 1e-9
			if d := got - want; d > eps || d < -eps {
				t.Errorf("triangle areas sum to %v, want %v", got, want)
			}
		})
	}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := Coord{X: 0, Y: 0}, Coord{X: 4, Y: 0}, Coord{X: 0, Y: 4}
	if !pointInTriangle(Coord{X: 1, Y: 1}, a, b, c) {
		t.Error("interior point reported outside")
	}
	if pointInTriangle(Coord{X: 10, Y: 10}, a, b, c) {
		t.Error("far point reported inside")
	}
	if !pointInTriangle(a, a, b, c) {
		t.Error("a vertex should count as inside (boundary)")
	}
}
