// seehuhn.de/go/lightly - rounded window corners for compositors
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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	coverage := r.Coverage(triangle)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// TestApproachesAgree checks that the 2D-buffer path and the active edge
// list path produce the same coverage.
func TestApproachesAgree(t *testing.T) {
	const size = 48
	clip := rect.Rect{URx: size, URy: size}
	shapes := map[string]*path.Data{
		"circle":    circlePath(24, 24, 19.5, false),
		"ring":      ringPath(24, 24, 20, 17),
		"diamond":   diamondPath(24, 24, 21.3),
		"offcanvas": circlePath(-4, 30, 12, true),
	}

	for name, p := range shapes {
		t.Run(name, func(t *testing.T) {
			a := NewRasterizer(clip)
			a.smallPathThreshold = 1 << 30
			b := NewRasterizer(clip)
			b.smallPathThreshold = 0

			covA := a.Coverage(p)
			covB := b.Coverage(p)
			for i := range covA {
				if math.Abs(float64(covA[i]-covB[i])) > 1e-5 {
					t.Fatalf("pixel (%d,%d): %f != %f", i%size, i/size, covA[i], covB[i])
				}
			}
		})
	}
}

func TestCircleArea(t *testing.T) {
	const size = 64
	const radius = 25.0
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Flatness = 0.01
	cov := r.Coverage(circlePath(32, 32, radius, false))

	var total float64
	for _, c := range cov {
		total += float64(c)
	}
	want := math.Pi * radius * radius
	if math.Abs(total-want)/want > 0.002 {
		t.Errorf("circle area %.2f, want %.2f", total, want)
	}
}

func TestEvenOddRing(t *testing.T) {
	const size = 40
	clip := rect.Rect{URx: size, URy: size}
	ring := ringPath(20, 20, 15, 10)

	r := NewRasterizer(clip)
	var center float32 = -1
	var onRing float32 = -1
	r.FillEvenOdd(ring, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			x := xMin + i
			switch {
			case x == 20 && y == 20:
				center = c
			case x == 32 && y == 20:
				onRing = c
			}
		}
	})
	if center > 1e-5 {
		t.Errorf("hole of the ring has coverage %f", center)
	}
	if onRing < 0.9999 {
		t.Errorf("pixel on the ring has coverage %f, want 1", onRing)
	}
}

func TestClipAndCTM(t *testing.T) {
	// A unit square scaled by 4 and moved to (2,2) covers the pixels
	// [2,6)×[2,6).
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 5, URy: 5})
	r.CTM = matrix.Matrix{4, 0, 0, 4, 2, 2}
	cov := r.Coverage(square)
	for y := range 5 {
		for x := range 5 {
			want := float32(0)
			if x >= 2 && y >= 2 {
				want = 1
			}
			if got := cov[y*5+x]; got != want {
				t.Errorf("pixel (%d,%d): got %f, want %f", x, y, got, want)
			}
		}
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Flatness = 1
	r.Coverage(circlePath(5, 5, 4, false))

	r.Reset(rect.Rect{URx: 20, URy: 20})
	if r.CTM != matrix.Identity {
		t.Errorf("CTM not reset: %v", r.CTM)
	}
	if r.Flatness != defaultFlatness {
		t.Errorf("Flatness not reset: %f", r.Flatness)
	}
	if got := ClipBounds(r.Clip).Dx(); got != 20 {
		t.Errorf("clip width %d, want 20", got)
	}
}

// circlePath approximates a circle by four cubic Bézier curves.
func circlePath(cx, cy, radius float64, clockwise bool) *path.Data {
	const k = 0.5522847498307936
	kr := k * radius

	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: cx, Y: cy - radius})
	sx := 1.0
	if clockwise {
		sx = -1
	}
	pts := [][3]vec.Vec2{
		{{X: cx + sx*kr, Y: cy - radius}, {X: cx + sx*radius, Y: cy - kr}, {X: cx + sx*radius, Y: cy}},
		{{X: cx + sx*radius, Y: cy + kr}, {X: cx + sx*kr, Y: cy + radius}, {X: cx, Y: cy + radius}},
		{{X: cx - sx*kr, Y: cy + radius}, {X: cx - sx*radius, Y: cy + kr}, {X: cx - sx*radius, Y: cy}},
		{{X: cx - sx*radius, Y: cy - kr}, {X: cx - sx*kr, Y: cy - radius}, {X: cx, Y: cy - radius}},
	}
	for _, c := range pts {
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, c[0], c[1], c[2])
	}
	return p.Close()
}

func ringPath(cx, cy, outer, inner float64) *path.Data {
	p := circlePath(cx, cy, outer, false)
	hole := circlePath(cx, cy, inner, true)
	p.Cmds = append(p.Cmds, hole.Cmds...)
	p.Coords = append(p.Coords, hole.Coords...)
	return p
}

func diamondPath(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx, Y: cy - r}).
		LineTo(vec.Vec2{X: cx + r, Y: cy}).
		LineTo(vec.Vec2{X: cx, Y: cy + r}).
		LineTo(vec.Vec2{X: cx - r, Y: cy}).
		Close()
}
