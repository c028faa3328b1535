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

package mask

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498307936

// ShapePath returns the closed outline of the rounded shape inscribed in
// the square [inset, 2·size-inset]².  This is the region which is kept
// visible; everything outside it belongs to a corner.
//
// A nil path is returned if the square is empty.
func ShapePath(shape Shape, size, inset float64, squircleRatio int) *path.Data {
	half := size - inset
	if half <= 0 {
		return nil
	}
	if shape == Squircle {
		return squirclePath(half, inset, squircleRatio)
	}
	return ellipsePath(size, size, half)
}

// squirclePath builds a squircle spanning [t, t+2·half]².  The curve is
// made of four cubic segments, each a 90° rotation of the first one.
// The segments start at the edge midpoints.
func squirclePath(half, t float64, ratio int) *path.Data {
	d := 2 * half
	span := d * (float64(ratio)/MaxSquircleRatio*0.25 + 0.8)
	edge := d - span

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x + t, Y: y + t} }

	p := (&path.Data{}).MoveTo(pt(half, 0))
	cubeTo(p, pt(span, 0), pt(d, edge), pt(d, half))
	cubeTo(p, pt(d, span), pt(span, d), pt(half, d))
	cubeTo(p, pt(edge, d), pt(0, span), pt(0, half))
	cubeTo(p, pt(0, edge), pt(edge, 0), pt(half, 0))
	return p.Close()
}

// ellipsePath builds a circle with centre (cx, cy) from four cubic
// segments, starting at the top.
func ellipsePath(cx, cy, r float64) *path.Data {
	kr := kappa * r
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + x, Y: cy + y} }

	p := (&path.Data{}).MoveTo(pt(0, -r))
	cubeTo(p, pt(kr, -r), pt(r, -kr), pt(r, 0))
	cubeTo(p, pt(r, kr), pt(kr, r), pt(0, r))
	cubeTo(p, pt(-kr, r), pt(-r, kr), pt(-r, 0))
	cubeTo(p, pt(-r, -kr), pt(-kr, -r), pt(0, -r))
	return p.Close()
}

func cubeTo(p *path.Data, c1, c2, end vec.Vec2) {
	p.Cmds = append(p.Cmds, path.CmdCubeTo)
	p.Coords = append(p.Coords, c1, c2, end)
}
