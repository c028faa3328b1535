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

// Package testcases lists corner mask rasters used to check the mask
// generator against independent renderers.
package testcases

import (
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/lightly/mask"
)

// TestCase defines a single mask rendering test.
type TestCase struct {
	Name    string       // lowercase a-z, 0-9 and _ only
	Params  mask.Params  // mask geometry in device pixels
	Variant mask.Variant // fill mask or outline ring
}

// Side returns the width and height of the raster in pixels.
func (tc TestCase) Side() int {
	return 2 * tc.Params.Size
}

// Shapes returns the outlines the mask alpha is computed from.
//
// For the fill mask, inner is nil and the alpha is one minus the coverage
// of outer.  For the outlines, the alpha is the coverage of outer times one
// minus the coverage of inner.  A nil outer path covers nothing.
func (tc TestCase) Shapes() (outer, inner *path.Data) {
	p := tc.Params
	size := float64(p.Size)
	inset := float64(p.ShadowOffset)
	switch tc.Variant {
	case mask.Fill:
		return mask.ShapePath(p.Shape, size, inset, p.SquircleRatio), nil
	case mask.DarkOutline:
		inset--
	}
	outer = mask.ShapePath(p.Shape, size, inset, p.SquircleRatio)
	inner = mask.ShapePath(p.Shape, size, inset+1, p.SquircleRatio)
	return outer, inner
}

// Alpha combines the coverages of the two shapes returned by Shapes.
func (tc TestCase) Alpha(outer, inner float32) float32 {
	if tc.Variant == mask.Fill {
		return 1 - outer
	}
	return outer * (1 - inner)
}
