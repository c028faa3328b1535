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

// Package lightly rounds the corners of windows in a compositor.
//
// The work is split over several packages.  [seehuhn.de/go/lightly/mask]
// renders the corner masks and outline rings, using the anti-aliasing
// rasterizer in [seehuhn.de/go/lightly/raster].  The package
// [seehuhn.de/go/lightly/policy] decides which windows are rounded, and
// [seehuhn.de/go/lightly/effect] ties everything together behind the hooks
// a compositor calls for every frame.  Settings are read and written by
// [seehuhn.de/go/lightly/config].
package lightly

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"seehuhn.de/go/lightly/mask"
	"seehuhn.de/go/lightly/testcases"
)

// RenderExample renders the alpha channel of a test case mask into a
// grayscale buffer, in row-major order.  Pixels outside the mask raster
// are left unchanged.  It returns an error if the mask parameters are
// invalid.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	img, err := mask.Generate(tc.Params, tc.Variant)
	if err != nil {
		return err
	}
	side := tc.Side()
	for y := range min(side, height) {
		row := buf[y*stride:]
		for x := range min(side, width) {
			row[x] = img.Pix[img.PixOffset(x, y)+3]
		}
	}
	return nil
}
