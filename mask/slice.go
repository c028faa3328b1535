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
	"image"

	"seehuhn.de/go/lightly/region"
)

// AlphaThreshold is the smallest alpha value which counts as part of a
// corner region.
const AlphaThreshold = 1

// Quadrant returns the rectangle of the raster holding corner c, for a
// raster of side 2·size.
func Quadrant(c Corner, size int) image.Rectangle {
	switch c {
	case TopRight:
		return image.Rect(size, 0, 2*size, size)
	case BottomRight:
		return image.Rect(size, size, 2*size, 2*size)
	case BottomLeft:
		return image.Rect(0, size, size, 2*size)
	default:
		return image.Rect(0, 0, size, size)
	}
}

// Slice cuts the raster into its four quadrants and converts each into a
// binary region.  The regions use quadrant-local coordinates, so each lies
// within [0, size)².
func Slice(img *image.RGBA, size int) [NumCorners]region.Region {
	var res [NumCorners]region.Region
	quad := image.NewAlpha(image.Rect(0, 0, size, size))
	for _, c := range Corners {
		q := Quadrant(c, size).Add(img.Rect.Min)
		for y := range size {
			for x := range size {
				quad.Pix[quad.PixOffset(x, y)] = img.Pix[img.PixOffset(q.Min.X+x, q.Min.Y+y)+3]
			}
		}
		res[c] = region.FromAlpha(quad, AlphaThreshold)
	}
	return res
}
