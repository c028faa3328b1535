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
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lightly/raster"
)

// ErrInvalidSize is returned when a mask of non-positive size is requested.
var ErrInvalidSize = errors.New("mask: size must be positive")

// Params describes the geometry of a corner mask, in device pixels.
type Params struct {
	// Size is half the side length of the raster, radius+ShadowOffset.
	Size int

	// ShadowOffset insets the rounded shape from the raster border.
	// Must satisfy 0 <= ShadowOffset < Size.
	ShadowOffset int

	Shape Shape

	// SquircleRatio controls the curvature of Squircle corners,
	// from 0 (almost circular) to MaxSquircleRatio.
	SquircleRatio int
}

// Generate renders one raster variant.  The result is a premultiplied
// RGBA image of size 2·p.Size × 2·p.Size.
//
// For Fill, the alpha channel is the mask: fully opaque black outside the
// shape inset by ShadowOffset, transparent inside.  The outline variants
// are one pixel wide rings, white for LightOutline (inset ShadowOffset)
// and black for DarkOutline (inset ShadowOffset-1).
func Generate(p Params, v Variant) (*image.RGBA, error) {
	if p.Size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, p.Size)
	}

	g := newGenerator(p.Size)
	switch v {
	case Fill:
		inner := g.coverage(p, float64(p.ShadowOffset))
		return g.image(func(i int) (float32, bool) {
			return 1 - inner[i], false
		}), nil

	case LightOutline, DarkOutline:
		inset := p.ShadowOffset
		if v == DarkOutline {
			inset--
		}
		outer := g.coverage(p, float64(inset))
		inner := g.coverage(p, float64(inset+1))
		white := v == LightOutline
		return g.image(func(i int) (float32, bool) {
			return outer[i] * (1 - inner[i]), white
		}), nil

	default:
		return nil, fmt.Errorf("mask: unknown variant %d", int(v))
	}
}

// generator holds the rasterizer for one raster size.
type generator struct {
	side int
	r    *raster.Rasterizer
}

func newGenerator(size int) *generator {
	side := 2 * size
	clip := rect.Rect{URx: float64(side), URy: float64(side)}
	r := raster.NewRasterizer(clip)
	r.Flatness = maskFlatness
	return &generator{side: side, r: r}
}

// maskFlatness is the curve flattening tolerance for mask rasters, in
// pixels.  Masks are small and generated rarely, so this is much finer
// than the rasterizer default.
const maskFlatness = 0.01

// coverage returns the per-pixel coverage of the shape inset by the given
// amount.
func (g *generator) coverage(p Params, inset float64) []float32 {
	shape := ShapePath(p.Shape, float64(p.Size), inset, p.SquircleRatio)
	if shape == nil {
		return make([]float32, g.side*g.side)
	}
	return g.r.Coverage(shape)
}

// image builds the premultiplied raster.  px returns the alpha of pixel i
// and whether the pixel is white (otherwise black).
func (g *generator) image(px func(i int) (alpha float32, white bool)) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.side, g.side))
	for i := range g.side * g.side {
		a, white := px(i)
		ab := toByte(a)
		o := 4 * i
		if white {
			img.Pix[o], img.Pix[o+1], img.Pix[o+2] = ab, ab, ab
		}
		img.Pix[o+3] = ab
	}
	return img
}

// toByte converts a coverage value to an 8-bit channel value.
func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
