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

// Package mask generates the corner mask and outline rasters of the effect
// and slices them into per-corner regions.
//
// All rasters of one [Set] are squares of side 2·(radius+shadowOffset),
// stored as premultiplied RGBA.  The four quadrants of a raster hold the
// four corners of a window.
package mask

import "fmt"

// Corner identifies one of the four corners of a window.  The values are
// used as array indices.
type Corner int

// The four corners, in clockwise order starting at the top left.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft

	NumCorners = 4
)

// Corners lists all corners in index order.
var Corners = [NumCorners]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Shape is the curve used for the rounded corners.
type Shape int

const (
	// Round corners are quarter circles.
	Round Shape = iota

	// Squircle corners follow a superellipse-like cubic curve whose
	// curvature is controlled by the squircle ratio.
	Squircle
)

func (s Shape) String() string {
	switch s {
	case Round:
		return "round"
	case Squircle:
		return "squircle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Variant selects which raster [Generate] produces.
type Variant int

const (
	// Fill is opaque in the cut-away corner pixels and transparent inside
	// the rounded shape.
	Fill Variant = iota

	// LightOutline is a white ring just inside the shape edge.
	LightOutline

	// DarkOutline is a black ring one pixel further out than the light one.
	DarkOutline
)

func (v Variant) String() string {
	switch v {
	case Fill:
		return "fill"
	case LightOutline:
		return "light-outline"
	case DarkOutline:
		return "dark-outline"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// MaxSquircleRatio is the largest meaningful squircle ratio.  At this
// value the control points sit at 1.05 times the edge length, which is
// close to a rounded rectangle.
const MaxSquircleRatio = 24
