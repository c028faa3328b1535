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

// Set holds all rasters and regions needed to round the corners of windows
// on one output.  A Set is never modified after creation; a configuration
// or scale change produces a new Set.
type Set struct {
	Params

	Fill  *image.RGBA
	Light *image.RGBA
	Dark  *image.RGBA

	// Regions holds the opaque part of each quadrant of Fill, in
	// quadrant-local coordinates.
	Regions [NumCorners]region.Region
}

// NewSet generates the three rasters for p and slices the fill mask.
func NewSet(p Params) (*Set, error) {
	s := &Set{Params: p}
	var err error
	if s.Fill, err = Generate(p, Fill); err != nil {
		return nil, err
	}
	if s.Light, err = Generate(p, LightOutline); err != nil {
		return nil, err
	}
	if s.Dark, err = Generate(p, DarkOutline); err != nil {
		return nil, err
	}
	s.Regions = Slice(s.Fill, p.Size)
	return s, nil
}

// Side returns the side length of the rasters.
func (s *Set) Side() int {
	return 2 * s.Size
}

// Region returns the region of corner c, in quadrant-local coordinates.
func (s *Set) Region(c Corner) region.Region {
	return s.Regions[c]
}
