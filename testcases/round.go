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

package testcases

import "seehuhn.de/go/lightly/mask"

var roundCases = []TestCase{
	{
		Name:   "radius_1",
		Params: round(1, 0),
	},
	{
		Name:   "radius_3_offset_2",
		Params: round(3, 2),
	},
	{
		Name:   "default",
		Params: round(5, 2),
	},
	{
		Name:   "radius_8_no_offset",
		Params: round(8, 0),
	},
	{
		Name:   "radius_12_offset_4",
		Params: round(12, 4),
	},
	{
		Name:   "radius_40_offset_2",
		Params: round(40, 2),
	},
}

// round returns the mask geometry for circular corners.
func round(radius, offset int) mask.Params {
	return mask.Params{
		Size:         radius + offset,
		ShadowOffset: offset,
		Shape:        mask.Round,
	}
}
