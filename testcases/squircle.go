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

var squircleCases = []TestCase{
	{
		Name:   "ratio_0",
		Params: squircle(12, 2, 0),
	},
	{
		Name:   "ratio_6",
		Params: squircle(12, 2, 6),
	},
	{
		Name:   "ratio_12",
		Params: squircle(12, 2, 12),
	},
	{
		Name:   "ratio_18",
		Params: squircle(12, 2, 18),
	},
	{
		Name:   "ratio_24",
		Params: squircle(12, 2, mask.MaxSquircleRatio),
	},
	{
		Name:   "small",
		Params: squircle(3, 1, 12),
	},
	{
		Name:   "large_no_offset",
		Params: squircle(32, 0, 18),
	},
}

// squircle returns the mask geometry for squircle corners.
func squircle(radius, offset, ratio int) mask.Params {
	return mask.Params{
		Size:          radius + offset,
		ShadowOffset:  offset,
		Shape:         mask.Squircle,
		SquircleRatio: ratio,
	}
}
