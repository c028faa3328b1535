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

var outlineCases = []TestCase{
	{
		Name:    "light_round",
		Params:  round(8, 2),
		Variant: mask.LightOutline,
	},
	{
		Name:    "dark_round",
		Params:  round(8, 2),
		Variant: mask.DarkOutline,
	},
	{
		Name:    "light_squircle",
		Params:  squircle(12, 2, 12),
		Variant: mask.LightOutline,
	},
	{
		Name:    "dark_squircle",
		Params:  squircle(12, 2, 12),
		Variant: mask.DarkOutline,
	},
	{
		// the dark ring lies partly outside the raster
		Name:    "dark_no_offset",
		Params:  round(6, 0),
		Variant: mask.DarkOutline,
	},
	{
		Name:    "light_large",
		Params:  round(30, 3),
		Variant: mask.LightOutline,
	},
}
