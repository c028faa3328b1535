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

import (
	"fmt"
	"strings"

	"seehuhn.de/go/lightly/config"
	"seehuhn.de/go/lightly/mask"
)

// scaleCases holds the masks of the default settings at common device
// pixel ratios.  Only the radius is scaled; the shadow offset is not.
var scaleCases = scaled([]float64{1, 1.25, 1.5, 2, 3})

func scaled(scales []float64) []TestCase {
	var res []TestCase
	for _, shape := range []config.CornersType{config.RoundedCorners, config.SquircledCorners} {
		cfg := config.Defaults()
		cfg.CornersType = shape
		for _, s := range scales {
			name := strings.ReplaceAll(fmt.Sprintf("%s_%g", cfg.CornersType.Shape(), s), ".", "_")
			for _, v := range []mask.Variant{mask.Fill, mask.LightOutline} {
				tc := TestCase{
					Name:    name,
					Params:  cfg.MaskParams(s),
					Variant: v,
				}
				if v != mask.Fill {
					tc.Name += "_outline"
				}
				res = append(res, tc)
			}
		}
	}
	return res
}
