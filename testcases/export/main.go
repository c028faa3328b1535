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

// Command export writes test case definitions to JSON, for rendering
// reference masks with other tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/lightly/mask"
	"seehuhn.de/go/lightly/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string        `json:"name"`
	Size          int           `json:"size"`
	ShadowOffset  int           `json:"shadow_offset"`
	Shape         string        `json:"shape"`
	SquircleRatio int           `json:"squircle_ratio,omitempty"`
	Variant       string        `json:"variant"`
	Outer         []jsonSegment `json:"outer"`
	Inner         []jsonSegment `json:"inner,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	outer, inner := tc.Shapes()
	jtc := jsonTestCase{
		Name:         category + "_" + tc.Name,
		Size:         tc.Params.Size,
		ShadowOffset: tc.Params.ShadowOffset,
		Shape:        tc.Params.Shape.String(),
		Variant:      tc.Variant.String(),
		Outer:        pathToJSON(outer),
		Inner:        pathToJSON(inner),
	}
	if tc.Params.Shape == mask.Squircle {
		jtc.SquircleRatio = tc.Params.SquircleRatio
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	if p == nil {
		return nil
	}
	var segs []jsonSegment
	idx := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[idx : idx+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		idx += n
		segs = append(segs, seg)
	}
	return segs
}
