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

// Command genpdf generates reference images for mask tests.
// It creates PDFs from test cases and renders them to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lightly/mask"
	"seehuhn.de/go/lightly/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	side := float64(tc.Side())

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: side,
		URy: side,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The gray value of the output is the mask alpha.  The fill mask is
	// opaque outside the shape, so it starts from white and the shape is
	// painted black.  Outline rings are painted white on black.
	background, ink := color.DeviceGray(0), color.DeviceGray(1)
	if tc.Variant == mask.Fill {
		background, ink = ink, background
	}
	page.SetFillColor(background)
	page.Rectangle(0, 0, side, side)
	page.Fill()

	// PDF origin is bottom-left; masks assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, side})

	page.SetFillColor(ink)

	outer, inner := tc.Shapes()
	for _, p := range []*path.Data{outer, inner} {
		if p == nil {
			continue
		}
		idx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				pt := p.Coords[idx]
				page.MoveTo(pt.X, pt.Y)
				idx++
			case path.CmdLineTo:
				pt := p.Coords[idx]
				page.LineTo(pt.X, pt.Y)
				idx++
			case path.CmdCubeTo:
				c1, c2, pt := p.Coords[idx], p.Coords[idx+1], p.Coords[idx+2]
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
				idx += 3
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	// The inner shape lies inside the outer one, so the even-odd rule
	// leaves the ring between them.
	if outer != nil {
		page.FillEvenOdd()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
