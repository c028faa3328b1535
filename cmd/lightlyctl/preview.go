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

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"seehuhn.de/go/lightly/config"
	"seehuhn.de/go/lightly/mask"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		scale  float64
		zoom   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the corner masks of the current settings to a PNG file",
		Long: `Render the fill mask and the light and dark outline rings for the
current settings, side by side on a gray background, magnified by the
given zoom factor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scale <= 0 {
				return fmt.Errorf("invalid scale %g", scale)
			}
			if zoom < 1 {
				return fmt.Errorf("invalid zoom %d", zoom)
			}

			c, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			set, err := mask.NewSet(c.MaskParams(scale))
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			err = png.Encode(f, previewImage(set, zoom))
			if err2 := f.Close(); err == nil {
				err = err2
			}
			if err != nil {
				return err
			}

			a.log.Info().
				Str("file", output).
				Int("size", set.Side()).
				Stringer("shape", set.Shape).
				Msg("preview written")
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 1, "device pixel ratio")
	cmd.Flags().IntVar(&zoom, "zoom", 8, "magnification of the preview")
	cmd.Flags().StringVarP(&output, "output", "o", "lightly-preview.png", "output file")
	return cmd
}

// previewBackground lets both the light and the dark outline show.
var previewBackground = color.Gray{Y: 128}

// previewImage places the fill mask and the two outline rasters of set
// next to each other, each magnified by zoom.
func previewImage(set *mask.Set, zoom int) *image.RGBA {
	tile := set.Side() * zoom
	margin := 2 * zoom
	rasters := []*image.RGBA{set.Fill, set.Light, set.Dark}

	w := len(rasters)*tile + (len(rasters)+1)*margin
	h := tile + 2*margin
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)

	for i, src := range rasters {
		x := margin + i*(tile+margin)
		r := image.Rect(x, margin, x+tile, margin+tile)
		draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
	}
	return dst
}
