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

	"github.com/spf13/cobra"

	"seehuhn.de/go/lightly/config"
)

func newShowCmd(a *app) *cobra.Command {
	var scale float64
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long: `Print the settings as the compositor sees them: the configuration file,
then the LIGHTLY_* environment overrides, clamped into their valid ranges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[%s]\n", config.Group)
			for _, key := range config.Keys {
				value, _ := c.Value(key)
				fmt.Fprintf(out, "%s=%s\n", key, value)
			}

			if scale > 0 {
				p := c.MaskParams(scale)
				fmt.Fprintf(out, "\n# scale %g: radius %d, shadow offset %d, masks %dx%d\n",
					scale, p.Size-p.ShadowOffset, p.ShadowOffset, 2*p.Size, 2*p.Size)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 0, "also print the mask geometry for this device pixel ratio")
	return cmd
}
