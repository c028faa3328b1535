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
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lightly/config"
)

func newSetCmd(a *app) *cobra.Command {
	var noReload bool
	cmd := &cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Change settings in the configuration file",
		Long: `Change settings in the configuration file and ask the compositor to
reload them.  Keys are matched ignoring case, for example

    lightlyctl set roundness=8 cornerstype=squircle outline=true

Values are clamped into their valid ranges before they are written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Read(a.configPath)
			if err != nil && !errors.Is(err, config.ErrNoGroup) && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("%q: expected KEY=VALUE", arg)
				}
				if err := c.Set(key, value); err != nil {
					return err
				}
			}
			c.Normalize()

			if err := config.Save(a.configPath, c); err != nil {
				return err
			}
			a.log.Info().Str("path", a.configPath).Int("changed", len(args)).Msg("settings saved")

			if !noReload {
				a.reload(cmd.Context())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "only write the file, do not notify the compositor")
	return cmd
}
