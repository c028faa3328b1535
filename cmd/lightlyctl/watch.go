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
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lightly/config"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reconfigure the compositor whenever the settings file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := config.NewWatcher(a.configPath, debounce, a.log)
			if err != nil {
				return err
			}
			defer w.Close()

			a.log.Info().Str("path", a.configPath).Msg("watching settings")
			return w.Run(cmd.Context(), func(c config.Config) {
				a.log.Info().
					Int("roundness", c.Roundness).
					Int("shadow_offset", c.ShadowOffset).
					Stringer("corners", c.CornersType).
					Msg("settings changed")
				a.reload(cmd.Context())
			})
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultDebounce, "wait this long for further changes before reloading")
	return cmd
}
