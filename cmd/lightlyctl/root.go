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
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seehuhn.de/go/lightly/config"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	log        zerolog.Logger

	// notify asks the compositor to reload the settings.
	notify func(ctx context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "lightlyctl",
		Short:        "Configure rounded window corners",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := zerolog.InfoLevel
			if a.verbose {
				level = zerolog.DebugLevel
			}
			out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}
			a.log = zerolog.New(out).Level(level).With().Timestamp().Logger()

			if a.configPath == "" {
				path, err := config.DefaultPath()
				if err != nil {
					return err
				}
				a.configPath = path
			}
			a.log.Debug().Str("path", a.configPath).Msg("using configuration file")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("LIGHTLY_CONFIG"),
		"configuration file (default is kwinrc in the user config directory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug output")

	root.AddCommand(newShowCmd(a))
	root.AddCommand(newSetCmd(a))
	root.AddCommand(newReloadCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

// reload tells the compositor about changed settings.  Failures are
// logged, since the compositor may not be running.
func (a *app) reload(ctx context.Context) {
	if a.notify == nil {
		return
	}
	if err := a.notify(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not notify the compositor")
		return
	}
	a.log.Info().Str("effect", config.EffectID).Msg("effect reconfigured")
}
