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

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period after the last change to the
// configuration file before it is reloaded.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads the configuration file whenever it changes.
//
// The directory containing the file is watched rather than the file
// itself, since configuration writers usually replace the file by
// renaming a temporary file over it.
type Watcher struct {
	path     string
	debounce time.Duration
	log      zerolog.Logger
	w        *fsnotify.Watcher
}

// NewWatcher starts watching the file at path.  Changes are only reported
// once Run is called.
func NewWatcher(path string, debounce time.Duration, logger zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		log:      logger.With().Str("path", path).Logger(),
		w:        w,
	}, nil
}

// Run calls onChange with the reloaded settings after every change to the
// file, until ctx is cancelled.  Bursts of changes within the debounce
// period result in a single reload.  Reload errors are logged and the
// previous settings stay in effect.
func (w *Watcher) Run(ctx context.Context, onChange func(Config)) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			c, err := Load(w.path)
			if err != nil {
				w.log.Error().Err(err).Msg("reloading settings")
				continue
			}
			w.log.Debug().Int("roundness", c.Roundness).Msg("settings changed")
			onChange(c)

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watching settings")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
