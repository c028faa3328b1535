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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/ini.v1"
)

// ErrNoGroup is returned by Read if the file has no settings group for
// the effect.
var ErrNoGroup = errors.New("config: settings group not found")

func init() {
	// KConfig writes key=value without alignment padding.
	ini.PrettyFormat = false
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:      true,
	SkipUnrecognizableLines:  true,
	KeyValueDelimiterOnWrite: "=",
}

// DefaultPath returns the location of the compositor configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kwinrc"), nil
}

// Read reads the settings group from the file at path.  Keys missing from
// the group keep their default values.  No environment overrides are
// applied and the result is not normalized.
//
// If the file exists but has no settings group, the defaults are returned
// together with an error wrapping ErrNoGroup.
func Read(path string) (Config, error) {
	c := Defaults()
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return c, err
	}
	sec, err := f.GetSection(Group)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, ErrNoGroup)
	}

	c.Roundness = sec.Key(keyRoundness).MustInt(c.Roundness)
	c.ShadowOffset = sec.Key(keyShadowOffset).MustInt(c.ShadowOffset)
	if sec.HasKey(keyCornersType) {
		if err := c.CornersType.Decode(sec.Key(keyCornersType).String()); err != nil {
			return c, fmt.Errorf("%s: %w", path, err)
		}
	}
	c.SquircleRatio = sec.Key(keySquircleRatio).MustInt(c.SquircleRatio)
	c.Alpha = sec.Key(keyAlpha).MustInt(c.Alpha)
	c.Outline = sec.Key(keyOutline).MustBool(c.Outline)
	c.DarkTheme = sec.Key(keyDarkTheme).MustBool(c.DarkTheme)
	c.DisabledForMaximized = sec.Key(keyDisabledForMaximized).MustBool(c.DisabledForMaximized)
	return c, nil
}

// Load returns the effective settings: the file at path (a missing file or
// group means defaults), then the LIGHTLY_* environment overrides, then
// Normalize.
func Load(path string) (Config, error) {
	c, err := Read(path)
	if err != nil && !errors.Is(err, ErrNoGroup) && !errors.Is(err, fs.ErrNotExist) {
		return Defaults(), err
	}
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Defaults(), fmt.Errorf("config: environment: %w", err)
	}
	c.Normalize()
	return c, nil
}

// Save writes c into the settings group of the file at path.  Other groups
// and unknown keys are preserved.  The file is created if needed.
func Save(path string, c Config) error {
	opts := loadOptions
	opts.Loose = true
	f, err := ini.LoadSources(opts, path)
	if err != nil {
		return err
	}

	sec := f.Section(Group)
	for _, key := range Keys {
		value, _ := c.Value(key)
		sec.Key(key).SetValue(value)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveTo(path)
}

// File is a Source reading the configuration file at Path.
type File struct {
	Path string
}

// Load implements Source.
func (f File) Load() (Config, error) {
	return Load(f.Path)
}
