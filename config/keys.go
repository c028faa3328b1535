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
	"strconv"
	"strings"
)

// ErrUnknownKey is returned for setting names not in Keys.
var ErrUnknownKey = errors.New("config: unknown key")

// Key names inside the settings group.
const (
	keyRoundness            = "Roundness"
	keyShadowOffset         = "ShadowOffset"
	keyCornersType          = "CornersType"
	keySquircleRatio        = "SquircleRatio"
	keyAlpha                = "Alpha"
	keyOutline              = "Outline"
	keyDarkTheme            = "DarkTheme"
	keyDisabledForMaximized = "DisabledForMaximized"
)

// Keys lists the names of all settings, in the order they are written.
var Keys = []string{
	keyRoundness,
	keyShadowOffset,
	keyCornersType,
	keySquircleRatio,
	keyAlpha,
	keyOutline,
	keyDarkTheme,
	keyDisabledForMaximized,
}

// canonicalKey returns the spelling from Keys of a case-insensitive key.
func canonicalKey(key string) (string, error) {
	for _, k := range Keys {
		if strings.EqualFold(k, key) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Value returns a setting formatted as in the configuration file.
func (c *Config) Value(key string) (string, error) {
	key, err := canonicalKey(key)
	if err != nil {
		return "", err
	}
	switch key {
	case keyRoundness:
		return strconv.Itoa(c.Roundness), nil
	case keyShadowOffset:
		return strconv.Itoa(c.ShadowOffset), nil
	case keyCornersType:
		return c.CornersType.String(), nil
	case keySquircleRatio:
		return strconv.Itoa(c.SquircleRatio), nil
	case keyAlpha:
		return strconv.Itoa(c.Alpha), nil
	case keyOutline:
		return strconv.FormatBool(c.Outline), nil
	case keyDarkTheme:
		return strconv.FormatBool(c.DarkTheme), nil
	default: // keyDisabledForMaximized
		return strconv.FormatBool(c.DisabledForMaximized), nil
	}
}

// Set parses value and assigns it to the named setting.  Key names are
// matched ignoring case.  The result is not normalized.
func (c *Config) Set(key, value string) error {
	key, err := canonicalKey(key)
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	var target any
	switch key {
	case keyRoundness:
		target = &c.Roundness
	case keyShadowOffset:
		target = &c.ShadowOffset
	case keyCornersType:
		return c.CornersType.Decode(value)
	case keySquircleRatio:
		target = &c.SquircleRatio
	case keyAlpha:
		target = &c.Alpha
	case keyOutline:
		target = &c.Outline
	case keyDarkTheme:
		target = &c.DarkTheme
	case keyDisabledForMaximized:
		target = &c.DisabledForMaximized
	}

	switch t := target.(type) {
	case *int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*t = n
	case *bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*t = b
	}
	return nil
}
