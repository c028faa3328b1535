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

// Package config holds the user settings of the effect.
//
// Settings live in the [Effect-lightlyshaders] group of the compositor's
// configuration file (kwinrc).  Environment variables with the prefix
// LIGHTLY_ override individual values, for example LIGHTLY_SHADOW_OFFSET.
// Unprefixed variables are never consulted.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/lightly/mask"
)

// EffectID is the name under which the compositor knows the effect.
const EffectID = "lightlyshaders"

// Group is the name of the settings group in the configuration file.
const Group = "Effect-" + EffectID

// EnvPrefix is the prefix of the environment overrides.
const EnvPrefix = "LIGHTLY"

// CornersType selects the corner shape.
type CornersType int

// Corner shapes, in the order used by the configuration file.
const (
	RoundedCorners CornersType = iota
	SquircledCorners
)

var cornersTypeNames = []string{"RoundedCorners", "SquircledCorners"}

func (c CornersType) String() string {
	if c >= 0 && int(c) < len(cornersTypeNames) {
		return cornersTypeNames[c]
	}
	return strconv.Itoa(int(c))
}

// Decode parses a corner type given either by name or by number.  The
// short names "round" and "squircle" are accepted as well.
func (c *CornersType) Decode(value string) error {
	value = strings.TrimSpace(value)
	for i, name := range cornersTypeNames {
		if strings.EqualFold(value, name) {
			*c = CornersType(i)
			return nil
		}
	}
	switch strings.ToLower(value) {
	case "round":
		*c = RoundedCorners
		return nil
	case "squircle":
		*c = SquircledCorners
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n >= len(cornersTypeNames) {
		return fmt.Errorf("invalid corners type %q", value)
	}
	*c = CornersType(n)
	return nil
}

// Shape returns the mask shape for c.
func (c CornersType) Shape() mask.Shape {
	if c == SquircledCorners {
		return mask.Squircle
	}
	return mask.Round
}

// Config holds the effect settings.
type Config struct {
	// Roundness is the corner radius in logical pixels.
	Roundness int

	// ShadowOffset is the distance between the window edge and the start
	// of the rounded shape, in pixels.  Always less than Roundness after
	// Normalize.
	ShadowOffset int `split_words:"true"`

	CornersType CornersType `split_words:"true"`

	// SquircleRatio controls the curvature of squircle corners.
	SquircleRatio int `split_words:"true"`

	// Alpha is the outline strength in percent.
	Alpha int

	Outline              bool
	DarkTheme            bool `split_words:"true"`
	DisabledForMaximized bool `split_words:"true"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		Roundness:     5,
		ShadowOffset:  2,
		CornersType:   RoundedCorners,
		SquircleRatio: 12,
		Alpha:         15,
	}
}

// Normalize clamps all values into their valid ranges.  In particular the
// shadow offset is reduced to Roundness-1 if it is not smaller than the
// radius.
func (c *Config) Normalize() {
	c.Roundness = max(c.Roundness, 1)
	c.ShadowOffset = max(c.ShadowOffset, 0)
	if c.ShadowOffset >= c.Roundness {
		c.ShadowOffset = c.Roundness - 1
	}
	if c.CornersType != SquircledCorners {
		c.CornersType = RoundedCorners
	}
	c.SquircleRatio = min(max(c.SquircleRatio, 0), mask.MaxSquircleRatio)
	c.Alpha = min(max(c.Alpha, 0), 100)
}

// MaskParams returns the mask geometry for the given output scale.  The
// radius is scaled, the shadow offset is used in device pixels as is.
func (c *Config) MaskParams(scale float64) mask.Params {
	radius := max(int(float64(c.Roundness)*scale), 1)
	offset := min(c.ShadowOffset, radius-1)
	return mask.Params{
		Size:          radius + offset,
		ShadowOffset:  offset,
		Shape:         c.CornersType.Shape(),
		SquircleRatio: c.SquircleRatio,
	}
}

// Source provides the current settings.
type Source interface {
	Load() (Config, error)
}

// Static is a Source which always returns the same settings.
type Static Config

// Load returns the normalized settings.
func (s Static) Load() (Config, error) {
	c := Config(s)
	c.Normalize()
	return c, nil
}
