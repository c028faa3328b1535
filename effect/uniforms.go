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

package effect

import "image"

// Texture units used by the shader.
const (
	WindowUnit       = 0
	MaskUnit         = 1
	LightOutlineUnit = 2
	DarkOutlineUnit  = 3
)

// samplers maps sampler uniform names to texture units.
var samplers = []struct {
	name string
	unit int
}{
	{"sampler", WindowUnit},
	{"mask_sampler", MaskUnit},
	{"light_outline_sampler", LightOutlineUnit},
	{"dark_outline_sampler", DarkOutlineUnit},
}

// Vec2 is a two component shader vector.
type Vec2 [2]float32

// Vec3 is a three component shader vector.
type Vec3 [3]float32

// IVec2 is a two component integer shader vector.
type IVec2 [2]int32

// Uniforms holds the per-window shader inputs.  Sizes are in device
// pixels.
type Uniforms struct {
	FrameSize    Vec2
	ExpandedSize Vec2

	// CSDShadowOffset is the space between the frame and the expanded
	// geometry: left, top and bottom.
	CSDShadowOffset Vec3

	Radius             int32
	ShadowSampleOffset int32
	ContentSize        Vec2
	IsWayland          bool
	HasDecoration      bool
	ShadowTexSize      IVec2

	// OutlineStrength is the outline opacity, between 0 and 1.
	OutlineStrength float32
	DrawOutline     bool
	DarkTheme       bool
	Scale           float32
}

// Apply sets all uniforms on s.
func (u *Uniforms) Apply(s Shader) {
	s.SetUniform("frame_size", u.FrameSize)
	s.SetUniform("expanded_size", u.ExpandedSize)
	s.SetUniform("csd_shadow_offset", u.CSDShadowOffset)
	s.SetUniform("radius", u.Radius)
	s.SetUniform("shadow_sample_offset", u.ShadowSampleOffset)
	s.SetUniform("content_size", u.ContentSize)
	s.SetUniform("is_wayland", u.IsWayland)
	s.SetUniform("has_decoration", u.HasDecoration)
	s.SetUniform("shadow_tex_size", u.ShadowTexSize)
	s.SetUniform("outline_strength", u.OutlineStrength)
	s.SetUniform("draw_outline", u.DrawOutline)
	s.SetUniform("dark_theme", u.DarkTheme)
	s.SetUniform("scale", u.Scale)
}

// scaledRect is a rectangle with fractional device pixel coordinates.
type scaledRect struct {
	x, y, w, h float64
}

func scaleRect(r image.Rectangle, s float64) scaledRect {
	return scaledRect{
		x: float64(r.Min.X) * s,
		y: float64(r.Min.Y) * s,
		w: float64(r.Dx()) * s,
		h: float64(r.Dy()) * s,
	}
}

func (r scaledRect) size() Vec2 {
	return Vec2{float32(r.w), float32(r.h)}
}
