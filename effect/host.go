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

import (
	"image"

	"seehuhn.de/go/lightly/gpu"
	"seehuhn.de/go/lightly/policy"
)

// WindowID identifies a window for as long as it exists.
type WindowID uint64

// OutputID identifies an output (monitor).
type OutputID uint64

// SyntheticOutput is the key used for all outputs when the compositor does
// not render outputs separately (X11).
const SyntheticOutput OutputID = 0

// Host is the compositor running the effect.
type Host interface {
	// IsWayland reports whether the compositor runs as a Wayland server.
	// Otherwise all outputs share one set of textures.
	IsWayland() bool

	IsOpenGLCompositing() bool
	FramebufferSupported() bool

	Outputs() []OutputID

	// StackingOrder lists all windows, bottom to top.
	StackingOrder() []Window

	// MaximizeArea returns the area a window would occupy when maximized.
	MaximizeArea(w Window) image.Rectangle

	// AddRepaintFull schedules a repaint of all outputs.
	AddRepaintFull()
}

// Window is a window as seen by the effect.  Geometry is in logical
// compositor coordinates.
type Window interface {
	ID() WindowID

	// Metadata returns the current type, class and geometry of the window.
	Metadata() policy.Window

	ContentsRect() image.Rectangle
	Output() OutputID

	// Decoration returns the server-side decoration, or nil.
	Decoration() *Decoration

	// IsDeleted reports whether the window is closed but still shown,
	// for example during a close animation.
	IsDeleted() bool
}

// Decoration describes a server-side window decoration.
type Decoration struct {
	// ShadowSize is the size of the decoration's shadow image.  It is zero
	// if the decoration has no shadow.
	ShadowSize image.Point
}

// Shader is the pixel shader which composites the masks.
type Shader interface {
	// IsValid reports whether the shader compiled.  It is checked on every
	// frame.
	IsValid() bool

	Push()
	Pop()
	SetUniform(name string, value any)

	BindTexture(unit int, t *gpu.Texture)
	UnbindTexture(unit int)
}

// TextureUploader turns rasters into GPU textures.  [gpu.Uploader]
// implements it.
type TextureUploader interface {
	Upload(label string, img *image.RGBA) (*gpu.Texture, error)
	Release(t *gpu.Texture)
}

// Drawer finishes drawing one window.  The host passes a Drawer to
// [Effect.DrawWindow] and the effect calls exactly one of its methods.
type Drawer interface {
	// Draw draws the window through the unmodified default path.
	Draw()

	// DrawOffscreen renders the window into an offscreen texture and
	// draws it through the current shader.
	DrawOffscreen()
}

// PaintMask holds flags describing how a window is painted.
type PaintMask uint32

// Paint flags.
const (
	PaintWindowOpaque PaintMask = 1 << iota
	PaintWindowTranslucent
	PaintWindowTransformed
)

// Viewport describes the part of the screen being rendered.
type Viewport struct {
	Output OutputID

	// RenderRect is the rendered area in logical coordinates.
	RenderRect image.Rectangle

	// Scale is the device pixel ratio of the output.
	Scale float64
}
