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
	"errors"
	"image"

	"github.com/gogpu/gputypes"

	"seehuhn.de/go/lightly/gpu"
	"seehuhn.de/go/lightly/policy"
)

type fakeHost struct {
	wayland  bool
	gl, fbo  bool
	outputs  []OutputID
	windows  []Window
	maxArea  image.Rectangle
	repaints int
}

func (h *fakeHost) IsWayland() bool                     { return h.wayland }
func (h *fakeHost) IsOpenGLCompositing() bool           { return h.gl }
func (h *fakeHost) FramebufferSupported() bool          { return h.fbo }
func (h *fakeHost) Outputs() []OutputID                 { return h.outputs }
func (h *fakeHost) StackingOrder() []Window             { return h.windows }
func (h *fakeHost) MaximizeArea(Window) image.Rectangle { return h.maxArea }
func (h *fakeHost) AddRepaintFull()                     { h.repaints++ }

type fakeWindow struct {
	id       WindowID
	meta     policy.Window
	contents image.Rectangle
	output   OutputID
	dec      *Decoration
	deleted  bool
}

func (w *fakeWindow) ID() WindowID                  { return w.id }
func (w *fakeWindow) Metadata() policy.Window       { return w.meta }
func (w *fakeWindow) ContentsRect() image.Rectangle { return w.contents }
func (w *fakeWindow) Output() OutputID              { return w.output }
func (w *fakeWindow) Decoration() *Decoration       { return w.dec }
func (w *fakeWindow) IsDeleted() bool               { return w.deleted }

// appWindow returns a decorated application window with a shadow.
func appWindow(id WindowID, frame image.Rectangle) *fakeWindow {
	w := &fakeWindow{id: id, contents: frame, output: 1}
	w.meta = policy.Window{
		Type:             policy.Normal,
		Class:            "org.kde.konsole",
		Caption:          "Konsole",
		HasDecoration:    true,
		FrameGeometry:    frame,
		ExpandedGeometry: frame.Inset(-10),
	}
	return w
}

type fakeShader struct {
	valid    bool
	depth    int
	uniforms map[string]any
	bound    map[int]*gpu.Texture
	binds    int
	bindHook func(unit int, t *gpu.Texture)
}

func newFakeShader() *fakeShader {
	return &fakeShader{
		valid:    true,
		uniforms: map[string]any{},
		bound:    map[int]*gpu.Texture{},
	}
}

func (s *fakeShader) IsValid() bool { return s.valid }
func (s *fakeShader) Push()         { s.depth++ }
func (s *fakeShader) Pop()          { s.depth-- }

func (s *fakeShader) SetUniform(name string, value any) {
	s.uniforms[name] = value
}

func (s *fakeShader) BindTexture(unit int, t *gpu.Texture) {
	s.bound[unit] = t
	s.binds++
	if s.bindHook != nil {
		s.bindHook(unit, t)
	}
}

func (s *fakeShader) UnbindTexture(unit int) {
	delete(s.bound, unit)
}

// memDevice keeps textures in memory and counts texture creations.
type memDevice struct {
	next    gpu.Handle
	live    map[gpu.Handle]*gputypes.TextureDescriptor
	data    map[gpu.Handle][]byte
	created int
	fail    bool
}

func newMemDevice() *memDevice {
	return &memDevice{
		next: 1,
		live: map[gpu.Handle]*gputypes.TextureDescriptor{},
		data: map[gpu.Handle][]byte{},
	}
}

func (d *memDevice) CreateTexture(desc *gputypes.TextureDescriptor) (gpu.Handle, error) {
	if d.fail {
		return 0, errors.New("out of texture memory")
	}
	h := d.next
	d.next++
	d.live[h] = desc
	d.created++
	return h, nil
}

func (d *memDevice) WriteTexture(dst *gputypes.ImageCopyTexture, data []byte, _ *gputypes.TextureDataLayout, _ *gputypes.Extent3D) error {
	d.data[gpu.Handle(dst.Texture)] = append([]byte(nil), data...)
	return nil
}

func (d *memDevice) ReleaseTexture(h gpu.Handle) {
	delete(d.live, h)
	delete(d.data, h)
}

type fakeDrawer struct {
	plain, offscreen int
}

func (d *fakeDrawer) Draw()          { d.plain++ }
func (d *fakeDrawer) DrawOffscreen() { d.offscreen++ }
