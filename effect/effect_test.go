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
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/lightly/config"
	"seehuhn.de/go/lightly/gpu"
	"seehuhn.de/go/lightly/policy"
	"seehuhn.de/go/lightly/region"
)

var screen = image.Rect(0, 0, 1920, 1080)

type testSetup struct {
	host   *fakeHost
	shader *fakeShader
	dev    *memDevice
	e      *Effect
}

func newTestSetup(cfg config.Config, opts ...Option) *testSetup {
	s := &testSetup{
		host:   &fakeHost{wayland: true, gl: true, fbo: true, outputs: []OutputID{1}},
		shader: newFakeShader(),
		dev:    newMemDevice(),
	}
	s.e = New(s.host, s.shader, gpu.NewUploader(s.dev), config.Static(cfg), opts...)
	return s
}

func (s *testSetup) draw(w Window, paint PaintMask) *fakeDrawer {
	d := &fakeDrawer{}
	s.e.DrawWindow(Viewport{Output: 1, RenderRect: screen, Scale: 1}, w, paint, d)
	return d
}

type failingSource struct{}

func (failingSource) Load() (config.Config, error) {
	return config.Config{}, errors.New("settings unavailable")
}

func TestIsSupported(t *testing.T) {
	h := &fakeHost{gl: true}
	assert.False(t, IsSupported(h))
	assert.False(t, IsEnabledByDefault(h))

	h.fbo = true
	assert.True(t, IsSupported(h))
	assert.True(t, IsEnabledByDefault(h))

	h.gl = false
	assert.False(t, IsSupported(h))
}

func TestInitialize(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSetup(config.Defaults(), WithLogger(zerolog.New(&buf)))
	w := appWindow(1, image.Rect(100, 100, 500, 400))
	s.host.windows = []Window{w}

	s.e.Initialize()

	assert.Contains(t, buf.String(), "effect loaded")
	assert.Equal(t, int32(MaskUnit), s.shader.uniforms["mask_sampler"])
	assert.Equal(t, int32(DarkOutlineUnit), s.shader.uniforms["dark_outline_sampler"])
	assert.Equal(t, 0, s.shader.depth)
	assert.True(t, s.e.Window(1).Managed)
	assert.Equal(t, 3, s.dev.created)
	assert.Equal(t, 1, s.host.repaints)

	out, ok := s.e.Output(1)
	require.True(t, ok)
	assert.Equal(t, 1.0, out.Scale)
	assert.Equal(t, 5, out.Radius)
}

func TestSettingsFailure(t *testing.T) {
	var buf bytes.Buffer
	host := &fakeHost{wayland: true, gl: true, fbo: true, outputs: []OutputID{1}}
	e := New(host, newFakeShader(), gpu.NewUploader(newMemDevice()), failingSource{},
		WithLogger(zerolog.New(&buf)))
	e.Initialize()

	assert.Equal(t, config.Defaults(), e.Config())
	assert.Contains(t, buf.String(), "loading settings")
	_, ok := e.Output(1)
	assert.True(t, ok)
}

func TestScaleRebuild(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()
	require.Equal(t, 3, s.dev.created)

	scales := []float64{1, 1, 2, 2, 1}
	rebuilt := []bool{false, false, true, false, true}
	for i, scale := range scales {
		before := s.dev.created
		s.e.PaintScreen(Viewport{Output: 1, RenderRect: screen, Scale: scale})
		if rebuilt[i] {
			assert.Equal(t, before+3, s.dev.created, "frame %d", i)
		} else {
			assert.Equal(t, before, s.dev.created, "frame %d", i)
		}
		assert.Len(t, s.dev.live, 3)
	}

	out, _ := s.e.Output(1)
	assert.Equal(t, 1.0, out.Scale)
}

func TestScaledRadius(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	s.e.PaintScreen(Viewport{Output: 1, RenderRect: screen, Scale: 1.5})
	out, _ := s.e.Output(1)
	assert.Equal(t, 7, out.Radius)
	assert.Equal(t, 9, out.Masks.Size)
	assert.Equal(t, 18, out.Fill.Width)
}

func TestPaintScreenNewOutput(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	s.e.PaintScreen(Viewport{Output: 7, RenderRect: screen, Scale: 2})
	out, ok := s.e.Output(7)
	require.True(t, ok)
	assert.Equal(t, 2.0, out.Scale)
	assert.Equal(t, 10, out.Radius)
}

func TestClampReconfigure(t *testing.T) {
	s := newTestSetup(config.Config{Roundness: 3, ShadowOffset: 7})
	s.e.Initialize()

	assert.Equal(t, 2, s.e.Config().ShadowOffset)
	out, ok := s.e.Output(1)
	require.True(t, ok)
	assert.Equal(t, 5, out.Masks.Size)
	assert.Equal(t, 10, out.Fill.Width)
}

func TestIdempotentReconfigure(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	out, _ := s.e.Output(1)
	fill := append([]byte(nil), out.Masks.Fill.Pix...)
	dark := append([]byte(nil), out.Masks.Dark.Pix...)

	s.e.Reconfigure()

	out, _ = s.e.Output(1)
	assert.Equal(t, fill, out.Masks.Fill.Pix)
	assert.Equal(t, dark, out.Masks.Dark.Pix)
	assert.Equal(t, 6, s.dev.created)
	assert.Len(t, s.dev.live, 3)
	assert.Equal(t, 2, s.host.repaints)
}

func TestReconfigureKeepsScale(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()
	s.e.PaintScreen(Viewport{Output: 1, RenderRect: screen, Scale: 2})

	s.e.Reconfigure()
	out, _ := s.e.Output(1)
	assert.Equal(t, 2.0, out.Scale)
	assert.Equal(t, 10, out.Radius)
}

func TestX11SingleKey(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.host.wayland = false
	s.host.outputs = []OutputID{1, 2}
	s.e.Initialize()

	assert.Equal(t, 3, s.dev.created)
	a, ok := s.e.Output(1)
	require.True(t, ok)
	b, ok := s.e.Output(2)
	require.True(t, ok)
	assert.Same(t, a, b)

	s.e.PaintScreen(Viewport{Output: 2, RenderRect: screen, Scale: 1})
	assert.Equal(t, 3, s.dev.created)

	w := appWindow(1, image.Rect(100, 100, 500, 400))
	w.output = 2
	s.e.WindowAdded(w)
	d := s.draw(w, 0)
	assert.Equal(t, 1, d.offscreen)
	assert.Equal(t, false, s.shader.uniforms["is_wayland"])

	s.e.OutputRemoved(SyntheticOutput)
	assert.Len(t, s.dev.live, 3)
}

func TestOutputRemoved(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.host.outputs = []OutputID{1, 2}
	s.e.Initialize()
	require.Len(t, s.dev.live, 6)

	s.e.OutputRemoved(2)
	assert.Len(t, s.dev.live, 3)
	_, ok := s.e.Output(2)
	assert.False(t, ok)
	_, ok = s.e.Output(1)
	assert.True(t, ok)

	s.e.OutputRemoved(5)
	assert.Len(t, s.dev.live, 3)
}

func TestCloseReleases(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.host.outputs = []OutputID{1, 2}
	s.e.Initialize()
	s.e.WindowAdded(appWindow(1, image.Rect(0, 0, 100, 100)))

	s.e.Close()
	assert.Empty(t, s.dev.live)
	_, ok := s.e.Output(1)
	assert.False(t, ok)
	assert.False(t, s.e.Window(1).Managed)
}

func TestUploadFailure(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.dev.fail = true
	s.e.Initialize()

	out, ok := s.e.Output(1)
	require.True(t, ok)
	assert.NotNil(t, out.Masks)
	assert.Nil(t, out.Fill)

	w := appWindow(1, image.Rect(100, 100, 500, 400))
	s.e.WindowAdded(w)
	d := s.draw(w, 0)
	assert.Equal(t, 1, d.plain)
	assert.Equal(t, 0, d.offscreen)
	assert.Equal(t, 0, s.shader.binds)

	// the next rebuild succeeds
	s.dev.fail = false
	s.e.Reconfigure()
	d = s.draw(w, 0)
	assert.Equal(t, 1, d.offscreen)
}

func TestWindowLifecycle(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	w := appWindow(1, image.Rect(100, 100, 500, 400))
	s.e.WindowAdded(w)
	assert.True(t, s.e.Window(1).Managed)

	dock := appWindow(2, image.Rect(0, 1040, 1920, 1080))
	dock.meta.Type = policy.Dock
	s.e.WindowAdded(dock)
	assert.False(t, s.e.Window(2).Managed)

	s.e.WindowDeleted(w)
	assert.Equal(t, WindowState{}, s.e.Window(1))
	d := s.draw(w, 0)
	assert.Equal(t, 1, d.plain)

	assert.Equal(t, WindowState{}, s.e.Window(99))
}

func TestMaximizeToggle(t *testing.T) {
	cfg := config.Defaults()
	cfg.DisabledForMaximized = true
	s := newTestSetup(cfg)
	s.host.maxArea = screen
	s.e.Initialize()

	w := appWindow(1, image.Rect(100, 100, 900, 700))
	s.e.WindowAdded(w)
	assert.False(t, s.e.Window(1).SkipEffect)

	s.e.WindowMaximizedStateChanged(w, true, true)
	assert.True(t, s.e.Window(1).SkipEffect)
	assert.Equal(t, 1, s.draw(w, 0).plain)

	s.e.WindowMaximizedStateChanged(w, false, true)
	assert.False(t, s.e.Window(1).SkipEffect)
	assert.Equal(t, 1, s.draw(w, 0).offscreen)

	s.e.WindowMaximizedStateChanged(w, true, true)
	s.e.WindowMaximizedStateChanged(w, false, false)
	assert.False(t, s.e.Window(1).SkipEffect)

	full := appWindow(2, screen)
	s.e.WindowAdded(full)
	assert.True(t, s.e.Window(2).SkipEffect)

	// unmanaged windows are not touched
	dock := appWindow(3, image.Rect(0, 1040, 1920, 1080))
	dock.meta.Type = policy.Dock
	s.e.WindowAdded(dock)
	s.e.WindowMaximizedStateChanged(dock, true, true)
	assert.False(t, s.e.Window(3).SkipEffect)
}

func TestMaximizeIgnoredWhenEnabled(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.host.maxArea = screen
	s.e.Initialize()

	full := appWindow(1, screen)
	s.e.WindowAdded(full)
	assert.False(t, s.e.Window(1).SkipEffect)

	s.e.WindowMaximizedStateChanged(full, true, true)
	assert.False(t, s.e.Window(1).SkipEffect)
	assert.Equal(t, 1, s.draw(full, 0).offscreen)
}

func TestShaderInvalid(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.shader.valid = false
	w := appWindow(1, image.Rect(100, 100, 300, 250))
	s.host.windows = []Window{w}
	s.e.Initialize()

	assert.Empty(t, s.shader.uniforms)
	assert.Equal(t, 1, s.draw(w, 0).plain)

	frame := region.FromRect(w.meta.FrameGeometry)
	data := &PrePaintData{Opaque: frame}
	s.e.PrePaintWindow(w, data)
	assert.True(t, data.Opaque.Equal(frame))

	s.shader.valid = true
	s.e.WindowAdded(w)
	assert.Equal(t, 1, s.draw(w, 0).offscreen)
}

func TestPrePaintOpaque(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	w := appWindow(1, image.Rect(100, 100, 300, 250))
	s.e.WindowAdded(w)

	data := &PrePaintData{Opaque: region.FromRect(w.meta.FrameGeometry)}
	s.e.PrePaintWindow(w, data)
	for _, p := range []image.Point{{100, 100}, {299, 100}, {299, 249}, {100, 249}} {
		assert.False(t, data.Opaque.Contains(p), "%v", p)
	}
	for _, p := range []image.Point{{200, 175}, {110, 110}, {200, 100}, {100, 175}} {
		assert.True(t, data.Opaque.Contains(p), "%v", p)
	}
	assert.Less(t, data.Opaque.Area(), 200*150)

	dock := appWindow(2, image.Rect(100, 100, 300, 250))
	dock.meta.Type = policy.Dock
	s.e.WindowAdded(dock)
	frame := region.FromRect(dock.meta.FrameGeometry)
	data = &PrePaintData{Opaque: frame}
	s.e.PrePaintWindow(dock, data)
	assert.True(t, data.Opaque.Equal(frame))
}

func TestPrePaintFullscreen(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	w := appWindow(1, image.Rect(100, 100, 300, 250))
	s.e.WindowAdded(w)
	w.meta.Fullscreen = true

	frame := region.FromRect(w.meta.FrameGeometry)
	data := &PrePaintData{Opaque: frame}
	s.e.PrePaintWindow(w, data)
	assert.True(t, data.Opaque.Equal(frame))
	assert.Equal(t, 1, s.draw(w, 0).plain)
}

func TestDecorationTracking(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	w := appWindow(1, image.Rect(100, 100, 300, 250))
	w.dec = &Decoration{ShadowSize: image.Pt(64, 48)}
	s.e.WindowAdded(w)

	data := &PrePaintData{}
	s.e.PrePaintWindow(w, data)
	st := s.e.Window(1)
	assert.Equal(t, IVec2{64, 48}, st.ShadowTexSize)
	assert.True(t, st.HasDecoration)

	w.dec = nil
	s.e.PrePaintWindow(w, data)
	st = s.e.Window(1)
	assert.Equal(t, IVec2{64, 48}, st.ShadowTexSize)
	assert.False(t, st.HasDecoration)

	// deleted windows keep their last decoration state
	w.deleted = true
	w.dec = &Decoration{}
	s.e.PrePaintWindow(w, data)
	assert.False(t, s.e.Window(1).HasDecoration)
}

func TestDrawUniforms(t *testing.T) {
	cfg := config.Defaults()
	cfg.Outline = true
	s := newTestSetup(cfg)
	s.e.Initialize()
	s.e.PaintScreen(Viewport{Output: 1, RenderRect: screen, Scale: 2})

	w := appWindow(1, image.Rect(10, 20, 410, 320))
	w.meta.ExpandedGeometry = image.Rect(0, 5, 420, 345)
	w.contents = image.Rect(10, 50, 410, 320)
	w.dec = &Decoration{ShadowSize: image.Pt(32, 32)}
	s.e.WindowAdded(w)
	s.e.PrePaintWindow(w, &PrePaintData{})

	d := &fakeDrawer{}
	s.e.DrawWindow(Viewport{Output: 1, RenderRect: screen, Scale: 2}, w, 0, d)

	assert.Equal(t, 1, d.offscreen)
	assert.Equal(t, 0, d.plain)

	u := s.shader.uniforms
	assert.Equal(t, Vec2{800, 600}, u["frame_size"])
	assert.Equal(t, Vec2{840, 680}, u["expanded_size"])
	assert.Equal(t, Vec3{20, 30, 50}, u["csd_shadow_offset"])
	assert.Equal(t, int32(10), u["radius"])
	assert.Equal(t, int32(2), u["shadow_sample_offset"])
	assert.Equal(t, Vec2{800, 540}, u["content_size"])
	assert.Equal(t, true, u["is_wayland"])
	assert.Equal(t, false, u["has_decoration"])
	assert.Equal(t, IVec2{32, 32}, u["shadow_tex_size"])
	assert.InDelta(t, 0.15, u["outline_strength"], 1e-6)
	assert.Equal(t, true, u["draw_outline"])
	assert.Equal(t, false, u["dark_theme"])
	assert.Equal(t, float32(2), u["scale"])

	assert.Equal(t, 3, s.shader.binds)
	assert.Empty(t, s.shader.bound)
	assert.Equal(t, 0, s.shader.depth)
}

func TestDrawBindsOutputTextures(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()
	out, _ := s.e.Output(1)

	var seen [4]*gpu.Texture
	s.shader.bindHook = func(unit int, tex *gpu.Texture) { seen[unit] = tex }

	w := appWindow(1, image.Rect(100, 100, 500, 400))
	s.e.WindowAdded(w)
	s.draw(w, 0)

	assert.Nil(t, seen[WindowUnit])
	assert.Same(t, out.Fill, seen[MaskUnit])
	assert.Same(t, out.Light, seen[LightOutlineUnit])
	assert.Same(t, out.Dark, seen[DarkOutlineUnit])
}

func TestDrawBypassOffscreen(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()

	w := appWindow(1, image.Rect(3000, 100, 3400, 400))
	s.e.WindowAdded(w)

	d := s.draw(w, 0)
	assert.Equal(t, 1, d.plain)
	assert.Equal(t, 0, d.offscreen)

	d = s.draw(w, PaintWindowTransformed)
	assert.Equal(t, 0, d.plain)
	assert.Equal(t, 1, d.offscreen)
}

func TestDrawUnknownOutput(t *testing.T) {
	s := newTestSetup(config.Defaults())
	s.e.Initialize()
	require.Equal(t, 3, s.dev.created)

	w := appWindow(1, image.Rect(100, 100, 500, 400))
	w.output = 4
	s.e.WindowAdded(w)

	d := s.draw(w, 0)
	assert.Equal(t, 1, d.offscreen)
	assert.Equal(t, 0, d.plain)
	assert.Equal(t, float32(1), s.shader.uniforms["scale"])
	assert.Equal(t, int32(5), s.shader.uniforms["radius"])

	out, ok := s.e.Output(4)
	require.True(t, ok)
	assert.Equal(t, 1.0, out.Scale)
	assert.Len(t, s.dev.live, 6)
}

func TestRoundBlurRegion(t *testing.T) {
	cfg := config.Defaults()
	cfg.DisabledForMaximized = true
	s := newTestSetup(cfg)
	s.host.maxArea = screen
	s.e.Initialize()

	w := appWindow(1, image.Rect(100, 100, 500, 400))
	blur := region.FromRect(image.Rect(0, 0, 400, 300))

	// not registered
	assert.True(t, s.e.RoundBlurRegion(w, blur).Equal(blur))

	s.e.BlurWindowAdded(w)
	got := s.e.RoundBlurRegion(w, blur)
	assert.False(t, got.Contains(image.Pt(0, 0)))
	assert.False(t, got.Contains(image.Pt(399, 299)))
	assert.True(t, got.Contains(image.Pt(200, 150)))
	assert.Less(t, got.Area(), blur.Area())

	assert.True(t, s.e.RoundBlurRegion(w, region.Region{}).Empty())

	full := appWindow(2, screen)
	s.e.BlurWindowAdded(full)
	fullBlur := region.FromRect(image.Rect(0, 0, 1920, 1080))
	assert.True(t, s.e.RoundBlurRegion(full, fullBlur).Equal(fullBlur))

	s.e.BlurWindowDeleted(w)
	assert.True(t, s.e.RoundBlurRegion(w, blur).Equal(blur))

	dock := appWindow(3, image.Rect(0, 1040, 1920, 1080))
	dock.meta.Type = policy.Dock
	s.e.BlurWindowAdded(dock)
	dockBlur := region.FromRect(image.Rect(0, 0, 1920, 40))
	assert.True(t, s.e.RoundBlurRegion(dock, dockBlur).Equal(dockBlur))
}
