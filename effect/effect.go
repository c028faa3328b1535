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

// Package effect rounds the corners of windows during compositing.
//
// The compositor calls the hooks of an [Effect] from its render thread:
// window lifecycle notifications as they happen, and PrePaintWindow,
// PaintScreen and DrawWindow for every frame.  None of the hooks block
// and none of them are safe for concurrent use.
package effect

import (
	"fmt"

	"github.com/rs/zerolog"

	"seehuhn.de/go/lightly/config"
	"seehuhn.de/go/lightly/gpu"
	"seehuhn.de/go/lightly/mask"
	"seehuhn.de/go/lightly/policy"
	"seehuhn.de/go/lightly/region"
)

// OutputState holds the textures for one output.
type OutputState struct {
	// Scale is the device pixel ratio the textures were generated for.
	Scale float64

	// Radius is the corner radius in device pixels.
	Radius int

	Masks *mask.Set

	// The textures are nil if the upload failed.
	Fill, Light, Dark *gpu.Texture
}

func (s *OutputState) hasTextures() bool {
	return s.Fill != nil && s.Light != nil && s.Dark != nil
}

// WindowState is what the effect remembers about a window.
type WindowState struct {
	// Managed is decided once, when the window is added.
	Managed bool

	// SkipEffect is set while a managed window is maximized and rounding
	// is disabled for maximized windows.
	SkipEffect bool

	ShadowTexSize IVec2
	HasDecoration bool
}

// Effect is the rounded corners effect.
type Effect struct {
	host     Host
	shader   Shader
	textures TextureUploader
	settings config.Source
	policy   *policy.Policy
	log      zerolog.Logger

	cfg config.Config

	// corners holds the corner regions in logical pixels, used for
	// opaque and blur regions.
	corners [mask.NumCorners]region.Region

	outputs map[OutputID]*OutputState
	windows map[WindowID]*WindowState

	// blurWindows are the windows a blur effect asked about.
	blurWindows map[WindowID]bool
}

// Option configures an Effect.
type Option func(*Effect)

// WithLogger sets the logger.  The default discards all messages.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Effect) {
		e.log = l
	}
}

// WithPolicy replaces the default window eligibility policy.
func WithPolicy(p *policy.Policy) Option {
	return func(e *Effect) {
		e.policy = p
	}
}

// New creates the effect.  Call Initialize before the first frame.
func New(host Host, shader Shader, textures TextureUploader, settings config.Source, opts ...Option) *Effect {
	e := &Effect{
		host:        host,
		shader:      shader,
		textures:    textures,
		settings:    settings,
		policy:      policy.Default(),
		log:         zerolog.Nop(),
		cfg:         config.Defaults(),
		outputs:     make(map[OutputID]*OutputState),
		windows:     make(map[WindowID]*WindowState),
		blurWindows: make(map[WindowID]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsSupported reports whether the compositor can run the effect.
func IsSupported(h Host) bool {
	return h.IsOpenGLCompositing() && h.FramebufferSupported()
}

// IsEnabledByDefault reports whether the effect should be on without
// explicit configuration.
func IsEnabledByDefault(h Host) bool {
	return IsSupported(h)
}

// Initialize loads the settings, builds the textures and registers all
// existing windows.  If the shader is not valid the effect stays inert.
func (e *Effect) Initialize() {
	e.Reconfigure()

	if e.shader == nil || !e.shader.IsValid() {
		e.log.Warn().Msg("no valid shader, windows are drawn unmodified")
		return
	}

	e.shader.Push()
	for _, s := range samplers {
		e.shader.SetUniform(s.name, int32(s.unit))
	}
	e.shader.Pop()

	for _, w := range e.host.StackingOrder() {
		e.WindowAdded(w)
	}
	e.log.Info().Int("windows", len(e.windows)).Msg("effect loaded")
}

// Reconfigure reloads the settings and regenerates the textures of all
// outputs.  If the settings cannot be loaded, the previous ones are kept.
func (e *Effect) Reconfigure() {
	cfg, err := e.settings.Load()
	if err != nil {
		e.log.Error().Err(err).Msg("loading settings")
		cfg = e.cfg
	}
	cfg.Normalize()
	e.cfg = cfg

	logical, err := mask.NewSet(cfg.MaskParams(1))
	if err != nil {
		// not reached for normalized settings
		e.log.Error().Err(err).Msg("generating corner regions")
	} else {
		e.corners = logical.Regions
	}

	for _, key := range e.outputKeys() {
		scale := 1.0
		if st, ok := e.outputs[key]; ok {
			scale = st.Scale
		}
		e.rebuild(key, scale)
	}

	e.host.AddRepaintFull()
}

// Config returns the settings in effect.
func (e *Effect) Config() config.Config {
	return e.cfg
}

// Output returns the state of an output, for inspection.
func (e *Effect) Output(id OutputID) (*OutputState, bool) {
	st, ok := e.outputs[e.outputKey(id)]
	return st, ok
}

// Window returns the state of a window.  Unknown windows get the zero
// state, which is not managed.
func (e *Effect) Window(id WindowID) WindowState {
	if st, ok := e.windows[id]; ok {
		return *st
	}
	return WindowState{}
}

// OutputRemoved releases the textures of a disconnected output.
func (e *Effect) OutputRemoved(id OutputID) {
	if !e.host.IsWayland() {
		return
	}
	if st, ok := e.outputs[id]; ok {
		e.releaseTextures(st)
		delete(e.outputs, id)
	}
}

// Close releases all textures and forgets all windows.
func (e *Effect) Close() {
	for key, st := range e.outputs {
		e.releaseTextures(st)
		delete(e.outputs, key)
	}
	clear(e.windows)
	clear(e.blurWindows)
}

// outputKey maps an output to the key of its state.
func (e *Effect) outputKey(id OutputID) OutputID {
	if !e.host.IsWayland() {
		return SyntheticOutput
	}
	return id
}

func (e *Effect) outputKeys() []OutputID {
	if !e.host.IsWayland() {
		return []OutputID{SyntheticOutput}
	}
	return e.host.Outputs()
}

// rebuild regenerates the masks and textures of one output.
func (e *Effect) rebuild(key OutputID, scale float64) {
	st, ok := e.outputs[key]
	if !ok {
		st = &OutputState{}
		e.outputs[key] = st
	}
	e.releaseTextures(st)

	p := e.cfg.MaskParams(scale)
	st.Scale = scale
	st.Radius = p.Size - p.ShadowOffset

	e.log.Debug().
		Uint64("output", uint64(key)).
		Float64("scale", scale).
		Int("radius", st.Radius).
		Msg("building corner masks")

	set, err := mask.NewSet(p)
	if err != nil {
		e.log.Error().Err(err).Msg("generating corner masks")
		st.Masks = nil
		return
	}
	st.Masks = set

	st.Fill, err = e.upload(key, mask.Fill, set)
	if err == nil {
		st.Light, err = e.upload(key, mask.LightOutline, set)
	}
	if err == nil {
		st.Dark, err = e.upload(key, mask.DarkOutline, set)
	}
	if err != nil {
		e.log.Error().Err(err).Uint64("output", uint64(key)).Msg("uploading corner masks")
		e.releaseTextures(st)
	}
}

func (e *Effect) upload(key OutputID, v mask.Variant, set *mask.Set) (*gpu.Texture, error) {
	img := set.Fill
	switch v {
	case mask.LightOutline:
		img = set.Light
	case mask.DarkOutline:
		img = set.Dark
	}
	return e.textures.Upload(fmt.Sprintf("lightly-%s-%d", v, key), img)
}

func (e *Effect) releaseTextures(st *OutputState) {
	for _, t := range []**gpu.Texture{&st.Fill, &st.Light, &st.Dark} {
		if *t != nil {
			e.textures.Release(*t)
			*t = nil
		}
	}
}
