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

	"seehuhn.de/go/lightly/mask"
	"seehuhn.de/go/lightly/region"
)

// PrePaintData is the part of the pre-paint state the effect changes.
type PrePaintData struct {
	// Opaque is the region the window covers completely.  Pixels outside
	// it are blended with what lies below.
	Opaque region.Region
}

// cornerPositions returns where the corner regions of a window with the
// given frame geometry are placed.  Right corners start radius pixels from
// the right edge, top and left corners shadowOffset pixels outside the
// frame.
func cornerPositions(frame image.Rectangle, radius, shadowOffset int) [mask.NumCorners]image.Point {
	left := frame.Min.X - shadowOffset
	top := frame.Min.Y - shadowOffset
	right := frame.Max.X - radius
	bottom := frame.Max.Y - radius
	return [mask.NumCorners]image.Point{
		mask.TopLeft:     {left, top},
		mask.TopRight:    {right, top},
		mask.BottomRight: {right, bottom},
		mask.BottomLeft:  {left, bottom},
	}
}

// PrePaintWindow removes the rounded-away corner pixels from the opaque
// region of w and tracks the window decoration.
func (e *Effect) PrePaintWindow(w Window, data *PrePaintData) {
	meta := w.Metadata()
	if !e.isValidWindow(w, &meta) {
		return
	}

	pos := cornerPositions(meta.FrameGeometry, e.cfg.Roundness, e.cfg.ShadowOffset)
	for _, c := range mask.Corners {
		data.Opaque = data.Opaque.Subtract(e.corners[c].Translate(pos[c].X, pos[c].Y))
	}

	st := e.windows[w.ID()]
	dec := w.Decoration()
	if dec != nil && dec.ShadowSize != (image.Point{}) {
		st.ShadowTexSize = IVec2{int32(dec.ShadowSize.X), int32(dec.ShadowSize.Y)}
	}
	if !w.IsDeleted() {
		st.HasDecoration = dec != nil
	}
}

// PaintScreen is called once per output and frame, before the windows are
// drawn.  If the scale of the output changed, its textures are rebuilt.
func (e *Effect) PaintScreen(vp Viewport) {
	key := e.outputKey(vp.Output)
	st, ok := e.outputs[key]
	if ok && st.Scale == vp.Scale {
		return
	}
	e.rebuild(key, vp.Scale)
}

// DrawWindow draws w, with rounded corners if it is managed.
func (e *Effect) DrawWindow(vp Viewport, w Window, paint PaintMask, d Drawer) {
	meta := w.Metadata()
	visible := vp.RenderRect.Overlaps(meta.FrameGeometry) || paint&PaintWindowTransformed != 0
	if !e.isValidWindow(w, &meta) || !visible {
		d.Draw()
		return
	}

	key := e.outputKey(w.Output())
	out, ok := e.outputs[key]
	if !ok {
		// an output nobody painted yet gets scale 1
		e.rebuild(key, 1)
		out = e.outputs[key]
	}
	if !out.hasTextures() {
		d.Draw()
		return
	}
	ws := e.windows[w.ID()]

	frame := scaleRect(meta.FrameGeometry, out.Scale)
	expanded := scaleRect(meta.ExpandedGeometry, out.Scale)
	contents := scaleRect(w.ContentsRect(), out.Scale)

	u := &Uniforms{
		FrameSize:    frame.size(),
		ExpandedSize: expanded.size(),
		CSDShadowOffset: Vec3{
			float32(frame.x - expanded.x),
			float32(frame.y - expanded.y),
			float32(expanded.h - frame.h - frame.y + expanded.y),
		},
		Radius:             int32(out.Radius),
		ShadowSampleOffset: int32(e.cfg.ShadowOffset),
		ContentSize:        contents.size(),
		IsWayland:          e.host.IsWayland(),
		HasDecoration:      false, // decorated windows are rounded as well
		ShadowTexSize:      ws.ShadowTexSize,
		OutlineStrength:    float32(e.cfg.Alpha) / 100,
		DrawOutline:        e.cfg.Outline,
		DarkTheme:          e.cfg.DarkTheme,
		Scale:              float32(out.Scale),
	}

	e.shader.Push()
	u.Apply(e.shader)
	e.shader.BindTexture(DarkOutlineUnit, out.Dark)
	e.shader.BindTexture(LightOutlineUnit, out.Light)
	e.shader.BindTexture(MaskUnit, out.Fill)

	d.DrawOffscreen()

	e.shader.UnbindTexture(MaskUnit)
	e.shader.UnbindTexture(LightOutlineUnit)
	e.shader.UnbindTexture(DarkOutlineUnit)
	e.shader.Pop()
}
