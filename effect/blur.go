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

// BlurWindowAdded registers a window with the blur companion.  Only
// windows the policy manages get rounded blur regions.
func (e *Effect) BlurWindowAdded(w Window) {
	meta := w.Metadata()
	if e.policy.IsManaged(&meta) {
		e.blurWindows[w.ID()] = true
	}
}

// BlurWindowDeleted unregisters a window from the blur companion.
func (e *Effect) BlurWindowDeleted(w Window) {
	delete(e.blurWindows, w.ID())
}

// RoundBlurRegion removes the rounded corners from the blur region of w.
// The blur region is relative to the window frame.
func (e *Effect) RoundBlurRegion(w Window, blur region.Region) region.Region {
	if blur.Empty() || !e.blurWindows[w.ID()] {
		return blur
	}
	frame := w.Metadata().FrameGeometry
	if e.cfg.DisabledForMaximized && e.host.MaximizeArea(w) == frame {
		return blur
	}

	r, o := e.cfg.Roundness, e.cfg.ShadowOffset
	near := 1 - o
	right := frame.Dx() - r - 1
	bottom := frame.Dy() - r - 1
	pos := [mask.NumCorners]image.Point{
		mask.TopLeft:     {near, near},
		mask.TopRight:    {right, near},
		mask.BottomRight: {right, bottom},
		mask.BottomLeft:  {near, bottom},
	}
	for _, c := range mask.Corners {
		blur = blur.Subtract(e.corners[c].Translate(pos[c].X, pos[c].Y))
	}
	return blur
}
