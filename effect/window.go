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

import "seehuhn.de/go/lightly/policy"

// WindowAdded classifies a new window.  A window which is re-added is
// classified again.
func (e *Effect) WindowAdded(w Window) {
	meta := w.Metadata()
	managed, rule := e.policy.Evaluate(&meta)

	st := &WindowState{Managed: managed}
	e.windows[w.ID()] = st

	e.log.Debug().
		Str("class", meta.Class).
		Bool("managed", managed).
		Str("rule", rule).
		Msg("window added")

	if managed && e.cfg.DisabledForMaximized && e.host.MaximizeArea(w) == meta.FrameGeometry {
		st.SkipEffect = true
	}
}

// WindowDeleted forgets a window.
func (e *Effect) WindowDeleted(w Window) {
	delete(e.windows, w.ID())
}

// WindowMaximizedStateChanged is called when a managed window is maximized
// or restored.  Rounding is skipped for windows maximized in both
// directions, if this is configured.
func (e *Effect) WindowMaximizedStateChanged(w Window, horizontal, vertical bool) {
	if !e.cfg.DisabledForMaximized {
		return
	}
	st, ok := e.windows[w.ID()]
	if !ok || !st.Managed {
		return
	}
	st.SkipEffect = horizontal && vertical
}

// isValidWindow reports whether w is rounded in the current frame.
func (e *Effect) isValidWindow(w Window, meta *policy.Window) bool {
	if e.shader == nil || !e.shader.IsValid() {
		return false
	}
	st, ok := e.windows[w.ID()]
	if !ok || !st.Managed || st.SkipEffect {
		return false
	}
	return policy.IsPaintable(meta)
}
