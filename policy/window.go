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

package policy

import (
	"fmt"
	"image"
)

// Type is the window type reported by the window manager.  The values
// follow the extended window manager hints.
type Type int

// Window types.
const (
	Normal Type = iota
	Desktop
	Dock
	Toolbar
	Menu
	Dialog
	Utility
	Splash
	DropdownMenu
	PopupMenu
	Tooltip
	Notification
	ComboBox
	DNDIcon
	OnScreenDisplay
	CriticalNotification
	AppletPopup
)

var typeNames = [...]string{
	Normal:               "normal",
	Desktop:              "desktop",
	Dock:                 "dock",
	Toolbar:              "toolbar",
	Menu:                 "menu",
	Dialog:               "dialog",
	Utility:              "utility",
	Splash:               "splash",
	DropdownMenu:         "dropdown-menu",
	PopupMenu:            "popup-menu",
	Tooltip:              "tooltip",
	Notification:         "notification",
	ComboBox:             "combobox",
	DNDIcon:              "dnd-icon",
	OnScreenDisplay:      "osd",
	CriticalNotification: "critical-notification",
	AppletPopup:          "applet-popup",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Window is the metadata the policy looks at.  Geometry is in logical
// (unscaled) compositor coordinates.
type Window struct {
	Type    Type
	Class   string
	Caption string

	// HasDecoration is set for windows with a server-side decoration.
	HasDecoration bool

	// FrameGeometry is the window including its decoration.
	FrameGeometry image.Rectangle

	// ExpandedGeometry additionally includes the drop shadow.
	ExpandedGeometry image.Rectangle

	Modal       bool
	Fullscreen  bool
	Special     bool
	PopupWindow bool
	LockScreen  bool
}

// HasShadow reports whether the compositor draws a shadow around w, which
// is the case when the expanded geometry is larger than the frame.
func (w *Window) HasShadow() bool {
	return w.ExpandedGeometry.Size() != w.FrameGeometry.Size()
}

// IsDesktop reports whether w is the desktop background.
func (w *Window) IsDesktop() bool { return w.Type == Desktop }

// IsPopupMenu reports whether w is a popup menu.
func (w *Window) IsPopupMenu() bool { return w.Type == PopupMenu }

// IsTooltip reports whether w is a tooltip.
func (w *Window) IsTooltip() bool { return w.Type == Tooltip }

// IsDropdownMenu reports whether w is a dropdown menu.
func (w *Window) IsDropdownMenu() bool { return w.Type == DropdownMenu }

// IsSplash reports whether w is a splash screen.
func (w *Window) IsSplash() bool { return w.Type == Splash }

// IsPopup reports whether w is a menu, combo box list or tooltip, or a
// window the client marked as a popup.  Notifications are not popups.
func (w *Window) IsPopup() bool {
	switch w.Type {
	case PopupMenu, DropdownMenu, Tooltip, ComboBox:
		return true
	}
	return w.PopupWindow
}
