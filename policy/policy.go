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

// Package policy decides which windows get rounded corners.
//
// The decision is made by an ordered list of exclusion rules.  The first
// rule which matches excludes the window; a window no rule matches is
// managed.  The order matters, since some rules only make sense once the
// earlier ones have passed.
package policy

import (
	"regexp"
	"slices"
	"strings"
)

// Rule is one named exclusion predicate.
type Rule struct {
	Name     string
	Excludes func(w *Window) bool
}

// Denylist holds the application names the rules match against.  All
// matches are case-insensitive substring matches on the window class.
type Denylist struct {
	// Shell lists shell components (panels, docks, launchers, session
	// managers), excluded when they have no server-side decoration.
	Shell []string

	// Shadowless lists applications excluded only when they have neither
	// a decoration nor a compositor drawn shadow.
	Shadowless []string

	// IDE lists applications whose floating tool windows are excluded.
	IDE []string

	// IDEToolCaption matches the captions of these tool windows.
	IDEToolCaption *regexp.Regexp

	// ShellHost is the class of the desktop shell itself; its transient
	// windows are excluded.
	ShellHost string
}

// DefaultDenylist returns the built-in application names.
func DefaultDenylist() Denylist {
	return Denylist{
		Shell: []string{
			"plasma", "krunner", "latte-dock", "lattedock", "plank",
			"cairo-dock", "albert", "ulauncher", "ksplash", "ksmserver",
		},
		Shadowless:     []string{"reaper"},
		IDE:            []string{"jetbrains"},
		IDEToolCaption: regexp.MustCompile(`win[0-9]+`),
		ShellHost:      "plasma",
	}
}

// Rule names, as reported by [Policy.Evaluate].
const (
	RuleWindowType    = "window-type"
	RuleShellClass    = "shell-class"
	RuleIDEToolWindow = "ide-tool-window"
	RuleShellPopup    = "shell-transient"
	RuleWindowState   = "window-state"
)

// excludedTypes are never rounded.
var excludedTypes = []Type{
	OnScreenDisplay, Dock, Menu, DropdownMenu, Tooltip, ComboBox, Splash,
}

// Policy is an ordered list of exclusion rules.
type Policy struct {
	Rules []Rule
}

// Default returns the policy with the built-in denylist.
func Default() *Policy {
	return New(DefaultDenylist())
}

// New returns the standard rule chain, matching against d.
func New(d Denylist) *Policy {
	return &Policy{Rules: []Rule{
		{
			Name: RuleWindowType,
			Excludes: func(w *Window) bool {
				return slices.Contains(excludedTypes, w.Type)
			},
		},
		{
			Name: RuleShellClass,
			Excludes: func(w *Window) bool {
				if w.HasDecoration {
					return false
				}
				if classContainsAny(w.Class, d.Shell) {
					return true
				}
				return !w.HasShadow() && classContainsAny(w.Class, d.Shadowless)
			},
		},
		{
			Name: RuleIDEToolWindow,
			Excludes: func(w *Window) bool {
				return d.IDEToolCaption != nil &&
					classContainsAny(w.Class, d.IDE) &&
					d.IDEToolCaption.MatchString(w.Caption)
			},
		},
		{
			Name: RuleShellPopup,
			Excludes: func(w *Window) bool {
				return d.ShellHost != "" &&
					containsFold(w.Class, d.ShellHost) &&
					w.Type != Normal && w.Type != Dialog && !w.Modal
			},
		},
		{
			Name: RuleWindowState,
			Excludes: func(w *Window) bool {
				return w.IsDesktop() ||
					w.Fullscreen ||
					w.IsPopupMenu() ||
					w.IsTooltip() ||
					w.Special ||
					w.IsDropdownMenu() ||
					w.IsPopup() ||
					w.LockScreen ||
					w.IsSplash()
			},
		},
	}}
}

// Evaluate runs the rules in order.  If a rule excludes the window, its
// name is returned together with managed=false.  Otherwise the window is
// managed and rule is empty.
func (p *Policy) Evaluate(w *Window) (managed bool, rule string) {
	for _, r := range p.Rules {
		if r.Excludes(w) {
			return false, r.Name
		}
	}
	return true, ""
}

// IsManaged reports whether w gets rounded corners.
func (p *Policy) IsManaged(w *Window) bool {
	managed, _ := p.Evaluate(w)
	return managed
}

// IsPaintable reports whether a managed window can be rounded in the
// current frame.  Fullscreen, desktop and special windows never are; this
// covers windows whose state changed after they were classified.
func IsPaintable(w *Window) bool {
	return !w.Fullscreen && !w.IsDesktop() && !w.Special
}

func classContainsAny(class string, names []string) bool {
	for _, name := range names {
		if containsFold(class, name) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
