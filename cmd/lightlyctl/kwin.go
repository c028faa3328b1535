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

package main

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"seehuhn.de/go/lightly/config"
)

// D-Bus names of the compositor's effect manager.
const (
	kwinDestination = "org.kde.KWin"
	effectsPath     = "/Effects"
	effectsIface    = "org.kde.kwin.Effects"
)

// reconfigureEffect asks a running compositor to reload the effect
// settings, over the session bus.
func reconfigureEffect(ctx context.Context) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(kwinDestination, effectsPath)

	var loaded bool
	err = obj.CallWithContext(ctx, effectsIface+".isEffectLoaded", 0, config.EffectID).Store(&loaded)
	if err != nil {
		return fmt.Errorf("isEffectLoaded: %w", err)
	}
	if !loaded {
		return fmt.Errorf("effect %q is not loaded", config.EffectID)
	}

	call := obj.CallWithContext(ctx, effectsIface+".reconfigureEffect", 0, config.EffectID)
	if call.Err != nil {
		return fmt.Errorf("reconfigureEffect: %w", call.Err)
	}
	return nil
}
