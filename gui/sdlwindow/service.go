// This file is part of GopherFC.
//
// GopherFC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherFC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherFC.  If not, see <https://www.gnu.org/licenses/>.

package sdlwindow

import (
	"github.com/gopherfc/gopherfc/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// send an event over the event channel. the event is dropped if there is no
// event channel or if the channel is full.
func (win *Window) send(ev gui.Event) {
	if win.eventChannel == nil {
		return
	}
	select {
	case win.eventChannel <- ev:
	default:
	}
}

func keyMod() gui.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return gui.KeyModAlt
	}
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return gui.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

// service all pending SDL events. returns false if the window has been
// closed.
//
// MUST ONLY be called from the #mainthread
func (win *Window) service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.send(gui.EventQuit{})
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			win.send(gui.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  keyMod(),
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}
	return true
}
