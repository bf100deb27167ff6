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
	"github.com/gopherfc/gopherfc/hardware/controller"

	"github.com/veandco/go-sdl2/sdl"
)

// the keys used for each button of the first controller. a button can be
// operated by more than one key.
var player1 = []struct {
	scancode sdl.Scancode
	button   controller.Buttons
}{
	{scancode: sdl.SCANCODE_X, button: controller.A},
	{scancode: sdl.SCANCODE_Z, button: controller.B},
	{scancode: sdl.SCANCODE_TAB, button: controller.Select},
	{scancode: sdl.SCANCODE_RSHIFT, button: controller.Select},
	{scancode: sdl.SCANCODE_RETURN, button: controller.Start},
	{scancode: sdl.SCANCODE_UP, button: controller.Up},
	{scancode: sdl.SCANCODE_DOWN, button: controller.Down},
	{scancode: sdl.SCANCODE_LEFT, button: controller.Left},
	{scancode: sdl.SCANCODE_RIGHT, button: controller.Right},
}

// Buttons implements the gui.Input interface. Only the first player is
// operated by the keyboard.
//
// MUST ONLY be called from the #mainthread
func (win *Window) Buttons(player int) uint8 {
	if player != 0 {
		return 0
	}

	state := sdl.GetKeyboardState()

	var b controller.Buttons
	for _, k := range player1 {
		if int(k.scancode) < len(state) && state[k.scancode] != 0 {
			b |= k.button
		}
	}
	return uint8(b)
}
