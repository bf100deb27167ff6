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

package playmode

import (
	"strings"

	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/gui"
)

// handle a keyboard event from the window. only key presses are acted upon.
func (pl *Player) keyboard(ev gui.EventKeyboard) error {
	if !ev.Down {
		return nil
	}

	switch strings.ToUpper(ev.Key) {
	case "SPACE":
		if pl.state == govern.Running {
			pl.setState(govern.Paused)
		} else {
			pl.setState(govern.Running)
		}
	case "C":
		if pl.state == govern.Paused {
			pl.bus.StepInstruction()
		}
	case "F":
		if pl.state == govern.Paused {
			pl.bus.StepFrame()
			return pl.bus.Input.Process()
		}
	case "R":
		pl.bus.Reset()
	case "Q", "ESCAPE":
		pl.quit = true
	}

	return nil
}
