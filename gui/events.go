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

package gui

// KeyMod identifies the modifier keys held at the time of a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

func (m KeyMod) String() string {
	switch m {
	case KeyModShift:
		return "Shift"
	case KeyModCtrl:
		return "Ctrl"
	case KeyModAlt:
		return "Alt"
	}
	return ""
}

// Event is sent over the event channel. Event will be one of the Event*
// types in this package.
type Event any

// EventKeyboard is sent when a key is pressed or released. Key is the name
// of the key as reported by the window (eg. "Space", "Return", "F").
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventQuit is sent when the window has been closed by the user.
type EventQuit struct{}
