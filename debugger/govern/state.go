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

package govern

// State is returned by the continue check functions passed to the run loops
// of the hardware package. It is also the state of the playmode and debugger
// loops.
type State int

// List of emulation states. The zero value, EmulatorStart, is never returned
// by a continue check.
//
// Initialising ends a run loop in the same way as Ending but indicates that
// the loop will be started again. for example, after a new cartridge has been
// inserted.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

// Advancing returns true if the emulation clocks forward in the state.
func (s State) Advancing() bool {
	return s == Running || s == Stepping
}

// Stopping returns true if a run loop should return when the state is
// reached.
func (s State) Stopping() bool {
	return s == Ending || s == Initialising
}

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}
	return "unknown state"
}
