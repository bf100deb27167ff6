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

package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/hardware/controller"
)

// ScriptError is the pattern for errors found when parsing a script.
const ScriptError = "input script: %v"

// Script is a list of timed events. It implements both the EventPlayback and
// EventRecorder interfaces.
//
// The text form of a script is a list of entries separated by semi-colons.
// Each entry is a frame number and the buttons pressed from that frame,
// optionally followed by the player number:
//
//	60:S; 62:; 300:AR; 300:U/1
//
// The letters for the buttons are those used by controller.Buttons.String()
// and an entry with no letters releases all buttons.
type Script struct {
	events []TimedEvent
	next   int
}

// ParseScript creates a Script from the text form.
func ParseScript(s string) (*Script, error) {
	scr := &Script{}

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		frame, rest, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, curated.Errorf(ScriptError, fmt.Sprintf("missing frame number in %q", entry))
		}

		var ev TimedEvent
		var err error

		ev.Frame, err = strconv.Atoi(strings.TrimSpace(frame))
		if err != nil {
			return nil, curated.Errorf(ScriptError, err)
		}

		buttons, player, ok := strings.Cut(rest, "/")
		if ok {
			ev.Player, err = strconv.Atoi(strings.TrimSpace(player))
			if err != nil {
				return nil, curated.Errorf(ScriptError, err)
			}
			if ev.Player < 0 || ev.Player >= NumPlayers {
				return nil, curated.Errorf(ScriptError, fmt.Sprintf("no player %d", ev.Player))
			}
		}

		for _, c := range strings.TrimSpace(buttons) {
			b, ok := buttonLabels[c]
			if !ok {
				return nil, curated.Errorf(ScriptError, fmt.Sprintf("unknown button %q", c))
			}
			ev.Buttons |= b
		}

		if n := len(scr.events); n > 0 && scr.events[n-1].Frame > ev.Frame {
			return nil, curated.Errorf(ScriptError, fmt.Sprintf("frame %d is out of order", ev.Frame))
		}

		scr.events = append(scr.events, ev)
	}

	return scr, nil
}

var buttonLabels = map[rune]controller.Buttons{
	'A': controller.A,
	'B': controller.B,
	's': controller.Select,
	'S': controller.Start,
	'U': controller.Up,
	'D': controller.Down,
	'L': controller.Left,
	'R': controller.Right,
}

// String returns the script in text form. The result can be parsed by
// ParseScript().
func (scr *Script) String() string {
	var s strings.Builder
	for i, ev := range scr.events {
		if i > 0 {
			s.WriteString("; ")
		}
		fmt.Fprintf(&s, "%d:", ev.Frame)
		for _, c := range ev.Buttons.String() {
			if c != '.' {
				s.WriteRune(c)
			}
		}
		if ev.Player != 0 {
			fmt.Fprintf(&s, "/%d", ev.Player)
		}
	}
	return s.String()
}

// Len returns the number of events in the script.
func (scr *Script) Len() int {
	return len(scr.events)
}

// Rewind the script so that playback starts from the beginning.
func (scr *Script) Rewind() {
	scr.next = 0
}

// GetPlayback implements the EventPlayback interface. Events for frames
// that have already passed are returned immediately.
func (scr *Script) GetPlayback(frame int) (TimedEvent, bool, error) {
	if scr.next >= len(scr.events) {
		return TimedEvent{}, false, nil
	}
	ev := scr.events[scr.next]
	if ev.Frame > frame {
		return TimedEvent{}, false, nil
	}
	scr.next++
	return ev, true, nil
}

// RecordEvent implements the EventRecorder interface.
func (scr *Script) RecordEvent(ev TimedEvent) error {
	scr.events = append(scr.events, ev)
	return nil
}
