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

	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/hardware/controller"
)

// NumPlayers is the number of controller ports.
const NumPlayers = 2

// Event is a change to the state of a controller.
type Event struct {
	Player  int
	Buttons controller.Buttons
}

func (ev Event) String() string {
	return fmt.Sprintf("P%d %s", ev.Player, ev.Buttons)
}

// TimedEvent is an Event tied to a frame number.
type TimedEvent struct {
	Frame int
	Event
}

// FrameCounter returns the current frame number.
type FrameCounter interface {
	FrameNumber() int
}

// Input handles all forms of input into the console.
type Input struct {
	frame FrameCounter
	ports [NumPlayers]*controller.Controller

	playback EventPlayback
	recorder EventRecorder

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(frame FrameCounter, ports [NumPlayers]*controller.Controller) *Input {
	return &Input{
		frame:  frame,
		ports:  ports,
		pushed: make(chan Event, 64),
	}
}

// HandleInputEvent sets the state of a controller.
//
// If a playback is currently active the input will not be handled and false
// will be returned.
func (inp *Input) HandleInputEvent(ev Event) (bool, error) {
	if inp.playback != nil {
		return false, nil
	}
	return inp.handle(ev)
}

func (inp *Input) handle(ev Event) (bool, error) {
	if ev.Player < 0 || ev.Player >= NumPlayers {
		return false, curated.Errorf("input: no controller port for player %d", ev.Player)
	}

	if inp.ports[ev.Player].Buttons() == ev.Buttons {
		return false, nil
	}

	if inp.recorder != nil {
		err := inp.recorder.RecordEvent(TimedEvent{Frame: inp.frame.FrameNumber(), Event: ev})
		if err != nil {
			return false, err
		}
	}

	inp.ports[ev.Player].Set(ev.Buttons)
	return true, nil
}

// Process pushed events and any playback events for the current frame.
func (inp *Input) Process() error {
	if err := inp.handlePushed(); err != nil {
		return err
	}
	return inp.handlePlayback()
}
