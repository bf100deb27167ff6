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
	"github.com/gopherfc/gopherfc/curated"
)

// EventPlayback implementations feed controller events to the input system
// on request.
type EventPlayback interface {
	// GetPlayback returns the next event for the frame. The boolean is false
	// if there are no more events for the frame.
	GetPlayback(frame int) (TimedEvent, bool, error)
}

// EventRecorder implementations mirror an incoming event.
type EventRecorder interface {
	RecordEvent(TimedEvent) error
}

// AttachRecorder attaches an EventRecorder implementation. EventRecorder can
// be nil in order to remove the recorder.
func (inp *Input) AttachRecorder(r EventRecorder) error {
	if r != nil && inp.playback != nil {
		return curated.Errorf("input: attach recorder: emulator already has a playback attached")
	}
	inp.recorder = r
	return nil
}

// AttachPlayback attaches an EventPlayback implementation. EventPlayback can
// be nil in order to remove the playback.
func (inp *Input) AttachPlayback(pb EventPlayback) error {
	if pb != nil && inp.recorder != nil {
		return curated.Errorf("input: attach playback: emulator already has a recorder attached")
	}
	inp.playback = pb
	return nil
}

func (inp *Input) handlePlayback() error {
	if inp.playback == nil {
		return nil
	}

	frame := inp.frame.FrameNumber()

	// there might be more than one event for a frame
	for {
		ev, ok, err := inp.playback.GetPlayback(frame)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := inp.handle(ev.Event); err != nil {
			return err
		}
	}
}
