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

package hardware

import (
	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/debugger/govern"
)

// PerformanceBrake is the suggested number of calls to a continue check
// between expensive tests. A continue check passed to Run() is called after
// every CPU instruction, so a test that needs to examine the wall clock (or a
// channel) should only do so every PerformanceBrake calls.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction. Input events are processed at
// the end of every frame.
func (bus *Bus) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for !state.Stopping() {
		switch {
		case state.Advancing():
			bus.StepInstruction()
			if bus.PPU.FrameComplete {
				bus.PPU.FrameComplete = false
				if err := bus.Input.Process(); err != nil {
					return err
				}
			}
		case state == govern.Paused:
		default:
			return curated.Errorf("bus: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// The continueCheck() function is called at the end of every frame with the
// current frame number and may be nil.
func (bus *Bus) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := bus.FrameNumber()
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum != targetFrame && !state.Stopping() {
		bus.StepFrame()
		if err := bus.Input.Process(); err != nil {
			return err
		}

		frameNum = bus.FrameNumber()

		var err error
		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
