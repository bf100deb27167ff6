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
	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/gui"
	"github.com/gopherfc/gopherfc/hardware"
	"github.com/gopherfc/gopherfc/hardware/controller"
	"github.com/gopherfc/gopherfc/hardware/input"
	"github.com/gopherfc/gopherfc/hardware/ppu"
	"github.com/gopherfc/gopherfc/logger"
)

// the time in seconds of one emulated frame.
const frameTime = float32(1.0 / 60.0)

// Player runs the emulation once per host frame.
type Player struct {
	bus   *hardware.Bus
	sink  gui.Sink
	input gui.Input

	// events from the window
	events chan gui.Event

	state govern.State

	// time remaining until the next emulated frame is due
	residual float32

	quit bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(bus *hardware.Bus, sink gui.Sink, input gui.Input) *Player {
	return &Player{
		bus:    bus,
		sink:   sink,
		input:  input,
		events: make(chan gui.Event, 32),
		state:  govern.Running,
	}
}

// EventChannel returns the channel over which the window should send events.
func (pl *Player) EventChannel() chan gui.Event {
	return pl.events
}

// State returns the current emulation state. One of govern.Running or
// govern.Paused.
func (pl *Player) State() govern.State {
	return pl.state
}

// Frame implements the gui.FrameCallback function type.
func (pl *Player) Frame(elapsed float32) (bool, error) {
	err := pl.serviceEvents()
	if err != nil {
		return false, err
	}
	if pl.quit {
		return false, nil
	}

	err = pl.pollInput()
	if err != nil {
		return false, err
	}

	if pl.state == govern.Running {
		if pl.residual > 0 {
			pl.residual -= elapsed
		} else {
			pl.residual += frameTime - elapsed
			err = pl.runFrame()
			if err != nil {
				return false, err
			}
		}
	}

	pl.sink.SetPixels(ppu.ScreenWidth, ppu.ScreenHeight, pl.bus.PPU.Screen().Pix)

	return true, nil
}

// drain the event channel without blocking.
func (pl *Player) serviceEvents() error {
	for {
		select {
		case ev := <-pl.events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				pl.quit = true
			case gui.EventKeyboard:
				if err := pl.keyboard(ev); err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}

// forward the state of the window's input to the controllers.
func (pl *Player) pollInput() error {
	if pl.input == nil {
		return nil
	}
	for p := range input.NumPlayers {
		_, err := pl.bus.Input.HandleInputEvent(input.Event{
			Player:  p,
			Buttons: controller.Buttons(pl.input.Buttons(p)),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// clock the console until the PPU has completed a frame.
func (pl *Player) runFrame() error {
	for !pl.bus.PPU.FrameComplete {
		pl.bus.Clock()
	}
	pl.bus.PPU.FrameComplete = false
	return pl.bus.Input.Process()
}

func (pl *Player) setState(state govern.State) {
	if pl.state == state {
		return
	}
	pl.state = state
	pl.residual = 0
	logger.Logf(logger.Allow, "playmode", "emulation %s", state)
}
