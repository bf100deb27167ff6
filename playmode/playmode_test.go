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

package playmode_test

import (
	"testing"

	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/gui"
	"github.com/gopherfc/gopherfc/hardware"
	"github.com/gopherfc/gopherfc/hardware/controller"
	"github.com/gopherfc/gopherfc/playmode"
	"github.com/gopherfc/gopherfc/test"
)

// mockWindow implements the gui.Window interface.
type mockWindow struct {
	width  int
	height int
	pixels int
	frames int

	buttons uint8
	events  chan gui.Event

	// number of times Run() calls the callback
	runFor int
}

func (w *mockWindow) SetPixels(width int, height int, rgba []uint8) {
	w.width = width
	w.height = height
	w.pixels = len(rgba)
	w.frames++
}

func (w *mockWindow) Buttons(player int) uint8 {
	if player == 0 {
		return w.buttons
	}
	return 0
}

func (w *mockWindow) Elapsed() float32 {
	return 1.0 / 60.0
}

func (w *mockWindow) Run(cb gui.FrameCallback) error {
	for range w.runFor {
		ok, err := cb(w.Elapsed())
		if err != nil || !ok {
			return err
		}
	}
	return nil
}

func (w *mockWindow) SetEventChannel(ch chan gui.Event) {
	w.events = ch
}

func (w *mockWindow) Destroy() {}

func newPlayer() (*playmode.Player, *hardware.Bus, *mockWindow) {
	bus := hardware.NewBus()
	bus.Reset()
	win := &mockWindow{}
	return playmode.NewPlayer(bus, win, win), bus, win
}

func TestResidualTime(t *testing.T) {
	pl, bus, win := newPlayer()

	ok, err := pl.Frame(0.001)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bus.FrameNumber(), 1)
	test.ExpectEquality(t, win.width, 256)
	test.ExpectEquality(t, win.height, 240)
	test.ExpectEquality(t, win.pixels, 256*240*4)

	// not enough time has passed for the next frame
	_, _ = pl.Frame(0.01)
	test.ExpectEquality(t, bus.FrameNumber(), 1)
	_, _ = pl.Frame(0.01)
	test.ExpectEquality(t, bus.FrameNumber(), 1)

	// residual time is now negative so the next frame is run
	_, _ = pl.Frame(0.01)
	test.ExpectEquality(t, bus.FrameNumber(), 2)

	// the screen is pushed to the sink on every call
	test.ExpectEquality(t, win.frames, 4)

	// frame completion flag has been cleared
	test.ExpectFailure(t, bus.PPU.FrameComplete)
}

func TestPause(t *testing.T) {
	pl, bus, _ := newPlayer()
	ch := pl.EventChannel()

	ch <- gui.EventKeyboard{Key: "Space", Down: true}
	ch <- gui.EventKeyboard{Key: "Space", Down: false}
	_, _ = pl.Frame(0.1)
	test.ExpectEquality(t, pl.State(), govern.Paused)
	test.ExpectEquality(t, bus.FrameNumber(), 0)

	// step a frame while paused
	ch <- gui.EventKeyboard{Key: "F", Down: true}
	_, _ = pl.Frame(0.1)
	test.ExpectEquality(t, bus.FrameNumber(), 1)
	test.ExpectSuccess(t, bus.CPU.Complete())

	// step an instruction while paused
	clk := bus.ClockCount()
	ch <- gui.EventKeyboard{Key: "c", Down: true}
	_, _ = pl.Frame(0.1)
	test.ExpectInequality(t, bus.ClockCount(), clk)
	test.ExpectEquality(t, bus.FrameNumber(), 1)

	ch <- gui.EventKeyboard{Key: "Space", Down: true}
	_, _ = pl.Frame(0.1)
	test.ExpectEquality(t, pl.State(), govern.Running)
	test.ExpectEquality(t, bus.FrameNumber(), 2)
}

func TestReset(t *testing.T) {
	pl, bus, _ := newPlayer()
	_, _ = pl.Frame(0.1)
	test.ExpectInequality(t, bus.ClockCount(), uint64(0))

	// the reset happens before the next frame is run
	pl.EventChannel() <- gui.EventKeyboard{Key: "Space", Down: true}
	pl.EventChannel() <- gui.EventKeyboard{Key: "R", Down: true}
	_, _ = pl.Frame(0.1)
	test.ExpectEquality(t, bus.ClockCount(), uint64(0))
}

func TestQuit(t *testing.T) {
	pl, _, _ := newPlayer()
	pl.EventChannel() <- gui.EventKeyboard{Key: "Escape", Down: true}
	ok, err := pl.Frame(0.1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	pl, _, _ = newPlayer()
	pl.EventChannel() <- gui.EventQuit{}
	ok, err = pl.Frame(0.1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestButtons(t *testing.T) {
	pl, bus, win := newPlayer()
	win.buttons = uint8(controller.A | controller.Start)
	_, _ = pl.Frame(0.1)
	test.ExpectEquality(t, bus.Controllers[0].Buttons(), controller.A|controller.Start)
	test.ExpectEquality(t, bus.Controllers[1].Buttons(), controller.Buttons(0))
}

func TestPlay(t *testing.T) {
	bus := hardware.NewBus()
	bus.Reset()
	win := &mockWindow{runFor: 5}
	test.ExpectSuccess(t, playmode.Play(win, bus))
	test.ExpectEquality(t, win.frames, 5)
	test.ExpectSuccess(t, win.events != nil)

	// with a constant elapsed time of exactly one frame the emulation runs a
	// frame on every callback
	test.ExpectEquality(t, bus.FrameNumber(), 5)
}
