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

// Sink accepts a complete frame of pixels for display. The rgba slice has
// width*height*4 entries, one byte for each of the red, green, blue and alpha
// channels of a pixel, in row order.
type Sink interface {
	SetPixels(width int, height int, rgba []uint8)
}

// Input reports the current state of the buttons for a player. The bits of
// the returned value are in the order used by controller.Buttons.
type Input interface {
	Buttons(player int) uint8
}

// Clock reports the time in seconds since the previous frame callback.
type Clock interface {
	Elapsed() float32
}

// FrameCallback is called once for every frame drawn by the host. The elapsed
// argument is the time in seconds since the previous call. Returning false
// ends the frame loop.
type FrameCallback func(elapsed float32) (bool, error)

// Window is a presentation layer that provides all the services needed by
// the emulation and which can run a frame loop.
type Window interface {
	Sink
	Input
	Clock

	// Run calls the callback once per host frame until the callback returns
	// false or an error, or until the window is closed. Run must be called
	// from the main thread.
	Run(cb FrameCallback) error

	// SetEventChannel specifies the channel over which keyboard and quit
	// events are sent.
	SetEventChannel(chan Event)

	// Destroy releases any resources held by the window.
	Destroy()
}
