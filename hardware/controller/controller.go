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

package controller

import "strings"

// Buttons is the state of the eight buttons on the controller. A set bit
// indicates a pressed button.
type Buttons uint8

// List of buttons.
const (
	Right  Buttons = 0x01
	Left   Buttons = 0x02
	Down   Buttons = 0x04
	Up     Buttons = 0x08
	Start  Buttons = 0x10
	Select Buttons = 0x20
	B      Buttons = 0x40
	A      Buttons = 0x80
)

// the order buttons are shifted out of the controller.
var readOrder = [8]struct {
	button Buttons
	label  byte
}{
	{A, 'A'}, {B, 'B'}, {Select, 's'}, {Start, 'S'},
	{Up, 'U'}, {Down, 'D'}, {Left, 'L'}, {Right, 'R'},
}

// String returns the buttons in read order. A pressed button is shown by its
// label and an unpressed button by a dot.
func (b Buttons) String() string {
	var s strings.Builder
	for _, r := range readOrder {
		if b&r.button == r.button {
			s.WriteByte(r.label)
		} else {
			s.WriteByte('.')
		}
	}
	return s.String()
}

// Controller is a single controller plugged into one of the two ports.
type Controller struct {
	buttons Buttons
	shift   uint8

	// while strobe is set the shift register is continuously reloaded
	strobe bool
}

func (c *Controller) String() string {
	return c.buttons.String()
}

// Set the state of all buttons at once.
func (c *Controller) Set(b Buttons) {
	c.buttons = b
}

// Press the buttons. Other buttons are not affected.
func (c *Controller) Press(b Buttons) {
	c.buttons |= b
}

// Release the buttons. Other buttons are not affected.
func (c *Controller) Release(b Buttons) {
	c.buttons &^= b
}

// Buttons returns the buttons currently pressed.
func (c *Controller) Buttons() Buttons {
	return c.buttons
}

// Latch copies the state of the buttons into the shift register.
func (c *Controller) Latch() {
	c.shift = uint8(c.buttons)
}

// Strobe sets or clears the strobe line. The shift register is reloaded when
// the line changes and, while the line is set, on every read.
func (c *Controller) Strobe(on bool) {
	c.strobe = on
	c.Latch()
}

// Write is the value written to the controller port. Only bit 0, the strobe
// line, is used.
func (c *Controller) Write(data uint8) {
	c.Strobe(data&0x01 == 0x01)
}

// Read returns the next bit from the shift register in bit 0. Once all eight
// buttons have been read further reads return zero until the next latch.
//
// While the strobe line is set the result is always the state of the A
// button.
func (c *Controller) Read() uint8 {
	if c.strobe {
		c.Latch()
		return c.Peek()
	}
	v := c.Peek()
	c.shift <<= 1
	return v
}

// Peek returns the next bit from the shift register without shifting.
func (c *Controller) Peek() uint8 {
	return (c.shift & 0x80) >> 7
}
