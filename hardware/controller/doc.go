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

// Package controller implements the standard NES controller.
//
// The controller is a parallel-in serial-out shift register. Writing to the
// controller port sets the strobe line. While the line is set the shift
// register is reloaded with the current state of the buttons. Once the line
// is cleared each read returns one button, starting with bit 7.
//
// Buttons are packed into a byte with A in bit 7 and Right in bit 0, so the
// first read returns the A button:
//
//	bit  7  6  5      4     3   2     1     0
//	     A  B  Select Start Up  Down  Left  Right
package controller
