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

// Package debugger is a terminal based debugger for the emulation. Commands
// are single key presses and take effect immediately:
//
//	c      step one CPU instruction
//	f      step one frame
//	Space  run/halt the emulation
//	r      reset the console
//	p      select the next palette for the palette and pattern table views
//	t      write the pattern tables to a PNG file
//	m      write a graphviz dump of the CPU and controllers
//	n      print the nametables
//	h, ?   help
//	q      quit
//
// When the input is a terminal it is put into cbreak mode so that key presses
// are acted upon without the need for the return key.
package debugger
