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

// Package playmode runs the emulation without any of the debugging features.
//
// The Player type provides a gui.FrameCallback which is called once for every
// frame drawn by the host. The emulation is paced by accumulating the elapsed
// time reported by the host and running one emulated frame whenever a 60th of
// a second has passed.
//
// Keyboard events sent by the window control the emulation:
//
//	Space     pause/resume
//	C         step one CPU instruction (when paused)
//	F         step one frame (when paused)
//	R         reset the console
//	Q, Escape quit
package playmode
