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

// Package sdlwindow is an SDL implementation of the gui.Window interface.
// The window is sized according to a settings.Preset and the emulated screen
// is scaled by the preset's pixel size and centred in the window.
//
// SDL must be used from the main thread. The Run() function must therefore
// be called from the main goroutine, after runtime.LockOSThread() has been
// called.
package sdlwindow
