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

// Package settings maps the named window presets to their dimensions and
// keeps the user's choice of preset, along with the frame-rate cap, in the
// preferences file.
//
// The presets describe the size of the window and the size of each emulated
// pixel. The NES presets are sized to fit the screen exactly. The larger
// presets leave room around the screen, which is centred in the window.
package settings
