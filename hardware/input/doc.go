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

// Package input coordinates the different sources of controller input:
//
// 1) Immediate input from the user, with HandleInputEvent()
// 2) Pushed events from another goroutine, with PushEvent()
// 3) Playback of a script of timed events (see Script type)
//
// In addition, events handled by the input system can be mirrored to an
// EventRecorder. Playback and recording are mutually exclusive. While a
// playback is attached immediate input is ignored.
//
// Pushed events and playback events are processed by Process(), which should
// be called once per frame.
package input
