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

// Package performance measures how quickly the emulation runs.
//
// Check() runs a cartridge for a fixed length of time, without any display,
// and reports the achieved frame rate as a percentage of the NTSC NES frame
// rate. The run can optionally be profiled with RunProfiler().
//
// The limiter sub-package is used by the display to keep the emulation at a
// steady frame rate.
package performance
