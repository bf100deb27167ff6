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

// Package logger is the central log repository for the emulator. Entries are
// a tag and a detail and are kept in a ring of fixed length, so the log can
// be written to at any time without concern for memory use.
//
// Logging is gated by the Permission interface. Packages that log from inside
// the emulation should pass a value that reports whether logging is
// currently appropriate. Packages outside the emulation can use logger.Allow.
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count.
package logger
