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

// Package instructions defines the instruction set of the 6502. Every one of
// the 256 opcodes has a Definition in the Definitions table, including the
// undocumented opcodes. Undocumented opcodes are defined either as a NOP
// with the correct addressing mode or as the XXX operator, which does
// nothing at all.
//
// The Definitions table is data only. The CPU package interprets the
// addressing mode and operator of each definition.
package instructions
