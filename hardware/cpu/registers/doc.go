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

// Package registers implements the three types of registers found in the
// 6502. The most common type is the Register type which is an 8-bit value
// with the arithmetic and logical operations of the 6502 implemented as
// methods. The ProgramCounter is a 16-bit register and the StatusRegister
// holds the processor flags.
//
// Arithmetic methods return the carry and overflow state of the operation
// rather than setting flags directly. It is the responsibility of the CPU to
// update the StatusRegister.
package registers
