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

package instructions

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied     AddressingMode = iota
	Accumulator                // operates on the A register rather than memory
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// String returns the three letter tag for the addressing mode as used in
// disassembly.
func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "IMP"
	case Accumulator:
		return "ACC"
	case Immediate:
		return "IMM"
	case Relative:
		return "REL"
	case Absolute:
		return "ABS"
	case ZeroPage:
		return "ZP0"
	case Indirect:
		return "IND"
	case IndexedIndirect:
		return "IZX"
	case IndirectIndexed:
		return "IZY"
	case AbsoluteIndexedX:
		return "ABX"
	case AbsoluteIndexedY:
		return "ABY"
	case ZeroPageIndexedX:
		return "ZPX"
	case ZeroPageIndexedY:
		return "ZPY"
	}
	return "???"
}

// Bytes returns the number of bytes (including the opcode) used by an
// instruction with the addressing mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}
