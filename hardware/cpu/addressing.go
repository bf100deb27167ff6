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

package cpu

import (
	"github.com/gopherfc/gopherfc/hardware/cpu/instructions"
)

// resolveAddress reads the operand bytes of the current instruction and sets
// the address field according to the addressing mode. Returns 1 if an
// indexed address has crossed a page boundary.
func (mc *CPU) resolveAddress(mode instructions.AddressingMode) uint8 {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		// no operand

	case instructions.Immediate:
		mc.address = mc.PC.Value()
		mc.PC.Increment()

	case instructions.Relative:
		mc.offset = int8(mc.read8BitPC())

	case instructions.ZeroPage:
		mc.address = uint16(mc.read8BitPC())

	case instructions.ZeroPageIndexedX:
		// index wraps within the zero page
		mc.address = uint16(mc.read8BitPC() + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		mc.address = uint16(mc.read8BitPC() + mc.Y.Value())

	case instructions.Absolute:
		mc.address = mc.read16BitPC()

	case instructions.AbsoluteIndexedX:
		base := mc.read16BitPC()
		mc.address = base + mc.X.Address()
		return pageCrossed(base, mc.address)

	case instructions.AbsoluteIndexedY:
		base := mc.read16BitPC()
		mc.address = base + mc.Y.Address()
		return pageCrossed(base, mc.address)

	case instructions.Indirect:
		pointer := mc.read16BitPC()
		lo := uint16(mc.read8Bit(pointer))

		// the high byte of the address is read from the same page as the low
		// byte. a pointer of 0x10ff will read the high byte from 0x1000 and
		// not 0x1100
		var hi uint16
		if pointer&0x00ff == 0x00ff {
			hi = uint16(mc.read8Bit(pointer & 0xff00))
		} else {
			hi = uint16(mc.read8Bit(pointer + 1))
		}

		mc.address = hi<<8 | lo

	case instructions.IndexedIndirect:
		// (ind,X)
		zp := mc.read8BitPC() + mc.X.Value()
		lo := uint16(mc.read8Bit(uint16(zp)))
		hi := uint16(mc.read8Bit(uint16(zp + 1)))
		mc.address = hi<<8 | lo

	case instructions.IndirectIndexed:
		// (ind),Y
		zp := mc.read8BitPC()
		lo := uint16(mc.read8Bit(uint16(zp)))
		hi := uint16(mc.read8Bit(uint16(zp + 1)))
		base := hi<<8 | lo
		mc.address = base + mc.Y.Address()
		return pageCrossed(base, mc.address)
	}

	return 0
}

func pageCrossed(a uint16, b uint16) uint8 {
	if a&0xff00 != b&0xff00 {
		return 1
	}
	return 0
}

// fetch returns the operand of the current instruction. For implied and
// accumulator addressing the operand is the accumulator.
func (mc *CPU) fetch(mode instructions.AddressingMode) uint8 {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return mc.A.Value()
	}
	return mc.read8Bit(mc.address)
}
