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
	"github.com/gopherfc/gopherfc/hardware/cpu/registers"
	"github.com/gopherfc/gopherfc/hardware/memory/cpubus"
)

// setZN sets the zero and sign flags from a value.
func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// branch to the relative offset if the condition is true. A taken branch
// costs one cycle and crossing a page boundary costs another.
func (mc *CPU) branch(condition bool) {
	if !condition {
		return
	}
	mc.cycles++
	if mc.PC.Add(mc.offset) {
		mc.cycles++
	}
}

// modify applies the function to the operand of the current instruction and
// writes back the result. The result is written to the accumulator or to
// memory depending on the addressing mode.
func (mc *CPU) modify(mode instructions.AddressingMode, f func(r *registers.Register)) {
	if mode == instructions.Accumulator {
		f(&mc.A)
		mc.setZN(mc.A.Value())
		return
	}

	r := registers.NewRegister(mc.read8Bit(mc.address), "")
	f(&r)
	mc.write8Bit(mc.address, r.Value())
	mc.setZN(r.Value())
}

// executeOperator performs the operation of the instruction. Returns 1 if
// the operator is sensitive to page crossings.
func (mc *CPU) executeOperator(defn instructions.Definition) uint8 {
	mode := defn.AddressingMode

	switch defn.Operator {
	case instructions.XXX:
		// undocumented opcode. no effect

	case instructions.NOP:
		return 1

	// load and store
	case instructions.LDA:
		mc.A.Load(mc.fetch(mode))
		mc.setZN(mc.A.Value())
		return 1

	case instructions.LDX:
		mc.X.Load(mc.fetch(mode))
		mc.setZN(mc.X.Value())
		return 1

	case instructions.LDY:
		mc.Y.Load(mc.fetch(mode))
		mc.setZN(mc.Y.Value())
		return 1

	case instructions.STA:
		mc.write8Bit(mc.address, mc.A.Value())

	case instructions.STX:
		mc.write8Bit(mc.address, mc.X.Value())

	case instructions.STY:
		mc.write8Bit(mc.address, mc.Y.Value())

	// transfers
	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())

	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())

	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())

	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())

	case instructions.TXS:
		// no flags affected
		mc.SP.Load(mc.X.Value())

	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	// stack
	case instructions.PHA:
		mc.push8Bit(mc.A.Value())

	case instructions.PHP:
		mc.push8Bit(mc.Status.Value() | registers.Break | registers.Unused)

	case instructions.PLA:
		mc.A.Load(mc.pull8Bit())
		mc.setZN(mc.A.Value())

	case instructions.PLP:
		mc.Status.Load(mc.pull8Bit())
		mc.Status.Break = false

	// arithmetic
	case instructions.ADC:
		carry, overflow := mc.A.Add(mc.fetch(mode), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.setZN(mc.A.Value())
		return 1

	case instructions.SBC:
		carry, overflow := mc.A.Subtract(mc.fetch(mode), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.setZN(mc.A.Value())
		return 1

	case instructions.CMP:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.A.Compare(mc.fetch(mode))
		return 1

	case instructions.CPX:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.X.Compare(mc.fetch(mode))

	case instructions.CPY:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.Y.Compare(mc.fetch(mode))

	// logical
	case instructions.AND:
		mc.A.AND(mc.fetch(mode))
		mc.setZN(mc.A.Value())
		return 1

	case instructions.EOR:
		mc.A.EOR(mc.fetch(mode))
		mc.setZN(mc.A.Value())
		return 1

	case instructions.ORA:
		mc.A.ORA(mc.fetch(mode))
		mc.setZN(mc.A.Value())
		return 1

	case instructions.BIT:
		v := mc.fetch(mode)
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	// shifts and rotates
	case instructions.ASL:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
		})

	case instructions.LSR:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
		})

	case instructions.ROL:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		})

	case instructions.ROR:
		mc.modify(mode, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		})

	// increment and decrement
	case instructions.INC:
		mc.modify(mode, func(r *registers.Register) {
			r.Load(r.Value() + 1)
		})

	case instructions.DEC:
		mc.modify(mode, func(r *registers.Register) {
			r.Load(r.Value() - 1)
		})

	case instructions.INX:
		mc.X.Load(mc.X.Value() + 1)
		mc.setZN(mc.X.Value())

	case instructions.INY:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setZN(mc.Y.Value())

	case instructions.DEX:
		mc.X.Load(mc.X.Value() - 1)
		mc.setZN(mc.X.Value())

	case instructions.DEY:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setZN(mc.Y.Value())

	// flags
	case instructions.CLC:
		mc.Status.Carry = false
	case instructions.CLD:
		mc.Status.DecimalMode = false
	case instructions.CLI:
		mc.Status.InterruptDisable = false
	case instructions.CLV:
		mc.Status.Overflow = false
	case instructions.SEC:
		mc.Status.Carry = true
	case instructions.SED:
		mc.Status.DecimalMode = true
	case instructions.SEI:
		mc.Status.InterruptDisable = true

	// branches
	case instructions.BCC:
		mc.branch(!mc.Status.Carry)
	case instructions.BCS:
		mc.branch(mc.Status.Carry)
	case instructions.BEQ:
		mc.branch(mc.Status.Zero)
	case instructions.BNE:
		mc.branch(!mc.Status.Zero)
	case instructions.BMI:
		mc.branch(mc.Status.Sign)
	case instructions.BPL:
		mc.branch(!mc.Status.Sign)
	case instructions.BVC:
		mc.branch(!mc.Status.Overflow)
	case instructions.BVS:
		mc.branch(mc.Status.Overflow)

	// jumps and subroutines
	case instructions.JMP:
		mc.PC.Load(mc.address)

	case instructions.JSR:
		// the address pushed is the last byte of the JSR instruction
		mc.push16Bit(mc.PC.Value() - 1)
		mc.PC.Load(mc.address)

	case instructions.RTS:
		mc.PC.Load(mc.pull16Bit() + 1)

	// interrupts
	case instructions.BRK:
		// the immediate addressing mode has skipped the padding byte
		mc.interrupt(cpubus.BRK, true)

	case instructions.RTI:
		mc.Status.Load(mc.pull8Bit())
		mc.Status.Break = false
		mc.PC.Load(mc.pull16Bit())
	}

	return 0
}
