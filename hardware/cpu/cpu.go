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
	"fmt"

	"github.com/gopherfc/gopherfc/disassembly"
	"github.com/gopherfc/gopherfc/hardware/cpu/instructions"
	"github.com/gopherfc/gopherfc/hardware/cpu/registers"
	"github.com/gopherfc/gopherfc/hardware/memory/cpubus"
)

// the number of cycles taken by the interrupt sequences.
const (
	irqCycles   = 7
	nmiCycles   = 8
	resetCycles = 8
)

// the state of the status register after a reset.
const resetStatus = uint8(0x34)

// the value of the stack pointer after a reset.
const resetStackPointer = uint8(0xfd)

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem cpubus.Memory

	// the number of cycles remaining for the current instruction
	cycles int

	// the address resolved by the addressing mode of the current instruction
	address uint16

	// the branch offset for relative addressing
	offset int8

	// the most recently executed instruction and the address it was fetched
	// from. used by the debugger
	LastInstruction instructions.Definition
	LastAddress     uint16

	// the number of cycles since the CPU was created
	ClockCount uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The registers are in their power-on state but the program counter is not
// loaded from the reset vector until Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(resetStackPointer, "SP"),
		Status: registers.NewStatusRegister(),
	}
	mc.Status.Load(resetStatus)
	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset the CPU. Registers are put into their power-on state and the program
// counter is loaded from the reset vector. The reset sequence takes eight
// cycles.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetStackPointer)
	mc.Status.Load(resetStatus)
	mc.PC.Load(mc.read16Bit(cpubus.Reset))

	mc.address = 0
	mc.offset = 0
	mc.cycles = resetCycles
}

// Complete returns true if the CPU has finished the current instruction. Note
// that the instruction has already taken effect. The remaining cycles only
// affect timing.
func (mc *CPU) Complete() bool {
	return mc.cycles == 0
}

// Clock advances the CPU by one cycle.
func (mc *CPU) Clock() {
	if mc.cycles == 0 {
		mc.executeInstruction()
	}
	mc.ClockCount++
	mc.cycles--
}

// IRQ is the maskable interrupt. It has no effect if the interrupt disable
// flag is set.
func (mc *CPU) IRQ() {
	if mc.Status.InterruptDisable {
		return
	}
	mc.interrupt(cpubus.IRQ, false)
	mc.cycles = irqCycles
}

// NMI is the non-maskable interrupt.
func (mc *CPU) NMI() {
	mc.interrupt(cpubus.NMI, false)
	mc.cycles = nmiCycles
}

// interrupt pushes the program counter and status register onto the stack
// and loads the program counter from the vector. The interrupt disable flag
// is set after the status register has been pushed.
func (mc *CPU) interrupt(vector uint16, brk bool) {
	mc.push16Bit(mc.PC.Value())

	sr := mc.Status.Value()
	if brk {
		sr |= registers.Break
	} else {
		sr &^= registers.Break
	}
	mc.push8Bit(sr | registers.Unused)

	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(vector))
}

// Disassemble the memory between start and end (inclusive). Memory is read
// with the Peek() function so there are no side effects.
func (mc *CPU) Disassemble(start uint16, end uint16) *disassembly.Listing {
	return disassembly.Disassemble(mc.mem, start, end)
}

func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := uint16(mc.read8Bit(address))
	hi := uint16(mc.read8Bit(address + 1))
	return hi<<8 | lo
}

// read8BitPC reads the byte at the program counter and advances the program
// counter.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.read8Bit(mc.PC.Value())
	mc.PC.Increment()
	return v
}

// read16BitPC reads the word at the program counter and advances the program
// counter by two.
func (mc *CPU) read16BitPC() uint16 {
	lo := uint16(mc.read8BitPC())
	hi := uint16(mc.read8BitPC())
	return hi<<8 | lo
}

func (mc *CPU) push8Bit(data uint8) {
	mc.write8Bit(cpubus.StackOrigin|mc.SP.Address(), data)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) push16Bit(data uint16) {
	mc.push8Bit(uint8(data >> 8))
	mc.push8Bit(uint8(data))
}

func (mc *CPU) pull8Bit() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(cpubus.StackOrigin | mc.SP.Address())
}

func (mc *CPU) pull16Bit() uint16 {
	lo := uint16(mc.pull8Bit())
	hi := uint16(mc.pull8Bit())
	return hi<<8 | lo
}

// executeInstruction fetches, decodes and executes the instruction at the
// program counter. The cycle counter is set to the number of cycles the
// instruction takes.
func (mc *CPU) executeInstruction() {
	mc.LastAddress = mc.PC.Value()
	defn := instructions.Definitions[mc.read8BitPC()]
	mc.LastInstruction = defn

	mc.cycles = defn.Cycles

	addressExtra := mc.resolveAddress(defn.AddressingMode)
	operatorExtra := mc.executeOperator(defn)

	mc.cycles += int(addressExtra & operatorExtra)
}
