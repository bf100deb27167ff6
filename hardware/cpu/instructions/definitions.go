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

import "fmt"

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Cycles         int

	// the instruction takes an additional cycle if the addressing mode
	// crosses a page boundary
	PageSensitive bool

	Effect Category
}

// Mnemonic returns the three letter mnemonic of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// Bytes returns the number of bytes used by the instruction, including the
// opcode.
func (defn Definition) Bytes() int {
	return defn.AddressingMode.Bytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsDocumented returns false if the opcode is not part of the documented
// instruction set. Note that the documented set includes one NOP (0xea).
func (defn Definition) IsDocumented() bool {
	if defn.Operator == XXX {
		return false
	}
	if defn.Operator == NOP {
		return defn.OpCode == 0xea
	}
	return true
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s %s (%d cycles)", defn.OpCode, defn.Mnemonic(), defn.AddressingMode, defn.Cycles)
}

func init() {
	for i := range Definitions {
		Definitions[i].OpCode = uint8(i)
	}
}

// Definitions is the table of all 256 opcodes, indexed by opcode.
var Definitions = [256]Definition{
	0x00: {Operator: BRK, AddressingMode: Immediate, Cycles: 7, Effect: Interrupt},
	0x01: {Operator: ORA, AddressingMode: IndexedIndirect, Cycles: 6},
	0x02: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x03: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x04: {Operator: NOP, AddressingMode: ZeroPage, Cycles: 3},
	0x05: {Operator: ORA, AddressingMode: ZeroPage, Cycles: 3},
	0x06: {Operator: ASL, AddressingMode: ZeroPage, Cycles: 5, Effect: Modify},
	0x07: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x08: {Operator: PHP, AddressingMode: Implied, Cycles: 3},
	0x09: {Operator: ORA, AddressingMode: Immediate, Cycles: 2},
	0x0a: {Operator: ASL, AddressingMode: Accumulator, Cycles: 2},
	0x0b: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x0c: {Operator: NOP, AddressingMode: Absolute, Cycles: 4},
	0x0d: {Operator: ORA, AddressingMode: Absolute, Cycles: 4},
	0x0e: {Operator: ASL, AddressingMode: Absolute, Cycles: 6, Effect: Modify},
	0x0f: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x10: {Operator: BPL, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0x11: {Operator: ORA, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0x12: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x13: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x14: {Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x15: {Operator: ORA, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x16: {Operator: ASL, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: Modify},
	0x17: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x18: {Operator: CLC, AddressingMode: Implied, Cycles: 2},
	0x19: {Operator: ORA, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0x1a: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0x1b: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x1c: {Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x1d: {Operator: ORA, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x1e: {Operator: ASL, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: Modify},
	0x1f: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x20: {Operator: JSR, AddressingMode: Absolute, Cycles: 6, Effect: Subroutine},
	0x21: {Operator: AND, AddressingMode: IndexedIndirect, Cycles: 6},
	0x22: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x23: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x24: {Operator: BIT, AddressingMode: ZeroPage, Cycles: 3},
	0x25: {Operator: AND, AddressingMode: ZeroPage, Cycles: 3},
	0x26: {Operator: ROL, AddressingMode: ZeroPage, Cycles: 5, Effect: Modify},
	0x27: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x28: {Operator: PLP, AddressingMode: Implied, Cycles: 4},
	0x29: {Operator: AND, AddressingMode: Immediate, Cycles: 2},
	0x2a: {Operator: ROL, AddressingMode: Accumulator, Cycles: 2},
	0x2b: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x2c: {Operator: BIT, AddressingMode: Absolute, Cycles: 4},
	0x2d: {Operator: AND, AddressingMode: Absolute, Cycles: 4},
	0x2e: {Operator: ROL, AddressingMode: Absolute, Cycles: 6, Effect: Modify},
	0x2f: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x30: {Operator: BMI, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0x31: {Operator: AND, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0x32: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x33: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x34: {Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x35: {Operator: AND, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x36: {Operator: ROL, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: Modify},
	0x37: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x38: {Operator: SEC, AddressingMode: Implied, Cycles: 2},
	0x39: {Operator: AND, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0x3a: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0x3b: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x3c: {Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x3d: {Operator: AND, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x3e: {Operator: ROL, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: Modify},
	0x3f: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x40: {Operator: RTI, AddressingMode: Implied, Cycles: 6, Effect: Interrupt},
	0x41: {Operator: EOR, AddressingMode: IndexedIndirect, Cycles: 6},
	0x42: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x43: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x44: {Operator: NOP, AddressingMode: ZeroPage, Cycles: 3},
	0x45: {Operator: EOR, AddressingMode: ZeroPage, Cycles: 3},
	0x46: {Operator: LSR, AddressingMode: ZeroPage, Cycles: 5, Effect: Modify},
	0x47: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x48: {Operator: PHA, AddressingMode: Implied, Cycles: 3},
	0x49: {Operator: EOR, AddressingMode: Immediate, Cycles: 2},
	0x4a: {Operator: LSR, AddressingMode: Accumulator, Cycles: 2},
	0x4b: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x4c: {Operator: JMP, AddressingMode: Absolute, Cycles: 3, Effect: Flow},
	0x4d: {Operator: EOR, AddressingMode: Absolute, Cycles: 4},
	0x4e: {Operator: LSR, AddressingMode: Absolute, Cycles: 6, Effect: Modify},
	0x4f: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x50: {Operator: BVC, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0x51: {Operator: EOR, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0x52: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x53: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x54: {Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x55: {Operator: EOR, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x56: {Operator: LSR, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: Modify},
	0x57: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x58: {Operator: CLI, AddressingMode: Implied, Cycles: 2},
	0x59: {Operator: EOR, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0x5a: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0x5b: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x5c: {Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x5d: {Operator: EOR, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x5e: {Operator: LSR, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: Modify},
	0x5f: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x60: {Operator: RTS, AddressingMode: Implied, Cycles: 6, Effect: Subroutine},
	0x61: {Operator: ADC, AddressingMode: IndexedIndirect, Cycles: 6},
	0x62: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x63: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x64: {Operator: NOP, AddressingMode: ZeroPage, Cycles: 3},
	0x65: {Operator: ADC, AddressingMode: ZeroPage, Cycles: 3},
	0x66: {Operator: ROR, AddressingMode: ZeroPage, Cycles: 5, Effect: Modify},
	0x67: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x68: {Operator: PLA, AddressingMode: Implied, Cycles: 4},
	0x69: {Operator: ADC, AddressingMode: Immediate, Cycles: 2},
	0x6a: {Operator: ROR, AddressingMode: Accumulator, Cycles: 2},
	0x6b: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x6c: {Operator: JMP, AddressingMode: Indirect, Cycles: 5, Effect: Flow},
	0x6d: {Operator: ADC, AddressingMode: Absolute, Cycles: 4},
	0x6e: {Operator: ROR, AddressingMode: Absolute, Cycles: 6, Effect: Modify},
	0x6f: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x70: {Operator: BVS, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0x71: {Operator: ADC, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0x72: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x73: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0x74: {Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x75: {Operator: ADC, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0x76: {Operator: ROR, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: Modify},
	0x77: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x78: {Operator: SEI, AddressingMode: Implied, Cycles: 2},
	0x79: {Operator: ADC, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0x7a: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0x7b: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x7c: {Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x7d: {Operator: ADC, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0x7e: {Operator: ROR, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: Modify},
	0x7f: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0x80: {Operator: NOP, AddressingMode: Immediate, Cycles: 2},
	0x81: {Operator: STA, AddressingMode: IndexedIndirect, Cycles: 6, Effect: Write},
	0x82: {Operator: NOP, AddressingMode: Immediate, Cycles: 2},
	0x83: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x84: {Operator: STY, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	0x85: {Operator: STA, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	0x86: {Operator: STX, AddressingMode: ZeroPage, Cycles: 3, Effect: Write},
	0x87: {Operator: XXX, AddressingMode: Implied, Cycles: 3},
	0x88: {Operator: DEY, AddressingMode: Implied, Cycles: 2},
	0x89: {Operator: NOP, AddressingMode: Immediate, Cycles: 2},
	0x8a: {Operator: TXA, AddressingMode: Implied, Cycles: 2},
	0x8b: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x8c: {Operator: STY, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	0x8d: {Operator: STA, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	0x8e: {Operator: STX, AddressingMode: Absolute, Cycles: 4, Effect: Write},
	0x8f: {Operator: XXX, AddressingMode: Implied, Cycles: 4},
	0x90: {Operator: BCC, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0x91: {Operator: STA, AddressingMode: IndirectIndexed, Cycles: 6, Effect: Write},
	0x92: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0x93: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0x94: {Operator: STY, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Write},
	0x95: {Operator: STA, AddressingMode: ZeroPageIndexedX, Cycles: 4, Effect: Write},
	0x96: {Operator: STX, AddressingMode: ZeroPageIndexedY, Cycles: 4, Effect: Write},
	0x97: {Operator: XXX, AddressingMode: Implied, Cycles: 4},
	0x98: {Operator: TYA, AddressingMode: Implied, Cycles: 2},
	0x99: {Operator: STA, AddressingMode: AbsoluteIndexedY, Cycles: 5, Effect: Write},
	0x9a: {Operator: TXS, AddressingMode: Implied, Cycles: 2},
	0x9b: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x9c: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x9d: {Operator: STA, AddressingMode: AbsoluteIndexedX, Cycles: 5, Effect: Write},
	0x9e: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0x9f: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0xa0: {Operator: LDY, AddressingMode: Immediate, Cycles: 2},
	0xa1: {Operator: LDA, AddressingMode: IndexedIndirect, Cycles: 6},
	0xa2: {Operator: LDX, AddressingMode: Immediate, Cycles: 2},
	0xa3: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0xa4: {Operator: LDY, AddressingMode: ZeroPage, Cycles: 3},
	0xa5: {Operator: LDA, AddressingMode: ZeroPage, Cycles: 3},
	0xa6: {Operator: LDX, AddressingMode: ZeroPage, Cycles: 3},
	0xa7: {Operator: XXX, AddressingMode: Implied, Cycles: 3},
	0xa8: {Operator: TAY, AddressingMode: Implied, Cycles: 2},
	0xa9: {Operator: LDA, AddressingMode: Immediate, Cycles: 2},
	0xaa: {Operator: TAX, AddressingMode: Implied, Cycles: 2},
	0xab: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0xac: {Operator: LDY, AddressingMode: Absolute, Cycles: 4},
	0xad: {Operator: LDA, AddressingMode: Absolute, Cycles: 4},
	0xae: {Operator: LDX, AddressingMode: Absolute, Cycles: 4},
	0xaf: {Operator: XXX, AddressingMode: Implied, Cycles: 4},
	0xb0: {Operator: BCS, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0xb1: {Operator: LDA, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0xb2: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0xb3: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0xb4: {Operator: LDY, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0xb5: {Operator: LDA, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0xb6: {Operator: LDX, AddressingMode: ZeroPageIndexedY, Cycles: 4},
	0xb7: {Operator: XXX, AddressingMode: Implied, Cycles: 4},
	0xb8: {Operator: CLV, AddressingMode: Implied, Cycles: 2},
	0xb9: {Operator: LDA, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0xba: {Operator: TSX, AddressingMode: Implied, Cycles: 2},
	0xbb: {Operator: XXX, AddressingMode: Implied, Cycles: 4},
	0xbc: {Operator: LDY, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0xbd: {Operator: LDA, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0xbe: {Operator: LDX, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0xbf: {Operator: XXX, AddressingMode: Implied, Cycles: 4},
	0xc0: {Operator: CPY, AddressingMode: Immediate, Cycles: 2},
	0xc1: {Operator: CMP, AddressingMode: IndexedIndirect, Cycles: 6},
	0xc2: {Operator: NOP, AddressingMode: Immediate, Cycles: 2},
	0xc3: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0xc4: {Operator: CPY, AddressingMode: ZeroPage, Cycles: 3},
	0xc5: {Operator: CMP, AddressingMode: ZeroPage, Cycles: 3},
	0xc6: {Operator: DEC, AddressingMode: ZeroPage, Cycles: 5, Effect: Modify},
	0xc7: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0xc8: {Operator: INY, AddressingMode: Implied, Cycles: 2},
	0xc9: {Operator: CMP, AddressingMode: Immediate, Cycles: 2},
	0xca: {Operator: DEX, AddressingMode: Implied, Cycles: 2},
	0xcb: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0xcc: {Operator: CPY, AddressingMode: Absolute, Cycles: 4},
	0xcd: {Operator: CMP, AddressingMode: Absolute, Cycles: 4},
	0xce: {Operator: DEC, AddressingMode: Absolute, Cycles: 6, Effect: Modify},
	0xcf: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0xd0: {Operator: BNE, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0xd1: {Operator: CMP, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0xd2: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0xd3: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0xd4: {Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0xd5: {Operator: CMP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0xd6: {Operator: DEC, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: Modify},
	0xd7: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0xd8: {Operator: CLD, AddressingMode: Implied, Cycles: 2},
	0xd9: {Operator: CMP, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0xda: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0xdb: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0xdc: {Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0xdd: {Operator: CMP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0xde: {Operator: DEC, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: Modify},
	0xdf: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0xe0: {Operator: CPX, AddressingMode: Immediate, Cycles: 2},
	0xe1: {Operator: SBC, AddressingMode: IndexedIndirect, Cycles: 6},
	0xe2: {Operator: NOP, AddressingMode: Immediate, Cycles: 2},
	0xe3: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0xe4: {Operator: CPX, AddressingMode: ZeroPage, Cycles: 3},
	0xe5: {Operator: SBC, AddressingMode: ZeroPage, Cycles: 3},
	0xe6: {Operator: INC, AddressingMode: ZeroPage, Cycles: 5, Effect: Modify},
	0xe7: {Operator: XXX, AddressingMode: Implied, Cycles: 5},
	0xe8: {Operator: INX, AddressingMode: Implied, Cycles: 2},
	0xe9: {Operator: SBC, AddressingMode: Immediate, Cycles: 2},
	0xea: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0xeb: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0xec: {Operator: CPX, AddressingMode: Absolute, Cycles: 4},
	0xed: {Operator: SBC, AddressingMode: Absolute, Cycles: 4},
	0xee: {Operator: INC, AddressingMode: Absolute, Cycles: 6, Effect: Modify},
	0xef: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0xf0: {Operator: BEQ, AddressingMode: Relative, Cycles: 2, Effect: Flow},
	0xf1: {Operator: SBC, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},
	0xf2: {Operator: XXX, AddressingMode: Implied, Cycles: 2},
	0xf3: {Operator: XXX, AddressingMode: Implied, Cycles: 8},
	0xf4: {Operator: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0xf5: {Operator: SBC, AddressingMode: ZeroPageIndexedX, Cycles: 4},
	0xf6: {Operator: INC, AddressingMode: ZeroPageIndexedX, Cycles: 6, Effect: Modify},
	0xf7: {Operator: XXX, AddressingMode: Implied, Cycles: 6},
	0xf8: {Operator: SED, AddressingMode: Implied, Cycles: 2},
	0xf9: {Operator: SBC, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	0xfa: {Operator: NOP, AddressingMode: Implied, Cycles: 2},
	0xfb: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
	0xfc: {Operator: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0xfd: {Operator: SBC, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	0xfe: {Operator: INC, AddressingMode: AbsoluteIndexedX, Cycles: 7, Effect: Modify},
	0xff: {Operator: XXX, AddressingMode: Implied, Cycles: 7},
}
