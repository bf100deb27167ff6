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

package disassembly

import (
	"fmt"

	"github.com/gopherfc/gopherfc/hardware/cpu/instructions"
)

// Peeker is the interface to memory required by the disassembler.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// the operand as it appears in the listing. empty for implied
	// instructions
	Operand string

	// the complete line
	Text string

	// destination of a branch, JMP or JSR. JMP indirect has no target
	// because it depends on memory at the time of execution
	target    uint16
	hasTarget bool
}

// Target returns the address that the instruction transfers control to. The
// boolean is false if the instruction does not have a fixed destination.
func (e Entry) Target() (uint16, bool) {
	return e.target, e.hasTarget
}

func (e Entry) String() string {
	return e.Text
}

// Listing is an ordered list of disassembled instructions.
type Listing struct {
	Entries []Entry

	// index of address to position in the Entries slice
	index map[uint16]int

	// addresses that are the destination of an instruction in the listing
	targets map[uint16]bool
}

// Disassemble the memory between start and end inclusive. The instruction at
// end is disassembled completely even if its operand extends beyond end.
func Disassemble(mem Peeker, start uint16, end uint16) *Listing {
	lst := &Listing{
		index:   make(map[uint16]int),
		targets: make(map[uint16]bool),
	}

	// the loop counter is wider than the address bus so that a listing that
	// ends at 0xffff terminates
	addr := uint32(start)
	for addr <= uint32(end) {
		e := decode(mem, uint16(addr))
		lst.index[e.Address] = len(lst.Entries)
		lst.Entries = append(lst.Entries, e)
		if t, ok := e.Target(); ok {
			lst.targets[t] = true
		}
		addr += uint32(e.Defn.Bytes())
	}

	return lst
}

// decode a single instruction at the address.
func decode(mem Peeker, address uint16) Entry {
	defn := instructions.Definitions[mem.Peek(address)]

	lo := mem.Peek(address + 1)
	hi := mem.Peek(address + 2)
	abs := uint16(hi)<<8 | uint16(lo)

	e := Entry{
		Address: address,
		Defn:    defn,
	}

	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		e.Operand = "A"
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02X", lo)
	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02X", lo)
	case instructions.ZeroPageIndexedX:
		e.Operand = fmt.Sprintf("$%02X X", lo)
	case instructions.ZeroPageIndexedY:
		e.Operand = fmt.Sprintf("$%02X Y", lo)
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("($%02X X)", lo)
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("($%02X Y)", lo)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04X", abs)
	case instructions.AbsoluteIndexedX:
		e.Operand = fmt.Sprintf("$%04X X", abs)
	case instructions.AbsoluteIndexedY:
		e.Operand = fmt.Sprintf("$%04X Y", abs)
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("($%04X)", abs)
	case instructions.Relative:
		e.target = address + 2 + uint16(int16(int8(lo)))
		e.Operand = fmt.Sprintf("$%02X [$%04X]", lo, e.target)
	}

	switch defn.Effect {
	case instructions.Flow, instructions.Subroutine:
		if defn.IsBranch() {
			e.hasTarget = true
		} else if defn.AddressingMode == instructions.Absolute {
			e.target = abs
			e.hasTarget = true
		}
	}

	e.Text = fmt.Sprintf("$%04X: %s %s {%s}", address, defn.Mnemonic(), e.Operand, defn.AddressingMode)

	return e
}

// Len returns the number of entries in the listing.
func (lst *Listing) Len() int {
	return len(lst.Entries)
}

// Lookup returns the entry that starts at the address. The boolean is false
// if no instruction was decoded at that address.
func (lst *Listing) Lookup(address uint16) (Entry, bool) {
	i, ok := lst.index[address]
	if !ok {
		return Entry{}, false
	}
	return lst.Entries[i], true
}

// IsTarget returns true if an instruction in the listing transfers control to
// the address.
func (lst *Listing) IsTarget(address uint16) bool {
	return lst.targets[address]
}

// Window returns the entry at the address along with up to before entries
// preceding it and after entries following it. If the address is not in the
// listing then the result is empty.
func (lst *Listing) Window(address uint16, before int, after int) []Entry {
	i, ok := lst.index[address]
	if !ok {
		return nil
	}
	s := max(0, i-before)
	e := min(len(lst.Entries), i+after+1)
	return lst.Entries[s:e]
}
