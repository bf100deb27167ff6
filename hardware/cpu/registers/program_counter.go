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

package registers

import (
	"fmt"
)

// ProgramCounter represents the 16-bit program counter of the 6502.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%04x", pc.value)
}

// Value returns the current value of the register.
func (pc ProgramCounter) Value() uint16 {
	return pc.value
}

// Load value into register.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Increment the program counter by one, wrapping at 0xffff.
func (pc *ProgramCounter) Increment() {
	pc.value++
}

// Add a signed offset to the program counter. Returns true if the high byte
// of the program counter has changed.
func (pc *ProgramCounter) Add(offset int8) (pageCrossed bool) {
	v := pc.value
	pc.value = uint16(int32(pc.value) + int32(offset))
	return v&0xff00 != pc.value&0xff00
}
