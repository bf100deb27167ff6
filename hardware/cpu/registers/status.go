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
	"strings"
)

// Bits of the status register as they appear in the packed value.
const (
	Carry            = uint8(0x01)
	Zero             = uint8(0x02)
	InterruptDisable = uint8(0x04)
	DecimalMode      = uint8(0x08)
	Break            = uint8(0x10)
	Unused           = uint8(0x20)
	Overflow         = uint8(0x40)
	Sign             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The Unused bit is not stored and always reads back as 1.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status register in a short form, one letter per flag.
// Uppercase letters indicate a set flag.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(b bool, c byte) {
		if b {
			s.WriteByte(c - 'a' + 'A')
		} else {
			s.WriteByte(c)
		}
	}

	flag(sr.Sign, 'n')
	flag(sr.Overflow, 'v')
	s.WriteByte('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0x00)
}

// Value converts the StatusRegister to an 8-bit value. The Unused bit is
// always set.
func (sr StatusRegister) Value() uint8 {
	v := Unused

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load sets the flags of the StatusRegister from an 8-bit value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.Break = v&Break == Break
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
