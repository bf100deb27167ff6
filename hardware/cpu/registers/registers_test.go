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

package registers_test

import (
	"fmt"
	"testing"

	"github.com/gopherfc/gopherfc/hardware/cpu/registers"
	"github.com/gopherfc/gopherfc/test"
)

func TestRegister(t *testing.T) {
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Label(), "test")

	// add without carry
	carry, overflow := r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(1))
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, overflow)

	// add with carry
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(3))
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, overflow)

	// carry out
	r8.Load(0xff)
	carry, _ = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0))
	test.ExpectSuccess(t, carry)

	// carry out when adding 0xff with carry in
	r8.Load(0x01)
	carry, _ = r8.Add(0xff, true)
	test.ExpectEquality(t, r8.Value(), uint8(1))
	test.ExpectSuccess(t, carry)

	// signed overflow
	r8.Load(0x7f)
	_, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	r8.Load(0x80)
	_, overflow = r8.Add(0xff, false)
	test.ExpectSuccess(t, overflow)

	// subtraction: carry set means no borrow
	r8.Load(0x05)
	carry, _ = r8.Subtract(0x03, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x02))
	test.ExpectSuccess(t, carry)

	r8.Load(0x03)
	carry, _ = r8.Subtract(0x05, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectFailure(t, carry)

	// shifts
	r8.Load(0x81)
	test.ExpectSuccess(t, r8.ASL())
	test.ExpectEquality(t, r8.Value(), uint8(0x02))
	test.ExpectFailure(t, r8.LSR())
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectSuccess(t, r8.ROR(true))
	test.ExpectEquality(t, r8.Value(), uint8(0x80))
	test.ExpectSuccess(t, r8.ROL(false))
	test.ExpectEquality(t, r8.Value(), uint8(0x00))

	// logical
	r8.Load(0xf0)
	r8.AND(0x3c)
	test.ExpectEquality(t, r8.Value(), uint8(0x30))
	r8.ORA(0x0f)
	test.ExpectEquality(t, r8.Value(), uint8(0x3f))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xc0))
	test.ExpectSuccess(t, r8.IsBitV())
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x40, "A")

	c, z, n := r8.Compare(0x40)
	test.ExpectSuccess(t, c)
	test.ExpectSuccess(t, z)
	test.ExpectFailure(t, n)

	c, z, n = r8.Compare(0x41)
	test.ExpectFailure(t, c)
	test.ExpectFailure(t, z)
	test.ExpectSuccess(t, n)

	// register is unchanged
	test.ExpectEquality(t, r8.Value(), uint8(0x40))
}

// adding a value with a carry and then subtracting the same value with the
// inverse carry restores the original register value.
func TestAddSubtractRoundTrip(t *testing.T) {
	r8 := registers.NewRegister(0, "A")
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, c := range []bool{false, true} {
				r8.Load(uint8(a))
				r8.Add(uint8(b), c)
				r8.Subtract(uint8(b), !c)
				if r8.Value() != uint8(a) {
					test.ExpectEquality(t, r8.Value(), uint8(a), fmt.Sprintf("%02x %02x %v", a, b, c))
					return
				}
			}
		}
	}
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x80f0)
	test.ExpectEquality(t, pc.Value(), uint16(0x80f0))

	crossed := pc.Add(0x0f)
	test.ExpectEquality(t, pc.Value(), uint16(0x80ff))
	test.ExpectFailure(t, crossed)

	crossed = pc.Add(1)
	test.ExpectEquality(t, pc.Value(), uint16(0x8100))
	test.ExpectSuccess(t, crossed)

	crossed = pc.Add(-1)
	test.ExpectEquality(t, pc.Value(), uint16(0x80ff))
	test.ExpectSuccess(t, crossed)

	pc.Load(0xffff)
	pc.Increment()
	test.ExpectEquality(t, pc.Value(), uint16(0x0000))
	test.ExpectEquality(t, pc.String(), "0000")
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// unused bit is always set
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.Load(0x34)
	test.ExpectEquality(t, sr.Value(), uint8(0x34))
	test.ExpectSuccess(t, sr.Break)
	test.ExpectSuccess(t, sr.InterruptDisable)
	test.ExpectEquality(t, sr.String(), "nv-BdIzc")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xff))
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
}
