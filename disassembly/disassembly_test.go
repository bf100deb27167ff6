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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/gopherfc/gopherfc/disassembly"
	"github.com/gopherfc/gopherfc/test"
)

type mockMem [0x10000]uint8

func (m *mockMem) Peek(address uint16) uint8 {
	return m[address]
}

func (m *mockMem) load(origin uint16, data ...uint8) {
	copy(m[origin:], data)
}

func TestDisassemble(t *testing.T) {
	var mem mockMem
	mem.load(0x8000,
		0xa9, 0x00,       // LDA #$00
		0x18,             // CLC
		0x0a,             // ASL A
		0xd0, 0xfa,       // BNE to $8000
		0x6c, 0xff, 0x10, // JMP ($10FF)
		0xb5, 0x10,       // LDA $10,X
		0xa1, 0x20,       // LDA ($20,X)
		0xb1, 0x20,       // LDA ($20),Y
		0xbd, 0x00, 0x20, // LDA $2000,X
		0x02,             // undocumented
	)

	lst := disassembly.Disassemble(&mem, 0x8000, 0x8012)

	expected := []string{
		"$8000: LDA #$00 {IMM}",
		"$8002: CLC  {IMP}",
		"$8003: ASL A {ACC}",
		"$8004: BNE $FA [$8000] {REL}",
		"$8006: JMP ($10FF) {IND}",
		"$8009: LDA $10 X {ZPX}",
		"$800B: LDA ($20 X) {IZX}",
		"$800D: LDA ($20 Y) {IZY}",
		"$800F: LDA $2000 X {ABX}",
		"$8012: ???  {IMP}",
	}

	test.DemandEquality(t, lst.Len(), len(expected))
	for i, e := range lst.Entries {
		test.ExpectEquality(t, e.Text, expected[i], i)
	}

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, lst.Write(w))
	test.ExpectSuccess(t, w.Compare(strings.Join(expected, "\n")+"\n"))
}

func TestForwardBranch(t *testing.T) {
	var mem mockMem
	mem.load(0xc000, 0x90, 0x10) // BCC +16

	lst := disassembly.Disassemble(&mem, 0xc000, 0xc000)
	test.DemandEquality(t, lst.Len(), 1)
	test.ExpectEquality(t, lst.Entries[0].Text, "$C000: BCC $10 [$C012] {REL}")
}

func TestTargets(t *testing.T) {
	var mem mockMem
	mem.load(0x8000,
		0x20, 0x10, 0x80, // JSR $8010
		0xd0, 0xfb,       // BNE to $8000
		0x4c, 0x03, 0x80, // JMP $8003
		0x6c, 0x00, 0x02, // JMP ($0200)
		0x60,             // RTS
		0xa9, 0x01,       // LDA #$01
	)

	lst := disassembly.Disassemble(&mem, 0x8000, 0x800c)
	test.DemandEquality(t, lst.Len(), 6)

	expected := []struct {
		target uint16
		ok     bool
	}{
		{0x8010, true},
		{0x8000, true},
		{0x8003, true},
		{0x0000, false},
		{0x0000, false},
		{0x0000, false},
	}

	for i, e := range lst.Entries {
		target, ok := e.Target()
		test.ExpectEquality(t, ok, expected[i].ok, i)
		test.ExpectEquality(t, target, expected[i].target, i)
	}

	test.ExpectSuccess(t, lst.IsTarget(0x8000))
	test.ExpectSuccess(t, lst.IsTarget(0x8003))
	test.ExpectSuccess(t, lst.IsTarget(0x8010))
	test.ExpectFailure(t, lst.IsTarget(0x8005))
	test.ExpectFailure(t, lst.IsTarget(0x0200))
}

func TestEndOfMemory(t *testing.T) {
	var mem mockMem

	// memory is all zero so every instruction is a two byte BRK
	lst := disassembly.Disassemble(&mem, 0xfff0, 0xffff)
	test.ExpectEquality(t, lst.Len(), 8)

	e, ok := lst.Lookup(0xfffe)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Text, "$FFFE: BRK #$00 {IMM}")
}

func TestLookupAndWindow(t *testing.T) {
	var mem mockMem
	for i := range 16 {
		mem[0x8000+i] = 0xea // NOP
	}

	lst := disassembly.Disassemble(&mem, 0x8000, 0x800f)
	test.ExpectEquality(t, lst.Len(), 16)

	_, ok := lst.Lookup(0x8010)
	test.ExpectFailure(t, ok)

	w := lst.Window(0x8001, 3, 2)
	test.DemandEquality(t, len(w), 4)
	test.ExpectEquality(t, w[0].Address, uint16(0x8000))
	test.ExpectEquality(t, w[3].Address, uint16(0x8003))

	w = lst.Window(0x800f, 1, 5)
	test.DemandEquality(t, len(w), 2)
	test.ExpectEquality(t, w[1].Address, uint16(0x800f))

	test.ExpectEquality(t, len(lst.Window(0x9000, 1, 1)), 0)
}

func TestLookupMidInstruction(t *testing.T) {
	var mem mockMem
	mem.load(0x8000, 0xad, 0x00, 0x20) // LDA $2000

	lst := disassembly.Disassemble(&mem, 0x8000, 0x8000)
	_, ok := lst.Lookup(0x8001)
	test.ExpectFailure(t, ok)
}

func TestGrep(t *testing.T) {
	var mem mockMem
	mem.load(0x8000,
		0xa9, 0x10, // LDA #$10
		0x85, 0x10, // STA $10
		0xa2, 0x10, // LDX #$10
	)

	lst := disassembly.Disassemble(&mem, 0x8000, 0x8005)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, lst.Grep(w, disassembly.GrepMnemonic, "lda", false), 1)
	test.ExpectSuccess(t, w.Compare("$8000: LDA #$10 {IMM}\n"))

	w.Clear()
	test.ExpectEquality(t, lst.Grep(w, disassembly.GrepMnemonic, "lda", true), 0)

	w.Clear()
	test.ExpectEquality(t, lst.Grep(w, disassembly.GrepOperand, "#$10", true), 2)

	w.Clear()
	test.ExpectEquality(t, lst.Grep(w, disassembly.GrepAll, "ZP0", true), 1)
}
