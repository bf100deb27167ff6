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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherfc/gopherfc/modalflag"
	"github.com/gopherfc/gopherfc/test"
)

// writeROM creates an NROM-128 image containing the program at $C000. The
// reset vector points to the start of the program.
func writeROM(t *testing.T, mapper uint8, program []uint8) string {
	t.Helper()

	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, mapper << 4, mapper & 0xf0, 0, 0, 0, 0, 0, 0, 0, 0}

	prg := make([]uint8, 0x4000)
	copy(prg, program)
	prg[0x3ffa], prg[0x3ffb] = 0x00, 0xc0
	prg[0x3ffc], prg[0x3ffd] = 0x00, 0xc0
	prg[0x3ffe], prg[0x3fff] = 0x00, 0xc0

	data = append(data, prg...)
	data = append(data, make([]uint8, 0x2000)...)

	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))
	return fn
}

func run(args ...string) (int, string) {
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	r := launch(md, w)
	return r, w.String()
}

func TestDisasm(t *testing.T) {
	fn := writeROM(t, 0, []uint8{
		0xa9, 0x00,       // LDA #$00
		0x85, 0x02,       // STA $02
		0x4c, 0x04, 0xc0, // JMP $C004
	})

	r, out := run("DISASM", "-start", "C000", "-end", "C004", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "$C000: LDA #$00 {IMM}"), out)
	test.ExpectSuccess(t, strings.Contains(out, "$C002: STA $02 {ZP0}"), out)
	test.ExpectSuccess(t, strings.Contains(out, "$C004: JMP $C004 {ABS}"), out)

	// the 16KB of PRG is mirrored at $8000
	r, out = run("DISASM", "-start", "$8000", "-end", "$8000", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "$8000: LDA #$00 {IMM}"), out)

	r, out = run("DISASM", "-grep", "jmp", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "JMP $C004"), out)
	test.ExpectFailure(t, strings.Contains(out, "LDA"), out)

	r, _ = run("DISASM", "-start", "C004", "-end", "C000", fn)
	test.ExpectEquality(t, r, 20)

	r, _ = run("DISASM")
	test.ExpectEquality(t, r, 20)
}

func TestUnsupportedMapper(t *testing.T) {
	fn := writeROM(t, 99, []uint8{0xea})

	// the ejected cartridge is inserted in place of the unsupported cartridge
	// and cartridge space reads as zero
	r, out := run("DISASM", "-start", "C000", "-end", "C000", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "$C000: BRK"), out)
}

func TestTestROM(t *testing.T) {
	pass := writeROM(t, 0, []uint8{
		0xa9, 0x00,       // LDA #$00
		0x85, 0x02,       // STA $02
		0x85, 0x03,       // STA $03
		0x4c, 0x06, 0xc0, // JMP $C006
	})

	r, out := run("TEST", "-frames", "2", pass)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "$02=00 $03=00"), out)
	test.ExpectSuccess(t, strings.Contains(out, "frame 2"), out)

	r, out = run("TEST", "-until", "C006", pass)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "PC $C006"), out)

	fail := writeROM(t, 0, []uint8{
		0xa9, 0x81,       // LDA #$81
		0x85, 0x02,       // STA $02
		0x4c, 0x04, 0xc0, // JMP $C004
	})

	r, out = run("TEST", "-frames", "1", fail)
	test.ExpectEquality(t, r, 20)
	test.ExpectSuccess(t, strings.Contains(out, "$02=81"), out)

	// address is never reached
	r, out = run("TEST", "-frames", "1", "-until", "D000", pass)
	test.ExpectEquality(t, r, 20)
	test.ExpectSuccess(t, strings.Contains(out, "not reached"), out)
}

func TestTestROMStart(t *testing.T) {
	fn := writeROM(t, 0, []uint8{
		0xa9, 0x55,       // LDA #$55
		0x85, 0x02,       // STA $02
		0x4c, 0x04, 0xc0, // JMP $C004
		0xa9, 0x00,       // $C007 LDA #$00
		0x85, 0x02,       // STA $02
		0x4c, 0x0b, 0xc0, // JMP $C00B
	})

	// starting from the reset vector the test fails
	r, _ := run("TEST", "-frames", "1", fn)
	test.ExpectEquality(t, r, 20)

	r, out := run("TEST", "-frames", "1", "-start", "C007", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "PC $C00B"), out)
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"C000", "$c000", "0xC000"} {
		a, err := parseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, uint16(0xc000), s)
	}
	_, err := parseAddress("10000")
	test.ExpectFailure(t, err)
	_, err = parseAddress("G000")
	test.ExpectFailure(t, err)
}

func TestHelp(t *testing.T) {
	r, out := run("-help")
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "statsview"), out)

	r, _ = run("-nosuchflag")
	test.ExpectEquality(t, r, 10)
}
