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

package hardware_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/hardware"
	"github.com/gopherfc/gopherfc/hardware/cartridge"
	"github.com/gopherfc/gopherfc/hardware/controller"
	"github.com/gopherfc/gopherfc/hardware/input"
	"github.com/gopherfc/gopherfc/test"
)

// program is a fragment of machine code and the address it should be placed
// at. the address must be in the last 8k of the address space.
type program struct {
	origin uint16
	code   []uint8
}

// makeROM creates an iNES image containing the programs. The image has one
// 8k bank of CHR. The number of 16k PRG banks should be one or two. The end
// of the PRG data is visible at the top of the address space for NROM and
// MMC3 cartridges.
func makeROM(mapper uint8, prgBanks uint8, reset uint16, nmi uint16, irq uint16, programs ...program) []byte {
	prg := make([]uint8, int(prgBanks)*16384)

	for _, p := range programs {
		copy(prg[int(p.origin)&(len(prg)-1):], p.code)
	}

	vectors := []uint8{
		uint8(nmi), uint8(nmi >> 8),
		uint8(reset), uint8(reset >> 8),
		uint8(irq), uint8(irq >> 8),
	}
	copy(prg[len(prg)-6:], vectors)

	img := []uint8{'N', 'E', 'S', 0x1a, prgBanks, 1, mapper << 4, mapper & 0xf0, 0, 0, 0, 0, 0, 0, 0, 0}
	img = append(img, prg...)
	img = append(img, make([]uint8, 8192)...)
	return img
}

func newBus(t *testing.T, img []byte) *hardware.Bus {
	t.Helper()
	bus := hardware.NewBus()
	if img != nil {
		cart, err := cartridge.NewCartridge(bytes.NewReader(img))
		test.DemandSuccess(t, err)
		bus.InsertCartridge(cart)
	}
	bus.Reset()
	return bus
}

func TestRAMMirror(t *testing.T) {
	bus := newBus(t, nil)

	bus.Write(0x0001, 0xaa)
	test.ExpectEquality(t, bus.Read(0x0801), uint8(0xaa))
	test.ExpectEquality(t, bus.Read(0x1001), uint8(0xaa))
	test.ExpectEquality(t, bus.Read(0x1801), uint8(0xaa))

	bus.Write(0x1fff, 0x55)
	test.ExpectEquality(t, bus.RAM[0x07ff], uint8(0x55))
	test.ExpectEquality(t, bus.Peek(0x07ff), uint8(0x55))
}

func TestPPURegisterMirror(t *testing.T) {
	bus := newBus(t, nil)

	// PPUADDR and PPUDATA through mirrors of the register window
	bus.Write(0x3ff6, 0x21)
	bus.Write(0x200e, 0x00)
	bus.Write(0x2fff, 0x5a)
	test.ExpectEquality(t, bus.PPU.Read(0x2100), uint8(0x5a))
}

func TestUnmapped(t *testing.T) {
	bus := newBus(t, nil)

	test.ExpectEquality(t, bus.Read(0x4000), uint8(0x00))
	test.ExpectEquality(t, bus.Read(0x4015), uint8(0x00))

	// the ejected cartridge services nothing
	bus.Write(0x5000, 0xff)
	test.ExpectEquality(t, bus.Read(0x5000), uint8(0x00))
	test.ExpectEquality(t, bus.Read(0x8000), uint8(0x00))
}

func TestControllers(t *testing.T) {
	bus := newBus(t, nil)

	_, err := bus.Input.HandleInputEvent(input.Event{Player: 0, Buttons: controller.A | controller.Start})
	test.ExpectSuccess(t, err)
	_, err = bus.Input.HandleInputEvent(input.Event{Player: 1, Buttons: controller.B | controller.Right})
	test.ExpectSuccess(t, err)

	// there is no third controller port
	_, err = bus.Input.HandleInputEvent(input.Event{Player: 2, Buttons: controller.A})
	test.ExpectFailure(t, err)

	bus.Write(0x4016, 0x01)
	bus.Write(0x4016, 0x00)

	// peek does not shift
	test.ExpectEquality(t, bus.Peek(0x4016), uint8(1))
	test.ExpectEquality(t, bus.Peek(0x4016), uint8(1))

	p1 := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	p2 := []uint8{0, 1, 0, 0, 0, 0, 0, 1}
	for i := range 8 {
		test.ExpectEquality(t, bus.Read(0x4016), p1[i], "player 1", i)
		test.ExpectEquality(t, bus.Read(0x4017), p2[i], "player 2", i)
	}
}

func TestDMA(t *testing.T) {
	for _, alignment := range []int{0, 1} {
		bus := newBus(t, nil)

		for i := range 256 {
			bus.RAM[0x200+i] = uint8(i) ^ 0xff
		}

		for range alignment {
			bus.Clock()
		}

		bus.Write(0x4014, 0x02)
		test.ExpectSuccess(t, bus.DMAActive())

		var clocks int
		for bus.DMAActive() {
			bus.Clock()
			clocks++
		}

		// 513 or 514 CPU cycles depending on alignment
		test.ExpectEquality(t, clocks, 1540-alignment, "alignment", alignment)

		for i := range 256 {
			test.ExpectEquality(t, bus.PPU.OAM()[i], uint8(i)^0xff, i)
		}
	}
}

func TestSelfCheck(t *testing.T) {
	code := []uint8{
		0xa2, 0xff,       // LDX #$ff
		0x9a,             // TXS
		0xa9, 0x01,       // LDA #$01
		0x85, 0x02,       // STA $02
		0x85, 0x03,       // STA $03
		0x18,             // CLC
		0xa9, 0x40,       // LDA #$40
		0x69, 0x40,       // ADC #$40
		0x50, 0x16,       // BVC fail1
		0x10, 0x14,       // BPL fail1
		0xc9, 0x80,       // CMP #$80
		0xd0, 0x10,       // BNE fail1
		0x20, 0x34, 0x80, // JSR sub
		0xc0, 0x42,       // CPY #$42
		0xd0, 0x10,       // BNE fail2
		0xa9, 0x00,       // LDA #$00
		0x85, 0x02,       // STA $02
		0x85, 0x03,       // STA $03
		0x4c, 0x23, 0x80, // done: JMP done
		0xa9, 0x10,       // fail1: LDA #$10
		0x85, 0x02,       // STA $02
		0x4c, 0x2a, 0x80, // JMP *
		0xa9, 0x20,       // fail2: LDA #$20
		0x85, 0x03,       // STA $03
		0x4c, 0x31, 0x80, // JMP *
		0xa0, 0x42,       // sub: LDY #$42
		0x60,             // RTS
	}

	// a single 16k bank of PRG is mirrored at 0x8000 and 0xc000
	img := makeROM(0, 1, 0x8000, 0x8000, 0x8000, program{origin: 0xc000, code: code})
	bus := newBus(t, img)
	test.ExpectEquality(t, bus.Peek(0x8000), uint8(0xa2))
	test.ExpectEquality(t, bus.Peek(0x8023), uint8(0x4c))

	for i := 0; i < 100 && bus.CPU.PC.Value() != 0x8023; i++ {
		bus.StepInstruction()
	}
	test.DemandEquality(t, bus.CPU.PC.Value(), uint16(0x8023))
	test.ExpectEquality(t, bus.RAM[0x02], uint8(0x00))
	test.ExpectEquality(t, bus.RAM[0x03], uint8(0x00))
	test.ExpectEquality(t, bus.CPU.Y.Value(), uint8(0x42))
}

func TestNMI(t *testing.T) {
	code := []uint8{
		0xa9, 0x80,       // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0xe0, // JMP *
		0xe6, 0x10,       // nmi: INC $10
		0x40,             // RTI
	}
	img := makeROM(0, 2, 0xe000, 0xe008, 0xe000, program{origin: 0xe000, code: code})
	bus := newBus(t, img)

	test.ExpectSuccess(t, bus.RunForFrameCount(3, nil))
	test.ExpectEquality(t, bus.RAM[0x10], uint8(3))
	test.ExpectEquality(t, bus.FrameNumber(), 3)
}

func TestMapperIRQ(t *testing.T) {
	code := []uint8{
		0xa9, 0x08,       // LDA #$08
		0x8d, 0x01, 0x20, // STA $2001
		0xa9, 0x10,       // LDA #$10
		0x8d, 0x00, 0xc0, // STA $c000
		0x8d, 0x01, 0xc0, // STA $c001
		0x8d, 0x01, 0xe0, // STA $e001
		0x58,             // CLI
		0x4c, 0x11, 0xe0, // JMP *
		0xe6, 0x11,       // irq: INC $11
		0x8d, 0x00, 0xe0, // STA $e000
		0x40,             // RTI
	}
	img := makeROM(4, 2, 0xe000, 0xe000, 0xe014, program{origin: 0xe000, code: code})
	bus := newBus(t, img)

	test.ExpectSuccess(t, bus.RunForFrameCount(2, nil))
	test.ExpectEquality(t, bus.RAM[0x11], uint8(1))

	// interrupt disable flag was restored by RTI
	test.ExpectFailure(t, bus.CPU.Status.InterruptDisable)
}

func TestRun(t *testing.T) {
	code := []uint8{
		0xe6, 0x20,       // INC $20
		0x4c, 0x00, 0xe0, // JMP $e000
	}
	img := makeROM(0, 2, 0xe000, 0xe000, 0xe000, program{origin: 0xe000, code: code})
	bus := newBus(t, img)

	var n int
	err := bus.Run(func() (govern.State, error) {
		n++
		if n == 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)

	// ten instructions is five iterations of the loop
	test.ExpectEquality(t, bus.RAM[0x20], uint8(5))

	err = bus.Run(func() (govern.State, error) {
		return govern.Running, errors.New("stop")
	})
	test.ExpectFailure(t, err)
}

func TestStepFrame(t *testing.T) {
	bus := newBus(t, nil)

	bus.StepFrame()
	test.ExpectEquality(t, bus.FrameNumber(), 1)
	test.ExpectSuccess(t, bus.CPU.Complete())
	test.ExpectFailure(t, bus.PPU.FrameComplete)
}

// nestest.nes is not distributed with the project. the test is skipped if it
// is not present
func TestNestest(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "nestest.nes"))
	if errors.Is(err, fs.ErrNotExist) {
		t.Skip("testdata/nestest.nes not present")
	}
	test.DemandSuccess(t, err)
	defer f.Close()

	cart, err := cartridge.NewCartridge(f)
	test.DemandSuccess(t, err)

	bus := hardware.NewBus()
	bus.InsertCartridge(cart)
	bus.Reset()

	// automated mode starts at 0xc000
	bus.CPU.PC.Load(0xc000)

	for i := 0; i < 10000 && bus.CPU.PC.Value() != 0xc66e; i++ {
		bus.StepInstruction()
	}

	// 0x02 holds the result of the documented opcode tests. 0x03 holds the
	// result of the undocumented opcodes, which are not implemented
	test.ExpectEquality(t, bus.RAM[0x02], uint8(0x00))
	t.Logf("undocumented opcodes result: %02x", bus.RAM[0x03])
}
