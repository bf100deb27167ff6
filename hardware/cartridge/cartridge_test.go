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

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/nes/cartridge"

	"github.com/gopherfc/gopherfc/curated"
	gfc "github.com/gopherfc/gopherfc/hardware/cartridge"
	"github.com/gopherfc/gopherfc/test"
)

// makeImage creates an iNES image. Every byte of PRG contains the number of
// the 8KB bank it is in. Every byte of CHR contains the number of the 1KB
// bank it is in.
func makeImage(mapper uint8, prgBanks uint8, chrBanks uint8, flags6 uint8) []byte {
	img := []byte{'N', 'E', 'S', 0x1a, prgBanks, chrBanks,
		flags6 | mapper<<4, mapper & 0xf0, 0, 0, 0, 0, 0, 0, 0, 0}

	if flags6&0x04 == 0x04 {
		img = append(img, make([]byte, 512)...)
	}

	for i := range int(prgBanks) * 16384 {
		img = append(img, uint8(i>>13))
	}
	for i := range int(chrBanks) * 8192 {
		img = append(img, uint8(i>>10))
	}

	return img
}

func newCartridge(t *testing.T, img []byte) *gfc.Cartridge {
	t.Helper()
	cart, err := gfc.NewCartridge(bytes.NewReader(img))
	test.DemandSuccess(t, err)
	return cart
}

func cpuRead(t *testing.T, cart *gfc.Cartridge, addr uint16) uint8 {
	t.Helper()
	ok, data := cart.CPURead(addr)
	if !ok {
		t.Fatalf("CPU read of %04x not handled", addr)
	}
	return data
}

func ppuRead(t *testing.T, cart *gfc.Cartridge, addr uint16) uint8 {
	t.Helper()
	ok, data := cart.PPURead(addr)
	if !ok {
		t.Fatalf("PPU read of %04x not handled", addr)
	}
	return data
}

func TestHeaderErrors(t *testing.T) {
	_, err := gfc.NewCartridge(bytes.NewReader([]byte{'N', 'E', 'S'}))
	test.ExpectSuccess(t, curated.Is(err, gfc.BadHeader))

	img := makeImage(0, 1, 1, 0)
	img[3] = 0x00
	_, err = gfc.NewCartridge(bytes.NewReader(img))
	test.ExpectSuccess(t, curated.Is(err, gfc.BadHeader))

	img = makeImage(0, 2, 1, 0)
	_, err = gfc.NewCartridge(bytes.NewReader(img[:20000]))
	test.ExpectSuccess(t, curated.Is(err, gfc.TruncatedData))

	img = makeImage(0, 1, 1, 0)
	_, err = gfc.NewCartridge(bytes.NewReader(img[:len(img)-1]))
	test.ExpectSuccess(t, curated.Is(err, gfc.TruncatedData))

	img = makeImage(5, 1, 1, 0)
	_, err = gfc.NewCartridge(bytes.NewReader(img))
	test.ExpectSuccess(t, curated.Is(err, gfc.UnsupportedCartridge))
}

func TestHeader(t *testing.T) {
	img := makeImage(0x42, 2, 1, 0x03)
	h := gfc.Header{
		PRGBanks: img[4],
		CHRBanks: img[5],
		Flags6:   img[6],
		Flags7:   img[7],
	}
	test.ExpectEquality(t, h.MapperID(), uint8(0x42))
	test.ExpectEquality(t, h.Mirror(), gfc.MirrorVertical)
	test.ExpectEquality(t, h.Battery(), true)
	test.ExpectEquality(t, h.Trainer(), false)
}

func TestTrainer(t *testing.T) {
	cart := newCartridge(t, makeImage(0, 2, 1, 0x04))
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(0))
	test.ExpectEquality(t, cpuRead(t, cart, 0xffff), uint8(3))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1fff), uint8(7))
}

func TestNROM(t *testing.T) {
	img := makeImage(0, 1, 1, 0)
	img[16+0x10] = 0xab
	cart := newCartridge(t, img)

	test.ExpectEquality(t, cart.Mapper().ID(), "NROM")
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorHorizontal)

	// a single bank is mirrored into both halves of the window
	test.ExpectEquality(t, cpuRead(t, cart, 0x8010), uint8(0xab))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc010), uint8(0xab))
	test.ExpectEquality(t, cpuRead(t, cart, 0xe000), uint8(1))

	// PRG is not writable
	test.ExpectFailure(t, cart.CPUWrite(0x8010, 0x00))
	test.ExpectEquality(t, cpuRead(t, cart, 0x8010), uint8(0xab))

	// addresses outside of the cartridge range are not handled
	ok, _ := cart.CPURead(0x6000)
	test.ExpectFailure(t, ok)
	ok, _ = cart.PPURead(0x2000)
	test.ExpectFailure(t, ok)

	// CHR ROM is not writable
	test.ExpectFailure(t, cart.PPUWrite(0x0000, 0xff))
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(0))

	// two banks fill the window
	cart = newCartridge(t, makeImage(0, 2, 1, 0x01))
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorVertical)
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(0))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(2))
}

func TestCHRRAM(t *testing.T) {
	cart := newCartridge(t, makeImage(0, 1, 0, 0))
	test.ExpectSuccess(t, cart.PPUWrite(0x1234, 0x56))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1234), uint8(0x56))
}

func TestUxROM(t *testing.T) {
	cart := newCartridge(t, makeImage(2, 4, 0, 0))
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(0))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(6))

	test.ExpectSuccess(t, cart.CPUWrite(0x8000, 2))
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(4))
	test.ExpectEquality(t, cpuRead(t, cart, 0xa000), uint8(5))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(6))

	cart.Reset()
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(0))
}

func TestCNROM(t *testing.T) {
	cart := newCartridge(t, makeImage(3, 1, 4, 0))
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(0))

	test.ExpectSuccess(t, cart.CPUWrite(0x8000, 3))
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(24))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1c00), uint8(31))

	// PRG is not changed by the bank switch
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(0))
}

func TestGxROM(t *testing.T) {
	cart := newCartridge(t, makeImage(66, 4, 4, 0))
	test.ExpectEquality(t, cart.Mapper().ID(), "GxROM")

	test.ExpectSuccess(t, cart.CPUWrite(0x8000, 0x12))
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(4))
	test.ExpectEquality(t, cpuRead(t, cart, 0xe000), uint8(7))
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(16))
}

// mmc1Write writes the value to the MMC1 register at the address through the
// serial shift register.
func mmc1Write(cart *gfc.Cartridge, addr uint16, v uint8) {
	for range 5 {
		cart.CPUWrite(addr, v&0x01)
		v >>= 1
	}
}

func TestMMC1(t *testing.T) {
	cart := newCartridge(t, makeImage(1, 8, 4, 0))

	// the last bank is fixed at 0xc000 after reset
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(0))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(14))

	// CHR is in 8KB mode after reset
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(0))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1000), uint8(4))

	// switch the bank at 0x8000
	mmc1Write(cart, 0xe000, 2)
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(4))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(14))

	// 32KB mode and vertical mirroring
	mmc1Write(cart, 0x8000, 0x02)
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorVertical)
	mmc1Write(cart, 0xe000, 0x04)
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(8))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(10))

	// 8KB CHR mode ignores the low bit of the bank number
	mmc1Write(cart, 0xa000, 0x03)
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(8))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1000), uint8(12))

	// 4KB CHR mode and horizontal mirroring
	mmc1Write(cart, 0x8000, 0x1f)
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorHorizontal)
	mmc1Write(cart, 0xa000, 3)
	mmc1Write(cart, 0xc000, 5)
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(12))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1000), uint8(20))

	// one screen mirroring
	mmc1Write(cart, 0x8000, 0x1c)
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorOneScreenLo)
	mmc1Write(cart, 0x8000, 0x1d)
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorOneScreenHi)
}

func TestMMC1ShiftReset(t *testing.T) {
	cart := newCartridge(t, makeImage(1, 8, 4, 0))

	// two bits of a write are discarded by the reset bit
	cart.CPUWrite(0xe000, 1)
	cart.CPUWrite(0xe000, 1)
	cart.CPUWrite(0xe000, 0x80)
	mmc1Write(cart, 0xe000, 3)
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(6))
}

func TestMMC1StaticRAM(t *testing.T) {
	cart := newCartridge(t, makeImage(1, 2, 1, 0x02))

	test.ExpectSuccess(t, cart.CPUWrite(0x6000, 0x42))
	test.ExpectSuccess(t, cart.CPUWrite(0x7fff, 0x43))
	test.ExpectEquality(t, cpuRead(t, cart, 0x6000), uint8(0x42))
	test.ExpectEquality(t, cpuRead(t, cart, 0x7fff), uint8(0x43))

	ram, ok := cart.Mapper().(gfc.StaticRAM)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(ram.StaticRAM()), 8192)
	test.ExpectEquality(t, ram.StaticRAM()[0], uint8(0x42))
}

func TestMMC3Banks(t *testing.T) {
	cart := newCartridge(t, makeImage(4, 8, 8, 0))

	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(0))
	test.ExpectEquality(t, cpuRead(t, cart, 0xa000), uint8(1))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(14))
	test.ExpectEquality(t, cpuRead(t, cart, 0xe000), uint8(15))

	// R6 and R7
	cart.CPUWrite(0x8000, 6)
	cart.CPUWrite(0x8001, 5)
	cart.CPUWrite(0x8000, 7)
	cart.CPUWrite(0x8001, 9)
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(5))
	test.ExpectEquality(t, cpuRead(t, cart, 0xa000), uint8(9))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(14))

	// swap the fixed and switchable banks
	cart.CPUWrite(0x8000, 0x46)
	test.ExpectEquality(t, cpuRead(t, cart, 0x8000), uint8(14))
	test.ExpectEquality(t, cpuRead(t, cart, 0xc000), uint8(5))
	test.ExpectEquality(t, cpuRead(t, cart, 0xe000), uint8(15))

	// R0 selects a 2KB CHR bank
	cart.CPUWrite(0x8000, 0)
	cart.CPUWrite(0x8001, 8)
	test.ExpectEquality(t, ppuRead(t, cart, 0x0000), uint8(8))
	test.ExpectEquality(t, ppuRead(t, cart, 0x0400), uint8(9))

	// CHR inversion
	cart.CPUWrite(0x8000, 0x80)
	test.ExpectEquality(t, ppuRead(t, cart, 0x1000), uint8(8))
	test.ExpectEquality(t, ppuRead(t, cart, 0x1400), uint8(9))

	// mirroring
	cart.CPUWrite(0xa000, 0)
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorVertical)
	cart.CPUWrite(0xa000, 1)
	test.ExpectEquality(t, cart.Mirror(), gfc.MirrorHorizontal)
}

func TestMMC3IRQ(t *testing.T) {
	cart := newCartridge(t, makeImage(4, 8, 8, 0))

	const reload = 4

	cart.CPUWrite(0xc000, reload)
	cart.CPUWrite(0xc001, 0)
	cart.CPUWrite(0xe001, 0)

	// the first scanline loads the counter with the reload value
	cart.Scanline()
	test.ExpectFailure(t, cart.IRQState())

	for i := range reload {
		test.ExpectFailure(t, cart.IRQState(), i)
		cart.Scanline()
	}
	test.ExpectSuccess(t, cart.IRQState())

	cart.IRQClear()
	test.ExpectFailure(t, cart.IRQState())

	// the counter is reloaded and counts down again
	for range reload {
		cart.Scanline()
	}
	test.ExpectFailure(t, cart.IRQState())
	cart.Scanline()
	test.ExpectSuccess(t, cart.IRQState())

	// disabling the IRQ also acknowledges it
	cart.CPUWrite(0xe000, 0)
	test.ExpectFailure(t, cart.IRQState())
	for range reload * 3 {
		cart.Scanline()
	}
	test.ExpectFailure(t, cart.IRQState())
}

func TestEjected(t *testing.T) {
	cart := gfc.NewEjected()
	test.ExpectSuccess(t, cart.IsEjected())

	ok, _ := cart.CPURead(0x8000)
	test.ExpectFailure(t, ok)
	ok, _ = cart.PPURead(0x0000)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, cart.CPUWrite(0x8000, 0))
	test.ExpectFailure(t, cart.IRQState())

	cart = newCartridge(t, makeImage(0, 1, 1, 0))
	test.ExpectFailure(t, cart.IsEjected())
}

// compare the parsing of an image against an independent iNES parser.
func TestAgainstReference(t *testing.T) {
	img := makeImage(1, 2, 2, 0x01)

	ref, err := cartridge.LoadFile(bytes.NewReader(img))
	test.DemandSuccess(t, err)

	cart := newCartridge(t, img)
	test.ExpectEquality(t, int(cart.Header.MapperID()), int(ref.Mapper))
	test.ExpectEquality(t, len(ref.PRG), 2*16384)
	test.ExpectEquality(t, len(ref.CHR), 2*8192)

	// MMC1 is in 16KB mode with the first bank at 0x8000 and the last bank at
	// 0xc000. with two banks that covers the whole of PRG
	for i := range len(ref.PRG) {
		test.DemandEquality(t, cpuRead(t, cart, 0x8000+uint16(i)), ref.PRG[i], i)
	}

	// CHR is in 8KB mode after reset so the first 8KB of CHR is visible
	for i := range len(ref.CHR) / 2 {
		test.DemandEquality(t, ppuRead(t, cart, uint16(i)), ref.CHR[i], i)
	}
}
