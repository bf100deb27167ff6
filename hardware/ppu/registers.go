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

package ppu

// controlRegister is the value written to PPUCTRL.
//
//	7  bit  0
//	---- ----
//	VPHB SINN
//	|||| ||||
//	|||| ||++- base nametable
//	|||| |+--- VRAM increment (0: 1; 1: 32)
//	|||| +---- sprite pattern table for 8x8 sprites
//	|||+------ background pattern table
//	||+------- sprite size (0: 8x8; 1: 8x16)
//	|+-------- master/slave select
//	+--------- generate NMI at start of vblank
type controlRegister uint8

func (r controlRegister) nametableX() uint16 {
	return uint16(r) & 0x01
}

func (r controlRegister) nametableY() uint16 {
	return uint16(r>>1) & 0x01
}

func (r controlRegister) increment() uint16 {
	if r&0x04 == 0x04 {
		return 32
	}
	return 1
}

func (r controlRegister) patternSprite() uint16 {
	return uint16(r>>3) & 0x01
}

func (r controlRegister) patternBackground() uint16 {
	return uint16(r>>4) & 0x01
}

func (r controlRegister) spriteHeight() int {
	if r&0x20 == 0x20 {
		return 16
	}
	return 8
}

func (r controlRegister) enableNMI() bool {
	return r&0x80 == 0x80
}

// maskRegister is the value written to PPUMASK.
//
//	7  bit  0
//	---- ----
//	BGRs bMmG
//	|||| ||||
//	|||| |||+- greyscale
//	|||| ||+-- show background in leftmost 8 pixels
//	|||| |+--- show sprites in leftmost 8 pixels
//	|||| +---- show background
//	|||+------ show sprites
//	+++------- emphasise red, green, blue
type maskRegister uint8

func (r maskRegister) greyscale() bool {
	return r&0x01 == 0x01
}

func (r maskRegister) backgroundLeft() bool {
	return r&0x02 == 0x02
}

func (r maskRegister) spritesLeft() bool {
	return r&0x04 == 0x04
}

func (r maskRegister) background() bool {
	return r&0x08 == 0x08
}

func (r maskRegister) sprites() bool {
	return r&0x10 == 0x10
}

func (r maskRegister) rendering() bool {
	return r&0x18 != 0x00
}

// statusRegister is the value read from PPUSTATUS. Only the top three bits
// are meaningful. The lower five bits of a read come from the data buffer.
//
//	7  bit  0
//	---- ----
//	VSO. ....
//	|||
//	||+------- sprite overflow
//	|+-------- sprite zero hit
//	+--------- vertical blank
type statusRegister uint8

const (
	statusOverflow = statusRegister(0x20)
	statusZeroHit  = statusRegister(0x40)
	statusVBlank   = statusRegister(0x80)
)

func (r *statusRegister) set(bit statusRegister, v bool) {
	if v {
		*r |= bit
	} else {
		*r &^= bit
	}
}

func (r statusRegister) is(bit statusRegister) bool {
	return r&bit == bit
}

// loopyRegister is the current or temporary VRAM address.
type loopyRegister uint16

func (r loopyRegister) coarseX() uint16 {
	return uint16(r) & 0x001f
}

func (r loopyRegister) coarseY() uint16 {
	return uint16(r>>5) & 0x001f
}

func (r loopyRegister) nametableX() uint16 {
	return uint16(r>>10) & 0x0001
}

func (r loopyRegister) nametableY() uint16 {
	return uint16(r>>11) & 0x0001
}

func (r loopyRegister) fineY() uint16 {
	return uint16(r>>12) & 0x0007
}

func (r *loopyRegister) field(v uint16, mask uint16, shift int) {
	*r = loopyRegister((uint16(*r) &^ (mask << shift)) | ((v & mask) << shift))
}

func (r *loopyRegister) setCoarseX(v uint16) {
	r.field(v, 0x1f, 0)
}

func (r *loopyRegister) setCoarseY(v uint16) {
	r.field(v, 0x1f, 5)
}

func (r *loopyRegister) setNametableX(v uint16) {
	r.field(v, 0x01, 10)
}

func (r *loopyRegister) setNametableY(v uint16) {
	r.field(v, 0x01, 11)
}

func (r *loopyRegister) setFineY(v uint16) {
	r.field(v, 0x07, 12)
}

// address returns the register as an address in the PPU address space.
func (r loopyRegister) address() uint16 {
	return uint16(r) & 0x3fff
}

// increment the register by the amount, wrapping at 15 bits.
func (r *loopyRegister) increment(n uint16) {
	*r = loopyRegister((uint16(*r) + n) & 0x7fff)
}
