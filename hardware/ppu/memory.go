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

import (
	"github.com/gopherfc/gopherfc/hardware/cartridge"
)

// the regions of the PPU address space.
const (
	memtopPatterns  = 0x1fff
	originNametable = 0x2000
	memtopNametable = 0x3eff
	originPalette   = 0x3f00
	originAttribute = 0x23c0
)

// paletteIndex returns the index into palette RAM for the address. The
// background colour entries of the sprite palettes are mirrors of the
// background colour entries of the background palettes.
func paletteIndex(addr uint16) uint16 {
	addr &= 0x001f
	switch addr {
	case 0x0010, 0x0014, 0x0018, 0x001c:
		addr &= 0x000f
	}
	return addr
}

// nametable returns the table and the offset into that table for the
// address, according to the mirroring arrangement.
func (ppu *PPU) nametable(addr uint16) (int, uint16) {
	addr &= 0x0fff
	offset := addr & 0x03ff

	// which of the four logical nametables
	logical := addr >> 10

	var mirror cartridge.Mirror
	if ppu.cart != nil {
		mirror = ppu.cart.Mirror()
	}

	switch mirror {
	case cartridge.MirrorVertical:
		return int(logical & 0x01), offset
	case cartridge.MirrorOneScreenLo:
		return 0, offset
	case cartridge.MirrorOneScreenHi:
		return 1, offset
	}

	// horizontal
	return int(logical >> 1), offset
}

// Read a value from the PPU address space.
func (ppu *PPU) Read(addr uint16) uint8 {
	addr &= 0x3fff

	if ppu.cart != nil {
		if ok, data := ppu.cart.PPURead(addr); ok {
			return data
		}
	}

	switch {
	case addr <= memtopPatterns:
		return ppu.patterns[(addr&0x1000)>>12][addr&0x0fff]

	case addr <= memtopNametable:
		t, o := ppu.nametable(addr)
		return ppu.nametables[t][o]
	}

	v := ppu.palette[paletteIndex(addr)]
	if ppu.mask.greyscale() {
		return v & 0x30
	}
	return v & 0x3f
}

// Write a value to the PPU address space.
func (ppu *PPU) Write(addr uint16, data uint8) {
	addr &= 0x3fff

	if ppu.cart != nil {
		if ppu.cart.PPUWrite(addr, data) {
			return
		}
	}

	switch {
	case addr <= memtopPatterns:
		ppu.patterns[(addr&0x1000)>>12][addr&0x0fff] = data

	case addr <= memtopNametable:
		t, o := ppu.nametable(addr)
		ppu.nametables[t][o] = data

	default:
		ppu.palette[paletteIndex(addr)] = data
	}
}
