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

// background is the state of the background pipeline. The next tile is
// fetched over eight cycles and then loaded into the low byte of the
// shifters.
type background struct {
	nextTileID     uint8
	nextTileAttrib uint8
	nextTileLSB    uint8
	nextTileMSB    uint8

	patternLo uint16
	patternHi uint16
	attribLo  uint16
	attribHi  uint16
}

// pixel returns the two bit pixel value and the palette number selected by
// the fine X scroll.
func (bg *background) pixel(fineX uint8) (uint8, uint8) {
	mux := uint16(0x8000) >> fineX

	var pixel, palette uint8
	if bg.patternLo&mux != 0 {
		pixel |= 0x01
	}
	if bg.patternHi&mux != 0 {
		pixel |= 0x02
	}
	if bg.attribLo&mux != 0 {
		palette |= 0x01
	}
	if bg.attribHi&mux != 0 {
		palette |= 0x02
	}
	return pixel, palette
}

func (bg *background) load() {
	bg.patternLo = (bg.patternLo & 0xff00) | uint16(bg.nextTileLSB)
	bg.patternHi = (bg.patternHi & 0xff00) | uint16(bg.nextTileMSB)

	// the attribute shifters are fed with the same two bits for all eight
	// pixels of the tile
	if bg.nextTileAttrib&0x01 == 0x01 {
		bg.attribLo = (bg.attribLo & 0xff00) | 0x00ff
	} else {
		bg.attribLo &= 0xff00
	}
	if bg.nextTileAttrib&0x02 == 0x02 {
		bg.attribHi = (bg.attribHi & 0xff00) | 0x00ff
	} else {
		bg.attribHi &= 0xff00
	}
}

func (bg *background) shift() {
	bg.patternLo <<= 1
	bg.patternHi <<= 1
	bg.attribLo <<= 1
	bg.attribHi <<= 1
}

// fetchBackground performs the memory access for the current cycle of the
// eight cycle tile fetch.
func (ppu *PPU) fetchBackground() {
	v := ppu.vramAddr

	switch (ppu.cycle - 1) % 8 {
	case 0:
		ppu.loadBackgroundShifters()
		ppu.bg.nextTileID = ppu.Read(originNametable | uint16(v)&0x0fff)

	case 2:
		addr := originAttribute | v.nametableY()<<11 | v.nametableX()<<10 | (v.coarseY()>>2)<<3 | v.coarseX()>>2
		attrib := ppu.Read(addr)
		if v.coarseY()&0x02 == 0x02 {
			attrib >>= 4
		}
		if v.coarseX()&0x02 == 0x02 {
			attrib >>= 2
		}
		ppu.bg.nextTileAttrib = attrib & 0x03

	case 4:
		ppu.bg.nextTileLSB = ppu.Read(ppu.backgroundPatternAddress())

	case 6:
		ppu.bg.nextTileMSB = ppu.Read(ppu.backgroundPatternAddress() + 8)

	case 7:
		ppu.incrementScrollX()
	}
}

func (ppu *PPU) backgroundPatternAddress() uint16 {
	return ppu.control.patternBackground()<<12 | uint16(ppu.bg.nextTileID)<<4 | ppu.vramAddr.fineY()
}

func (ppu *PPU) loadBackgroundShifters() {
	ppu.bg.load()
}

// updateShifters advances the background shifters and, on visible cycles,
// the sprite shifters.
func (ppu *PPU) updateShifters() {
	if ppu.mask.background() {
		ppu.bg.shift()
	}
	if ppu.mask.sprites() && ppu.cycle >= 1 && ppu.cycle < 258 {
		ppu.spr.shift()
	}
}

// incrementScrollX moves the VRAM address to the next tile, crossing into
// the neighbouring nametable at the end of the row.
func (ppu *PPU) incrementScrollX() {
	if !ppu.mask.rendering() {
		return
	}
	if ppu.vramAddr.coarseX() == 31 {
		ppu.vramAddr.setCoarseX(0)
		ppu.vramAddr.setNametableX(^ppu.vramAddr.nametableX())
	} else {
		ppu.vramAddr.setCoarseX(ppu.vramAddr.coarseX() + 1)
	}
}

// incrementScrollY moves the VRAM address to the next pixel row. Rows 30
// and 31 are attribute memory so the coarse Y wraps at 29, crossing into
// the neighbouring nametable.
func (ppu *PPU) incrementScrollY() {
	if !ppu.mask.rendering() {
		return
	}
	if ppu.vramAddr.fineY() < 7 {
		ppu.vramAddr.setFineY(ppu.vramAddr.fineY() + 1)
		return
	}

	ppu.vramAddr.setFineY(0)
	switch ppu.vramAddr.coarseY() {
	case 29:
		ppu.vramAddr.setCoarseY(0)
		ppu.vramAddr.setNametableY(^ppu.vramAddr.nametableY())
	case 31:
		ppu.vramAddr.setCoarseY(0)
	default:
		ppu.vramAddr.setCoarseY(ppu.vramAddr.coarseY() + 1)
	}
}

func (ppu *PPU) transferAddressX() {
	if !ppu.mask.rendering() {
		return
	}
	ppu.vramAddr.setNametableX(ppu.tramAddr.nametableX())
	ppu.vramAddr.setCoarseX(ppu.tramAddr.coarseX())
}

func (ppu *PPU) transferAddressY() {
	if !ppu.mask.rendering() {
		return
	}
	ppu.vramAddr.setFineY(ppu.tramAddr.fineY())
	ppu.vramAddr.setNametableY(ppu.tramAddr.nametableY())
	ppu.vramAddr.setCoarseY(ppu.tramAddr.coarseY())
}
