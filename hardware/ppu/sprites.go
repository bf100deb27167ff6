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

import "math/bits"

// the maximum number of sprites that can be shown on a scanline.
const maxSpritesPerScanline = 8

// oamEntry is one of the 64 sprites in object attribute memory.
type oamEntry struct {
	y         uint8
	id        uint8
	attribute uint8
	x         uint8
}

func (e oamEntry) palette() uint8 {
	return (e.attribute & 0x03) + 0x04
}

func (e oamEntry) inFront() bool {
	return e.attribute&0x20 == 0x00
}

func (e oamEntry) flipHorizontal() bool {
	return e.attribute&0x40 == 0x40
}

func (e oamEntry) flipVertical() bool {
	return e.attribute&0x80 == 0x80
}

// sprites is the state of the sprite pipeline for the next scanline.
type sprites struct {
	scanline [maxSpritesPerScanline]oamEntry
	count    int

	patternLo [maxSpritesPerScanline]uint8
	patternHi [maxSpritesPerScanline]uint8

	// sprite zero is in the list of sprites for the scanline
	zeroHitPossible bool
}

func (spr *sprites) clearShifters() {
	clear(spr.patternLo[:])
	clear(spr.patternHi[:])
}

// reset empties the list of sprites. the list built on the last visible
// scanline must not be drawn on the first scanline of the next frame.
func (spr *sprites) reset() {
	spr.count = 0
	spr.zeroHitPossible = false
	spr.clearShifters()
}

// shift counts down the X position of every sprite on the scanline. A sprite
// with a position of zero is being drawn and its pattern is shifted.
func (spr *sprites) shift() {
	for i := range spr.count {
		if spr.scanline[i].x > 0 {
			spr.scanline[i].x--
		} else {
			spr.patternLo[i] <<= 1
			spr.patternHi[i] <<= 1
		}
	}
}

// pixel returns the first non-transparent sprite pixel at the current
// position. The last value is true if the pixel belongs to sprite zero.
func (spr *sprites) pixel() (pixel uint8, palette uint8, inFront bool, zero bool) {
	for i := range spr.count {
		if spr.scanline[i].x != 0 {
			continue
		}

		lo := (spr.patternLo[i] & 0x80) >> 7
		hi := (spr.patternHi[i] & 0x80) >> 7
		pixel = (hi << 1) | lo
		if pixel != 0 {
			return pixel, spr.scanline[i].palette(), spr.scanline[i].inFront(), i == 0
		}
	}
	return 0, 0, false, false
}

// evaluateSprites builds the list of sprites for the next scanline. The
// overflow flag is set if more than eight sprites are found.
func (ppu *PPU) evaluateSprites() {
	ppu.spr.reset()
	for i := range ppu.spr.scanline {
		ppu.spr.scanline[i] = oamEntry{y: 0xff, id: 0xff, attribute: 0xff, x: 0xff}
	}

	height := ppu.control.spriteHeight()

	found := 0
	for n := 0; n < 64 && found <= maxSpritesPerScanline; n++ {
		e := oamEntry{
			y:         ppu.oam[n*4],
			id:        ppu.oam[n*4+1],
			attribute: ppu.oam[n*4+2],
			x:         ppu.oam[n*4+3],
		}

		diff := ppu.scanline - int(e.y)
		if diff < 0 || diff >= height {
			continue
		}

		if found < maxSpritesPerScanline {
			if n == 0 {
				ppu.spr.zeroHitPossible = true
			}
			ppu.spr.scanline[found] = e
		}
		found++
	}

	ppu.spr.count = min(found, maxSpritesPerScanline)

	// the overflow flag remains set until the pre-render scanline
	if found > maxSpritesPerScanline {
		ppu.status.set(statusOverflow, true)
	}
}

// fetchSprites loads the pattern shifters for the sprites found by
// evaluateSprites.
func (ppu *PPU) fetchSprites() {
	for i := range ppu.spr.count {
		e := ppu.spr.scanline[i]
		row := uint16(ppu.scanline - int(e.y))

		var addr uint16

		if ppu.control.spriteHeight() == 8 {
			if e.flipVertical() {
				row = 7 - row
			}
			addr = ppu.control.patternSprite()<<12 | uint16(e.id)<<4 | (row & 0x07)
		} else {
			// for tall sprites the pattern table is selected by bit 0 of the
			// tile ID. the top half uses the even tile and the bottom half the
			// odd tile
			if e.flipVertical() {
				row = 15 - row
			}
			tile := uint16(e.id & 0xfe)
			if row >= 8 {
				tile++
			}
			addr = uint16(e.id&0x01)<<12 | tile<<4 | (row & 0x07)
		}

		lo := ppu.Read(addr)
		hi := ppu.Read(addr + 8)

		// the shifters output the most significant bit first
		if e.flipHorizontal() {
			lo = bits.Reverse8(lo)
			hi = bits.Reverse8(hi)
		}

		ppu.spr.patternLo[i] = lo
		ppu.spr.patternHi[i] = hi
	}
}
