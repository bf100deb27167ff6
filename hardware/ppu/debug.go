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
	"image"
	"image/color"
)

// ColourFromPaletteRAM returns the colour for the pixel value in the palette.
// Palettes 0 to 3 are background palettes and 4 to 7 are sprite palettes.
func (ppu *PPU) ColourFromPaletteRAM(palette uint8, pixel uint8) color.RGBA {
	addr := originPalette + uint16(palette)<<2 + uint16(pixel)
	return Colour(ppu.Read(addr))
}

// PatternTable returns an image of one of the two pattern tables, drawn
// with the palette. The image is 128x128 pixels, arranged as 16x16 tiles.
func (ppu *PPU) PatternTable(table int, palette uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	base := uint16(table&0x01) << 12

	for tileY := range 16 {
		for tileX := range 16 {
			offset := uint16(tileY*256 + tileX*16)

			for row := range 8 {
				lo := ppu.Read(base + offset + uint16(row))
				hi := ppu.Read(base + offset + uint16(row) + 8)

				for col := range 8 {
					pixel := ((hi>>7)&0x01)<<1 | (lo>>7)&0x01
					lo <<= 1
					hi <<= 1
					img.SetRGBA(tileX*8+col, tileY*8+row, ppu.ColourFromPaletteRAM(palette, pixel))
				}
			}
		}
	}

	return img
}

// NameTable returns a copy of one of the two physical nametables.
func (ppu *PPU) NameTable(table int) [1024]uint8 {
	return ppu.nametables[table&0x01]
}

// Palette returns a copy of palette memory.
func (ppu *PPU) Palette() [32]uint8 {
	return ppu.palette
}
