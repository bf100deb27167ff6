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
	"fmt"
	"image"

	"github.com/gopherfc/gopherfc/hardware/cartridge"
)

// Screen dimensions.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// Frame timing.
const (
	CyclesPerScanline  = 341
	ScanlinesPerFrame  = 262
	preRenderScanline  = -1
	lastScanline       = 260
	postRenderScanline = 240
	vblankScanline     = 241
	mapperScanlineHook = 260
)

// Cartridge is the interface to the cartridge required by the PPU.
type Cartridge interface {
	PPURead(addr uint16) (bool, uint8)
	PPUWrite(addr uint16, data uint8) bool
	Mirror() cartridge.Mirror
	Scanline()
}

// PPU implements the 2C02.
type PPU struct {
	cart Cartridge

	// internal memory. the pattern store is used only if the cartridge does
	// not service the pattern table range
	patterns   [2][4096]uint8
	nametables [2][1024]uint8
	palette    [32]uint8

	control controlRegister
	mask    maskRegister
	status  statusRegister

	// the current and temporary VRAM addresses, the fine X scroll and the
	// write toggle shared by PPUSCROLL and PPUADDR
	vramAddr loopyRegister
	tramAddr loopyRegister
	fineX    uint8
	latch    bool

	// PPUDATA reads are delayed by one read
	dataBuffer uint8

	scanline int
	cycle    int

	bg  background
	spr sprites

	oam     [256]uint8
	oamAddr uint8

	screen *image.RGBA

	// the NMI line. set at the start of the vertical blank if NMI is enabled.
	// the bus should clear it once it has been seen
	NMI bool

	// set at the end of each frame and each scanline. the caller should clear
	// these once they have been seen
	FrameComplete    bool
	ScanlineComplete bool

	// the number of frames since the PPU was created
	FrameNum int
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU() *PPU {
	ppu := &PPU{
		screen: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
	ppu.Reset()
	return ppu
}

// ConnectCartridge attaches the cartridge to the PPU address space.
func (ppu *PPU) ConnectCartridge(cart Cartridge) {
	ppu.cart = cart
}

// Reset the PPU. All registers, latches and shifters are zeroed. Memory is
// not changed.
func (ppu *PPU) Reset() {
	ppu.control = 0
	ppu.mask = 0
	ppu.status = 0
	ppu.vramAddr = 0
	ppu.tramAddr = 0
	ppu.fineX = 0
	ppu.latch = false
	ppu.dataBuffer = 0
	ppu.scanline = 0
	ppu.cycle = 0
	ppu.bg = background{}
	ppu.spr = sprites{}
	ppu.oamAddr = 0
	ppu.NMI = false
	ppu.FrameComplete = false
	ppu.ScanlineComplete = false
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d cycle=%d vram=%04x", ppu.FrameNum, ppu.scanline, ppu.cycle, uint16(ppu.vramAddr))
}

// Scanline returns the current scanline. Between -1 and 260.
func (ppu *PPU) Scanline() int {
	return ppu.scanline
}

// Cycle returns the current cycle of the scanline. Between 0 and 340.
func (ppu *PPU) Cycle() int {
	return ppu.cycle
}

// Screen returns the frame buffer. The image is updated as the PPU is
// clocked.
func (ppu *PPU) Screen() *image.RGBA {
	return ppu.screen
}

// OAM returns the sprite memory.
func (ppu *PPU) OAM() *[256]uint8 {
	return &ppu.oam
}

// WriteOAM writes directly to sprite memory. Used by DMA.
func (ppu *PPU) WriteOAM(addr uint8, data uint8) {
	ppu.oam[addr] = data
}

// CPURead reads the register. The address is masked to the eight registers.
// If readOnly is true the read has no side effects.
func (ppu *PPU) CPURead(addr uint16, readOnly bool) uint8 {
	addr &= 0x0007

	if readOnly {
		switch addr {
		case 0x0000:
			return uint8(ppu.control)
		case 0x0001:
			return uint8(ppu.mask)
		case 0x0002:
			return uint8(ppu.status)
		case 0x0004:
			return ppu.oam[ppu.oamAddr]
		case 0x0007:
			return ppu.dataBuffer
		}
		return 0
	}

	switch addr {
	case 0x0002:
		// the unused bits of the status register are filled with noise. we
		// use the stale data in the PPUDATA buffer
		data := (uint8(ppu.status) & 0xe0) | (ppu.dataBuffer & 0x1f)
		ppu.status.set(statusVBlank, false)
		ppu.latch = false
		return data

	case 0x0004:
		return ppu.oam[ppu.oamAddr]

	case 0x0007:
		data := ppu.dataBuffer
		ppu.dataBuffer = ppu.Read(ppu.vramAddr.address())

		// palette reads are not delayed
		if ppu.vramAddr.address() >= originPalette {
			data = ppu.dataBuffer
		}

		ppu.vramAddr.increment(ppu.control.increment())
		return data
	}

	// control, mask, OAM address, scroll and address registers are write
	// only
	return 0
}

// CPUWrite writes to the register. The address is masked to the eight
// registers.
func (ppu *PPU) CPUWrite(addr uint16, data uint8) {
	switch addr & 0x0007 {
	case 0x0000:
		ppu.control = controlRegister(data)
		ppu.tramAddr.setNametableX(ppu.control.nametableX())
		ppu.tramAddr.setNametableY(ppu.control.nametableY())

	case 0x0001:
		ppu.mask = maskRegister(data)

	case 0x0002:
		// status is read only

	case 0x0003:
		ppu.oamAddr = data

	case 0x0004:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++

	case 0x0005:
		if !ppu.latch {
			ppu.fineX = data & 0x07
			ppu.tramAddr.setCoarseX(uint16(data >> 3))
		} else {
			ppu.tramAddr.setFineY(uint16(data & 0x07))
			ppu.tramAddr.setCoarseY(uint16(data >> 3))
		}
		ppu.latch = !ppu.latch

	case 0x0006:
		if !ppu.latch {
			ppu.tramAddr = loopyRegister(uint16(data&0x3f)<<8 | uint16(ppu.tramAddr)&0x00ff)
		} else {
			ppu.tramAddr = loopyRegister(uint16(ppu.tramAddr)&0xff00 | uint16(data))
			ppu.vramAddr = ppu.tramAddr
		}
		ppu.latch = !ppu.latch

	case 0x0007:
		ppu.Write(ppu.vramAddr.address(), data)
		ppu.vramAddr.increment(ppu.control.increment())
	}
}

// Clock advances the PPU by one cycle.
func (ppu *PPU) Clock() {
	if ppu.scanline >= preRenderScanline && ppu.scanline < postRenderScanline {
		ppu.render()
	}

	if ppu.scanline == vblankScanline && ppu.cycle == 1 {
		ppu.status.set(statusVBlank, true)
		if ppu.control.enableNMI() {
			ppu.NMI = true
		}
	}

	ppu.compose()

	ppu.cycle++

	// the MMC3 counts scanlines by watching the PPU address bus. that is
	// approximated by calling the mapper at a fixed cycle
	if ppu.mask.rendering() && ppu.cycle == mapperScanlineHook && ppu.scanline < postRenderScanline {
		if ppu.cart != nil {
			ppu.cart.Scanline()
		}
	}

	if ppu.cycle >= CyclesPerScanline {
		ppu.cycle = 0
		ppu.scanline++
		ppu.ScanlineComplete = true
		if ppu.scanline > lastScanline {
			ppu.scanline = preRenderScanline
			ppu.FrameComplete = true
			ppu.FrameNum++
		}
	}
}

// render performs the work of the pre-render and visible scanlines.
func (ppu *PPU) render() {
	if ppu.scanline == preRenderScanline && ppu.cycle == 1 {
		ppu.status.set(statusVBlank, false)
		ppu.status.set(statusOverflow, false)
		ppu.status.set(statusZeroHit, false)
		ppu.spr.reset()
	}

	if (ppu.cycle >= 2 && ppu.cycle < 258) || (ppu.cycle >= 321 && ppu.cycle < 338) {
		ppu.updateShifters()
		ppu.fetchBackground()
	}

	if ppu.cycle == 256 {
		ppu.incrementScrollY()
	}

	if ppu.cycle == 257 {
		ppu.loadBackgroundShifters()
		ppu.transferAddressX()
	}

	// superfluous nametable fetches at the end of the scanline
	if ppu.cycle == 338 || ppu.cycle == 340 {
		ppu.bg.nextTileID = ppu.Read(originNametable | uint16(ppu.vramAddr)&0x0fff)
	}

	if ppu.scanline == preRenderScanline && ppu.cycle >= 280 && ppu.cycle < 305 {
		ppu.transferAddressY()
	}

	if ppu.cycle == 257 && ppu.scanline >= 0 {
		ppu.evaluateSprites()
	}

	if ppu.cycle == 340 && ppu.scanline >= 0 {
		ppu.fetchSprites()
	}
}

// compose the background and sprite pixels for the current cycle and write
// the result to the frame buffer.
func (ppu *PPU) compose() {
	// the leftmost eight pixels can be hidden for either layer
	left := ppu.cycle >= 1 && ppu.cycle <= 8

	var bgPixel, bgPalette uint8
	if ppu.mask.background() && !(left && !ppu.mask.backgroundLeft()) {
		bgPixel, bgPalette = ppu.bg.pixel(ppu.fineX)
	}

	var fgPixel, fgPalette uint8
	var fgPriority, zeroRendered bool
	if ppu.mask.sprites() && !(left && !ppu.mask.spritesLeft()) {
		fgPixel, fgPalette, fgPriority, zeroRendered = ppu.spr.pixel()
	}

	var pixel, palette uint8

	switch {
	case bgPixel == 0 && fgPixel == 0:
		// background colour
	case bgPixel == 0:
		pixel, palette = fgPixel, fgPalette
	case fgPixel == 0:
		pixel, palette = bgPixel, bgPalette
	default:
		if fgPriority {
			pixel, palette = fgPixel, fgPalette
		} else {
			pixel, palette = bgPixel, bgPalette
		}

		if ppu.spr.zeroHitPossible && zeroRendered && ppu.mask.background() && ppu.mask.sprites() {
			// the left edge of the screen is excluded from sprite zero hit
			// detection if either layer is clipped there
			first := 1
			if !(ppu.mask.backgroundLeft() && ppu.mask.spritesLeft()) {
				first = 9
			}
			if ppu.cycle >= first && ppu.cycle < 258 {
				ppu.status.set(statusZeroHit, true)
			}
		}
	}

	x := ppu.cycle - 1
	y := ppu.scanline
	if x >= 0 && x < ScreenWidth && y >= 0 && y < ScreenHeight {
		ppu.screen.SetRGBA(x, y, ppu.ColourFromPaletteRAM(palette, pixel))
	}
}
