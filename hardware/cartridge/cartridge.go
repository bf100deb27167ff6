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

package cartridge

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/gopherfc/gopherfc/cartridgeloader"
	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/logger"
)

// Error patterns returned by NewCartridge().
const (
	UnsupportedCartridge = "cartridge: unsupported: %v"
	BadHeader            = "cartridge: bad header: %v"
	TruncatedData        = "cartridge: truncated %s data: %v"
)

// the magic bytes at the start of every iNES file.
var magic = []byte{'N', 'E', 'S', 0x1a}

// Header is the information in the 16 byte iNES header.
type Header struct {
	PRGBanks uint8
	CHRBanks uint8
	Flags6   uint8
	Flags7   uint8

	PRGRAMSize uint8
	TVSystem1  uint8
	TVSystem2  uint8
}

// MapperID is formed from the high nibbles of flags 6 and flags 7.
func (h Header) MapperID() uint8 {
	return (h.Flags7 & 0xf0) | (h.Flags6 >> 4)
}

// Trainer returns true if a 512 byte trainer follows the header.
func (h Header) Trainer() bool {
	return h.Flags6&0x04 == 0x04
}

// Battery returns true if the static RAM of the cartridge is battery backed.
func (h Header) Battery() bool {
	return h.Flags6&0x02 == 0x02
}

// Mirror returns the hardwired mirroring arrangement.
func (h Header) Mirror() Mirror {
	if h.Flags6&0x01 == 0x01 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d, %d PRG, %d CHR, %s", h.MapperID(), h.PRGBanks, h.CHRBanks, h.Mirror())
}

// Cartridge is an iNES image along with the mapper that decodes addresses
// into the image.
type Cartridge struct {
	Filename string
	Hash     string

	Header Header

	prg []uint8
	chr []uint8

	mapper Mapper
}

// NewCartridge reads an iNES image. Errors will match either the BadHeader,
// TruncatedData or UnsupportedCartridge pattern.
func NewCartridge(r io.Reader) (*Cartridge, error) {
	var hdr [16]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, curated.Errorf(BadHeader, err)
	}

	if !bytes.Equal(hdr[:4], magic) {
		return nil, curated.Errorf(BadHeader, "missing NES magic")
	}

	cart := &Cartridge{
		Header: Header{
			PRGBanks:   hdr[4],
			CHRBanks:   hdr[5],
			Flags6:     hdr[6],
			Flags7:     hdr[7],
			PRGRAMSize: hdr[8],
			TVSystem1:  hdr[9],
			TVSystem2:  hdr[10],
		},
	}

	if cart.Header.Trainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, curated.Errorf(TruncatedData, "trainer", err)
		}
	}

	cart.prg = make([]uint8, int(cart.Header.PRGBanks)*prgBankSize)
	if _, err := io.ReadFull(r, cart.prg); err != nil {
		return nil, curated.Errorf(TruncatedData, "PRG", err)
	}

	if cart.Header.CHRBanks == 0 {
		// CHR RAM
		cart.chr = make([]uint8, chrBankSize)
	} else {
		cart.chr = make([]uint8, int(cart.Header.CHRBanks)*chrBankSize)
		if _, err := io.ReadFull(r, cart.chr); err != nil {
			return nil, curated.Errorf(TruncatedData, "CHR", err)
		}
	}

	var err error
	cart.mapper, err = newMapper(cart.Header.MapperID(), cart.Header.PRGBanks, cart.Header.CHRBanks)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "cartridge", "%s", cart.Header)

	return cart, nil
}

// NewCartridgeFromLoader loads the data in the cartridgeloader.Loader and
// creates a new cartridge from it. The filename and hash of the cartridge are
// taken from the loader.
func NewCartridgeFromLoader(cl *cartridgeloader.Loader) (*Cartridge, error) {
	if err := cl.Load(); err != nil {
		return nil, err
	}

	cart, err := NewCartridge(bytes.NewReader(cl.Data))
	if err != nil {
		return nil, err
	}

	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	return cart, nil
}

func newMapper(id uint8, prgBanks uint8, chrBanks uint8) (Mapper, error) {
	switch id {
	case 0:
		return newNROM(prgBanks, chrBanks), nil
	case 1:
		return newMMC1(prgBanks, chrBanks), nil
	case 2:
		return newUxROM(prgBanks, chrBanks), nil
	case 3:
		return newCNROM(prgBanks, chrBanks), nil
	case 4:
		return newMMC3(prgBanks, chrBanks), nil
	case 66:
		return newGxROM(prgBanks, chrBanks), nil
	}
	return nil, curated.Errorf(UnsupportedCartridge, fmt.Sprintf("mapper %d", id))
}

func (cart *Cartridge) String() string {
	if cart.Filename == "" {
		return fmt.Sprintf("%s [%s]", cart.mapper.ID(), cart.Header)
	}
	return fmt.Sprintf("%s: %s [%s]", cart.Filename, cart.mapper.ID(), cart.Header)
}

// Mapper returns the mapper of the cartridge. Used by the debugger.
func (cart *Cartridge) Mapper() Mapper {
	return cart.mapper
}

// Reset the mapper.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Mirror returns the current mirroring arrangement. The arrangement in the
// header is used if the mapper does not control mirroring.
func (cart *Cartridge) Mirror() Mirror {
	m := cart.mapper.Mirror()
	if m == MirrorHardware {
		return cart.Header.Mirror()
	}
	return m
}

// the data at the mapped offset. offsets beyond the end of the data wrap
// around.
func index(data []uint8, mapped uint32) *uint8 {
	if len(data) == 0 {
		return nil
	}
	return &data[mapped%uint32(len(data))]
}

// CPURead returns the data at the CPU address. Returns false if the address
// is not handled by the cartridge.
func (cart *Cartridge) CPURead(addr uint16) (bool, uint8) {
	handled, mapped, data := cart.mapper.CPUMapRead(addr)
	if !handled {
		return false, 0
	}
	if mapped == MappedToRAM {
		return true, data
	}
	if p := index(cart.prg, mapped); p != nil {
		return true, *p
	}
	return true, 0
}

// CPUWrite writes data to the CPU address. Returns false if the address is
// not handled by the cartridge.
func (cart *Cartridge) CPUWrite(addr uint16, data uint8) bool {
	handled, mapped := cart.mapper.CPUMapWrite(addr, data)
	if !handled {
		return false
	}
	if mapped != MappedToRAM {
		if p := index(cart.prg, mapped); p != nil {
			*p = data
		}
	}
	return true
}

// PPURead returns the data at the PPU address. Returns false if the address
// is not handled by the cartridge.
func (cart *Cartridge) PPURead(addr uint16) (bool, uint8) {
	handled, mapped := cart.mapper.PPUMapRead(addr)
	if !handled {
		return false, 0
	}
	if p := index(cart.chr, mapped); p != nil {
		return true, *p
	}
	return true, 0
}

// PPUWrite writes data to the PPU address. Returns false if the address is
// not handled by the cartridge.
func (cart *Cartridge) PPUWrite(addr uint16, data uint8) bool {
	handled, mapped := cart.mapper.PPUMapWrite(addr)
	if !handled {
		return false
	}
	if p := index(cart.chr, mapped); p != nil {
		*p = data
	}
	return true
}

// IRQState returns the state of the IRQ line of the mapper.
func (cart *Cartridge) IRQState() bool {
	return cart.mapper.IRQState()
}

// IRQClear clears the IRQ line of the mapper.
func (cart *Cartridge) IRQClear() {
	cart.mapper.IRQClear()
}

// Scanline is called by the PPU at the end of every visible scanline.
func (cart *Cartridge) Scanline() {
	cart.mapper.Scanline()
}

// DataHash returns the SHA1 of the PRG and CHR data. Used when the cartridge was
// not created from a cartridgeloader.Loader.
func (cart *Cartridge) DataHash() string {
	h := sha1.New()
	h.Write(cart.prg)
	h.Write(cart.chr)
	return fmt.Sprintf("%x", h.Sum(nil))
}
