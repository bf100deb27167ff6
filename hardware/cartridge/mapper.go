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

// Mirror is the nametable mirroring arrangement of the cartridge.
type Mirror int

// List of valid Mirror values. MirrorHardware means that the mirroring is
// fixed by the cartridge wiring and is taken from the iNES header.
const (
	MirrorHardware Mirror = iota
	MirrorHorizontal
	MirrorVertical
	MirrorOneScreenLo
	MirrorOneScreenHi
)

func (m Mirror) String() string {
	switch m {
	case MirrorHardware:
		return "hardware"
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorOneScreenLo:
		return "one screen (lo)"
	case MirrorOneScreenHi:
		return "one screen (hi)"
	}
	return "unknown"
}

// MappedToRAM is returned as the mapped address when the mapper has serviced
// the access itself. For example, a read from static RAM or a write to a bank
// switching register. The cartridge must not index PRG or CHR data with it.
const MappedToRAM = uint32(0xffffffff)

// Mapper implementations translate addresses into offsets into the PRG and
// CHR data of the cartridge.
type Mapper interface {
	// the data value is only meaningful if the mapped address is MappedToRAM
	CPUMapRead(addr uint16) (handled bool, mapped uint32, data uint8)
	CPUMapWrite(addr uint16, data uint8) (handled bool, mapped uint32)

	PPUMapRead(addr uint16) (handled bool, mapped uint32)
	PPUMapWrite(addr uint16) (handled bool, mapped uint32)

	// the current mirroring arrangement
	Mirror() Mirror

	// reset the mapper to the power-on state
	Reset()

	// IRQ line of the mapper. mappers with no IRQ always return false
	IRQState() bool
	IRQClear()

	// called by the PPU at the end of every visible scanline when rendering
	// is enabled
	Scanline()

	// short identifier of the mapper
	ID() string
}

// StaticRAM is implemented by mappers that have RAM in the 0x6000 to 0x7fff
// range of CPU memory.
type StaticRAM interface {
	StaticRAM() []uint8
}

// noIRQ can be embedded in mappers that have no scanline counter or IRQ.
type noIRQ struct{}

func (noIRQ) IRQState() bool { return false }
func (noIRQ) IRQClear()      {}
func (noIRQ) Scanline()      {}

// the size of the various memory areas.
const (
	prgBankSize    = 16384
	chrBankSize    = 8192
	staticRAMSize  = 8192
	trainerSize    = 512
	staticRAMMask  = 0x1fff
	originStatic   = 0x6000
	memtopStatic   = 0x7fff
	originPRG      = 0x8000
	memtopPatterns = 0x1fff
)
