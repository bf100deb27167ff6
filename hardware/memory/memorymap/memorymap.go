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

// Package memorymap describes the areas of memory as seen by the CPU and
// provides the MapAddress() function to identify the area of any address.
package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas as seen by the CPU.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// The origin and memory top for each area of memory. Mirrored areas are
// reduced to their canonical address with the corresponding mask.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x1fff)
	MaskRAM   = uint16(0x07ff)

	OriginPPU = uint16(0x2000)
	MemtopPPU = uint16(0x3fff)
	MaskPPU   = uint16(0x0007)

	OriginIO = uint16(0x4000)
	MemtopIO = uint16(0x401f)

	// cartridge space. what is actually mapped here is up to the mapper
	OriginCart    = uint16(0x4020)
	OriginCartRAM = uint16(0x6000)
	MemtopCartRAM = uint16(0x7fff)
	OriginCartROM = uint16(0x8000)
	MemtopCart    = uint16(0xffff)
)

// Addresses of the IO registers handled by the bus.
const (
	OAMDMA      = uint16(0x4014)
	Controller1 = uint16(0x4016)
	Controller2 = uint16(0x4017)
)

// MapAddress returns the area of memory the address belongs to and the
// address with any mirroring removed.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | (address & MaskPPU), PPU
	case address <= MemtopIO:
		return address, IO
	}
	return address, Cartridge
}
