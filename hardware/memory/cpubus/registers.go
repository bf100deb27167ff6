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

package cpubus

// Register is the canonical name of a memory mapped register.
type Register string

// List of registers visible to the CPU. The PPU registers are mirrored
// through 0x2000 to 0x3fff.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
	OAMDMA    Register = "OAMDMA"
	JOY1      Register = "JOY1"
	JOY2      Register = "JOY2"
)

// PPURegisters is indexed by the lower three bits of the address.
var PPURegisters = [8]Register{
	PPUCTRL, PPUMASK, PPUSTATUS, OAMADDR, OAMDATA, PPUSCROLL, PPUADDR, PPUDATA,
}

// Symbols maps the canonical address of each register to its name.
var Symbols = map[uint16]Register{
	0x2000: PPUCTRL,
	0x2001: PPUMASK,
	0x2002: PPUSTATUS,
	0x2003: OAMADDR,
	0x2004: OAMDATA,
	0x2005: PPUSCROLL,
	0x2006: PPUADDR,
	0x2007: PPUDATA,
	0x4014: OAMDMA,
	0x4016: JOY1,
	0x4017: JOY2,
}
