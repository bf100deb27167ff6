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

// gxrom is mapper 66. A single register selects both the 32KB PRG bank and
// the 8KB CHR bank.
type gxrom struct {
	noIRQ

	prgBanks uint8
	chrBanks uint8

	prgBank uint8
	chrBank uint8
}

func newGxROM(prgBanks uint8, chrBanks uint8) *gxrom {
	return &gxrom{
		prgBanks: prgBanks,
		chrBanks: chrBanks,
	}
}

func (m *gxrom) ID() string {
	return "GxROM"
}

func (m *gxrom) Reset() {
	m.prgBank = 0
	m.chrBank = 0
}

func (m *gxrom) Mirror() Mirror {
	return MirrorHardware
}

func (m *gxrom) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	if addr >= originPRG {
		return true, uint32(m.prgBank)*0x8000 + uint32(addr&0x7fff), 0
	}
	return false, 0, 0
}

// CPUMapWrite sets the bank register. Bits 4 and 5 select the PRG bank and
// bits 0 and 1 select the CHR bank.
func (m *gxrom) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	if addr >= originPRG {
		m.prgBank = (data & 0x30) >> 4
		m.chrBank = data & 0x03
		return true, MappedToRAM
	}
	return false, 0
}

func (m *gxrom) PPUMapRead(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns {
		return true, uint32(m.chrBank)*chrBankSize + uint32(addr)
	}
	return false, 0
}

func (m *gxrom) PPUMapWrite(addr uint16) (bool, uint32) {
	return false, 0
}
