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

// cnrom is mapper 3. PRG is arranged as in NROM. A single register selects
// the 8KB CHR bank.
type cnrom struct {
	noIRQ

	prgBanks uint8
	chrBanks uint8
	mask     uint16

	chrBank uint8
}

func newCNROM(prgBanks uint8, chrBanks uint8) *cnrom {
	m := &cnrom{
		prgBanks: prgBanks,
		chrBanks: chrBanks,
		mask:     0x3fff,
	}
	if prgBanks > 1 {
		m.mask = 0x7fff
	}
	return m
}

func (m *cnrom) ID() string {
	return "CNROM"
}

func (m *cnrom) Reset() {
	m.chrBank = 0
}

func (m *cnrom) Mirror() Mirror {
	return MirrorHardware
}

func (m *cnrom) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	if addr >= originPRG {
		return true, uint32(addr & m.mask), 0
	}
	return false, 0, 0
}

func (m *cnrom) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	if addr >= originPRG {
		m.chrBank = data & 0x03
		return true, MappedToRAM
	}
	return false, 0
}

func (m *cnrom) PPUMapRead(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns {
		return true, uint32(m.chrBank)*chrBankSize + uint32(addr)
	}
	return false, 0
}

func (m *cnrom) PPUMapWrite(addr uint16) (bool, uint32) {
	return false, 0
}
