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

// uxrom is mapper 2. The lower 16KB window is switchable and the upper 16KB
// window is fixed to the last bank.
type uxrom struct {
	noIRQ

	prgBanks uint8
	chrBanks uint8

	prgLo uint8
	prgHi uint8
}

func newUxROM(prgBanks uint8, chrBanks uint8) *uxrom {
	m := &uxrom{
		prgBanks: prgBanks,
		chrBanks: chrBanks,
	}
	m.Reset()
	return m
}

func (m *uxrom) ID() string {
	return "UxROM"
}

func (m *uxrom) Reset() {
	m.prgLo = 0
	m.prgHi = m.prgBanks - 1
}

func (m *uxrom) Mirror() Mirror {
	return MirrorHardware
}

func (m *uxrom) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	switch {
	case addr >= 0xc000:
		return true, uint32(m.prgHi)*prgBankSize + uint32(addr&0x3fff), 0
	case addr >= originPRG:
		return true, uint32(m.prgLo)*prgBankSize + uint32(addr&0x3fff), 0
	}
	return false, 0, 0
}

func (m *uxrom) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	if addr >= originPRG {
		m.prgLo = data & 0x0f
		return true, MappedToRAM
	}
	return false, 0
}

func (m *uxrom) PPUMapRead(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns {
		return true, uint32(addr)
	}
	return false, 0
}

func (m *uxrom) PPUMapWrite(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns && m.chrBanks == 0 {
		return true, uint32(addr)
	}
	return false, 0
}
