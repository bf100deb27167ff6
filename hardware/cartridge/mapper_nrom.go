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

// nrom is mapper 0. There is no bank switching. A cartridge with a single
// 16KB PRG bank has that bank mirrored into both halves of the 32KB window.
type nrom struct {
	noIRQ

	prgBanks uint8
	chrBanks uint8
	mask     uint16
}

func newNROM(prgBanks uint8, chrBanks uint8) *nrom {
	m := &nrom{
		prgBanks: prgBanks,
		chrBanks: chrBanks,
		mask:     0x3fff,
	}
	if prgBanks > 1 {
		m.mask = 0x7fff
	}
	return m
}

func (m *nrom) ID() string {
	return "NROM"
}

func (m *nrom) Reset() {
}

func (m *nrom) Mirror() Mirror {
	return MirrorHardware
}

func (m *nrom) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	if addr >= originPRG {
		return true, uint32(addr & m.mask), 0
	}
	return false, 0, 0
}

// CPUMapWrite never handles the write. PRG is read-only.
func (m *nrom) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	return false, 0
}

func (m *nrom) PPUMapRead(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns {
		return true, uint32(addr)
	}
	return false, 0
}

// PPUMapWrite only handles the write if the cartridge has CHR RAM.
func (m *nrom) PPUMapWrite(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns && m.chrBanks == 0 {
		return true, uint32(addr)
	}
	return false, 0
}
