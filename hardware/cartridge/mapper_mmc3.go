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

// mmc3 is mapper 4. Eight internal registers select two switchable 8KB PRG
// banks and six CHR bank fragments. A scanline counter raises an IRQ when it
// reaches zero.
type mmc3 struct {
	prgBanks uint8
	chrBanks uint8

	// the register that will be written by the next write to an odd address
	// in the 0x8000 to 0x9fff range
	targetRegister uint8

	prgBankMode  bool
	chrInversion bool
	mirror       Mirror

	registers [8]uint32

	// offsets of each 1KB CHR window and each 8KB PRG window
	chrBank [8]uint32
	prgBank [4]uint32

	irqActive  bool
	irqEnabled bool
	irqCounter uint16
	irqReload  uint16

	ram []uint8
}

func newMMC3(prgBanks uint8, chrBanks uint8) *mmc3 {
	m := &mmc3{
		prgBanks: prgBanks,
		chrBanks: chrBanks,
		ram:      make([]uint8, staticRAMSize),
	}
	m.Reset()
	return m
}

func (m *mmc3) ID() string {
	return "MMC3"
}

func (m *mmc3) Reset() {
	m.targetRegister = 0
	m.prgBankMode = false
	m.chrInversion = false
	m.mirror = MirrorHorizontal

	m.irqActive = false
	m.irqEnabled = false
	m.irqCounter = 0
	m.irqReload = 0

	clear(m.registers[:])
	clear(m.chrBank[:])

	m.prgBank[0] = 0
	m.prgBank[1] = 0x2000
	m.prgBank[2] = m.secondLastBank()
	m.prgBank[3] = m.lastBank()
}

// the offsets of the last two 8KB banks in PRG.
func (m *mmc3) secondLastBank() uint32 {
	return (uint32(m.prgBanks)*2 - 2) * 0x2000
}

func (m *mmc3) lastBank() uint32 {
	return (uint32(m.prgBanks)*2 - 1) * 0x2000
}

func (m *mmc3) Mirror() Mirror {
	return m.mirror
}

func (m *mmc3) StaticRAM() []uint8 {
	return m.ram
}

func (m *mmc3) IRQState() bool {
	return m.irqActive
}

func (m *mmc3) IRQClear() {
	m.irqActive = false
}

// Scanline clocks the IRQ counter. A counter of zero is reloaded, otherwise
// it is decremented. The IRQ is raised if the counter is zero afterwards.
func (m *mmc3) Scanline() {
	if m.irqCounter == 0 {
		m.irqCounter = m.irqReload
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnabled {
		m.irqActive = true
	}
}

func (m *mmc3) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	switch {
	case addr >= originStatic && addr <= memtopStatic:
		return true, MappedToRAM, m.ram[addr&staticRAMMask]
	case addr >= originPRG:
		return true, m.prgBank[(addr-originPRG)>>13] + uint32(addr&0x1fff), 0
	}
	return false, 0, 0
}

func (m *mmc3) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	if addr >= originStatic && addr <= memtopStatic {
		m.ram[addr&staticRAMMask] = data
		return true, MappedToRAM
	}

	if addr < originPRG {
		return false, 0
	}

	even := addr&0x0001 == 0

	switch {
	case addr <= 0x9fff:
		if even {
			// bank select
			m.targetRegister = data & 0x07
			m.prgBankMode = data&0x40 == 0x40
			m.chrInversion = data&0x80 == 0x80
		} else {
			// bank data
			m.registers[m.targetRegister] = uint32(data)
		}
		m.updateBanks()

	case addr <= 0xbfff:
		if even {
			if data&0x01 == 0x01 {
				m.mirror = MirrorHorizontal
			} else {
				m.mirror = MirrorVertical
			}
		}
		// odd addresses are PRG RAM protect. not implemented

	case addr <= 0xdfff:
		if even {
			m.irqReload = uint16(data)
		} else {
			// the counter is reloaded on the next scanline
			m.irqCounter = 0
		}

	default:
		if even {
			m.irqEnabled = false
			m.irqActive = false
		} else {
			m.irqEnabled = true
		}
	}

	return true, MappedToRAM
}

func (m *mmc3) updateBanks() {
	r := m.registers

	if m.chrInversion {
		m.chrBank[0] = r[2] * 0x0400
		m.chrBank[1] = r[3] * 0x0400
		m.chrBank[2] = r[4] * 0x0400
		m.chrBank[3] = r[5] * 0x0400
		m.chrBank[4] = (r[0] & 0xfe) * 0x0400
		m.chrBank[5] = (r[0] | 0x01) * 0x0400
		m.chrBank[6] = (r[1] & 0xfe) * 0x0400
		m.chrBank[7] = (r[1] | 0x01) * 0x0400
	} else {
		m.chrBank[0] = (r[0] & 0xfe) * 0x0400
		m.chrBank[1] = (r[0] | 0x01) * 0x0400
		m.chrBank[2] = (r[1] & 0xfe) * 0x0400
		m.chrBank[3] = (r[1] | 0x01) * 0x0400
		m.chrBank[4] = r[2] * 0x0400
		m.chrBank[5] = r[3] * 0x0400
		m.chrBank[6] = r[4] * 0x0400
		m.chrBank[7] = r[5] * 0x0400
	}

	if m.prgBankMode {
		m.prgBank[0] = m.secondLastBank()
		m.prgBank[2] = (r[6] & 0x3f) * 0x2000
	} else {
		m.prgBank[0] = (r[6] & 0x3f) * 0x2000
		m.prgBank[2] = m.secondLastBank()
	}
	m.prgBank[1] = (r[7] & 0x3f) * 0x2000
	m.prgBank[3] = m.lastBank()
}

func (m *mmc3) PPUMapRead(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns {
		return true, m.chrBank[addr>>10] + uint32(addr&0x03ff)
	}
	return false, 0
}

func (m *mmc3) PPUMapWrite(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns && m.chrBanks == 0 {
		return true, uint32(addr)
	}
	return false, 0
}
