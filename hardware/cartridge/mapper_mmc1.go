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

// mmc1 is mapper 1. Registers are written serially through a five bit shift
// register. Writing a value with bit 7 set resets the shift register.
//
// The control register:
//
//	4bit0
//	-----
//	CPPMM
//	|||||
//	|||++- Mirroring (0: one-screen lo; 1: one-screen hi; 2: vertical; 3: horizontal)
//	|++--- PRG bank mode (0, 1: 32KB; 2: first bank fixed at $8000; 3: last bank fixed at $C000)
//	+----- CHR bank mode (0: 8KB; 1: two 4KB banks)
type mmc1 struct {
	noIRQ

	prgBanks uint8
	chrBanks uint8

	shift      uint8
	shiftCount int

	control uint8
	mirror  Mirror

	chrLo uint8
	chrHi uint8
	chr8  uint8

	prgLo uint8
	prgHi uint8
	prg32 uint8

	ram []uint8
}

func newMMC1(prgBanks uint8, chrBanks uint8) *mmc1 {
	m := &mmc1{
		prgBanks: prgBanks,
		chrBanks: chrBanks,
		ram:      make([]uint8, staticRAMSize),
	}
	m.Reset()
	return m
}

func (m *mmc1) ID() string {
	return "MMC1"
}

// Reset puts the mapper into the power-on state: the last PRG bank fixed at
// $C000 and 8KB CHR mode.
func (m *mmc1) Reset() {
	m.control = 0x0c
	m.mirror = MirrorHorizontal
	m.shift = 0
	m.shiftCount = 0
	m.chrLo = 0
	m.chrHi = 0
	m.chr8 = 0
	m.prg32 = 0
	m.prgLo = 0
	m.prgHi = m.prgBanks - 1
}

func (m *mmc1) Mirror() Mirror {
	return m.mirror
}

func (m *mmc1) StaticRAM() []uint8 {
	return m.ram
}

func (m *mmc1) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	switch {
	case addr >= originStatic && addr <= memtopStatic:
		return true, MappedToRAM, m.ram[addr&staticRAMMask]

	case addr >= originPRG:
		if m.control&0x08 == 0x08 {
			// 16KB mode
			if addr <= 0xbfff {
				return true, uint32(m.prgLo)*prgBankSize + uint32(addr&0x3fff), 0
			}
			return true, uint32(m.prgHi)*prgBankSize + uint32(addr&0x3fff), 0
		}

		// 32KB mode
		return true, uint32(m.prg32)*0x8000 + uint32(addr&0x7fff), 0
	}

	return false, 0, 0
}

func (m *mmc1) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	switch {
	case addr >= originStatic && addr <= memtopStatic:
		m.ram[addr&staticRAMMask] = data
		return true, MappedToRAM

	case addr >= originPRG:
		if data&0x80 == 0x80 {
			m.shift = 0
			m.shiftCount = 0
			m.control |= 0x0c
			return true, MappedToRAM
		}

		// bits arrive least significant bit first
		m.shift >>= 1
		m.shift |= (data & 0x01) << 4
		m.shiftCount++

		if m.shiftCount == 5 {
			m.writeRegister((addr>>13)&0x03, m.shift)
			m.shift = 0
			m.shiftCount = 0
		}

		return true, MappedToRAM
	}

	return false, 0
}

func (m *mmc1) writeRegister(target uint16, v uint8) {
	switch target {
	case 0:
		m.control = v & 0x1f
		switch m.control & 0x03 {
		case 0:
			m.mirror = MirrorOneScreenLo
		case 1:
			m.mirror = MirrorOneScreenHi
		case 2:
			m.mirror = MirrorVertical
		case 3:
			m.mirror = MirrorHorizontal
		}

	case 1:
		if m.control&0x10 == 0x10 {
			m.chrLo = v & 0x1f
		} else {
			// low bit ignored in 8KB mode
			m.chr8 = (v & 0x1e) >> 1
		}

	case 2:
		if m.control&0x10 == 0x10 {
			m.chrHi = v & 0x1f
		}

	case 3:
		switch (m.control >> 2) & 0x03 {
		case 0, 1:
			m.prg32 = (v & 0x0e) >> 1
		case 2:
			m.prgLo = 0
			m.prgHi = v & 0x0f
		case 3:
			m.prgLo = v & 0x0f
			m.prgHi = m.prgBanks - 1
		}
	}
}

func (m *mmc1) PPUMapRead(addr uint16) (bool, uint32) {
	if addr > memtopPatterns {
		return false, 0
	}

	if m.chrBanks == 0 {
		return true, uint32(addr)
	}

	if m.control&0x10 == 0x10 {
		// 4KB mode
		if addr <= 0x0fff {
			return true, uint32(m.chrLo)*0x1000 + uint32(addr&0x0fff)
		}
		return true, uint32(m.chrHi)*0x1000 + uint32(addr&0x0fff)
	}

	// 8KB mode
	return true, uint32(m.chr8)*chrBankSize + uint32(addr&0x1fff)
}

func (m *mmc1) PPUMapWrite(addr uint16) (bool, uint32) {
	if addr <= memtopPatterns && m.chrBanks == 0 {
		return true, uint32(addr)
	}
	return false, 0
}
