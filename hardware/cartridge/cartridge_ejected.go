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

// the name and hash of the ejected cartridge.
const (
	ejectedName = "ejected"
	ejectedHash = "nohash"
)

// ejected is the mapper of a cartridge that is not there. It handles no
// addresses at all. PPU pattern memory falls through to the PPU's internal
// pattern store.
type ejected struct {
	noIRQ
}

func (m *ejected) ID() string {
	return "-"
}

func (m *ejected) Reset() {
}

func (m *ejected) Mirror() Mirror {
	return MirrorHardware
}

func (m *ejected) CPUMapRead(addr uint16) (bool, uint32, uint8) {
	return false, 0, 0
}

func (m *ejected) CPUMapWrite(addr uint16, data uint8) (bool, uint32) {
	return false, 0
}

func (m *ejected) PPUMapRead(addr uint16) (bool, uint32) {
	return false, 0
}

func (m *ejected) PPUMapWrite(addr uint16) (bool, uint32) {
	return false, 0
}

// NewEjected returns a cartridge with no data. It can be inserted into the
// console when no cartridge is available or when a cartridge is not
// supported.
func NewEjected() *Cartridge {
	return &Cartridge{
		Filename: ejectedName,
		Hash:     ejectedHash,
		mapper:   &ejected{},
	}
}

// IsEjected returns true if the cartridge was created with NewEjected().
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}
