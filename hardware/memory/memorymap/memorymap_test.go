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

package memorymap_test

import (
	"testing"

	"github.com/gopherfc/gopherfc/hardware/memory/memorymap"
	"github.com/gopherfc/gopherfc/test"
)

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0x0800)
	test.ExpectEquality(t, a, uint16(0x0000))
	test.ExpectEquality(t, area, memorymap.RAM)

	a, area = memorymap.MapAddress(0x1fff)
	test.ExpectEquality(t, a, uint16(0x07ff))
	test.ExpectEquality(t, area, memorymap.RAM)

	a, area = memorymap.MapAddress(0x3ffa)
	test.ExpectEquality(t, a, uint16(0x2002))
	test.ExpectEquality(t, area, memorymap.PPU)

	a, area = memorymap.MapAddress(0x4016)
	test.ExpectEquality(t, a, uint16(0x4016))
	test.ExpectEquality(t, area, memorymap.IO)

	_, area = memorymap.MapAddress(0x8000)
	test.ExpectEquality(t, area, memorymap.Cartridge)
	test.ExpectEquality(t, area.String(), "Cartridge")
}
