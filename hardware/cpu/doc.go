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

// Package cpu emulates the 6502 microprocessor as found in the NES. The
// decimal mode of the original 6502 is absent from the NES variant and is
// not emulated, although the D flag can still be set and cleared.
//
// The CPU is driven by the Clock() function, which is called once per CPU
// cycle. An instruction is executed in its entirety on the first cycle and
// the remaining cycles of the instruction are counted down on subsequent
// calls. The Complete() function indicates when the CPU is between
// instructions.
//
// The number of cycles an instruction takes is the base cycle count from the
// instructions.Definitions table plus one cycle if, and only if, both the
// addressing mode reports a page crossing and the operator is page
// sensitive. Branch instructions add their own cycles when the branch is
// taken.
//
// Memory is accessed only through the cpubus.Memory interface. The Plumb()
// function can be used to attach a different memory implementation.
package cpu
