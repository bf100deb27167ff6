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

// Package memory contains the sub-packages that describe the memory of the
// console as seen by the CPU. The memory itself is implemented by the Bus
// type in the hardware package.
//
// The memorymap package describes the areas of the 16-bit address space. The
// cpubus package defines the interface through which the CPU accesses
// memory.
package memory
