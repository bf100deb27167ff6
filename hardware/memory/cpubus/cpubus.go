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

// Package cpubus defines the memory interface as seen by the CPU and the
// addresses of the interrupt vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. All memory areas implement this interface because they are all
// accessible from the CPU.
//
// There are no errors. An access to an address that nothing responds to
// reads as zero and writes are dropped.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// Peek reads memory without side effects. For example, reading a PPU
	// register with Peek() will not clear the vblank flag.
	Peek(address uint16) uint8
}

// Addresses of the interrupt vectors. Each vector is two bytes, low byte
// first.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
	BRK   = IRQ
)

// StackOrigin is the address of the page used by the stack. The stack
// pointer is an offset into this page.
const StackOrigin = uint16(0x0100)
