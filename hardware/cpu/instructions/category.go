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

package instructions

// Category groups instructions by how they use the bus. The zero value, Read,
// is the category of most instructions and so is omitted from the
// Definitions table.
type Category int

// List of instruction categories.
const (
	Read Category = iota
	Write

	// read-modify-write of memory. the accumulator forms of the shift and
	// rotate instructions are in the Read category
	Modify

	// the branch instructions and JMP. use IsBranch() to tell them apart
	Flow

	// JSR and RTS
	Subroutine

	// BRK and RTI
	Interrupt
)

func (c Category) String() string {
	switch c {
	case Read:
		return "read"
	case Write:
		return "write"
	case Modify:
		return "read-modify-write"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Interrupt:
		return "interrupt"
	}
	return "unknown category"
}
