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

package hardware

// StepInstruction clocks the console until the CPU has executed exactly one
// more instruction. The CPU executes an instruction on its first cycle so the
// remaining cycles of the current instruction are run out first.
func (bus *Bus) StepInstruction() {
	for !bus.CPU.Complete() {
		bus.Clock()
	}

	for {
		bus.Clock()
		if !bus.CPU.Complete() {
			break
		}
	}
}

// StepFrame clocks the console until the PPU has completed a frame and then
// until the CPU has completed the current instruction.
func (bus *Bus) StepFrame() {
	for !bus.PPU.FrameComplete {
		bus.Clock()
	}

	for !bus.CPU.Complete() {
		bus.Clock()
	}

	bus.PPU.FrameComplete = false
}
