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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Bus type is the root of the emulation. It owns the CPU, the PPU, the
// inserted cartridge, work RAM and the two controllers. The CPU sees the bus
// only through the cpubus.Memory interface.
//
// The Bus.Clock() function is called once per master clock. The PPU is
// clocked on every call and the CPU on every third call. Helper functions
// StepInstruction(), StepFrame(), Run() and RunForFrameCount() are built on
// top of Clock().
package hardware
