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

// Package ppu implements the 2C02 picture processing unit of the NES.
//
// The PPU is clocked once per pixel. A frame is 262 scanlines of 341 cycles.
// Scanlines are numbered from -1 (the pre-render scanline) to 260. Visible
// scanlines are 0 to 239 and the vertical blank starts on scanline 241.
//
// The CPU communicates with the PPU through eight registers, accessed with
// the CPURead() and CPUWrite() functions. The PPU has its own address space,
// accessed with the Read() and Write() functions:
//
//	0x0000 to 0x1fff	pattern tables (usually provided by the cartridge)
//	0x2000 to 0x3eff	nametables (mirrored according to the cartridge)
//	0x3f00 to 0x3fff	palette
//
// The cartridge is given the first opportunity to service every access in
// the PPU address space.
//
// Scrolling and VRAM addressing follow the "loopy" model. The current and
// temporary VRAM addresses are 15 bit registers divided into fields:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
package ppu
