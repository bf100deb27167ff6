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

// Package disassembly produces a textual listing of 6502 machine code.
//
// Memory is read through the Peeker interface. Implementations must not cause
// side effects when peeked. For example, peeking the PPU status register must
// not clear the vblank flag.
//
// Every line of the listing is of the form:
//
//	$C000: LDA #$00 {IMM}
//
// with the addressing mode of the instruction at the end of the line.
// Relative branches show the resolved target address:
//
//	$C004: BNE $FA [$C000] {REL}
//
// Disassembly is linear. Every decoded instruction is assumed to be followed
// by another instruction. Data bytes will be decoded as instructions and
// possibly as undocumented opcodes, which are shown with the mnemonic "???".
package disassembly
