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

package debugger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gopherfc/gopherfc/disassembly"
	"github.com/gopherfc/gopherfc/hardware/cpu/instructions"
)

// number of instructions either side of the current instruction in the code
// view.
const codeContext = 12

// the RAM pages shown by the memory view. 16 rows of 16 bytes for each page.
var ramPages = []uint16{0x0000, 0x8000}

// registers returns the CPU registers and flags, followed by the position of
// the PPU in the frame.
func (dbg *Debugger) registers() string {
	mc := dbg.bus.CPU
	s := strings.Builder{}

	flag := func(b bool, c string) {
		if b {
			s.WriteString(dbg.styles.flagOn.Render(c))
		} else {
			s.WriteString(dbg.styles.flagOff.Render(c))
		}
		s.WriteString(" ")
	}

	s.WriteString("STATUS: ")
	flag(mc.Status.Sign, "N")
	flag(mc.Status.Overflow, "V")
	s.WriteString("- ")
	flag(mc.Status.Break, "B")
	flag(mc.Status.DecimalMode, "D")
	flag(mc.Status.InterruptDisable, "I")
	flag(mc.Status.Zero, "Z")
	flag(mc.Status.Carry, "C")
	s.WriteString("\n")

	s.WriteString(dbg.styles.cpu.Render(fmt.Sprintf("PC: $%04X", mc.PC.Value())))
	s.WriteString("\n")
	s.WriteString(dbg.styles.cpu.Render(fmt.Sprintf("A: $%02X  [%d]", mc.A.Value(), mc.A.Value())))
	s.WriteString("\n")
	s.WriteString(dbg.styles.cpu.Render(fmt.Sprintf("X: $%02X  [%d]", mc.X.Value(), mc.X.Value())))
	s.WriteString("\n")
	s.WriteString(dbg.styles.cpu.Render(fmt.Sprintf("Y: $%02X  [%d]", mc.Y.Value(), mc.Y.Value())))
	s.WriteString("\n")
	s.WriteString(dbg.styles.cpu.Render(fmt.Sprintf("Stack P: $%04X", 0x0100|uint16(mc.SP.Value()))))
	s.WriteString("\n")

	s.WriteString(dbg.styles.video.Render(fmt.Sprintf("frame %d scanline %d cycle %d",
		dbg.bus.FrameNumber(), dbg.bus.PPU.Scanline(), dbg.bus.PPU.Cycle())))
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("P1 %s  P2 %s", dbg.bus.Controllers[0].Buttons(), dbg.bus.Controllers[1].Buttons()))

	return s.String()
}

// code returns the disassembly around the current program counter. The
// instruction at the program counter is highlighted. Instructions that change
// the flow of the program are coloured and their destinations are marked in
// the gutter.
func (dbg *Debugger) code() string {
	pc := dbg.bus.CPU.PC.Value()

	// disassembling from the start of memory will usually find the program
	// counter. if it doesn't then the disassembly is started at the program
	// counter
	lst := disassembly.Disassemble(dbg.bus, 0x0000, 0xffff)
	entries := lst.Window(pc, codeContext, codeContext)
	if entries == nil {
		end := uint16(0xffff)
		if pc < 0xffff-0x60 {
			end = pc + 0x60
		}
		lst = disassembly.Disassemble(dbg.bus, pc, end)
		entries = lst.Window(pc, 0, codeContext*2)
	}

	s := strings.Builder{}
	for i, e := range entries {
		if i > 0 {
			s.WriteString("\n")
		}
		if lst.IsTarget(e.Address) {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
		switch {
		case e.Address == pc:
			s.WriteString(dbg.styles.current.Render(e.Text))
		case e.Defn.Effect == instructions.Flow || e.Defn.Effect == instructions.Subroutine || e.Defn.Effect == instructions.Interrupt:
			s.WriteString(dbg.styles.flow.Render(e.Text))
		default:
			s.WriteString(dbg.styles.instruction.Render(e.Text))
		}
	}
	return s.String()
}

// ram returns 256 bytes of memory starting at the address, as seen by the
// CPU. Memory is peeked so there are no side effects.
func (dbg *Debugger) ram(page uint16) string {
	s := strings.Builder{}
	for row := range 16 {
		addr := page + uint16(row*16)
		if row > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("$%04X:", addr))
		for col := range 16 {
			s.WriteString(fmt.Sprintf(" %02X", dbg.bus.Peek(addr+uint16(col))))
		}
	}
	return dbg.styles.mem.Render(s.String())
}

// swatches returns the eight palettes as blocks of colour. The selected
// palette is marked.
func (dbg *Debugger) swatches() string {
	s := strings.Builder{}
	for p := range uint8(8) {
		if p == dbg.palette {
			s.WriteString(">")
		} else {
			s.WriteString(" ")
		}
		for px := range uint8(4) {
			c := dbg.bus.PPU.ColourFromPaletteRAM(p, px)
			col := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
			s.WriteString(lipgloss.NewStyle().Background(col).Render("  "))
		}
	}
	return s.String()
}

// nametables returns the tile IDs of both physical nametables, 32 tiles per
// row.
func (dbg *Debugger) nametables() string {
	s := strings.Builder{}
	for t := range 2 {
		nt := dbg.bus.PPU.NameTable(t)
		s.WriteString(dbg.styles.video.Render(fmt.Sprintf("nametable %d", t)))
		for row := range 30 {
			s.WriteString("\n")
			for col := range 32 {
				if col > 0 {
					s.WriteString(" ")
				}
				s.WriteString(fmt.Sprintf("%02X", nt[row*32+col]))
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}

// view returns the complete debugger display.
func (dbg *Debugger) view() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		dbg.styles.panel.Render(dbg.registers()),
		dbg.styles.panel.Render(dbg.code()),
	)

	pages := make([]string, 0, len(ramPages)+1)
	for _, p := range ramPages {
		pages = append(pages, dbg.styles.panel.Render(dbg.ram(p)))
	}
	pages = append(pages, dbg.styles.panel.Render(dbg.swatches()))
	right := lipgloss.JoinVertical(lipgloss.Left, pages...)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
