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

import "github.com/charmbracelet/lipgloss"

type styles struct {
	instruction lipgloss.Style
	current     lipgloss.Style
	flow        lipgloss.Style
	cpu         lipgloss.Style
	mem         lipgloss.Style
	video       lipgloss.Style
	err         lipgloss.Style
	debugger    lipgloss.Style
	flagOn      lipgloss.Style
	flagOff     lipgloss.Style
	panel       lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		instruction: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		current:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		flow:        lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		cpu:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		mem:         lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		video:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		debugger:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		flagOn:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		flagOff:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1)),
		panel:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}
