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
	"github.com/gopherfc/gopherfc/debugger/easyterm"
	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/logger"
)

const help = `c      step one CPU instruction
f      step one frame
Space  run/halt the emulation
r      reset the console
p      select the next palette
t      write the pattern tables to a PNG file
m      write a graphviz dump of the CPU and controllers
n      print the nametables
h, ?   help
q      quit`

// command acts on a single key press. Errors returned by this function are
// fatal. Errors from commands that can fail, such as the dump commands, are
// printed.
func (dbg *Debugger) command(key byte) error {
	// while the emulation is running only a few commands are allowed
	if dbg.state == govern.Running {
		switch key {
		case easyterm.KeySpace:
			dbg.state = govern.Paused
			dbg.draw()
		case 'r':
			dbg.bus.Reset()
		case 'q', easyterm.KeyCtrlC:
			dbg.state = govern.Ending
		}
		return nil
	}

	switch key {
	case 'c':
		dbg.bus.StepInstruction()
		dbg.draw()

	case 'f':
		dbg.bus.StepFrame()
		if err := dbg.bus.Input.Process(); err != nil {
			return err
		}
		dbg.draw()

	case easyterm.KeySpace:
		dbg.state = govern.Running
		dbg.frames = 0
		dbg.status()

	case 'r':
		dbg.bus.Reset()
		dbg.draw()

	case 'p':
		dbg.palette = (dbg.palette + 1) & 0x07
		dbg.print(dbg.swatches())

	case 't':
		fn, err := dbg.dumpPatternTables()
		if err != nil {
			dbg.print(dbg.styles.err.Render(err.Error()))
		} else {
			dbg.print(dbg.styles.debugger.Render("pattern tables written to " + fn))
		}

	case 'm':
		fn, err := dbg.dumpMemviz()
		if err != nil {
			dbg.print(dbg.styles.err.Render(err.Error()))
		} else {
			dbg.print(dbg.styles.debugger.Render("memviz dump written to " + fn))
		}

	case 'n':
		dbg.print(dbg.nametables())

	case 'h', '?':
		dbg.print(help)

	case 'q', easyterm.KeyCtrlC:
		dbg.state = govern.Ending

	case easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:

	default:
		logger.Logf(logger.Allow, "debugger", "unrecognised command key (%q)", key)
	}

	return nil
}
