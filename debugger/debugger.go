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
	"io"
	"os"

	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/debugger/easyterm"
	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/hardware"
	"github.com/gopherfc/gopherfc/resources"
)

// while running, the status line is printed every statusRate frames.
const statusRate = 30

// ANSI sequence to move the cursor to the top left and clear the screen.
const clearScreen = "\x1b[H\x1b[2J"

// Debugger is the terminal debugger.
type Debugger struct {
	bus *hardware.Bus

	// short name of the cartridge. used when naming dump files
	cartName string

	output io.Writer
	styles styles

	// key presses from the input goroutine. the channel is closed when the
	// input reaches EOF or an error occurs
	input chan byte

	// terminal handling. nil if input is not a terminal
	term *easyterm.EasyTerm

	state govern.State

	// the palette used by the swatches view and the pattern table dump
	palette uint8

	// frames run since the emulation was set running
	frames int

	// prepares the path for a dump file
	dumpPath func(name string) (string, error)
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The bus should have a cartridge inserted and have been reset.
func NewDebugger(bus *hardware.Bus, cartName string, input io.Reader, output io.Writer) *Debugger {
	dbg := &Debugger{
		bus:      bus,
		cartName: cartName,
		output:   output,
		styles:   newStyles(),
		input:    make(chan byte, 16),
		state:    govern.Paused,
		dumpPath: func(name string) (string, error) {
			return resources.JoinPath(name)
		},
	}

	go func() {
		defer close(dbg.input)
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if n > 0 {
				dbg.input <- b[0]
			}
			if err != nil {
				return
			}
		}
	}()

	return dbg
}

// AttachTerminal puts the terminal into cbreak mode for the duration of the
// debugging session. It should be used when the input is an interactive
// terminal.
func (dbg *Debugger) AttachTerminal(input *os.File, output *os.File) error {
	if !easyterm.IsTerminal(input) {
		return curated.Errorf("debugger: input is not a terminal")
	}

	dbg.term = &easyterm.EasyTerm{}
	err := dbg.term.Initialise(input, output)
	if err != nil {
		dbg.term = nil
		return curated.Errorf("debugger: %v", err)
	}
	dbg.term.CBreakMode()

	return nil
}

// State returns the current state of the debugger. One of govern.Paused,
// govern.Running or govern.Ending.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

func (dbg *Debugger) print(s string) {
	io.WriteString(dbg.output, s)
	io.WriteString(dbg.output, "\n")
}

// draw the complete debugger display.
func (dbg *Debugger) draw() {
	if dbg.term != nil {
		io.WriteString(dbg.output, clearScreen)
	}
	dbg.print(dbg.view())
}

// status prints a single line summary of the emulation.
func (dbg *Debugger) status() {
	dbg.print(dbg.styles.debugger.Render(fmt.Sprintf("%s frame %d PC $%04X",
		dbg.state, dbg.bus.FrameNumber(), dbg.bus.CPU.PC.Value())))
}

// Start the debugger. Returns when the user quits or the input ends.
func (dbg *Debugger) Start() error {
	if dbg.term != nil {
		defer dbg.term.CleanUp()
	}

	dbg.draw()

	for dbg.state != govern.Ending {
		if dbg.state == govern.Running {
			dbg.bus.StepFrame()
			if err := dbg.bus.Input.Process(); err != nil {
				return curated.Errorf("debugger: %v", err)
			}

			dbg.frames++
			if dbg.frames%statusRate == 0 {
				dbg.status()
			}

			select {
			case k, ok := <-dbg.input:
				if !ok {
					dbg.state = govern.Ending
					break // select
				}
				if err := dbg.command(k); err != nil {
					return err
				}
			default:
			}

			continue // for loop
		}

		k, ok := <-dbg.input
		if !ok {
			dbg.state = govern.Ending
			break // for loop
		}
		if err := dbg.command(k); err != nil {
			return err
		}
	}

	return nil
}
