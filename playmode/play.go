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

package playmode

import (
	"os"
	"os/signal"

	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/gui"
	"github.com/gopherfc/gopherfc/hardware"
)

// Play sets the emulation running in the supplied window. The bus should
// have a cartridge inserted and have been reset.
//
// MUST ONLY be called from the #mainthread
func Play(win gui.Window, bus *hardware.Bus) error {
	pl := NewPlayer(bus, win, win)
	win.SetEventChannel(pl.EventChannel())

	// make sure we return normally even when ctrl-c is pressed. redirect
	// interrupt signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err := win.Run(func(elapsed float32) (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return pl.Frame(elapsed)
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
