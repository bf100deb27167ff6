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

package input

import (
	"github.com/gopherfc/gopherfc/curated"
)

// PushEvent pushes an Event onto the queue. Will drop the event and return an
// error if queue is full.
//
// Safe to call from any goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf("input: pushed event queue is full: input dropped")
	}
	return nil
}

func (inp *Input) handlePushed() error {
	for {
		select {
		case ev := <-inp.pushed:
			if _, err := inp.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
