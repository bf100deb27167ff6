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

package modalflag_test

import (
	"testing"

	"github.com/gopherfc/gopherfc/modalflag"
	"github.com/gopherfc/gopherfc/test"
)

func TestNoModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"rom.nes"})

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.GetArg(0), "rom.nes")
}

func TestDefaultMode(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"rom.nes"})
	md.AddSubModes("run", "debug")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "rom.nes")
}

func TestSelectedModeWithFlags(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-log", "debug", "-fps", "30", "rom.nes"})
	md.AddSubModes("RUN", "DEBUG")
	log := md.AddBool("log", false, "echo log")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DEBUG")
	test.ExpectSuccess(t, *log)

	md.NewMode()
	fps := md.AddInt("fps", 60, "frame rate")
	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, *fps, 30)
	test.ExpectEquality(t, md.GetArg(0), "rom.nes")
	test.ExpectEquality(t, md.Path(), "DEBUG")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "DEBUG")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  available sub-modes: RUN, DEBUG\n    default: RUN\n")
}

func TestBadFlag(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	r, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, r, modalflag.ParseError)
}
