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

package performance

import (
	"strings"
	"testing"
	"time"

	"github.com/gopherfc/gopherfc/hardware"
	"github.com/gopherfc/gopherfc/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	p, err = ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(601, 10)
	test.ExpectApproximate(t, fps, 60.1, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.01)

	fps, accuracy = CalcFPS(100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	lt := leadTime
	leadTime = 10 * time.Millisecond
	defer func() { leadTime = lt }()

	bus := hardware.NewBus()
	bus.Reset()

	w := &test.CompareWriter{}
	err := Check(w, ProfileNone, bus, "500ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "fps"))
	test.ExpectSuccess(t, bus.FrameNumber() > 0)
}
