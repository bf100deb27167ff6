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

package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gopherfc/gopherfc/logger"
	"github.com/gopherfc/gopherfc/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(100)

	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeats(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(100)
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: detail (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(deny{}, "tag", "detail")
	log.Logf(deny{}, "tag", "detail %d", 10)
	test.ExpectEquality(t, log.Len(), 0)
}

func TestDetailTypes(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(100)
	log.Log(logger.Allow, "error", errors.New("an error"))
	log.Log(logger.Allow, "int", 10)
	log.Logf(logger.Allow, "fmt", "%02x", 0xfe)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "error: an error\nint: 10\nfmt: fe\n")
}

func TestMaximum(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(2)
	for i := range 5 {
		log.Log(logger.Allow, "n", fmt.Sprintf("%d", i))
	}
	test.ExpectEquality(t, log.Len(), 2)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "n: 3\nn: 4\n")
}

func TestEcho(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(10)
	log.SetEcho(tw)
	log.Log(logger.Allow, "echo", "one")
	test.ExpectEquality(t, tw.String(), "echo: one\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "two")
	test.ExpectEquality(t, tw.String(), "echo: one\n")
}
