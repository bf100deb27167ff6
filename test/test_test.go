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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/gopherfc/gopherfc/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint8(0xff), uint8(0x7f)<<1|1)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10.5, 11, 0.1)
	test.ExpectApproximate(t, 60, 60, 0.0)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	io.WriteString(w, "hello ")
	io.WriteString(w, "world")
	test.ExpectSuccess(t, w.Compare("hello world"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	c, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)

	n, _ := io.WriteString(c, "abc")
	test.ExpectEquality(t, n, 3)
	n, _ = io.WriteString(c, "defgh")
	test.ExpectEquality(t, n, 2)
	n, _ = io.WriteString(c, "ijk")
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, c.String(), "abcde")

	c.Reset()
	test.ExpectEquality(t, c.String(), "")
}
