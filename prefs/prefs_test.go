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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherfc/gopherfc/prefs"
	"github.com/gopherfc/gopherfc/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("  NES_Double "))
	test.ExpectEquality(t, v.Get().(string), "NES_Double")
	test.ExpectSuccess(t, v.Set(99))
	test.ExpectEquality(t, v.String(), "99")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

// values saved by one Disk instance are preserved when a second instance
// saves to the same file.
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("bar", &s))
	test.ExpectSuccess(t, s.Set("baz"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "bar :: baz\nfoo :: true\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(42))
	test.DemandSuccess(t, dsk.Save())
	test.ExpectSuccess(t, v.Reset())

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 42)

	// command line overrides the file
	prefs.PushCommandLineStack("number::7")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 7)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestHookPost(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, seen, 100)
}

func TestBadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())
}
