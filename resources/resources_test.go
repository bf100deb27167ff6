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

package resources_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherfc/gopherfc/resources"
	"github.com/gopherfc/gopherfc/test"
)

func TestPortablePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopherfc", 0700))

	p, err := resources.JoinPath("dumps", "cpu.dot")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".gopherfc", "dumps", "cpu.dot"))

	// the directory has been created
	fi, err := os.Stat(filepath.Join(".gopherfc", "dumps"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	// the base path is not added twice
	p, err = resources.JoinPath(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".gopherfc", "dumps", "cpu.dot"))
}

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("memviz", "nestest")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_nestest_"))

	fn = resources.UniqueFilename("memviz", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "memviz__"))
}
