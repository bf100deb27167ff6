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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function is the most basic of these. It compares two
// values of the same comparable type and reports an error if they differ.
//
//	var r uint16
//	r = someFunction()
//	test.ExpectEquality(t, r, 10)
//
// ExpectSuccess() and ExpectFailure() test for the "success" and "failure" of
// a value. For a bool, success is true. For an error, success is nil. A nil
// value is always a success.
//
// The Demand*() variants end the test immediately with t.Fatalf() rather than
// reporting the failure and continuing.
//
// All of the functions take an optional list of tags. The tags are printed
// at the beginning of any failure message and help identify which of many
// similar tests has failed. For example, inside a loop over opcodes:
//
//	test.ExpectEquality(t, cycles, expected, fmt.Sprintf("%02x", opcode))
//
// The CompareWriter and CappedWriter types implement io.Writer and are useful
// when testing functions that produce text.
package test
