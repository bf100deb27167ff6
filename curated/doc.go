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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and are identified by
// the pattern they were created with rather than by the formatted message.
//
//	const BadHeader = "cartridge: bad header: %v"
//
//	err := curated.Errorf(BadHeader, "magic")
//	if curated.Is(err, BadHeader) {
//		...
//	}
//
// The Has() function is similar to Is() but checks the entire chain. The chain
// is formed by passing one curated error as a value to another.
//
//	f := curated.Errorf("loader: %v", err)
//	curated.Has(f, BadHeader) // true
//	curated.Is(f, BadHeader)  // false
//
// IsAny() answers whether the error was created by curated.Errorf() at all.
// We can think of the difference as being 'expected' and 'unexpected'
// errors. An uncurated error reaching the top level of the program is a bug.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts in the chain. For example, "cartridge: cartridge: bad
// header" becomes "cartridge: bad header".
//
// Curated errors support Unwrap() so the standard errors.Is() and errors.As()
// functions will find non-curated errors (eg. io.ErrUnexpectedEOF) wrapped by
// a curated error.
package curated
