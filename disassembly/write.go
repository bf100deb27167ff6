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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// Write the entire listing to io.Writer, one instruction per line.
func (lst *Listing) Write(output io.Writer) error {
	for _, e := range lst.Entries {
		if _, err := io.WriteString(output, e.Text); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the listing and writes every matching line to io.Writer.
// Returns the number of matches.
func (lst *Listing) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) int {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var matches int

	for _, e := range lst.Entries {
		var s string

		switch scope {
		case GrepMnemonic:
			s = e.Defn.Mnemonic()
		case GrepOperand:
			s = e.Operand
		case GrepAll:
			s = e.Text
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			io.WriteString(output, e.Text)
			io.WriteString(output, "\n")
			matches++
		}
	}

	return matches
}
