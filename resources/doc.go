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

// Package resources contains functions to prepare paths to GopherFC
// resources, such as the preferences file and debugger dumps.
//
// The JoinPath() function prepends the supplied path with the base resource
// path. If a directory named ".gopherfc" is present in the program's current
// directory then that is the base path (the "portable" path). Otherwise the
// user's config directory is used, as returned by os.UserConfigDir().
//
// On a modern Linux system the following:
//
//	p, _ := resources.JoinPath("gopherfc.prefs")
//
// will return:
//
//	/home/user/.config/gopherfc/gopherfc.prefs
package resources
