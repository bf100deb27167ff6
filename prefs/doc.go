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

// Package prefs facilitates the storage of preferential values in the
// emulator. Preference values are typed (Bool, String and Int) and are
// added to a Disk instance which takes care of saving them to and loading
// them from a preferences file.
//
//	var fps prefs.Int
//	dsk, _ := prefs.NewDisk("gopherfc.prefs")
//	dsk.Add("playmode.fps", &fps)
//	dsk.Load()
//
// A preferences file can be shared by more than one Disk instance. Entries in
// the file that are not in the Disk being saved are preserved.
//
// The command line stack allows preferences to be specified at the command
// line, overriding whatever is in the preferences file. The format of the
// string is a series of "key::value" pairs separated by semi-colons.
//
//	prefs.PushCommandLineStack("display.preset::NES_Double; playmode.fps::30")
//
// Command line preferences are consumed when a Disk is loaded. The
// preference is set but the value on disk is not changed until the next
// Save().
package prefs
