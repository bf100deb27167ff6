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

// Package cartridge parses iNES images and implements the memory mappers
// found on NES cartridges.
//
// A cartridge is created with NewCartridge() from an io.Reader or with
// NewCartridgeFromLoader() from a cartridgeloader.Loader. The mapper is
// chosen according to the mapper ID in the header. Supported mappers are:
//
//	0  NROM
//	1  MMC1
//	2  UxROM
//	3  CNROM
//	4  MMC3
//	66 GxROM
//
// Any other mapper ID results in an error that matches the
// UnsupportedCartridge pattern. The caller can decide to stop or to insert
// the ejected cartridge returned by NewEjected().
//
// The Mapper interface translates CPU and PPU addresses into offsets into the
// PRG and CHR data. The cartridge uses the offsets to index its data. An
// address that the mapper does not handle is reported as not handled and the
// caller is free to decode the address in some other way.
package cartridge
