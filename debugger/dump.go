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

package debugger

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/resources"
)

// dumpMemviz writes a graphviz representation of the CPU registers and the
// controllers. Returns the name of the file written.
func (dbg *Debugger) dumpMemviz() (string, error) {
	fn, err := dbg.dumpPath(resources.UniqueFilename("memviz", dbg.cartName) + ".dot")
	if err != nil {
		return "", curated.Errorf("memviz: %v", err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	mc := dbg.bus.CPU
	memviz.Map(f, &mc.PC, &mc.A, &mc.X, &mc.Y, &mc.SP, &mc.Status,
		dbg.bus.Controllers[0], dbg.bus.Controllers[1])

	return fn, nil
}

// dumpPatternTables writes both pattern tables, side by side, to a PNG file.
// The tables are drawn with the currently selected palette. Returns the name
// of the file written.
func (dbg *Debugger) dumpPatternTables() (string, error) {
	fn, err := dbg.dumpPath(resources.UniqueFilename("patterns", dbg.cartName) + ".png")
	if err != nil {
		return "", curated.Errorf("patterns: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 256, 128))
	for t := range 2 {
		tbl := dbg.bus.PPU.PatternTable(t, dbg.palette)
		draw.Draw(img, image.Rect(t*128, 0, t*128+128, 128), tbl, image.Point{}, draw.Src)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("patterns: %v", err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return "", curated.Errorf("patterns: %v", err)
	}

	return fn, nil
}
