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

package settings

import (
	"fmt"
	"strings"

	"github.com/gopherfc/gopherfc/curated"
)

// Preset describes a window size and the size of each emulated pixel.
type Preset struct {
	Name      string
	Width     int
	Height    int
	PixelSize int
}

func (p Preset) String() string {
	return fmt.Sprintf("%s (%dx%d x%d)", p.Name, p.Width, p.Height, p.PixelSize)
}

// Sentinal error returned by Lookup() for an unrecognised preset name.
const UnknownPreset = "settings: unknown preset: %s"

// DefaultPreset is used when no preset has been chosen.
const DefaultPreset = "NES_Double"

// Presets is the list of all named presets in the order they should be
// presented to the user.
var Presets = []Preset{
	{Name: "NES", Width: 254, Height: 240, PixelSize: 1},
	{Name: "NES_Double", Width: 508, Height: 480, PixelSize: 2},
	{Name: "NES_Triple", Width: 762, Height: 720, PixelSize: 3},
	{Name: "SD", Width: 640, Height: 480, PixelSize: 2},
	{Name: "SD_Double", Width: 640, Height: 480, PixelSize: 1},
	{Name: "HD", Width: 1280, Height: 720, PixelSize: 1},
	{Name: "HD_Double", Width: 1280, Height: 720, PixelSize: 2},
	{Name: "FullHD", Width: 1920, Height: 1080, PixelSize: 1},
	{Name: "QuadHD", Width: 2560, Height: 1440, PixelSize: 1},
	{Name: "UHD", Width: 3840, Height: 2160, PixelSize: 1},
	{Name: "FullUHD", Width: 7680, Height: 4320, PixelSize: 1},
	{Name: "CPUView", Width: 1600, Height: 1000, PixelSize: 2},
}

// Lookup returns the preset with the specified name. The comparison is case
// insensitive.
func Lookup(name string) (Preset, error) {
	name = strings.TrimSpace(name)
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, curated.Errorf(UnknownPreset, name)
}

// Names returns the names of every preset.
func Names() []string {
	n := make([]string, len(Presets))
	for i, p := range Presets {
		n[i] = p.Name
	}
	return n
}
