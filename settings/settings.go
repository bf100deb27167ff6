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
	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/logger"
	"github.com/gopherfc/gopherfc/prefs"
	"github.com/gopherfc/gopherfc/resources"
)

// the name of the file in the resources directory.
const prefsFile = "gopherfc.prefs"

// the default frame-rate cap. zero means no cap.
const defaultFPSCap = 60

// Settings holds the preferences for the presentation of the emulation.
type Settings struct {
	dsk *prefs.Disk

	// name of the current preset
	Preset prefs.String

	// maximum frames per second. zero or less means uncapped
	FPSCap prefs.Int

	// synchronise the presentation of each frame with the monitor refresh
	VSync prefs.Bool
}

func (s *Settings) String() string {
	p, _ := s.Current()
	return p.String()
}

// NewSettings is the preferred method of initialisation for the Settings
// type. Values are loaded from the preferences file in the resources
// directory.
func NewSettings() (*Settings, error) {
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	return newSettings(pth)
}

func newSettings(pth string) (*Settings, error) {
	s := &Settings{}

	var err error

	s.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = s.dsk.Add("display.preset", &s.Preset)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = s.dsk.Add("playmode.fpscap", &s.FPSCap)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = s.dsk.Add("display.vsync", &s.VSync)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = s.SetDefaults()
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = s.dsk.Load()
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	return s, nil
}

// SetDefaults reverts all settings to their default values.
func (s *Settings) SetDefaults() error {
	if err := s.Preset.Set(DefaultPreset); err != nil {
		return err
	}
	if err := s.FPSCap.Set(defaultFPSCap); err != nil {
		return err
	}
	return s.VSync.Set(false)
}

// Load settings from disk.
func (s *Settings) Load() error {
	return s.dsk.Load()
}

// Save current settings to disk.
func (s *Settings) Save() error {
	return s.dsk.Save()
}

// Current returns the Preset named by the Preset value. An unknown name, as
// might be found in a hand edited prefs file, results in the default preset
// being returned along with the error.
func (s *Settings) Current() (Preset, error) {
	p, err := Lookup(s.Preset.String())
	if err != nil {
		logger.Logf(logger.Allow, "settings", "%v: using %s", err, DefaultPreset)
		p, _ = Lookup(DefaultPreset)
		return p, err
	}
	return p, nil
}

// SelectPreset changes the current preset. An unknown name is an error and
// the current preset is unchanged.
func (s *Settings) SelectPreset(name string) error {
	p, err := Lookup(name)
	if err != nil {
		return err
	}
	return s.Preset.Set(p.Name)
}
