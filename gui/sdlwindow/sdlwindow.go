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

package sdlwindow

import (
	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/gui"
	"github.com/gopherfc/gopherfc/logger"
	"github.com/gopherfc/gopherfc/performance/limiter"
	"github.com/gopherfc/gopherfc/settings"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes used by each pixel in the pixels array.
const pixelDepth = 4

// Window is an SDL implementation of the gui.Window interface.
type Window struct {
	preset settings.Preset

	// connects SDL event loop with the parent process
	eventChannel chan gui.Event

	// limit screen updates to a fixed fps. nil if there is no cap
	lmtr *limiter.FpsLimiter

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the texture. the texture is recreated if SetPixels() is
	// called with different dimensions
	width  int32
	height int32

	// the destination of the texture in the window
	dest sdl.Rect

	// performance counter at the previous call to Elapsed()
	time uint64
}

// NewWindow is the preferred method of initialisation for the Window type.
// A fpsCap value of zero or less means that the frame rate is not capped.
func NewWindow(title string, preset settings.Preset, fpsCap int, vsync bool) (*Window, error) {
	win := &Window{
		preset: preset,
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: %v", err)
	}

	// MOUSEMOTION events fill up the event queue and are of no use to us
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(preset.Width), int32(preset.Height),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf("sdlwindow: %v", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, flags)
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf("sdlwindow: %v", err)
	}

	if fpsCap > 0 {
		win.lmtr, err = limiter.NewFPSLimiter(fpsCap)
		if err != nil {
			win.Destroy()
			return nil, curated.Errorf("sdlwindow: %v", err)
		}
	}

	logger.Logf(logger.Allow, "sdlwindow", "opened window using preset %s", preset)

	return win, nil
}

// Destroy implements the gui.Window interface.
func (win *Window) Destroy() {
	if win.lmtr != nil {
		win.lmtr.Stop()
		win.lmtr = nil
	}
	if win.texture != nil {
		_ = win.texture.Destroy()
		win.texture = nil
	}
	if win.renderer != nil {
		_ = win.renderer.Destroy()
		win.renderer = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// SetEventChannel implements the gui.Window interface.
func (win *Window) SetEventChannel(eventChannel chan gui.Event) {
	win.eventChannel = eventChannel
}

// Elapsed implements the gui.Clock interface. The performance counter is used
// rather than SDL_GetTicks() because of the higher resolution.
func (win *Window) Elapsed() float32 {
	frequency := sdl.GetPerformanceFrequency()
	currentTime := sdl.GetPerformanceCounter()

	var elapsed float32
	if win.time > 0 {
		elapsed = float32(currentTime-win.time) / float32(frequency)
	} else {
		elapsed = 1.0 / 60.0
	}
	win.time = currentTime

	return elapsed
}

// SetPixels implements the gui.Sink interface.
func (win *Window) SetPixels(width int, height int, rgba []uint8) {
	if win.texture == nil || int32(width) != win.width || int32(height) != win.height {
		if err := win.resize(int32(width), int32(height)); err != nil {
			logger.Log(logger.Allow, "sdlwindow", err)
			return
		}
	}

	err := win.texture.Update(nil, rgba, width*pixelDepth)
	if err != nil {
		logger.Log(logger.Allow, "sdlwindow", err)
	}
}

// resize the texture and calculate where it should be placed in the window.
func (win *Window) resize(width int32, height int32) error {
	if win.texture != nil {
		_ = win.texture.Destroy()
	}

	var err error

	// the byte order of the image.RGBA Pix array is R, G, B, A which on a
	// little-endian machine is the ABGR8888 pixel format
	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), width, height)
	if err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}

	win.width = width
	win.height = height

	ps := int32(win.preset.PixelSize)
	win.dest = sdl.Rect{
		W: width * ps,
		H: height * ps,
	}
	win.dest.X = (int32(win.preset.Width) - win.dest.W) / 2
	win.dest.Y = (int32(win.preset.Height) - win.dest.H) / 2

	return nil
}

// present the texture in the window.
func (win *Window) present() error {
	if err := win.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}
	if err := win.renderer.Clear(); err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}

	if win.texture != nil {
		if err := win.renderer.Copy(win.texture, nil, &win.dest); err != nil {
			return curated.Errorf("sdlwindow: %v", err)
		}
	}

	win.renderer.Present()

	return nil
}

// Run implements the gui.Window interface.
//
// MUST ONLY be called from the #mainthread
func (win *Window) Run(cb gui.FrameCallback) error {
	for {
		if !win.service() {
			return nil
		}

		ok, err := cb(win.Elapsed())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := win.present(); err != nil {
			return err
		}

		if win.lmtr != nil {
			win.lmtr.Wait()
		}
	}
}
