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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/gopherfc/gopherfc/curated"
)

// FpsLimiter will trigger at the specified number of frames per second.
type FpsLimiter struct {
	// time.Duration between ticks. accessed atomically because SetLimit() can
	// be called while the ticker goroutine is running
	secondsPerFrame atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	// run ticker concurrently. the sleep duration is adjusted every tick to
	// account for drift
	go func() {
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			spf := time.Duration(lim.secondsPerFrame.Load())
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - spf
			adjusted = max(0, min(adjusted, spf))
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: invalid frames per second (%d)", framesPerSecond)
	}
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. The limiter should not be used after this function has
// been called.
func (lim *FpsLimiter) Stop() {
	close(lim.quit)
}
