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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gopherfc/gopherfc/performance/limiter"
	"github.com/gopherfc/gopherfc/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(60)
	test.DemandSuccess(t, err)
	defer lim.Stop()
	test.ExpectFailure(t, lim.SetLimit(-1))
}

func TestRate(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// first tick is immediate
	lim.Wait()

	start := time.Now()
	for range 10 {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// ten ticks at 100fps should take about 100ms. the upper bound is
	// generous because the test machine may be busy
	test.ExpectSuccess(t, elapsed >= 80*time.Millisecond, elapsed)
	test.ExpectSuccess(t, elapsed < 500*time.Millisecond, elapsed)
}
