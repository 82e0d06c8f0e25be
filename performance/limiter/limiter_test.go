// This file is part of mc6809.
//
// mc6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mc6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mc6809.  If not, see <https://www.gnu.org/licenses/>.

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/mc6809/performance/limiter"
	"github.com/jetsetilly/mc6809/test"
)

func TestLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	lim := limiter.NewLimiter(ctx, 100)
	test.ExpectEquality(t, lim.Interval(), 10*time.Millisecond)

	for range 3 {
		test.ExpectSuccess(t, lim.Wait())
	}

	cancel()
	test.ExpectFailure(t, lim.Wait())
}
