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

// Package limiter provides a rough and ready way of triggering events at a
// fixed rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(ctx, 100)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for lim.Wait() {
//		tick()
//	}
//
// Wait() returns false once the context has been cancelled.
package limiter

import (
	"context"
	"time"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger a fixed number of times every second.
type Limiter struct {
	interval time.Duration

	ctx  context.Context
	tick chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The ticker goroutine ends when the context is cancelled.
func NewLimiter(ctx context.Context, ticksPerSecond int) *Limiter {
	lim := &Limiter{
		interval: time.Second / time.Duration(ticksPerSecond),
		ctx:      ctx,
		tick:     make(chan bool),
	}

	// run ticker concurrently
	go func() {
		adjusted := lim.interval
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			time.Sleep(adjusted)

			// correct the next sleep for any drift
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.interval
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim
}

// Interval returns the time between each tick.
func (lim *Limiter) Interval() time.Duration {
	return lim.interval
}

// Wait will block until the next trigger. Returns false if the context has
// been cancelled.
func (lim *Limiter) Wait() bool {
	if lim.ctx.Err() != nil {
		return false
	}
	select {
	case <-lim.tick:
		return true
	case <-lim.ctx.Done():
		return false
	}
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}
