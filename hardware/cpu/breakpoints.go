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

package cpu

import (
	"fmt"
	"sync/atomic"
)

// NoBreakpoint is the value of an empty breakpoint slot. It is outside the
// range of a 16 bit address and so can never be matched.
const NoBreakpoint = 0x10000

const numBreakpoints = 3

// the slot reserved for step-over
const stepOverSlot = 2

func checkBreakpointSlot(which int) {
	if which < 0 || which >= stepOverSlot {
		panic(fmt.Sprintf("cpu: breakpoint slot %d is not available", which))
	}
}

// SetBreakpoint sets the address of breakpoint slot 0 or 1. Any other slot
// number will cause a panic. Safe to call from any goroutine.
func (mc *CPU) SetBreakpoint(which int, address uint16) {
	checkBreakpointSlot(which)
	atomic.StoreUint32(&mc.shared.bp[which], uint32(address))
	mc.updateBreakpointEvent()
}

// Breakpoint returns the address of breakpoint slot 0 or 1 and whether the
// slot is in use. Any other slot number will cause a panic.
func (mc *CPU) Breakpoint(which int) (uint16, bool) {
	checkBreakpointSlot(which)
	v := atomic.LoadUint32(&mc.shared.bp[which])
	return uint16(v), v != NoBreakpoint
}

// ResetBreakpoint empties breakpoint slot 0 or 1. Any other slot number will
// cause a panic. Safe to call from any goroutine.
func (mc *CPU) ResetBreakpoint(which int) {
	checkBreakpointSlot(which)
	mc.resetBreakpoint(which)
}

func (mc *CPU) resetBreakpoint(which int) {
	atomic.StoreUint32(&mc.shared.bp[which], NoBreakpoint)
	mc.updateBreakpointEvent()
}

// updateBreakpointEvent makes sure the breakpoint event is raised if, and
// only if, at least one slot is in use
func (mc *CPU) updateBreakpointEvent() {
	for i := range mc.shared.bp {
		if atomic.LoadUint32(&mc.shared.bp[i]) != NoBreakpoint {
			mc.setEvent(EventBreakpoint)
			return
		}
	}
	mc.clearEvent(EventBreakpoint)
}

// breakpointMatch returns the slot that matches the PC
func (mc *CPU) breakpointMatch() (int, bool) {
	pc := uint32(mc.PC.Address())
	for i := range mc.shared.bp {
		if atomic.LoadUint32(&mc.shared.bp[i]) == pc {
			return i, true
		}
	}
	return -1, false
}
