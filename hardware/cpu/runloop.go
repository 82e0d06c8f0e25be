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
	"math"
)

// State is returned by Run() and describes why the run loop stopped. Not
// every state is returned by the CPU. Some are used by the scheduler to
// describe the requests it has received.
type State int

// List of states.
const (
	StateNone State = iota
	StateRun
	StateStop
	StateStep
	StateExit
	StateReset
	StateNext
	StateResetRun
	StateInvalid
	StateSuspend
	StateSchedule
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateRun:
		return "Run"
	case StateStop:
		return "Stop"
	case StateStep:
		return "Step"
	case StateExit:
		return "Exit"
	case StateReset:
		return "Reset"
	case StateNext:
		return "Next"
	case StateResetRun:
		return "ResetRun"
	case StateInvalid:
		return "Invalid"
	case StateSuspend:
		return "Suspend"
	case StateSchedule:
		return "Schedule"
	}
	return "unknown state"
}

// Run executes instructions until a stop condition is met. The returned
// state says which condition it was:
//
//	StateInvalid: an illegal instruction has been found. only Reset() will
//	clear the condition
//
//	StateStop: a breakpoint has been reached or the single step has
//	completed
//
//	StateSuspend: the required number of cycles has been reached or the
//	CPU is waiting for an interrupt
//
//	StateSchedule: ExitRun() has been called
//
// Stop conditions are only checked between instructions. An error is
// returned for bus errors.
func (mc *CPU) Run(mode RunMode) (State, error) {
	if err := mc.prepareRun(mode); err != nil {
		return StateStop, err
	}

	first := true

	for {
		ev := mc.Events()

		if ev != 0 {
			if ev&EventInvalid == EventInvalid {
				return StateInvalid, nil
			}

			if ev&EventBreakpoint == EventBreakpoint && ev&EventIgnoreBP == 0 {
				if slot, ok := mc.breakpointMatch(); ok {
					if slot == stepOverSlot {
						mc.resetBreakpoint(stepOverSlot)
					}
					mc.clearEvent(EventSingleStep | EventSingleStepFinished)
					return StateStop, nil
				}
			}
			mc.clearEvent(EventIgnoreBP)

			if ev&EventSingleStepFinished == EventSingleStepFinished {
				mc.clearEvent(EventSingleStepFinished | EventSingleStep)
				return StateStop, nil
			}

			if ev&EventSingleStep == EventSingleStep {
				mc.clearEvent(EventSingleStep)
				if ev&(EventCwai|EventSync) != 0 {
					return StateStop, nil
				}
				mc.setEvent(EventSingleStepFinished)
			}

			if ev&EventCwai == EventCwai && !mc.unmaskedPending() {
				return StateSuspend, nil
			}

			if ev&EventSync == EventSync {
				if ev&interruptLines == 0 {
					return StateSuspend, nil
				}

				// masked interrupts resume at the next instruction.
				// unmasked interrupts are accepted below
				mc.clearEvent(EventSync)
			}

			if ev&EventFreqControl == EventFreqControl && mc.cycles >= mc.required {
				return StateSuspend, nil
			}

			if ev&EventLog == EventLog && mc.tracer != nil {
				if err := mc.tracer.Trace(mc); err != nil {
					return StateStop, err
				}
			}

			if ev&interruptLines != 0 {
				if _, err := mc.acceptInterrupt(); err != nil {
					return StateStop, err
				}
			}

			if ev&EventGoBack == EventGoBack && !first && ev&(EventSingleStep|EventSingleStepFinished) == 0 {
				mc.clearEvent(EventGoBack)
				return StateSchedule, nil
			}
		}

		if err := mc.ExecuteInstruction(); err != nil {
			return StateStop, err
		}

		first = false
	}
}

// ExitRun asks the run loop to return at the next instruction boundary. Safe
// to call from any goroutine.
func (mc *CPU) ExitRun() {
	mc.setEvent(EventGoBack)
}

// Cycles returns the total number of cycles executed since reset. If reset
// is true the current count is added to the total and restarted. The current
// count is the count compared against the required number of cycles.
func (mc *CPU) Cycles(reset bool) uint64 {
	t := mc.total + mc.cycles
	if reset {
		mc.total = t
		mc.cycles = 0
	}
	return t
}

// SetRequiredCycles sets the number of cycles after which the run loop will
// suspend. A value of math.MaxUint64 disables the limit. The current count is
// not changed.
func (mc *CPU) SetRequiredCycles(n uint64) {
	mc.required = n
	if n == math.MaxUint64 {
		mc.clearEvent(EventFreqControl)
		return
	}
	mc.setEvent(EventFreqControl)
}
