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
	"sync/atomic"

	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
)

// RunMode is requested by the caller of Run().
type RunMode int

// List of valid run modes.
const (
	// execute one instruction
	StepInto RunMode = iota

	// execute one instruction, or if the instruction is a subroutine call,
	// run until the subroutine returns
	StepOver

	// run from the start. in this emulation the same as RunContinue except
	// that the GoBack request is cleared
	RunStart

	// continue a run that was interrupted by a GoBack request
	RunContinue

	// re-enter a run that returned StateSchedule or StateSuspend. an
	// unfinished step-over and any pending breakpoint suppression are kept
	RunResume
)

func (m RunMode) String() string {
	switch m {
	case StepInto:
		return "StepInto"
	case StepOver:
		return "StepOver"
	case RunStart:
		return "RunStart"
	case RunContinue:
		return "RunContinue"
	case RunResume:
		return "RunResume"
	}
	return "unknown run mode"
}

// prepareRun translates the run mode into events
func (mc *CPU) prepareRun(mode RunMode) error {
	if mode != RunContinue && mode != RunResume {
		mc.clearEvent(EventGoBack)
	}

	switch mode {
	case StepOver:
		length, sub, err := mc.callLength()
		if err != nil {
			return err
		}
		if sub {
			atomic.StoreUint32(&mc.shared.bp[stepOverSlot], uint32(mc.PC.Address()+uint16(length)))
			mc.setEvent(EventBreakpoint | EventIgnoreBP)
			return nil
		}
		mc.resetBreakpoint(stepOverSlot)
		mc.setEvent(EventSingleStep | EventIgnoreBP)

	case StepInto:
		mc.setEvent(EventSingleStep | EventIgnoreBP)

	case RunStart, RunContinue:
		mc.resetBreakpoint(stepOverSlot)
		if mc.hasEvent(EventBreakpoint) {
			mc.setEvent(EventIgnoreBP)
		}
	}

	return nil
}

// callLength returns the length of the instruction at the PC and whether the
// instruction is a subroutine call
func (mc *CPU) callLength() (int, bool, error) {
	b, err := mc.peekInstruction(execution.MaxBytes)
	if err != nil {
		return 0, false, err
	}

	if mc.disasm != nil {
		d, err := mc.disasm.Describe(b, mc.PC.Address())
		if err != nil {
			return 0, false, err
		}
		return d.Length, d.Sub, nil
	}

	defn, err := instructions.Decode(b)
	if err != nil {
		return 0, false, err
	}
	l, err := instructions.Length(b)
	if err != nil {
		return 0, false, err
	}

	sub := defn != nil && defn.Effect == instructions.Subroutine
	return l, sub, nil
}
