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

	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
)

// number of cycles used to accept an interrupt
const (
	entireStateCycles = 19
	fastStateCycles   = 10
	cwaiResumeCycles  = 5
)

// InterruptStatus counts the number of times each type of interrupt has been
// accepted.
type InterruptStatus struct {
	IRQ   uint64
	FIRQ  uint64
	NMI   uint64
	Reset uint64
}

func (s InterruptStatus) String() string {
	return fmt.Sprintf("IRQ=%d FIRQ=%d NMI=%d RESET=%d", s.IRQ, s.FIRQ, s.NMI, s.Reset)
}

// InterruptStatus returns the interrupt counts.
func (mc *CPU) InterruptStatus() InterruptStatus {
	return mc.interrupts
}

// SetNMI raises the NMI line. Safe to call from any goroutine.
func (mc *CPU) SetNMI() {
	mc.setEvent(EventNMI)
}

// SetFIRQ raises the FIRQ line. Safe to call from any goroutine.
func (mc *CPU) SetFIRQ() {
	mc.setEvent(EventFIRQ)
}

// SetIRQ raises the IRQ line. Safe to call from any goroutine.
func (mc *CPU) SetIRQ() {
	mc.setEvent(EventIRQ)
}

// unmaskedPending returns true if there is an interrupt pending that would
// be accepted
func (mc *CPU) unmaskedPending() bool {
	ev := mc.Events()
	if ev&EventNMI == EventNMI && mc.nmiArmed {
		return true
	}
	if ev&EventFIRQ == EventFIRQ && !mc.CC.FIRQMask {
		return true
	}
	if ev&EventIRQ == EventIRQ && !mc.CC.IRQMask {
		return true
	}
	return false
}

// acceptInterrupt accepts the highest priority unmasked interrupt. masked
// interrupts remain pending. returns true if an interrupt was accepted
func (mc *CPU) acceptInterrupt() (bool, error) {
	ev := mc.Events()

	switch {
	case ev&EventNMI == EventNMI && mc.nmiArmed:
		mc.clearEvent(EventNMI)
		mc.interrupts.NMI++
		return true, mc.interrupt(cpubus.NMI)

	case ev&EventFIRQ == EventFIRQ && !mc.CC.FIRQMask:
		mc.clearEvent(EventFIRQ)
		mc.interrupts.FIRQ++
		return true, mc.interrupt(cpubus.FIRQ)

	case ev&EventIRQ == EventIRQ && !mc.CC.IRQMask:
		mc.clearEvent(EventIRQ)
		mc.interrupts.IRQ++
		return true, mc.interrupt(cpubus.IRQ)
	}

	return false, nil
}

// interrupt stacks the registers as required by the interrupt and loads the
// PC from the vector. if the CPU is waiting in CWAI then the entire state has
// already been stacked
func (mc *CPU) interrupt(vector uint16) error {
	var cycles int

	if mc.hasEvent(EventCwai) {
		mc.clearEvent(EventCwai)
		cycles = cwaiResumeCycles
	} else if vector == cpubus.FIRQ {
		mc.CC.Entire = false
		if _, err := mc.psh(stackPC|stackCC, &mc.S); err != nil {
			return err
		}
		cycles = fastStateCycles
	} else {
		mc.CC.Entire = true
		if _, err := mc.psh(stackEntire, &mc.S); err != nil {
			return err
		}
		cycles = entireStateCycles
	}

	mc.CC.IRQMask = true
	if vector != cpubus.IRQ {
		mc.CC.FIRQMask = true
	}

	pc, err := mc.read16(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(pc)

	mc.cycles += uint64(cycles)

	return nil
}
