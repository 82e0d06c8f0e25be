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
	"strings"
	"sync/atomic"
)

// Event is a set of pending conditions. More than one event may be pending
// at once.
type Event uint32

// List of events.
const (
	EventNMI Event = 1 << iota
	EventFIRQ
	EventIRQ
	EventSingleStep
	EventSingleStepFinished
	EventBreakpoint
	EventIgnoreBP
	EventInvalid
	EventCwai
	EventSync
	EventGoBack
	EventFreqControl
	EventLog
)

// events that survive a reset
const resetPreserved = EventFreqControl | EventLog

// any of the interrupt lines
const interruptLines = EventNMI | EventFIRQ | EventIRQ

var eventNames = []struct {
	e    Event
	name string
}{
	{EventNMI, "NMI"},
	{EventFIRQ, "FIRQ"},
	{EventIRQ, "IRQ"},
	{EventSingleStep, "SingleStep"},
	{EventSingleStepFinished, "SingleStepFinished"},
	{EventBreakpoint, "Breakpoint"},
	{EventIgnoreBP, "IgnoreBP"},
	{EventInvalid, "Invalid"},
	{EventCwai, "CWAI"},
	{EventSync, "SYNC"},
	{EventGoBack, "GoBack"},
	{EventFreqControl, "FreqControl"},
	{EventLog, "Log"},
}

func (e Event) String() string {
	s := strings.Builder{}
	for _, n := range eventNames {
		if e&n.e == n.e {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(n.name)
		}
	}
	return s.String()
}

// Events returns the set of currently pending events.
func (mc *CPU) Events() Event {
	return Event(atomic.LoadUint32(&mc.shared.events))
}

func (mc *CPU) setEvent(e Event) {
	atomic.OrUint32(&mc.shared.events, uint32(e))
}

func (mc *CPU) clearEvent(e Event) {
	atomic.AndUint32(&mc.shared.events, ^uint32(e))
}

func (mc *CPU) hasEvent(e Event) bool {
	return atomic.LoadUint32(&mc.shared.events)&uint32(e) != 0
}
