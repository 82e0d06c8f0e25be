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

package remote

import (
	"fmt"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/disassembly"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/logger"
)

// session is a single client connection and the CPU it drives
type session struct {
	s      *stream
	bus    *bus
	mc     *cpu.CPU
	tracer *tracer
	tag    string
	closed bool
}

func newSession(s *stream, tag string, useUndocumented bool) *session {
	b := &bus{s: s}

	mc := cpu.NewCPU(b)
	mc.UseUndocumented = useUndocumented

	dsm := disassembly.NewDisassembler(useUndocumented)
	mc.AttachDisassembler(dsm)

	return &session{
		s:      s,
		bus:    b,
		mc:     mc,
		tracer: &tracer{bus: b, dsm: dsm},
		tag:    tag,
	}
}

// serve commands until the client says goodbye or the connection fails
func (sess *session) serve() error {
	for !sess.closed {
		if err := sess.serveNextCmd(); err != nil {
			return err
		}
	}
	return nil
}

func (sess *session) ack() error {
	return sess.s.out(newMessage(Ack))
}

func (sess *session) fail() error {
	return sess.s.out(newMessage(Fail))
}

// respond to a command that was carried out with the error. errors that have
// broken the connection are returned
func (sess *session) respond(err error, m *message) error {
	if sess.bus.err != nil {
		return sess.bus.err
	}
	if err != nil {
		logger.Logf(logger.Allow, sess.tag, "%v", err)
		return sess.fail()
	}
	if m == nil {
		m = newMessage(Ack)
	}
	return sess.s.out(m)
}

func (sess *session) serveNextCmd() error {
	op, err := sess.s.inB()
	if err != nil {
		return err
	}

	if reg, write, ok := decodeRegister(Opcode(op)); ok {
		if write {
			var v uint16
			if reg.Wide() {
				v, err = sess.s.inW()
			} else {
				var b uint8
				b, err = sess.s.inB()
				v = uint16(b)
			}
			if err != nil {
				return err
			}
			setRegister(sess.mc, reg, v)
			return sess.ack()
		}

		m := newMessage(Ack)
		if reg.Wide() {
			m.appendW(getRegister(sess.mc, reg))
		} else {
			m.appendB(uint8(getRegister(sess.mc, reg)))
		}
		return sess.s.out(m)
	}

	switch Opcode(op) {
	case Bye:
		sess.closed = true
		return nil

	case TraceOn:
		sess.mc.SetTracer(sess.tracer)
		return sess.ack()

	case TraceOff:
		sess.mc.SetTracer(nil)
		return sess.ack()

	case Step:
		state, err := sess.mc.Run(cpu.StepInto)
		return sess.respond(err, newMessage(Ack).appendB(stopReason(state)))

	case Run:
		state, err := sess.run()
		return sess.respond(err, newMessage(Ack).appendB(stopReason(state)))

	case IRQ:
		sess.mc.SetIRQ()
		return sess.ack()

	case FIRQ:
		sess.mc.SetFIRQ()
		return sess.ack()

	case NMI:
		sess.mc.SetNMI()
		return sess.ack()

	case Reset:
		return sess.respond(sess.mc.Reset(), nil)

	case SetBreak:
		slot, err := sess.s.inB()
		if err != nil {
			return err
		}
		addr, err := sess.s.inW()
		if err != nil {
			return err
		}
		if slot > 1 {
			return sess.fail()
		}
		sess.mc.SetBreakpoint(int(slot), addr)
		return sess.ack()

	case ClearBreak:
		slot, err := sess.s.inB()
		if err != nil {
			return err
		}
		if slot > 1 {
			return sess.fail()
		}
		sess.mc.ResetBreakpoint(int(slot))
		return sess.ack()
	}

	logger.Logf(logger.Allow, sess.tag, "unrecognised opcode %#02x", op)
	return sess.fail()
}

// run until a breakpoint, an invalid instruction or until the CPU is waiting
// for an interrupt that only the client can raise
func (sess *session) run() (cpu.State, error) {
	mode := cpu.RunStart
	for {
		state, err := sess.mc.Run(mode)
		if err != nil {
			return state, err
		}
		mode = cpu.RunResume

		switch state {
		case cpu.StateStop, cpu.StateInvalid, cpu.StateSuspend:
			return state, nil
		case cpu.StateSchedule:
		default:
			return state, curated.Errorf(RemoteError, fmt.Sprintf("unexpected state: %s", state))
		}
	}
}
