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
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
)

// Client drives a CPU on a remote Server. Bus events from the server are
// answered by the client's memory.
type Client struct {
	s   *stream
	mem cpubus.Memory

	// called for every trace event. may be nil
	OnTrace func(pc uint16, opcode uint8, disasm string)
}

// Dial connects to the server at the URL. The URL should include Path.
func Dial(ctx context.Context, url string, mem cpubus.Memory) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, curated.Errorf(RemoteError, err)
	}
	return &Client{
		s:   &stream{conn: conn},
		mem: mem,
	}, nil
}

// Close says goodbye to the server and closes the connection.
func (cl *Client) Close() error {
	err := cl.s.out(newMessage(Bye))
	if cerr := cl.s.conn.Close(); err == nil {
		err = cerr
	}
	return err
}

// send the command and wait for the response. events that arrive before the
// response are handled
func (cl *Client) command(m *message) error {
	if err := cl.s.out(m); err != nil {
		return curated.Errorf(RemoteError, err)
	}

	for {
		op, err := cl.s.inB()
		if err != nil {
			return curated.Errorf(RemoteError, err)
		}

		switch Opcode(op) {
		case Ack:
			return nil
		case Fail:
			return curated.Errorf(PeerFail)
		case EventReadBus, EventWriteBus, EventTraceExec:
			if err := cl.event(Opcode(op)); err != nil {
				return curated.Errorf(RemoteError, err)
			}
		default:
			return curated.Errorf(ProtocolError, fmt.Sprintf("unexpected opcode (%#02x)", op))
		}
	}
}

func (cl *Client) event(op Opcode) error {
	switch op {
	case EventReadBus:
		addr, err := cl.s.inW()
		if err != nil {
			return err
		}
		v, err := cl.mem.Read(addr)
		if err != nil {
			return cl.s.out(newMessage(Fail))
		}
		return cl.s.out(newMessage(Ack).appendB(v))

	case EventWriteBus:
		addr, err := cl.s.inW()
		if err != nil {
			return err
		}
		v, err := cl.s.inB()
		if err != nil {
			return err
		}
		if err := cl.mem.Write(addr, v); err != nil {
			return cl.s.out(newMessage(Fail))
		}
		return cl.s.out(newMessage(Ack))

	case EventTraceExec:
		pc, err := cl.s.inW()
		if err != nil {
			return err
		}
		opcode, err := cl.s.inB()
		if err != nil {
			return err
		}
		disasm, err := cl.s.inS()
		if err != nil {
			return err
		}
		if cl.OnTrace != nil {
			cl.OnTrace(pc, opcode, disasm)
		}
		return cl.s.out(newMessage(Ack))
	}

	return nil
}

// Register reads the value of a register.
func (cl *Client) Register(r Register) (uint16, error) {
	if err := cl.command(newMessage(r.ReadOpcode())); err != nil {
		return 0, err
	}
	if r.Wide() {
		return cl.s.inW()
	}
	v, err := cl.s.inB()
	return uint16(v), err
}

// SetRegister writes a value to the register. The value is truncated for 8
// bit registers.
func (cl *Client) SetRegister(r Register, v uint16) error {
	m := newMessage(r.WriteOpcode())
	if r.Wide() {
		m.appendW(v)
	} else {
		m.appendB(uint8(v))
	}
	return cl.command(m)
}

func (cl *Client) stopped(op Opcode) (cpu.State, error) {
	if err := cl.command(newMessage(op)); err != nil {
		return cpu.StateNone, err
	}
	reason, err := cl.s.inB()
	if err != nil {
		return cpu.StateNone, curated.Errorf(RemoteError, err)
	}
	return StopState(reason), nil
}

// Step executes a single instruction.
func (cl *Client) Step() (cpu.State, error) {
	return cl.stopped(Step)
}

// Run executes instructions until a breakpoint or an invalid instruction is
// reached, or until the CPU is waiting for an interrupt.
func (cl *Client) Run() (cpu.State, error) {
	return cl.stopped(Run)
}

// Reset the remote CPU. The reset vector is read from the client's memory.
func (cl *Client) Reset() error {
	return cl.command(newMessage(Reset))
}

// IRQ raises the IRQ line.
func (cl *Client) IRQ() error {
	return cl.command(newMessage(IRQ))
}

// FIRQ raises the FIRQ line.
func (cl *Client) FIRQ() error {
	return cl.command(newMessage(FIRQ))
}

// NMI raises the NMI line.
func (cl *Client) NMI() error {
	return cl.command(newMessage(NMI))
}

// SetBreakpoint sets breakpoint slot 0 or 1.
func (cl *Client) SetBreakpoint(slot int, address uint16) error {
	return cl.command(newMessage(SetBreak).appendB(uint8(slot)).appendW(address))
}

// ClearBreakpoint clears breakpoint slot 0 or 1.
func (cl *Client) ClearBreakpoint(slot int) error {
	return cl.command(newMessage(ClearBreak).appendB(uint8(slot)))
}

// Trace turns trace events on or off.
func (cl *Client) Trace(on bool) error {
	if on {
		return cl.command(newMessage(TraceOn))
	}
	return cl.command(newMessage(TraceOff))
}
