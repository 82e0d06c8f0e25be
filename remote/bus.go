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
	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
)

// bus implements cpubus.Memory by forwarding every access to the client.
type bus struct {
	s *stream

	// the first error that left the stream out of step with the client. once
	// set every access fails
	err error
}

// a Fail from the client aborts the instruction but the connection survives.
// anything else is fatal to the connection
func (b *bus) fatal(err error) error {
	if !curated.Is(err, PeerFail) {
		b.err = err
	}
	return curated.Errorf(RemoteError, err)
}

// Read implements the cpubus.Memory interface.
func (b *bus) Read(address uint16) (uint8, error) {
	if b.err != nil {
		return 0, b.err
	}
	if err := b.s.out(newMessage(EventReadBus).appendW(address)); err != nil {
		return 0, b.fatal(err)
	}
	if err := b.s.expectAck(); err != nil {
		return 0, b.fatal(err)
	}
	v, err := b.s.inB()
	if err != nil {
		return 0, b.fatal(err)
	}
	return v, nil
}

// Write implements the cpubus.Memory interface.
func (b *bus) Write(address uint16, data uint8) error {
	if b.err != nil {
		return b.err
	}
	if err := b.s.out(newMessage(EventWriteBus).appendW(address).appendB(data)); err != nil {
		return b.fatal(err)
	}
	if err := b.s.expectAck(); err != nil {
		return b.fatal(err)
	}
	return nil
}

// tracer implements cpu.Tracer by sending a trace event to the client. the
// instruction bytes are read through the bus so the client sees those reads
// as well as the reads made by the instruction itself
type tracer struct {
	bus *bus
	dsm *disassembly.Disassembler
}

// Trace implements the cpu.Tracer interface.
func (tr *tracer) Trace(mc *cpu.CPU) error {
	pc := mc.PC.Address()

	window := make([]uint8, execution.MaxBytes)
	for i := range window {
		v, err := tr.bus.Read(pc + uint16(i))
		if err != nil {
			return err
		}
		window[i] = v
	}

	e, err := tr.dsm.Disassemble(window, pc)
	if err != nil {
		return curated.Errorf(RemoteError, err)
	}

	m := newMessage(EventTraceExec).appendW(pc).appendB(window[0]).appendS(fmt.Sprintf("%s %s", e.Mnemonic, e.Operand))
	if err := tr.bus.s.out(m); err != nil {
		return tr.bus.fatal(err)
	}
	if err := tr.bus.s.expectAck(); err != nil {
		return tr.bus.fatal(err)
	}

	return nil
}
