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

// Description of an instruction as provided by a Disassembler.
type Description struct {
	// number of bytes in the instruction
	Length int

	// the instruction is a subroutine call. step-over will run until the
	// instruction following the call is reached
	Sub bool

	Mnemonic string
	Operand  string
}

// Disassembler is used by the CPU to decide how to step over an instruction
// and to describe the instruction at the PC in the Status. Attaching a
// Disassembler is optional.
type Disassembler interface {
	Describe(b []uint8, pc uint16) (Description, error)
}

// Tracer is called before each instruction while the log event is raised.
type Tracer interface {
	Trace(mc *CPU) error
}

// SetTracer attaches a tracer and raises the log event. A nil value detaches
// any previous tracer and clears the event.
func (mc *CPU) SetTracer(tracer Tracer) {
	mc.tracer = tracer
	if tracer == nil {
		mc.clearEvent(EventLog)
		return
	}
	mc.setEvent(EventLog)
}

// peeker is implemented by memory that can be read without triggering the
// side effects of a device
type peeker interface {
	Peek(address uint16) uint8
}

// peek reads memory without side effects if the memory allows it
func (mc *CPU) peek(address uint16) (uint8, error) {
	if p, ok := mc.mem.(peeker); ok {
		return p.Peek(address), nil
	}
	return mc.read8(address)
}

// peekInstruction returns n bytes starting at the PC
func (mc *CPU) peekInstruction(n int) ([]uint8, error) {
	b := make([]uint8, n)
	for i := range b {
		v, err := mc.peek(mc.PC.Address() + uint16(i))
		if err != nil {
			return nil, err
		}
		b[i] = v
	}
	return b, nil
}
