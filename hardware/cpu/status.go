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
	"strings"

	"github.com/jetsetilly/mc6809/hardware/cpu/registers"
)

// number of bytes in the stack window of the Status
const statusMemorySize = 48

// Status is a snapshot of the CPU suitable for display.
type Status struct {
	PC uint16
	U  uint16
	S  uint16
	X  uint16
	Y  uint16
	A  uint8
	B  uint8
	DP uint8
	CC registers.ConditionCodes

	Cycles uint64

	// the bytes at the PC
	Instruction [4]uint8

	// only filled in if a disassembler is attached
	Mnemonic string
	Operand  string

	// memory around the S register. starts at MemoryAddress
	Memory        [statusMemorySize]uint8
	MemoryAddress uint16

	Interrupts InterruptStatus
	Events     Event
}

// Status returns the current state of the CPU. Memory is read without side
// effects if the memory bus allows it.
func (mc *CPU) Status() (Status, error) {
	st := Status{
		PC:         mc.PC.Value(),
		U:          mc.U.Value(),
		S:          mc.S.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		A:          mc.A.Value(),
		B:          mc.B.Value(),
		DP:         mc.DP.Value(),
		CC:         mc.CC,
		Cycles:     mc.total + mc.cycles,
		Interrupts: mc.interrupts,
		Events:     mc.Events(),
	}

	b, err := mc.peekInstruction(len(st.Instruction))
	if err != nil {
		return st, err
	}
	copy(st.Instruction[:], b)

	if mc.disasm != nil {
		// a longer window for the disassembler
		w, err := mc.peekInstruction(6)
		if err != nil {
			return st, err
		}
		d, err := mc.disasm.Describe(w, st.PC)
		if err == nil {
			st.Mnemonic = d.Mnemonic
			st.Operand = d.Operand
		}
	}

	// align to 8 bytes and start two rows before the stack pointer
	st.MemoryAddress = (st.S>>3)<<3 - 16
	for i := range st.Memory {
		v, err := mc.peek(st.MemoryAddress + uint16(i))
		if err != nil {
			return st, err
		}
		st.Memory[i] = v
	}

	return st, nil
}

// Registers returns the register values as a single line.
func (st Status) Registers() string {
	return fmt.Sprintf("PC=%04X A=%02X B=%02X X=%04X Y=%04X U=%04X S=%04X DP=%02X CC=%s",
		st.PC, st.A, st.B, st.X, st.Y, st.U, st.S, st.DP, st.CC)
}

func (st Status) String() string {
	s := strings.Builder{}
	s.WriteString(st.Registers())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%02X %02X %02X %02X", st.Instruction[0], st.Instruction[1], st.Instruction[2], st.Instruction[3]))
	if st.Mnemonic != "" {
		s.WriteString(fmt.Sprintf("  %s %s", st.Mnemonic, st.Operand))
	}
	s.WriteString(fmt.Sprintf("\ncycles=%d %s", st.Cycles, st.Interrupts))
	return s.String()
}
