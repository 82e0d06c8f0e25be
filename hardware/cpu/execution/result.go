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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
)

// MaxBytes is the longest possible 6809 instruction: page prefix, opcode,
// indexed postbyte and a two byte offset.
const MaxBytes = 5

// Result records the detail of a single instruction executed by the CPU.
type Result struct {
	// address of the first byte of the instruction, including any prefix
	Address uint16

	// nil if the instruction has not been decoded
	Defn *instructions.Definition

	// the bytes read by the CPU while decoding the instruction. only the
	// first ByteCount entries are meaningful
	Bytes     [MaxBytes]uint8
	ByteCount int

	// number of cycles the instruction took
	Cycles int

	// the effective address or the immediate value, depending on the
	// addressing mode. not used for inherent instructions
	InstructionData uint16

	// whether a branch instruction changed the program counter
	BranchTaken bool

	// whether this data has been finalised. an instruction that raised the
	// invalid event is never finalised
	Final bool
}

// Reset the result so it can be reused for the next instruction.
func (r *Result) Reset(address uint16) {
	*r = Result{Address: address}
}

// AddByte records a byte read from the instruction stream.
func (r *Result) AddByte(b uint8) {
	if r.ByteCount < MaxBytes {
		r.Bytes[r.ByteCount] = b
	}
	r.ByteCount++
}

// Postbyte returns the indexed, register list or register pair postbyte. Only
// meaningful if the instruction uses one of those addressing modes.
func (r Result) Postbyte() uint8 {
	if r.Defn == nil || r.Defn.Bytes > r.ByteCount {
		return 0
	}
	return r.Bytes[r.Defn.Bytes-1]
}

func (r Result) String() string {
	s := strings.Builder{}

	if r.Final {
		s.WriteString(fmt.Sprintf("%04x", r.Address))
	} else {
		s.WriteString("    ")
	}

	s.WriteString(" ")
	for i := 0; i < MaxBytes; i++ {
		if i < r.ByteCount {
			s.WriteString(fmt.Sprintf("%02x", r.Bytes[i]))
		} else {
			s.WriteString("  ")
		}
	}

	s.WriteString(" ")
	if r.Defn == nil {
		s.WriteString("?????")
	} else {
		s.WriteString(r.Defn.Mnemonic)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	return s.String()
}
