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
	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution finalised without a definition")
	}

	if r.ByteCount > MaxBytes {
		return curated.Errorf("cpu: too many bytes read during decode (%d)", r.ByteCount)
	}

	// byte count must agree with the length classifier
	l, err := instructions.Length(r.Bytes[:r.ByteCount])
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	if r.ByteCount != l {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, l)
	}

	expected := r.Defn.Cycles
	if r.Defn.AddressingMode == instructions.Indexed {
		expected += instructions.IndexedCycles[r.Postbyte()]
	}

	switch r.Defn.Operator {
	case instructions.Psh, instructions.Pul:
		// five plus one or two cycles per register
		if r.Cycles < expected || r.Cycles > expected+12 {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#04x [%s] (%d not in range %d to %d)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles,
				expected,
				expected+12)
		}
		return nil

	case instructions.Rti:
		// six cycles for a fast interrupt frame, fifteen for the entire state
		if r.Cycles != 6 && r.Cycles != 15 {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#04x [%s] (%d instead of 6 or 15)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles)
		}
		return nil

	case instructions.Branch:
		// long conditional branches take an extra cycle if the branch is taken
		if r.Defn.Page() == 2 && r.BranchTaken {
			expected++
		}
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#04x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			expected)
	}

	return nil
}
