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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	// the address of the first byte of the instruction
	Address uint16

	// the bytes of the instruction. the length of the slice is the same as
	// the Length field
	Bytes  []uint8
	Length int

	// string representations of the instruction
	OpCode   string
	Mnemonic string
	Operand  string

	Flags Flags

	// the destination of a branch, or of a JMP/JSR to an extended address.
	// only valid if the JumpAddr flag is set
	JumpAddr uint16

	// the address named by an extended or 16 bit immediate operand. only
	// valid if the LabelAddr flag is set
	LabelAddr uint16

	// the definition is nil for illegal instructions
	Defn *instructions.Definition
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04X  %-14s %s", e.Address, e.OpCode, e.Mnemonic)
	}
	return fmt.Sprintf("%04X  %-14s %-6s %s", e.Address, e.OpCode, e.Mnemonic, e.Operand)
}

// Next returns the address of the instruction that follows in memory.
func (e Entry) Next() uint16 {
	return e.Address + uint16(e.Length)
}
