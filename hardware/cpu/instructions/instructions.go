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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/mc6809/curated"
)

// Sentinel error patterns returned by this package.
const (
	ShortWindow = "instructions: window too short for opcode (%d bytes)"
)

// The two opcodes that select the second and third instruction pages.
const (
	Page2 = 0x10
	Page3 = 0x11
)

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	// opcodes on the second and third pages carry the page prefix in the
	// high byte
	OpCode uint16

	// mnemonic as it should be shown by the disassembler. the branch
	// mnemonics are complete and do not need the Condition adding
	Mnemonic string

	Operator  Operator
	Target    Target
	Condition Condition

	// number of bytes including the page prefix but not including any
	// indexed offset bytes
	Bytes int

	// base number of cycles
	Cycles int

	AddressingMode AddressingMode
	Effect         Category

	// undocumented opcodes are only executed when the CPU is told to
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%04x %s +%dbytes (%d cycles) [mode=%s effect=%s undoc=%t]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect, defn.Undocumented)
}

// IsBranch returns true if instruction is a branch instruction. BSR and LBSR
// are subroutine calls and are not branches in this sense.
func (defn Definition) IsBranch() bool {
	return defn.Operator == Branch
}

// Page returns 1, 2 or 3 depending on the page the opcode belongs to.
func (defn Definition) Page() int {
	switch defn.OpCode >> 8 {
	case Page2:
		return 2
	case Page3:
		return 3
	}
	return 1
}

// one lookup table per page. nil entries are illegal opcodes
var pages [3][256]*Definition

func init() {
	for i := range table {
		defn := &table[i]
		switch defn.OpCode >> 8 {
		case 0:
			pages[0][defn.OpCode&0xff] = defn
		case Page2:
			pages[1][defn.OpCode&0xff] = defn
		case Page3:
			pages[2][defn.OpCode&0xff] = defn
		default:
			panic(fmt.Sprintf("instructions: bad opcode in table (%04x)", defn.OpCode))
		}
	}
}

// Lookup returns the definition for an opcode. Opcodes on the second and
// third pages should include the prefix in the high byte. Returns nil if the
// opcode is illegal.
//
// Undocumented opcodes are returned like any other. It is the responsibility
// of the caller to check the Undocumented field.
func Lookup(opcode uint16) *Definition {
	switch opcode >> 8 {
	case 0:
		return pages[0][opcode&0xff]
	case Page2:
		return pages[1][opcode&0xff]
	case Page3:
		return pages[2][opcode&0xff]
	}
	return nil
}

// Definitions returns a copy of every definition in opcode order.
func Definitions() []Definition {
	d := make([]Definition, len(table))
	copy(d, table)
	return d
}

// Decode returns the definition for the instruction at the start of the
// byte window. A nil definition with a nil error means the opcode is illegal.
func Decode(b []uint8) (*Definition, error) {
	if len(b) == 0 {
		return nil, curated.Errorf(ShortWindow, len(b))
	}

	if b[0] == Page2 || b[0] == Page3 {
		if len(b) < 2 {
			return nil, curated.Errorf(ShortWindow, len(b))
		}
		return Lookup(uint16(b[0])<<8 | uint16(b[1])), nil
	}

	return Lookup(uint16(b[0])), nil
}

// Length returns the number of bytes used by the instruction at the start of
// the byte window, including the page prefix and any indexed offset bytes.
//
// Illegal opcodes have a length of one. An error is returned if the window
// does not have enough bytes to decide the length. The window may be longer
// than the instruction.
func Length(b []uint8) (int, error) {
	defn, err := Decode(b)
	if err != nil {
		return 0, err
	}
	if defn == nil {
		return 1, nil
	}

	n := defn.Bytes
	if defn.AddressingMode == Indexed {
		// the postbyte is the last byte of the base instruction
		if len(b) < n {
			return 0, curated.Errorf(ShortWindow, len(b))
		}
		n += IndexedExtraBytes(b[n-1])
	}

	return n, nil
}
