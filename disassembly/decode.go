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
	"strings"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
)

// Sentinel error patterns.
const (
	DisasmError = "disassembly: %v"
)

// the text used for illegal instructions
const illegalText = "?????"

// Disassembler decodes instructions. The zero value is a disassembler for
// documented instructions only, without labels.
type Disassembler struct {
	// when false the undocumented opcodes are disassembled as illegal
	UseUndocumented bool

	// optional names for addresses
	Labels Labels
}

// NewDisassembler is the preferred method of initialisation for the
// Disassembler type.
func NewDisassembler(useUndocumented bool) *Disassembler {
	return &Disassembler{
		UseUndocumented: useUndocumented,
	}
}

// Disassemble the instruction at the start of the byte window using a
// disassembler for documented instructions only.
func Disassemble(b []uint8, pc uint16) (Entry, error) {
	var dsm Disassembler
	return dsm.Disassemble(b, pc)
}

// Describe implements the cpu.Disassembler interface.
func (dsm *Disassembler) Describe(b []uint8, pc uint16) (cpu.Description, error) {
	e, err := dsm.Disassemble(b, pc)
	if err != nil {
		return cpu.Description{}, err
	}
	return cpu.Description{
		Length:   e.Length,
		Sub:      e.Flags.Is(Sub),
		Mnemonic: e.Mnemonic,
		Operand:  e.Operand,
	}, nil
}

// Disassemble the instruction at the start of the byte window. The pc
// argument is the address of the first byte in the window and is used to
// calculate the destination of relative branches.
//
// An error is returned if the window is too short for the instruction.
func (dsm *Disassembler) Disassemble(b []uint8, pc uint16) (Entry, error) {
	e := Entry{
		Address: pc,
	}

	defn, err := instructions.Decode(b)
	if err != nil {
		return e, curated.Errorf(DisasmError, err)
	}

	if defn == nil || (defn.Undocumented && !dsm.UseUndocumented) {
		e.Length = 1
		e.Bytes = []uint8{b[0]}
		e.OpCode = fmt.Sprintf("%02X", b[0])
		e.Mnemonic = illegalText
		e.Flags = Illegal
		return e, nil
	}

	e.Defn = defn

	e.Length, err = instructions.Length(b)
	if err != nil {
		return e, curated.Errorf(DisasmError, err)
	}
	if len(b) < e.Length {
		return e, curated.Errorf(DisasmError, fmt.Sprintf("window too short for %s (%d bytes)", defn.Mnemonic, len(b)))
	}

	e.Bytes = make([]uint8, e.Length)
	copy(e.Bytes, b)
	e.OpCode = hexBytes(e.Bytes)
	e.Mnemonic = defn.Mnemonic
	e.Flags = flowFlags(defn)

	// operand bytes follow the opcode. for indexed instructions the operand
	// starts with the postbyte
	operand := e.Bytes[opcodeBytes(defn):]

	switch defn.AddressingMode {
	case instructions.Inherent:

	case instructions.Immediate8:
		e.Operand = fmt.Sprintf("#$%02X", operand[0])

	case instructions.Immediate16:
		v := word(operand)
		e.Operand = "#" + dsm.address(v)
		e.Flags |= LabelAddr
		e.LabelAddr = v

	case instructions.Direct:
		e.Operand = fmt.Sprintf("$%02X", operand[0])

	case instructions.Extended:
		v := word(operand)
		e.Operand = dsm.address(v)
		if defn.Operator == instructions.Jmp || defn.Operator == instructions.Jsr {
			e.Flags |= JumpAddr
			e.JumpAddr = v
		} else {
			e.Flags |= LabelAddr
			e.LabelAddr = v
		}

	case instructions.Relative8:
		e.JumpAddr = e.Next() + signExtend8(operand[0])
		e.Operand = dsm.address(e.JumpAddr)
		e.Flags |= JumpAddr

	case instructions.Relative16:
		e.JumpAddr = e.Next() + word(operand)
		e.Operand = dsm.address(e.JumpAddr)
		e.Flags |= JumpAddr

	case instructions.Indexed:
		var ok bool
		e.Operand, ok = indexed(operand, e.Next())
		if !ok {
			e.Flags |= Illegal
		}

	case instructions.RegisterPair:
		e.Operand = fmt.Sprintf("%s,%s", transferRegister(operand[0]>>4), transferRegister(operand[0]&0x0f))

	case instructions.RegisterList:
		e.Operand = registerList(operand[0], defn.Target)
	}

	return e, nil
}

// the number of bytes in the opcode, including the page prefix
func opcodeBytes(defn *instructions.Definition) int {
	if defn.Page() == 1 {
		return 1
	}
	return 2
}

func flowFlags(defn *instructions.Definition) Flags {
	var f Flags

	switch defn.Operator {
	case instructions.Jmp:
		f |= Jump
	case instructions.Branch:
		if defn.Condition == instructions.Always {
			f |= Jump
		}
	case instructions.Rts, instructions.Rti, instructions.Cwai, instructions.Sync:
		f |= Jump
	case instructions.Nop:
		f |= Noop
	}

	if defn.Effect == instructions.Subroutine {
		f |= Sub
	}

	if defn.AddressingMode == instructions.Indexed {
		if defn.Operator == instructions.Jmp || defn.Operator == instructions.Jsr {
			f |= ComputedGoto
		}
	}

	return f
}

// address returns the label for the address if there is one
func (dsm *Disassembler) address(v uint16) string {
	if l, ok := dsm.Labels[v]; ok {
		return l
	}
	return fmt.Sprintf("$%04X", v)
}

func hexBytes(b []uint8) string {
	s := strings.Builder{}
	for i, v := range b {
		if i > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", v))
	}
	return s.String()
}

func word(b []uint8) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func signExtend8(v uint8) uint16 {
	return uint16(int16(int8(v)))
}

var transferNames = [16]string{
	"D", "X", "Y", "U", "S", "PC", "??", "??",
	"A", "B", "CC", "DP", "??", "??", "??", "??",
}

func transferRegister(code uint8) string {
	return transferNames[code&0x0f]
}

// registers in the order of the postbyte bits, least significant first
var stackNames = [8]string{"CC", "A", "B", "DP", "X", "Y", "", "PC"}

// registerList returns the registers named by a push or pull postbyte. bit
// six names the stack pointer that is not being used
func registerList(post uint8, stack instructions.Target) string {
	if post == 0 {
		return "??"
	}

	other := "U"
	if stack == instructions.U {
		other = "S"
	}

	var names []string
	for i := range stackNames {
		if post&(1<<i) == 0 {
			continue
		}
		if i == 6 {
			names = append(names, other)
		} else {
			names = append(names, stackNames[i])
		}
	}

	return strings.Join(names, ",")
}
