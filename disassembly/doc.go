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

// Package disassembly turns 6809 machine code into mnemonics and operands.
//
// The Disassembler type decodes a single instruction from a window of bytes.
// The result is an Entry, which as well as the text of the instruction
// carries flags that describe how the instruction affects the flow of the
// program. For example:
//
//	dsm := disassembly.NewDisassembler(false)
//	e, err := dsm.Disassemble([]uint8{0x20, 0x80}, 0x8000)
//
// results in an Entry with the Mnemonic "BRA", the Operand "$7F82" and the
// Jump and JumpAddr flags set.
//
// Disassembler satisfies the cpu.Disassembler interface and can be attached
// to the CPU to support step-over and the CPU status.
//
// The Program() function disassembles a range of memory in a linear fashion.
// Each instruction is assumed to follow directly from the previous one.
package disassembly
