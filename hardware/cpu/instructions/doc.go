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

// Package instructions defines the instruction set of the 6809. Each opcode
// on each of the three instruction pages has a Definition, stored in a
// declarative table and found with the Lookup() or Decode() functions.
//
// The definitions are shared by the CPU, the disassembler and the
// execution.Result validity check. The Length() function uses them to
// classify the length of an instruction from a window of bytes, without
// executing it.
//
// Indexed addressing is decided by the postbyte that follows the opcode. The
// IndexedExtraBytes() function and the IndexedCycles table give the number
// of offset bytes and the additional cost of each postbyte.
package instructions
