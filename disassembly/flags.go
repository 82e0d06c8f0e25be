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

import "strings"

// Flags describe the effect an instruction has on the flow of a program.
type Flags int

// List of flags. More than one flag may be set.
const (
	// the instruction does not continue to the next instruction
	Jump Flags = 1 << iota

	// the instruction is a subroutine call or software interrupt
	Sub

	// the destination is computed at run time
	ComputedGoto

	// the opcode is not defined (or is undocumented and undocumented
	// instructions have not been enabled)
	Illegal

	// NOP
	Noop

	// the JumpAddr field of the Entry is valid
	JumpAddr

	// the LabelAddr field of the Entry is valid
	LabelAddr
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{Jump, "Jump"},
	{Sub, "Sub"},
	{ComputedGoto, "ComputedGoto"},
	{Illegal, "Illegal"},
	{Noop, "Noop"},
	{JumpAddr, "JumpAddr"},
	{LabelAddr, "LabelAddr"},
}

func (f Flags) String() string {
	s := strings.Builder{}
	for _, n := range flagNames {
		if f&n.f == n.f {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n.name)
		}
	}
	return s.String()
}

// Is returns true if all of the flags in m are set.
func (f Flags) Is(m Flags) bool {
	return f&m == m
}
