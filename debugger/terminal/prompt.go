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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and whether the CPU is running.
type Prompt struct {
	// the content. usually the address and disassembly of the next
	// instruction
	Content string

	// the CPU is running in the background
	Running bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Running {
		s.WriteString("running")
	} else {
		s.WriteString(strings.TrimSpace(p.Content))
	}
	s.WriteString(" ]")

	if p.Running {
		s.WriteString(" > ")
	} else {
		s.WriteString(" >> ")
	}

	return s.String()
}

// NewPrompt formats the content of a prompt for a stopped CPU.
func NewPrompt(pc uint16, mnemonic string, operand string) Prompt {
	return Prompt{
		Content: strings.TrimSpace(fmt.Sprintf("%04X %s %s", pc, mnemonic, operand)),
	}
}
