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
	"io"
	"strings"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
)

// Program disassembles memory from the first address up to and including
// the last address. Disassembly is linear. Each instruction is assumed to
// follow on from the previous instruction and data is disassembled as though
// it were code.
func (dsm *Disassembler) Program(mem cpubus.Memory, from uint16, to uint16) ([]Entry, error) {
	if to < from {
		return nil, curated.Errorf(DisasmError, fmt.Sprintf("address range is backwards (%04x to %04x)", from, to))
	}

	var entries []Entry
	err := dsm.walk(mem, from, func(e Entry) bool {
		entries = append(entries, e)
		return uint32(e.Address)+uint32(e.Length) <= uint32(to)
	})

	return entries, err
}

// Count disassembles n instructions starting at the address. Disassembly is
// linear in the same way as Program().
func (dsm *Disassembler) Count(mem cpubus.Memory, from uint16, n int) ([]Entry, error) {
	var entries []Entry
	if n <= 0 {
		return entries, nil
	}

	err := dsm.walk(mem, from, func(e Entry) bool {
		entries = append(entries, e)
		return len(entries) < n
	})

	return entries, err
}

// walk memory from the address until the continue function returns false.
// addresses wrap at the top of memory
func (dsm *Disassembler) walk(mem cpubus.Memory, from uint16, cont func(Entry) bool) error {
	window := make([]uint8, execution.MaxBytes)
	addr := from

	for {
		for i := range window {
			v, err := mem.Read(addr + uint16(i))
			if err != nil {
				return curated.Errorf(DisasmError, err)
			}
			window[i] = v
		}

		e, err := dsm.Disassemble(window, addr)
		if err != nil {
			return err
		}

		if !cont(e) {
			return nil
		}

		addr += uint16(e.Length)
	}
}

// WriteAttr controls what is printed by Write().
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool
}

// Write a list of entries to io.Writer.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	for _, e := range entries {
		if err := WriteLine(output, e, attr); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, e Entry, attr WriteAttr) error {
	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%04X  %-14s %-6s %s", e.Address, e.OpCode, e.Mnemonic, e.Operand)
	} else {
		s = fmt.Sprintf("%04X  %-6s %s", e.Address, e.Mnemonic, e.Operand)
	}

	if attr.FlowInfo && e.Flags != 0 {
		s = fmt.Sprintf("%-40s ; %s", s, e.Flags)
	}

	_, err := fmt.Fprintln(output, strings.TrimRight(s, " "))
	return err
}
