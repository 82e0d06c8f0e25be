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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory package implements this interface for a flat 64K address
// space with mapped devices. The remote package implements it by forwarding
// every access to a connected client.
//
// A non-nil error from either function aborts the current instruction.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// ReadWord reads a big-endian 16bit value. The high byte is at the lower
// address. The address wraps at the top of memory.
func ReadWord(mem Memory, address uint16) (uint16, error) {
	hi, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteWord writes a big-endian 16bit value.
func WriteWord(mem Memory, address uint16, data uint16) error {
	if err := mem.Write(address, uint8(data>>8)); err != nil {
		return err
	}
	return mem.Write(address+1, uint8(data))
}
