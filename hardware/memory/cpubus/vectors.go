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

// Interrupt and reset vectors. Each vector is a big-endian address stored at
// the given location.
const (
	SWI3  = uint16(0xfff2)
	SWI2  = uint16(0xfff4)
	FIRQ  = uint16(0xfff6)
	IRQ   = uint16(0xfff8)
	SWI   = uint16(0xfffa)
	NMI   = uint16(0xfffc)
	Reset = uint16(0xfffe)
)

// VectorName returns the conventional name of the vector at address. Returns
// the empty string if address is not a vector.
func VectorName(address uint16) string {
	switch address {
	case SWI3:
		return "SWI3"
	case SWI2:
		return "SWI2"
	case FIRQ:
		return "FIRQ"
	case IRQ:
		return "IRQ"
	case SWI:
		return "SWI"
	case NMI:
		return "NMI"
	case Reset:
		return "RESET"
	}
	return ""
}
