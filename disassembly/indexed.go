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
)

var indexNames = [4]string{"X", "Y", "U", "S"}

// signed returns the offset as a sign and a magnitude
func signed(v uint16, negative bool) (string, uint16) {
	if negative {
		return "-", -v
	}
	return "", v
}

// indexed returns the operand for an indexed instruction. b starts with the
// postbyte. next is the address of the following instruction and is used to
// show the address of PC relative operands. returns false if the postbyte is
// undefined
func indexed(b []uint8, next uint16) (string, bool) {
	post := b[0]
	reg := indexNames[(post>>5)&0x03]

	// 5 bit offset
	if post&0x80 == 0x00 {
		v := uint16(post & 0x1f)
		sign := ""
		if v&0x10 == 0x10 {
			sign = "-"
			v = 0x20 - v
		}
		return fmt.Sprintf("%s$%02X,%s", sign, v, reg), true
	}

	indirect := post&0x10 == 0x10
	bracket := func(s string) string {
		if indirect {
			return "[" + s + "]"
		}
		return s
	}

	switch post & 0x1f {
	case 0x00:
		return fmt.Sprintf(",%s+", reg), true
	case 0x01, 0x11:
		return bracket(fmt.Sprintf(",%s++", reg)), true
	case 0x02:
		return fmt.Sprintf(",-%s", reg), true
	case 0x03, 0x13:
		return bracket(fmt.Sprintf(",--%s", reg)), true
	case 0x04, 0x14:
		return bracket(fmt.Sprintf(",%s", reg)), true
	case 0x05, 0x15:
		return bracket(fmt.Sprintf("B,%s", reg)), true
	case 0x06, 0x16:
		return bracket(fmt.Sprintf("A,%s", reg)), true
	case 0x08, 0x18:
		sign, v := signed(uint16(int16(int8(b[1]))), b[1]&0x80 == 0x80)
		return bracket(fmt.Sprintf("%s$%02X,%s", sign, v, reg)), true
	case 0x09, 0x19:
		w := word(b[1:])
		sign, v := signed(w, w&0x8000 == 0x8000)
		return bracket(fmt.Sprintf("%s$%04X,%s", sign, v, reg)), true
	case 0x0b, 0x1b:
		return bracket(fmt.Sprintf("D,%s", reg)), true
	case 0x0c, 0x1c:
		return bracket(fmt.Sprintf("<$%04X,PCR", next+signExtend8(b[1]))), true
	case 0x0d, 0x1d:
		return bracket(fmt.Sprintf(">$%04X,PCR", next+word(b[1:]))), true
	case 0x1f:
		if post == 0x9f {
			return fmt.Sprintf("[$%04X]", word(b[1:])), true
		}
	}

	return "????", false
}
