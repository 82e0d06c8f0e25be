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

// IndexedExtraBytes returns the number of offset bytes that follow an
// indexed postbyte.
func IndexedExtraBytes(post uint8) int {
	switch post {
	case 0x9f:
		return 2
	}

	if post&0x80 == 0x00 {
		return 0
	}

	switch post & 0x1f {
	case 0x08, 0x18, 0x0c, 0x1c:
		return 1
	case 0x09, 0x19, 0x0d, 0x1d:
		return 2
	}

	return 0
}

// IndexedDefined returns false for postbytes that the 6809 does not define.
// An instruction with an undefined postbyte is illegal.
func IndexedDefined(post uint8) bool {
	if post&0x80 == 0x00 {
		return true
	}
	switch post & 0x1f {
	case 0x07, 0x0a, 0x0e, 0x0f, 0x10, 0x12, 0x17, 0x1a, 0x1e:
		return false
	case 0x1f:
		return post == 0x9f
	}
	return true
}

// IndexedCycles is the number of cycles added to an indexed instruction by
// its postbyte.
var IndexedCycles [256]int

func init() {
	for i := range IndexedCycles {
		post := uint8(i)
		if post&0x80 == 0x00 {
			IndexedCycles[i] = 1
			continue
		}
		switch post & 0x1f {
		case 0x05, 0x06, 0x08, 0x0c:
			IndexedCycles[i] = 1
		case 0x00, 0x02:
			IndexedCycles[i] = 2
		case 0x01, 0x03, 0x14:
			IndexedCycles[i] = 3
		case 0x09, 0x0b, 0x18, 0x15, 0x16, 0x1c:
			IndexedCycles[i] = 4
		case 0x0d, 0x1f:
			IndexedCycles[i] = 5
		case 0x11, 0x13:
			IndexedCycles[i] = 6
		case 0x19, 0x1b:
			IndexedCycles[i] = 7
		case 0x1d:
			IndexedCycles[i] = 8
		}
	}
}
