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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
	"github.com/jetsetilly/mc6809/test"
)

func TestLookup(t *testing.T) {
	defn := instructions.Lookup(0x86)
	test.DemandSuccess(t, defn != nil)
	test.ExpectEquality(t, defn.Mnemonic, "LDA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate8)
	test.ExpectEquality(t, defn.Page(), 1)

	defn = instructions.Lookup(0x10ce)
	test.DemandSuccess(t, defn != nil)
	test.ExpectEquality(t, defn.Mnemonic, "LDS")
	test.ExpectEquality(t, defn.Bytes, 4)
	test.ExpectEquality(t, defn.Page(), 2)

	defn = instructions.Lookup(0x113f)
	test.DemandSuccess(t, defn != nil)
	test.ExpectEquality(t, defn.Operator, instructions.Swi3)
	test.ExpectEquality(t, defn.Effect, instructions.Subroutine)

	// illegal on every page
	test.ExpectSuccess(t, instructions.Lookup(0x87) == nil)
	test.ExpectSuccess(t, instructions.Lookup(0x1020) == nil)
	test.ExpectSuccess(t, instructions.Lookup(0x1186) == nil)
	test.ExpectSuccess(t, instructions.Lookup(0x1210) == nil)
}

func TestUndocumented(t *testing.T) {
	expected := []uint16{0x01, 0x02, 0x05, 0x0b, 0x3e, 0x41, 0x42, 0x45, 0x4b, 0x4e,
		0x51, 0x52, 0x55, 0x5b, 0x5e, 0x61, 0x62, 0x65, 0x6b, 0x71, 0x72, 0x75, 0x7b}

	var undoc []uint16
	for _, defn := range instructions.Definitions() {
		if defn.Undocumented {
			undoc = append(undoc, defn.OpCode)
		}
	}

	test.DemandEquality(t, len(undoc), len(expected))
	for i := range expected {
		test.ExpectEquality(t, undoc[i], expected[i])
	}
}

func TestTableConsistency(t *testing.T) {
	for _, defn := range instructions.Definitions() {
		switch defn.AddressingMode {
		case instructions.Inherent:
			test.ExpectEquality(t, defn.Bytes, defn.Page()/2+1, defn.Mnemonic)
		case instructions.Immediate16, instructions.Extended:
			test.ExpectEquality(t, defn.Bytes, 3+defn.Page()/2, defn.Mnemonic)
		case instructions.Relative16:
			if defn.Page() == 1 {
				test.ExpectEquality(t, defn.Bytes, 3, defn.Mnemonic)
			} else {
				test.ExpectEquality(t, defn.Bytes, 4, defn.Mnemonic)
			}
		default:
			test.ExpectEquality(t, defn.Bytes, 2+defn.Page()/2, defn.Mnemonic)
		}

		test.ExpectSuccess(t, defn.Cycles > 0, defn.Mnemonic)

		if defn.IsBranch() {
			test.ExpectSuccess(t, defn.AddressingMode.IsRelative(), defn.Mnemonic)
		}
		if defn.IsBranch() && defn.OpCode&0xf0 == 0x20 {
			test.ExpectEquality(t, defn.Condition, instructions.Condition(defn.OpCode&0x0f), defn.Mnemonic)
		}
	}
}

func TestLength(t *testing.T) {
	var l int
	var err error

	// inherent, immediate, extended
	l, _ = instructions.Length([]uint8{0x12})
	test.ExpectEquality(t, l, 1)
	l, _ = instructions.Length([]uint8{0x86, 0x01})
	test.ExpectEquality(t, l, 2)
	l, _ = instructions.Length([]uint8{0xbd, 0x12, 0x34})
	test.ExpectEquality(t, l, 3)

	// long branch on page 1 and page 2
	l, _ = instructions.Length([]uint8{0x16, 0x00, 0x00})
	test.ExpectEquality(t, l, 3)
	l, _ = instructions.Length([]uint8{0x10, 0x27, 0x00, 0x00})
	test.ExpectEquality(t, l, 4)

	// page 3 immediate 16
	l, _ = instructions.Length([]uint8{0x11, 0x83, 0x00, 0x00})
	test.ExpectEquality(t, l, 4)

	// indexed with a 16 bit offset and with the extended indirect postbyte
	l, _ = instructions.Length([]uint8{0xa6, 0x89, 0x12, 0x34})
	test.ExpectEquality(t, l, 4)
	l, _ = instructions.Length([]uint8{0x10, 0xae, 0x9f, 0x12, 0x34})
	test.ExpectEquality(t, l, 5)

	// illegal opcodes have a length of one
	l, err = instructions.Length([]uint8{0x87})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, 1)

	// window too short
	_, err = instructions.Length([]uint8{})
	test.ExpectSuccess(t, curated.Is(err, instructions.ShortWindow))
	_, err = instructions.Length([]uint8{0x10})
	test.ExpectSuccess(t, curated.Is(err, instructions.ShortWindow))
	_, err = instructions.Length([]uint8{0xa6})
	test.ExpectSuccess(t, curated.Is(err, instructions.ShortWindow))
}

func TestIndexedPostbytes(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		post := uint8(i)
		l, err := instructions.Length([]uint8{0xa6, post, 0x00, 0x00})
		test.DemandSuccess(t, err)

		extra := 0
		if post&0x80 == 0x80 {
			switch post & 0x0f {
			case 0x08, 0x0c:
				extra = 1
			case 0x09, 0x0d:
				extra = 2
			case 0x0f:
				if post == 0x9f {
					extra = 2
				}
			}
		}
		test.DemandEquality(t, l, 2+extra)
	}

	test.ExpectSuccess(t, instructions.IndexedDefined(0x9f))
	test.ExpectFailure(t, instructions.IndexedDefined(0xbf))
	test.ExpectFailure(t, instructions.IndexedDefined(0x87))
	test.ExpectFailure(t, instructions.IndexedDefined(0x90))
	test.ExpectSuccess(t, instructions.IndexedDefined(0x1f))

	test.ExpectEquality(t, instructions.IndexedCycles[0x1f], 1)
	test.ExpectEquality(t, instructions.IndexedCycles[0x84], 0)
	test.ExpectEquality(t, instructions.IndexedCycles[0x9d], 8)
	test.ExpectEquality(t, instructions.IndexedCycles[0x9f], 5)
}
