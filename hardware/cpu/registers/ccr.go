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

package registers

import (
	"strings"
)

// Bit values of the flags in the condition code register.
const (
	CCEntire   = 0x80
	CCFIRQMask = 0x40
	CCHalf     = 0x20
	CCIRQMask  = 0x10
	CCNegative = 0x08
	CCZero     = 0x04
	CCOverflow = 0x02
	CCCarry    = 0x01
)

// ConditionCodes is the special purpose register that stores the flags of the
// CPU.
type ConditionCodes struct {
	Entire   bool
	FIRQMask bool
	Half     bool
	IRQMask  bool
	Negative bool
	Zero     bool
	Overflow bool
	Carry    bool
}

// Label returns the canonical name for the condition code register.
func (cc ConditionCodes) Label() string {
	return "CC"
}

// String returns the flags as a string. Upper case for a set flag and lower
// case for a cleared flag.
func (cc ConditionCodes) String() string {
	return cc.format("efhinzvc")
}

// Dashes is an alternative to String() where cleared flags are shown as a
// hyphen. Easier to scan in long trace logs.
func (cc ConditionCodes) Dashes() string {
	return cc.format("--------")
}

func (cc ConditionCodes) format(clear string) string {
	s := strings.Builder{}
	set := "EFHINZVC"

	flags := []bool{cc.Entire, cc.FIRQMask, cc.Half, cc.IRQMask,
		cc.Negative, cc.Zero, cc.Overflow, cc.Carry}

	for i, f := range flags {
		if f {
			s.WriteByte(set[i])
		} else {
			s.WriteByte(clear[i])
		}
	}

	return s.String()
}

// Reset clears all flags.
func (cc *ConditionCodes) Reset() {
	cc.FromValue(0)
}

// Value converts the ConditionCodes struct into a value suitable for pushing
// onto the stack.
func (cc ConditionCodes) Value() uint8 {
	var v uint8

	if cc.Entire {
		v |= CCEntire
	}
	if cc.FIRQMask {
		v |= CCFIRQMask
	}
	if cc.Half {
		v |= CCHalf
	}
	if cc.IRQMask {
		v |= CCIRQMask
	}
	if cc.Negative {
		v |= CCNegative
	}
	if cc.Zero {
		v |= CCZero
	}
	if cc.Overflow {
		v |= CCOverflow
	}
	if cc.Carry {
		v |= CCCarry
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the ConditionCodes struct receiver.
func (cc *ConditionCodes) FromValue(v uint8) {
	cc.Entire = v&CCEntire == CCEntire
	cc.FIRQMask = v&CCFIRQMask == CCFIRQMask
	cc.Half = v&CCHalf == CCHalf
	cc.IRQMask = v&CCIRQMask == CCIRQMask
	cc.Negative = v&CCNegative == CCNegative
	cc.Zero = v&CCZero == CCZero
	cc.Overflow = v&CCOverflow == CCOverflow
	cc.Carry = v&CCCarry == CCCarry
}
