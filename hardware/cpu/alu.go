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

package cpu

import "github.com/jetsetilly/mc6809/hardware/cpu/instructions"

// the arithmetic and logic functions take the operand(s) and return the
// result, setting the condition codes as they go. the caller is responsible
// for storing the result.

func (mc *CPU) nz8(v uint8) {
	mc.CC.Negative = v&0x80 == 0x80
	mc.CC.Zero = v == 0
}

func (mc *CPU) nz16(v uint16) {
	mc.CC.Negative = v&0x8000 == 0x8000
	mc.CC.Zero = v == 0
}

// add8 is used by ADD and ADC
func (mc *CPU) add8(r, op uint8, carry bool) uint8 {
	sum := uint16(r) + uint16(op)
	if carry {
		sum++
	}
	mc.CC.Half = (uint16(r)^uint16(op)^sum)&0x10 == 0x10
	mc.CC.Overflow = (uint16(r)^uint16(op)^sum^(sum>>1))&0x80 == 0x80
	mc.CC.Carry = sum&0x100 == 0x100
	mc.nz8(uint8(sum))
	return uint8(sum)
}

// sub8 is used by SUB, SBC and CMP. the half carry flag is not affected
func (mc *CPU) sub8(r, op uint8, carry bool) uint8 {
	diff := uint16(r) - uint16(op)
	if carry {
		diff--
	}
	mc.CC.Overflow = (uint16(r)^uint16(op)^diff^(diff>>1))&0x80 == 0x80
	mc.CC.Carry = diff&0x100 == 0x100
	mc.nz8(uint8(diff))
	return uint8(diff)
}

func (mc *CPU) add16(r, op uint16) uint16 {
	sum := uint32(r) + uint32(op)
	mc.CC.Overflow = (uint32(r)^uint32(op)^sum^(sum>>1))&0x8000 == 0x8000
	mc.CC.Carry = sum&0x10000 == 0x10000
	mc.nz16(uint16(sum))
	return uint16(sum)
}

func (mc *CPU) sub16(r, op uint16) uint16 {
	diff := uint32(r) - uint32(op)
	mc.CC.Overflow = (uint32(r)^uint32(op)^diff^(diff>>1))&0x8000 == 0x8000
	mc.CC.Carry = diff&0x10000 == 0x10000
	mc.nz16(uint16(diff))
	return uint16(diff)
}

func (mc *CPU) neg(r uint8) uint8 {
	mc.CC.Overflow = r == 0x80
	mc.CC.Carry = r != 0
	r = -r
	mc.nz8(r)
	return r
}

func (mc *CPU) com(r uint8) uint8 {
	r = ^r
	mc.CC.Carry = true
	mc.tst8(r)
	return r
}

// negcom is undocumented. COM if the carry flag is set, otherwise NEG
func (mc *CPU) negcom(r uint8) uint8 {
	if mc.CC.Carry {
		return mc.com(r)
	}
	return mc.neg(r)
}

func (mc *CPU) inc(r uint8) uint8 {
	r++
	mc.CC.Overflow = r == 0x80
	mc.nz8(r)
	return r
}

func (mc *CPU) dec(r uint8) uint8 {
	r--
	mc.CC.Overflow = r == 0x7f
	mc.nz8(r)
	return r
}

func (mc *CPU) lsl(r uint8) uint8 {
	mc.CC.Carry = r&0x80 == 0x80
	mc.CC.Overflow = (r^(r<<1))&0x80 == 0x80
	r <<= 1
	mc.nz8(r)
	return r
}

// asr keeps the sign bit. the overflow flag is not affected
func (mc *CPU) asr(r uint8) uint8 {
	mc.CC.Carry = r&0x01 == 0x01
	r = r>>1 | r&0x80
	mc.nz8(r)
	return r
}

func (mc *CPU) lsr(r uint8) uint8 {
	mc.CC.Carry = r&0x01 == 0x01
	r >>= 1
	mc.nz8(r)
	return r
}

func (mc *CPU) rol(r uint8) uint8 {
	c := mc.CC.Carry
	mc.CC.Carry = r&0x80 == 0x80
	r <<= 1
	if c {
		r |= 0x01
	}
	mc.nz8(r)
	mc.CC.Overflow = mc.CC.Carry != mc.CC.Negative
	return r
}

func (mc *CPU) ror(r uint8) uint8 {
	c := mc.CC.Carry
	mc.CC.Carry = r&0x01 == 0x01
	r >>= 1
	if c {
		r |= 0x80
	}
	mc.nz8(r)
	return r
}

// tst8 sets the flags for the value and clears overflow. also used by AND,
// OR, EOR, BIT and the 8 bit loads and stores
func (mc *CPU) tst8(r uint8) {
	mc.CC.Overflow = false
	mc.nz8(r)
}

// tst16 is used by the 16 bit loads and stores
func (mc *CPU) tst16(r uint16) {
	mc.CC.Overflow = false
	mc.nz16(r)
}

// clr returns zero. if keepCarry is true the carry flag is not affected
func (mc *CPU) clr(keepCarry bool) uint8 {
	if !keepCarry {
		mc.CC.Carry = false
	}
	mc.CC.Overflow = false
	mc.CC.Negative = false
	mc.CC.Zero = true
	return 0
}

// daa is the decimal adjustment of the A register. the carry flag is set
// but never cleared
func (mc *CPU) daa() {
	a := mc.A.Value()
	lsn := a & 0x0f
	msn := a & 0xf0

	var corr uint16
	if mc.CC.Half || lsn > 0x09 {
		corr |= 0x06
	}
	if mc.CC.Carry || msn > 0x90 || (msn > 0x80 && lsn > 0x09) {
		corr |= 0x60
	}

	t := uint16(a) + corr
	if t&0x100 == 0x100 {
		mc.CC.Carry = true
	}

	mc.A.Load(uint8(t))
	mc.nz8(mc.A.Value())
}

func (mc *CPU) mul() {
	d := uint16(mc.A.Value()) * uint16(mc.B.Value())
	mc.SetD(d)
	mc.CC.Carry = d&0x80 == 0x80
	mc.CC.Zero = d == 0
}

// sex extends the sign of B into A. the overflow flag is not affected
func (mc *CPU) sex() {
	b := mc.B.Value()
	if b&0x80 == 0x80 {
		mc.A.Load(0xff)
	} else {
		mc.A.Load(0x00)
	}
	mc.CC.Negative = b&0x80 == 0x80
	mc.CC.Zero = b == 0
}

// branchCondition tests the condition codes for a branch instruction
func (mc *CPU) branchCondition(cond instructions.Condition) bool {
	cc := mc.CC
	switch cond {
	case instructions.Always:
		return true
	case instructions.Never:
		return false
	case instructions.Higher:
		return !(cc.Carry || cc.Zero)
	case instructions.LowerOrSame:
		return cc.Carry || cc.Zero
	case instructions.CarryClear:
		return !cc.Carry
	case instructions.CarrySet:
		return cc.Carry
	case instructions.NotEqual:
		return !cc.Zero
	case instructions.Equal:
		return cc.Zero
	case instructions.OverflowClear:
		return !cc.Overflow
	case instructions.OverflowSet:
		return cc.Overflow
	case instructions.Plus:
		return !cc.Negative
	case instructions.Minus:
		return cc.Negative
	case instructions.GreaterOrEqual:
		return cc.Negative == cc.Overflow
	case instructions.Less:
		return cc.Negative != cc.Overflow
	case instructions.Greater:
		return !cc.Zero && cc.Negative == cc.Overflow
	case instructions.LessOrEqual:
		return cc.Zero || cc.Negative != cc.Overflow
	}
	return false
}
