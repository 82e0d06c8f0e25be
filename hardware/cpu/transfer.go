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

import "fmt"

// register codes used in the postbyte of EXG and TFR
const (
	regD  = 0x0
	regX  = 0x1
	regY  = 0x2
	regU  = 0x3
	regS  = 0x4
	regPC = 0x5
	regA  = 0x8
	regB  = 0x9
	regCC = 0xa
	regDP = 0xb
)

// transferRegister returns the value of the register with the code. is8 is
// true if the register is an 8 bit register. ok is false for undefined codes
func (mc *CPU) transferRegister(code uint8) (v uint16, is8 bool, ok bool) {
	switch code {
	case regD:
		return mc.D(), false, true
	case regX:
		return mc.X.Value(), false, true
	case regY:
		return mc.Y.Value(), false, true
	case regU:
		return mc.U.Value(), false, true
	case regS:
		return mc.S.Value(), false, true
	case regPC:
		return mc.PC.Value(), false, true
	case regA:
		return uint16(mc.A.Value()), true, true
	case regB:
		return uint16(mc.B.Value()), true, true
	case regCC:
		return uint16(mc.CC.Value()), true, true
	case regDP:
		return uint16(mc.DP.Value()), true, true
	}
	return 0, false, false
}

// setTransferRegister loads the register with the code. 8 bit registers take
// the low byte. writes to undefined codes are ignored
func (mc *CPU) setTransferRegister(code uint8, v uint16) {
	switch code {
	case regD:
		mc.SetD(v)
	case regX:
		mc.X.Load(v)
	case regY:
		mc.Y.Load(v)
	case regU:
		mc.U.Load(v)
	case regS:
		mc.S.Load(v)
	case regPC:
		mc.PC.Load(v)
	case regA:
		mc.A.Load(uint8(v))
	case regB:
		mc.B.Load(uint8(v))
	case regCC:
		mc.CC.FromValue(uint8(v))
	case regDP:
		mc.DP.Load(uint8(v))
	}
}

// illegal register combination. the PC is left on the opcode. always returns
// false
func (mc *CPU) invalidTransfer(post uint8) bool {
	mc.PC.Subtract(2)
	mc.invalid(fmt.Sprintf("transfer register (%#02x)", post))
	return false
}

// exg returns false if the register combination is illegal
func (mc *CPU) exg(post uint8) bool {
	r1 := post >> 4
	r2 := post & 0x0f

	v1, byte1, ok := mc.transferRegister(r1)
	if !ok {
		if !mc.UseUndocumented {
			return mc.invalidTransfer(post)
		}
		v1 = 0xffff
	} else if byte1 {
		v1 |= v1 << 8
	}

	v2, byte2, ok := mc.transferRegister(r2)
	if !ok {
		if !mc.UseUndocumented {
			return mc.invalidTransfer(post)
		}
		v2 = 0xffff
	} else if byte2 {
		v2 |= 0xff00
	}

	if !mc.UseUndocumented && byte1 != byte2 {
		return mc.invalidTransfer(post)
	}

	mc.setTransferRegister(r1, v2)
	mc.setTransferRegister(r2, v1)
	return true
}

// tfr returns false if the register combination is illegal
func (mc *CPU) tfr(post uint8) bool {
	src := post >> 4
	dest := post & 0x0f

	v, is8, ok := mc.transferRegister(src)
	if !ok {
		if !mc.UseUndocumented {
			return mc.invalidTransfer(post)
		}
		v = 0xffff
	} else if is8 {
		switch src {
		case regA, regB:
			v |= 0xff00
		default:
			v |= v << 8
		}
	}

	// an undefined destination is always illegal
	_, destIs8, ok := mc.transferRegister(dest)
	if !ok {
		return mc.invalidTransfer(post)
	}

	if !mc.UseUndocumented && is8 != destIs8 {
		return mc.invalidTransfer(post)
	}

	mc.setTransferRegister(dest, v)
	return true
}
