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

import (
	"fmt"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
	"github.com/jetsetilly/mc6809/hardware/cpu/registers"
)

func signExtend(v uint8) uint16 {
	if v&0x80 == 0x80 {
		return uint16(v) | 0xff00
	}
	return uint16(v)
}

// effectiveAddress returns the address of the operand for the direct,
// extended and indexed addressing modes. ok is false if the instruction
// turned out to be illegal, in which case the invalid event has been raised.
//
// side-effects:
//   - LastResult.InstructionData is set to the effective address
func (mc *CPU) effectiveAddress() (ea uint16, ok bool, err error) {
	switch mc.LastResult.Defn.AddressingMode {
	case instructions.Direct:
		var n uint8
		n, err = mc.fetch8()
		ea = mc.DP.Address()<<8 | uint16(n)
		ok = true
	case instructions.Extended:
		ea, err = mc.fetch16()
		ok = true
	case instructions.Indexed:
		ea, ok, err = mc.indexed()
	default:
		return 0, false, curated.Errorf("cpu: no effective address for %s addressing", mc.LastResult.Defn.AddressingMode)
	}

	mc.LastResult.InstructionData = ea
	return ea, ok, err
}

// the register used by an indexed postbyte
func (mc *CPU) indexRegister(post uint8) *registers.Word {
	switch (post >> 5) & 0x03 {
	case 0x00:
		return &mc.X
	case 0x01:
		return &mc.Y
	case 0x02:
		return &mc.U
	}
	return &mc.S
}

// indexed decodes the postbyte and any offset bytes that follow it
//
// side-effects:
//   - auto increment and decrement of the index register
//   - adds the postbyte cost to LastResult.Cycles
func (mc *CPU) indexed() (uint16, bool, error) {
	post, err := mc.fetch8()
	if err != nil {
		return 0, false, err
	}

	if !instructions.IndexedDefined(post) {
		// the PC is left pointing at the postbyte
		mc.PC.Subtract(1)
		mc.invalid(fmt.Sprintf("undefined indexed postbyte (%#02x)", post))
		return 0, false, nil
	}

	mc.LastResult.Cycles += instructions.IndexedCycles[post]

	reg := mc.indexRegister(post)

	// 5 bit offset
	if post&0x80 == 0x00 {
		offset := uint16(post & 0x1f)
		if offset&0x10 == 0x10 {
			offset |= 0xffe0
		}
		return reg.Value() + offset, true, nil
	}

	var ea uint16

	switch post & 0x0f {
	case 0x00: // ,R+
		ea = reg.Value()
		reg.Add(1)
	case 0x01: // ,R++
		ea = reg.Value()
		reg.Add(2)
	case 0x02: // ,-R
		reg.Subtract(1)
		ea = reg.Value()
	case 0x03: // ,--R
		reg.Subtract(2)
		ea = reg.Value()
	case 0x04: // ,R
		ea = reg.Value()
	case 0x05: // B,R
		ea = reg.Value() + signExtend(mc.B.Value())
	case 0x06: // A,R
		ea = reg.Value() + signExtend(mc.A.Value())
	case 0x08: // n8,R
		n, err := mc.fetch8()
		if err != nil {
			return 0, false, err
		}
		ea = reg.Value() + signExtend(n)
	case 0x09: // n16,R
		n, err := mc.fetch16()
		if err != nil {
			return 0, false, err
		}
		ea = reg.Value() + n
	case 0x0b: // D,R
		ea = reg.Value() + mc.D()
	case 0x0c: // n8,PCR
		n, err := mc.fetch8()
		if err != nil {
			return 0, false, err
		}
		ea = mc.PC.Value() + signExtend(n)
	case 0x0d: // n16,PCR
		n, err := mc.fetch16()
		if err != nil {
			return 0, false, err
		}
		ea = mc.PC.Value() + n
	case 0x0f: // [n16]
		ea, err = mc.fetch16()
		if err != nil {
			return 0, false, err
		}
	}

	// indirection
	if post&0x10 == 0x10 {
		ea, err = mc.read16(ea)
		if err != nil {
			return 0, false, err
		}
	}

	return ea, true, nil
}

// operand8 returns the 8 bit operand of a read instruction
func (mc *CPU) operand8() (uint8, bool, error) {
	if mc.LastResult.Defn.AddressingMode == instructions.Immediate8 {
		v, err := mc.fetch8()
		mc.LastResult.InstructionData = uint16(v)
		return v, true, err
	}

	ea, ok, err := mc.effectiveAddress()
	if !ok || err != nil {
		return 0, ok, err
	}

	v, err := mc.read8(ea)
	return v, true, err
}

// operand16 returns the 16 bit operand of a read instruction
func (mc *CPU) operand16() (uint16, bool, error) {
	if mc.LastResult.Defn.AddressingMode == instructions.Immediate16 {
		v, err := mc.fetch16()
		mc.LastResult.InstructionData = v
		return v, true, err
	}

	ea, ok, err := mc.effectiveAddress()
	if !ok || err != nil {
		return 0, ok, err
	}

	v, err := mc.read16(ea)
	return v, true, err
}

// relative returns the destination of a branch instruction. the offset is
// relative to the address of the next instruction
func (mc *CPU) relative() (uint16, error) {
	var target uint16

	switch mc.LastResult.Defn.AddressingMode {
	case instructions.Relative8:
		n, err := mc.fetch8()
		if err != nil {
			return 0, err
		}
		target = mc.PC.Value() + signExtend(n)
	case instructions.Relative16:
		n, err := mc.fetch16()
		if err != nil {
			return 0, err
		}
		target = mc.PC.Value() + n
	}

	mc.LastResult.InstructionData = target
	return target, nil
}
