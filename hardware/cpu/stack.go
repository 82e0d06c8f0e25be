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
	"github.com/jetsetilly/mc6809/hardware/cpu/registers"
)

// bits of the register list postbyte used by the PSH and PUL instructions
const (
	stackCC    = 0x01
	stackA     = 0x02
	stackB     = 0x04
	stackDP    = 0x08
	stackX     = 0x10
	stackY     = 0x20
	stackOther = 0x40 // U when using S and S when using U
	stackPC    = 0x80

	// everything. used by the interrupts and SWI
	stackEntire = 0xff
)

func (mc *CPU) push8(sp *registers.Word, v uint8) error {
	sp.Subtract(1)
	return mc.write8(sp.Address(), v)
}

func (mc *CPU) push16(sp *registers.Word, v uint16) error {
	if err := mc.push8(sp, uint8(v)); err != nil {
		return err
	}
	return mc.push8(sp, uint8(v>>8))
}

func (mc *CPU) pull8(sp *registers.Word) (uint8, error) {
	v, err := mc.read8(sp.Address())
	if err != nil {
		return 0, err
	}
	sp.Add(1)
	return v, nil
}

func (mc *CPU) pull16(sp *registers.Word) (uint16, error) {
	v, err := mc.read16(sp.Address())
	if err != nil {
		return 0, err
	}
	sp.Add(2)
	return v, nil
}

// the stack pointer that is not sp
func (mc *CPU) otherStack(sp *registers.Word) *registers.Word {
	if sp == &mc.S {
		return &mc.U
	}
	return &mc.S
}

// psh pushes the registers in the list onto the stack. the order is PC,
// U/S, Y, X, DP, B, A, CC. returns the number of cycles used in addition to
// the base cost of the instruction
func (mc *CPU) psh(list uint8, sp *registers.Word) (int, error) {
	var cycles int

	push16 := func(bit uint8, v uint16) error {
		if list&bit != bit {
			return nil
		}
		cycles += 2
		return mc.push16(sp, v)
	}

	push8 := func(bit uint8, v uint8) error {
		if list&bit != bit {
			return nil
		}
		cycles++
		return mc.push8(sp, v)
	}

	if err := push16(stackPC, mc.PC.Value()); err != nil {
		return cycles, err
	}
	if err := push16(stackOther, mc.otherStack(sp).Value()); err != nil {
		return cycles, err
	}
	if err := push16(stackY, mc.Y.Value()); err != nil {
		return cycles, err
	}
	if err := push16(stackX, mc.X.Value()); err != nil {
		return cycles, err
	}
	if err := push8(stackDP, mc.DP.Value()); err != nil {
		return cycles, err
	}
	if err := push8(stackB, mc.B.Value()); err != nil {
		return cycles, err
	}
	if err := push8(stackA, mc.A.Value()); err != nil {
		return cycles, err
	}
	if err := push8(stackCC, mc.CC.Value()); err != nil {
		return cycles, err
	}

	return cycles, nil
}

// pul pulls the registers in the list from the stack, in the reverse order
// of psh. returns the number of cycles used in addition to the base cost of
// the instruction
func (mc *CPU) pul(list uint8, sp *registers.Word) (int, error) {
	var cycles int

	if list&stackCC == stackCC {
		v, err := mc.pull8(sp)
		if err != nil {
			return cycles, err
		}
		mc.CC.FromValue(v)
		cycles++
	}

	for _, r := range []struct {
		bit uint8
		reg *registers.Register
	}{
		{stackA, &mc.A},
		{stackB, &mc.B},
		{stackDP, &mc.DP},
	} {
		if list&r.bit != r.bit {
			continue
		}
		v, err := mc.pull8(sp)
		if err != nil {
			return cycles, err
		}
		r.reg.Load(v)
		cycles++
	}

	for _, r := range []struct {
		bit uint8
		reg *registers.Word
	}{
		{stackX, &mc.X},
		{stackY, &mc.Y},
		{stackOther, mc.otherStack(sp)},
		{stackPC, &mc.PC},
	} {
		if list&r.bit != r.bit {
			continue
		}
		v, err := mc.pull16(sp)
		if err != nil {
			return cycles, err
		}
		r.reg.Load(v)
		cycles += 2
	}

	return cycles, nil
}
