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

	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
	"github.com/jetsetilly/mc6809/hardware/cpu/registers"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/logger"
)

// invalid raises the invalid event. the PC should already be pointing at the
// offending byte
func (mc *CPU) invalid(reason string) {
	mc.setEvent(EventInvalid)
	logger.Logf(logger.Allow, "cpu", "invalid instruction at %04x: %s", mc.PC.Address(), reason)
}

// ExecuteInstruction executes the instruction at the PC. The basic process
// when executing an instruction is this:
//
//  1. read opcode, and the second opcode byte for pages 2 and 3
//  2. look up instruction definition
//  3. perform the operation, reading the operand as required by the
//     addressing mode
//  4. add the cost of the instruction to the cycle count
//
// Illegal instructions raise the invalid event and leave LastResult
// unfinalised. An error is returned only for bus errors, in which case the
// instruction has been abandoned part way through.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset(mc.PC.Address())

	op, err := mc.fetch8()
	if err != nil {
		return err
	}

	opcode := uint16(op)
	if op == instructions.Page2 || op == instructions.Page3 {
		op, err = mc.fetch8()
		if err != nil {
			return err
		}
		opcode = opcode<<8 | uint16(op)
	}

	defn := instructions.Lookup(opcode)
	if defn == nil || (defn.Undocumented && !mc.UseUndocumented) {
		mc.PC.Subtract(uint16(mc.LastResult.ByteCount))
		mc.invalid(fmt.Sprintf("illegal opcode (%#02x)", opcode))
		return nil
	}

	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	if defn.Undocumented {
		logger.Logf(logger.Allow, "cpu", "undocumented opcode %s at %04x", defn.Mnemonic, mc.LastResult.Address)
	}

	ok, err := mc.execute(defn)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	mc.LastResult.Final = true
	mc.cycles += uint64(mc.LastResult.Cycles)

	// the first instruction after reset has completed
	if defn.Operator != instructions.Reset {
		mc.nmiArmed = true
	}

	return nil
}

// the 8 bit accumulator for the target
func (mc *CPU) accumulator(t instructions.Target) *registers.Register {
	if t == instructions.B {
		return &mc.B
	}
	return &mc.A
}

// the 16 bit register for the target. not valid for D
func (mc *CPU) wordRegister(t instructions.Target) *registers.Word {
	switch t {
	case instructions.Y:
		return &mc.Y
	case instructions.U:
		return &mc.U
	case instructions.S:
		return &mc.S
	}
	return &mc.X
}

func (mc *CPU) value16(t instructions.Target) uint16 {
	if t == instructions.D {
		return mc.D()
	}
	return mc.wordRegister(t).Value()
}

func (mc *CPU) load16(t instructions.Target, v uint16) {
	if t == instructions.D {
		mc.SetD(v)
		return
	}
	mc.wordRegister(t).Load(v)
}

// execute performs the operation of the instruction. returns false if the
// instruction turned out to be illegal
func (mc *CPU) execute(defn *instructions.Definition) (bool, error) {
	switch defn.Operator {
	case instructions.Neg, instructions.Com, instructions.Lsr, instructions.Ror,
		instructions.Asr, instructions.Lsl, instructions.Rol, instructions.Dec,
		instructions.Inc, instructions.Tst, instructions.Clr,
		instructions.NegCom, instructions.ClrKeepCarry:
		return mc.unary(defn)

	case instructions.Jmp:
		ea, ok, err := mc.effectiveAddress()
		if !ok || err != nil {
			return ok, err
		}
		mc.PC.Load(ea)

	case instructions.Nop:

	case instructions.Sync:
		// the run loop waits for an interrupt line
		mc.setEvent(EventSync)

	case instructions.Cwai:
		imm, err := mc.fetch8()
		if err != nil {
			return false, err
		}
		mc.LastResult.InstructionData = uint16(imm)
		mc.CC.FromValue(mc.CC.Value() & imm)
		mc.CC.Entire = true
		if _, err := mc.psh(stackEntire, &mc.S); err != nil {
			return false, err
		}
		mc.setEvent(EventCwai)

	case instructions.Daa:
		mc.daa()

	case instructions.Orcc:
		imm, err := mc.fetch8()
		if err != nil {
			return false, err
		}
		mc.LastResult.InstructionData = uint16(imm)
		mc.CC.FromValue(mc.CC.Value() | imm)

	case instructions.Andcc:
		imm, err := mc.fetch8()
		if err != nil {
			return false, err
		}
		mc.LastResult.InstructionData = uint16(imm)
		mc.CC.FromValue(mc.CC.Value() & imm)

	case instructions.Sex:
		mc.sex()

	case instructions.Mul:
		mc.mul()

	case instructions.Abx:
		mc.X.Add(uint16(mc.B.Value()))

	case instructions.Exg, instructions.Tfr:
		post, err := mc.fetch8()
		if err != nil {
			return false, err
		}
		mc.LastResult.InstructionData = uint16(post)
		if defn.Operator == instructions.Exg {
			return mc.exg(post), nil
		}
		return mc.tfr(post), nil

	case instructions.Branch:
		target, err := mc.relative()
		if err != nil {
			return false, err
		}
		if mc.branchCondition(defn.Condition) {
			mc.PC.Load(target)
			mc.LastResult.BranchTaken = true

			// long conditional branches cost one more when taken
			if defn.Page() == 2 {
				mc.LastResult.Cycles++
			}
		}

	case instructions.Bsr:
		target, err := mc.relative()
		if err != nil {
			return false, err
		}
		if err := mc.push16(&mc.S, mc.PC.Value()); err != nil {
			return false, err
		}
		mc.PC.Load(target)

	case instructions.Jsr:
		ea, ok, err := mc.effectiveAddress()
		if !ok || err != nil {
			return ok, err
		}
		if err := mc.push16(&mc.S, mc.PC.Value()); err != nil {
			return false, err
		}
		mc.PC.Load(ea)

	case instructions.Rts:
		pc, err := mc.pull16(&mc.S)
		if err != nil {
			return false, err
		}
		mc.PC.Load(pc)

	case instructions.Lea:
		ea, ok, err := mc.effectiveAddress()
		if !ok || err != nil {
			return ok, err
		}
		mc.wordRegister(defn.Target).Load(ea)

		// LEAS and LEAU do not affect the condition codes
		if defn.Target == instructions.X || defn.Target == instructions.Y {
			mc.CC.Zero = ea == 0
		}

	case instructions.Psh, instructions.Pul:
		list, err := mc.fetch8()
		if err != nil {
			return false, err
		}
		mc.LastResult.InstructionData = uint16(list)

		var n int
		if defn.Operator == instructions.Psh {
			n, err = mc.psh(list, mc.wordRegister(defn.Target))
		} else {
			n, err = mc.pul(list, mc.wordRegister(defn.Target))
		}
		if err != nil {
			return false, err
		}
		mc.LastResult.Cycles += n

	case instructions.Rti:
		return mc.rti()

	case instructions.Reset:
		if err := mc.reset(); err != nil {
			return false, err
		}

	case instructions.Swi, instructions.Swi2, instructions.Swi3:
		return mc.swi(defn.Operator)

	case instructions.St:
		ea, ok, err := mc.effectiveAddress()
		if !ok || err != nil {
			return ok, err
		}
		if defn.Target.Is16Bit() {
			v := mc.value16(defn.Target)
			if err := mc.write16(ea, v); err != nil {
				return false, err
			}
			mc.tst16(v)
		} else {
			v := mc.accumulator(defn.Target).Value()
			if err := mc.write8(ea, v); err != nil {
				return false, err
			}
			mc.tst8(v)
		}

	default:
		if defn.Target.Is16Bit() {
			return mc.binary16(defn)
		}
		return mc.binary8(defn)
	}

	return true, nil
}

// unary operators work on an accumulator or on memory
func (mc *CPU) unary(defn *instructions.Definition) (bool, error) {
	if defn.Target != instructions.Memory {
		reg := mc.accumulator(defn.Target)
		v := mc.unaryOperator(defn.Operator, reg.Value())
		if defn.Operator != instructions.Tst {
			reg.Load(v)
		}
		return true, nil
	}

	ea, ok, err := mc.effectiveAddress()
	if !ok || err != nil {
		return ok, err
	}

	m, err := mc.read8(ea)
	if err != nil {
		return false, err
	}

	v := mc.unaryOperator(defn.Operator, m)
	if defn.Operator == instructions.Tst {
		return true, nil
	}

	return true, mc.write8(ea, v)
}

func (mc *CPU) unaryOperator(op instructions.Operator, v uint8) uint8 {
	switch op {
	case instructions.Neg:
		return mc.neg(v)
	case instructions.Com:
		return mc.com(v)
	case instructions.NegCom:
		return mc.negcom(v)
	case instructions.Lsr:
		return mc.lsr(v)
	case instructions.Ror:
		return mc.ror(v)
	case instructions.Asr:
		return mc.asr(v)
	case instructions.Lsl:
		return mc.lsl(v)
	case instructions.Rol:
		return mc.rol(v)
	case instructions.Dec:
		return mc.dec(v)
	case instructions.Inc:
		return mc.inc(v)
	case instructions.Tst:
		mc.tst8(v)
		return v
	case instructions.Clr:
		return mc.clr(false)
	case instructions.ClrKeepCarry:
		return mc.clr(true)
	}
	panic(fmt.Sprintf("cpu: not a unary operator: %s", op))
}

// binary8 operators take an accumulator and an 8 bit operand
func (mc *CPU) binary8(defn *instructions.Definition) (bool, error) {
	v, ok, err := mc.operand8()
	if !ok || err != nil {
		return ok, err
	}

	reg := mc.accumulator(defn.Target)
	r := reg.Value()

	switch defn.Operator {
	case instructions.Sub:
		reg.Load(mc.sub8(r, v, false))
	case instructions.Sbc:
		reg.Load(mc.sub8(r, v, mc.CC.Carry))
	case instructions.Cmp:
		mc.sub8(r, v, false)
	case instructions.Add:
		reg.Load(mc.add8(r, v, false))
	case instructions.Adc:
		reg.Load(mc.add8(r, v, mc.CC.Carry))
	case instructions.And:
		reg.Load(r & v)
		mc.tst8(reg.Value())
	case instructions.Bit:
		mc.tst8(r & v)
	case instructions.Or:
		reg.Load(r | v)
		mc.tst8(reg.Value())
	case instructions.Eor:
		reg.Load(r ^ v)
		mc.tst8(reg.Value())
	case instructions.Ld:
		reg.Load(v)
		mc.tst8(v)
	default:
		panic(fmt.Sprintf("cpu: not an 8 bit operator: %s", defn.Operator))
	}

	return true, nil
}

// binary16 operators take a 16 bit register and a 16 bit operand
func (mc *CPU) binary16(defn *instructions.Definition) (bool, error) {
	v, ok, err := mc.operand16()
	if !ok || err != nil {
		return ok, err
	}

	r := mc.value16(defn.Target)

	switch defn.Operator {
	case instructions.Sub:
		mc.load16(defn.Target, mc.sub16(r, v))
	case instructions.Cmp:
		mc.sub16(r, v)
	case instructions.Add:
		mc.load16(defn.Target, mc.add16(r, v))
	case instructions.Ld:
		mc.load16(defn.Target, v)
		mc.tst16(v)
	default:
		panic(fmt.Sprintf("cpu: not a 16 bit operator: %s", defn.Operator))
	}

	return true, nil
}

// rti pulls CC and then either the entire state or just the PC, depending
// on the E flag that was pulled
func (mc *CPU) rti() (bool, error) {
	cc, err := mc.pull8(&mc.S)
	if err != nil {
		return false, err
	}
	mc.CC.FromValue(cc)

	if mc.CC.Entire {
		if _, err := mc.pul(stackEntire&^stackCC, &mc.S); err != nil {
			return false, err
		}
		mc.LastResult.Cycles = 15
		return true, nil
	}

	pc, err := mc.pull16(&mc.S)
	if err != nil {
		return false, err
	}
	mc.PC.Load(pc)
	mc.LastResult.Cycles = 6

	return true, nil
}

// the three software interrupts stack the entire state. only SWI masks the
// hardware interrupts
func (mc *CPU) swi(op instructions.Operator) (bool, error) {
	mc.CC.Entire = true
	if _, err := mc.psh(stackEntire, &mc.S); err != nil {
		return false, err
	}

	var vector uint16
	switch op {
	case instructions.Swi:
		mc.CC.FIRQMask = true
		mc.CC.IRQMask = true
		vector = cpubus.SWI
	case instructions.Swi2:
		vector = cpubus.SWI2
	case instructions.Swi3:
		vector = cpubus.SWI3
	}

	pc, err := mc.read16(vector)
	if err != nil {
		return false, err
	}
	mc.PC.Load(pc)

	return true, nil
}
