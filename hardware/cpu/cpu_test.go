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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/test"
)

const origin = 0x1000

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, 0xc000)

	test.ExpectEquality(t, mc.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, mc.DP.Value(), uint8(0))
	test.ExpectEquality(t, mc.CC.Value(), uint8(0x50))
	test.ExpectEquality(t, mc.InterruptStatus().Reset, uint64(1))
	test.ExpectEquality(t, mc.Cycles(false), uint64(0))

	test.ExpectSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.InterruptStatus().Reset, uint64(2))
}

func TestAccumulatorD(t *testing.T) {
	mc, _ := newCPU(t, origin)

	mc.SetD(0x1234)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x12))
	test.ExpectEquality(t, mc.B.Value(), uint8(0x34))

	mc.B.Load(0xff)
	test.ExpectEquality(t, mc.D(), uint16(0x12ff))
}

// the 8 bit arithmetic is compared against a calculation made with full
// width integers
func TestArithmeticFlags(t *testing.T) {
	mc, mem := newCPU(t, origin)

	type reference func(a, b, c int) (res int, signed int)

	adc := func(a, b, c int) (int, int) {
		return a + b + c, int(int8(a)) + int(int8(b)) + c
	}
	sbc := func(a, b, c int) (int, int) {
		return a - b - c, int(int8(a)) - int(int8(b)) - c
	}

	ops := []struct {
		opcode  uint8
		carry   bool
		store   bool
		half    bool
		ref     reference
		borrows bool
	}{
		{opcode: 0x8b, ref: adc, store: true, half: true},            // ADDA
		{opcode: 0x89, ref: adc, store: true, half: true, carry: true}, // ADCA
		{opcode: 0x80, ref: sbc, store: true, borrows: true},           // SUBA
		{opcode: 0x82, ref: sbc, store: true, carry: true, borrows: true},
		{opcode: 0x81, ref: sbc, borrows: true}, // CMPA
	}

	mem.putInstructions(origin, 0x00, 0x00)

	for _, op := range ops {
		mem.internal[origin] = op.opcode
		for a := 0; a <= 0xff; a++ {
			for b := 0; b <= 0xff; b++ {
				for c := 0; c <= 1; c++ {
					mem.internal[origin+1] = uint8(b)
					mc.PC.Load(origin)
					mc.A.Load(uint8(a))
					mc.CC.Carry = c == 1
					mc.CC.Half = false

					cin := c
					if !op.carry {
						cin = 0
					}

					step(t, mc)

					res, signed := op.ref(a, b, cin)
					expected := uint8(res)

					if op.store {
						test.DemandEquality(t, mc.A.Value(), expected)
					} else {
						test.DemandEquality(t, mc.A.Value(), uint8(a))
					}

					if op.borrows {
						test.DemandEquality(t, mc.CC.Carry, res < 0)
					} else {
						test.DemandEquality(t, mc.CC.Carry, res > 0xff)
					}
					test.DemandEquality(t, mc.CC.Overflow, signed < -128 || signed > 127)
					test.DemandEquality(t, mc.CC.Zero, expected == 0)
					test.DemandEquality(t, mc.CC.Negative, expected&0x80 == 0x80)

					if op.half {
						test.DemandEquality(t, mc.CC.Half, (a&0x0f)+(b&0x0f)+cin > 0x0f)
					}
				}
			}
		}
	}
}

func TestSixteenBitArithmetic(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// ADDD #$0001
	mem.putInstructions(origin, 0xc3, 0x00, 0x01)
	mc.SetD(0x7fff)
	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0x8000))
	test.ExpectSuccess(t, mc.CC.Overflow)
	test.ExpectSuccess(t, mc.CC.Negative)
	test.ExpectFailure(t, mc.CC.Carry)

	// SUBD #$0001
	mem.putInstructions(origin, 0x83, 0x00, 0x01)
	mc.PC.Load(origin)
	mc.SetD(0x0000)
	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0xffff))
	test.ExpectSuccess(t, mc.CC.Carry)
	test.ExpectFailure(t, mc.CC.Overflow)

	// CMPX #$1000
	mem.putInstructions(origin, 0x8c, 0x10, 0x00)
	mc.PC.Load(origin)
	mc.X.Load(0x1000)
	step(t, mc)
	test.ExpectSuccess(t, mc.CC.Zero)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x1000))

	// LDY #$8000 sets N from the register being loaded
	mem.putInstructions(origin, 0x10, 0x8e, 0x80, 0x00)
	mc.PC.Load(origin)
	mc.SetD(0x0001)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), uint16(0x8000))
	test.ExpectSuccess(t, mc.CC.Negative)
	test.ExpectFailure(t, mc.CC.Zero)
}

func TestMiscellaneousALU(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// MUL
	mem.putInstructions(origin, 0x3d)
	mc.A.Load(0x10)
	mc.B.Load(0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0x0100))
	test.ExpectFailure(t, mc.CC.Zero)
	test.ExpectFailure(t, mc.CC.Carry)

	// carry is bit 7 of the result, not of the multiplicand
	mul := []struct {
		a, b  uint8
		d     uint16
		carry bool
	}{
		{0x02, 0x80, 0x0100, false},
		{0x03, 0x50, 0x00f0, true},
		{0xff, 0xff, 0xfe01, false},
		{0x01, 0x80, 0x0080, true},
		{0x00, 0x80, 0x0000, false},
	}
	for _, m := range mul {
		mc.PC.Load(origin)
		mc.A.Load(m.a)
		mc.B.Load(m.b)
		step(t, mc)
		test.ExpectEquality(t, mc.D(), m.d)
		test.ExpectEquality(t, mc.CC.Carry, m.carry)
		test.ExpectEquality(t, mc.CC.Zero, m.d == 0)
	}

	// ADDA #$01 ; DAA
	mem.putInstructions(origin, 0x8b, 0x01, 0x19)
	mc.PC.Load(origin)
	mc.A.Load(0x09)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))

	// SEX
	mem.putInstructions(origin, 0x1d)
	mc.PC.Load(origin)
	mc.B.Load(0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0xff80))
	test.ExpectSuccess(t, mc.CC.Negative)

	// CLRA
	mem.putInstructions(origin, 0x4f)
	mc.PC.Load(origin)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectSuccess(t, mc.CC.Zero)
	test.ExpectFailure(t, mc.CC.Carry)
}

// the number of bytes consumed by every instruction, with every indexed
// postbyte, must agree with the length classifier
func TestLengthAgreement(t *testing.T) {
	mc, mem := newCPU(t, origin)
	mc.UseUndocumented = true

	prepare := func(bytes ...uint8) {
		t.Helper()
		for i := range 8 {
			mem.internal[origin+i] = 0x00
		}
		mem.putInstructions(origin, bytes...)

		// read-modify-write instructions may have changed the vector
		mem.putVector(cpubus.Reset, origin)
		test.DemandSuccess(t, mc.Reset())
		test.DemandEquality(t, mc.PC.Address(), uint16(origin))
		mc.S.Load(0x8000)
		mc.U.Load(0x9000)
		mc.X.Load(0x2000)
		mc.Y.Load(0x3000)
	}

	opcodeBytes := func(defn instructions.Definition) []uint8 {
		if defn.Page() == 1 {
			return []uint8{uint8(defn.OpCode)}
		}
		return []uint8{uint8(defn.OpCode >> 8), uint8(defn.OpCode)}
	}

	for _, defn := range instructions.Definitions() {
		b := opcodeBytes(defn)

		if defn.AddressingMode != instructions.Indexed {
			prepare(b...)
			l, err := instructions.Length(mem.internal[origin : origin+8])
			test.DemandSuccess(t, err)
			r := step(t, mc)
			test.DemandEquality(t, r.ByteCount, l)
			continue
		}

		for post := 0; post <= 0xff; post++ {
			prepare(append(b, uint8(post))...)

			if !instructions.IndexedDefined(uint8(post)) {
				test.DemandSuccess(t, mc.ExecuteInstruction())
				test.DemandSuccess(t, mc.Events()&cpu.EventInvalid == cpu.EventInvalid)
				test.DemandEquality(t, mc.PC.Address(), uint16(origin+len(b)))
				continue
			}

			l, err := instructions.Length(mem.internal[origin : origin+8])
			test.DemandSuccess(t, err)
			r := step(t, mc)
			test.DemandEquality(t, r.ByteCount, l)
		}
	}
}

func TestBranch(t *testing.T) {
	mc, mem := newCPU(t, 0x8000)

	// BRA with the most negative offset
	mem.putInstructions(0x8000, 0x20, 0x80)
	r := step(t, mc)
	test.ExpectSuccess(t, r.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x7f82))

	// BEQ not taken
	mem.putInstructions(0x7f82, 0x27, 0x10)
	mc.CC.Zero = false
	r = step(t, mc)
	test.ExpectFailure(t, r.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x7f84))

	// LBEQ taken costs an extra cycle
	mem.putInstructions(0x7f84, 0x10, 0x27, 0x01, 0x00)
	mc.CC.Zero = true
	r = step(t, mc)
	test.ExpectSuccess(t, r.BranchTaken)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8088))
}

func TestPushPull(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// PSHS PC,Y,X ; PULS PC,Y,X
	mem.putInstructions(origin, 0x34, 0xb0, 0x35, 0xb0)
	mc.X.Load(0x1122)
	mc.Y.Load(0x3344)

	r := step(t, mc)
	test.ExpectEquality(t, mc.S.Address(), uint16(0x7ffa))
	test.ExpectEquality(t, r.Cycles, 11)
	mem.assert(t, 0x7ffa, 0x11)
	mem.assert(t, 0x7ffb, 0x22)
	mem.assert(t, 0x7ffc, 0x33)
	mem.assert(t, 0x7ffd, 0x44)
	mem.assert(t, 0x7ffe, 0x10)
	mem.assert(t, 0x7fff, 0x02)

	mc.X.Load(0)
	mc.Y.Load(0)
	step(t, mc)
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000))
	test.ExpectEquality(t, mc.X.Value(), uint16(0x1122))
	test.ExpectEquality(t, mc.Y.Value(), uint16(0x3344))

	// the PULS pulled the PC pushed by the PSHS
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2))
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// JSR $2000 ; at $2000 RTS
	mem.putInstructions(origin, 0xbd, 0x20, 0x00)
	mem.putInstructions(0x2000, 0x39)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x2000))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x7ffe))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+3))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000))
}

func TestTransfer(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// EXG A,B ; TFR X,Y ; EXG A,X
	mem.putInstructions(origin, 0x1e, 0x89, 0x1f, 0x12, 0x1e, 0x81)
	mc.SetD(0x1234)
	mc.X.Load(0xabcd)

	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0x3412))

	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), uint16(0xabcd))

	// mixed widths are illegal unless undocumented behaviour is enabled
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectFailure(t, mc.LastResult.Final)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+4))
	test.ExpectEquality(t, mc.Events()&cpu.EventInvalid, cpu.EventInvalid)
}

func TestUndocumentedTransfer(t *testing.T) {
	mc, mem := newCPU(t, origin)
	mc.UseUndocumented = true

	transfer := func(opcode uint8, post uint8) {
		t.Helper()
		mem.putInstructions(origin, opcode, post)
		mc.PC.Load(origin)
		step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2))
	}

	// EXG A,X: the 8 bit value is doubled into X and A takes the low byte
	mc.A.Load(0x12)
	mc.X.Load(0xabcd)
	transfer(0x1e, 0x81)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xcd))
	test.ExpectEquality(t, mc.X.Value(), uint16(0x1212))

	// EXG X,A: the 8 bit value is padded with $FF
	mc.A.Load(0x12)
	mc.X.Load(0xabcd)
	transfer(0x1e, 0x18)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xcd))
	test.ExpectEquality(t, mc.X.Value(), uint16(0xff12))

	// TFR B,X
	mc.B.Load(0x34)
	transfer(0x1f, 0x91)
	test.ExpectEquality(t, mc.X.Value(), uint16(0xff34))

	// TFR DP,X
	mc.DP.Load(0x56)
	transfer(0x1f, 0xb1)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x5656))

	// TFR CC,Y
	mc.CC.FromValue(0x05)
	transfer(0x1f, 0xa2)
	test.ExpectEquality(t, mc.Y.Value(), uint16(0x0505))

	// TFR X,B takes the low byte
	mc.X.Load(0x1278)
	transfer(0x1f, 0x19)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x78))

	// an undefined source reads as $FFFF
	mc.Y.Load(0)
	transfer(0x1f, 0x62)
	test.ExpectEquality(t, mc.Y.Value(), uint16(0xffff))

	// EXG with an undefined register
	mc.X.Load(0x1234)
	transfer(0x1e, 0x71)
	test.ExpectEquality(t, mc.X.Value(), uint16(0xffff))

	// an undefined destination is illegal even with undocumented behaviour
	mem.putInstructions(origin, 0x1f, 0x16)
	mc.PC.Load(origin)
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectFailure(t, mc.LastResult.Final)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin))
	test.ExpectEquality(t, mc.Events()&cpu.EventInvalid, cpu.EventInvalid)
}

func TestIllegal(t *testing.T) {
	mc, mem := newCPU(t, origin)

	mem.putInstructions(origin, 0x87)
	state, err := mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateInvalid)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin))

	// invalid persists until reset
	state, err = mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateInvalid)
	test.ExpectSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.Events()&cpu.EventInvalid, cpu.Event(0))

	// page two
	mem.putInstructions(origin, 0x10, 0x87)
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin))
	test.ExpectSuccess(t, mc.Reset())

	// undefined indexed postbyte leaves the PC on the postbyte
	mem.putInstructions(origin, 0xa6, 0x87)
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+1))
	test.ExpectSuccess(t, mc.Reset())

	// undocumented opcodes
	mem.putInstructions(origin, 0x01, 0x80)
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin))
	test.ExpectSuccess(t, mc.Reset())

	mc.UseUndocumented = true
	mem.internal[0x0080] = 0x01
	step(t, mc)
	mem.assert(t, 0x0080, 0xff)
}

func TestBreakpoints(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// NOP ; NOP ; BRA origin
	mem.putInstructions(origin, 0x12, 0x12, 0x20, 0xfc)

	mc.SetBreakpoint(0, origin)
	address, ok := mc.Breakpoint(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, address, uint16(origin))

	// continuing from a breakpoint runs at least one instruction
	for range 3 {
		state, err := mc.Run(cpu.RunContinue)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, state, cpu.StateStop)
		test.ExpectEquality(t, mc.PC.Address(), uint16(origin))
	}
	test.ExpectEquality(t, mc.Cycles(false), uint64(21))

	mc.ResetBreakpoint(0)
	_, ok = mc.Breakpoint(0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, mc.Events()&cpu.EventBreakpoint, cpu.Event(0))

	// slot two is reserved for step-over
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for breakpoint slot 2")
		}
	}()
	mc.SetBreakpoint(2, origin)
}

func TestStepOver(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// JSR $2000 ; NOP
	mem.putInstructions(origin, 0xbd, 0x20, 0x00, 0x12)

	// JSR $3000 ; RTS
	mem.putInstructions(0x2000, 0xbd, 0x30, 0x00, 0x39)

	// NOP ; RTS
	mem.putInstructions(0x3000, 0x12, 0x39)

	state, err := mc.Run(cpu.StepOver)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+3))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000))

	// step-over breakpoint has been removed
	test.ExpectEquality(t, mc.Events()&cpu.EventBreakpoint, cpu.Event(0))

	// stepping over a NOP is the same as stepping into it
	state, err = mc.Run(cpu.StepOver)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+4))
}

// a step-over that is suspended inside the subroutine still stops at the
// return address when the run is resumed
func TestStepOverResume(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// JSR $2000 ; NOP
	mem.putInstructions(origin, 0xbd, 0x20, 0x00, 0x12)

	// NOP ; NOP ; NOP ; NOP ; RTS
	mem.putInstructions(0x2000, 0x12, 0x12, 0x12, 0x12, 0x39)

	mc.SetRequiredCycles(10)

	state, err := mc.Run(cpu.StepOver)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSuspend)
	test.ExpectSuccess(t, mc.PC.Address() >= 0x2000)

	for i := 0; state == cpu.StateSuspend; i++ {
		test.DemandSuccess(t, i < 10, "too many suspends")
		mc.Cycles(true)
		state, err = mc.Run(cpu.RunResume)
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, state, cpu.StateStop)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+3))
	test.ExpectEquality(t, mc.Events()&cpu.EventBreakpoint, cpu.Event(0))
}

func TestSnapshot(t *testing.T) {
	mc, _ := newCPU(t, origin)
	mc.SetBreakpoint(1, 0x1234)
	mc.A.Load(0x42)

	// breakpoints may be changed by another goroutine during a snapshot
	done := make(chan bool)
	go func() {
		for i := range 1000 {
			mc.SetBreakpoint(0, uint16(i))
		}
		close(done)
	}()
	for range 100 {
		_ = mc.Snapshot()
	}
	<-done

	n := mc.Snapshot()
	test.ExpectEquality(t, n.A.Value(), uint8(0x42))
	address, ok := n.Breakpoint(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, address, uint16(0x1234))

	// the copy is independent of the original
	n.ResetBreakpoint(1)
	n.A.Load(0)
	_, ok = mc.Breakpoint(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
}

func TestStepInto(t *testing.T) {
	mc, mem := newCPU(t, origin)

	mem.putInstructions(origin, 0xbd, 0x20, 0x00)
	mem.putInstructions(0x2000, 0x39)

	state, err := mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x2000))
}

func newInterruptCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mc, mem := newCPU(t, origin)
	mem.putVector(cpubus.NMI, 0x4000)
	mem.putVector(cpubus.FIRQ, 0x5000)
	mem.putVector(cpubus.IRQ, 0x6000)
	mem.putInstructions(0x4000, 0x12)
	mem.putInstructions(0x5000, 0x12)
	mem.putInstructions(0x6000, 0x12)
	return mc, mem
}

func TestInterruptPriority(t *testing.T) {
	mc, mem := newInterruptCPU(t)

	// ANDCC #$AF unmasks both interrupts
	mem.putInstructions(origin, 0x1c, 0xaf, 0x12)
	_, err := mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, mc.CC.IRQMask)
	test.ExpectFailure(t, mc.CC.FIRQMask)

	mc.SetIRQ()
	mc.SetFIRQ()
	mc.SetNMI()

	_, err = mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x4001))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000-12))
	test.ExpectSuccess(t, mc.CC.Entire)
	test.ExpectSuccess(t, mc.CC.IRQMask)
	test.ExpectSuccess(t, mc.CC.FIRQMask)
	test.ExpectEquality(t, mc.InterruptStatus().NMI, uint64(1))

	// the lower priority interrupts remain pending
	test.ExpectEquality(t, mc.Events()&(cpu.EventFIRQ|cpu.EventIRQ), cpu.EventFIRQ|cpu.EventIRQ)
}

func TestFastInterrupt(t *testing.T) {
	mc, mem := newInterruptCPU(t)

	mem.putInstructions(origin, 0x1c, 0xaf, 0x12)
	_, err := mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)

	mc.SetIRQ()
	mc.SetFIRQ()

	_, err = mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x5001))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000-3))
	test.ExpectFailure(t, mc.CC.Entire)
	test.ExpectEquality(t, mc.InterruptStatus().FIRQ, uint64(1))
	test.ExpectEquality(t, mc.Events()&cpu.EventIRQ, cpu.EventIRQ)
}

func TestMaskedInterrupts(t *testing.T) {
	mc, mem := newInterruptCPU(t)
	mem.putInstructions(origin, 0x12, 0x12)

	// interrupts are masked after reset
	mc.SetIRQ()
	mc.SetFIRQ()
	_, err := mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+1))
	test.ExpectEquality(t, mc.InterruptStatus().IRQ, uint64(0))
	test.ExpectEquality(t, mc.InterruptStatus().FIRQ, uint64(0))
}

func TestNMIArming(t *testing.T) {
	mc, mem := newInterruptCPU(t)
	mem.putInstructions(origin, 0x12, 0x12)

	// NMI is not accepted until the first instruction has completed
	mc.SetNMI()
	_, err := mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+1))
	test.ExpectEquality(t, mc.Events()&cpu.EventNMI, cpu.EventNMI)

	_, err = mc.Run(cpu.StepInto)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x4001))
}

func TestCWAI(t *testing.T) {
	mc, mem := newInterruptCPU(t)

	// CWAI #$EF ; NOP
	mem.putInstructions(origin, 0x3c, 0xef, 0x12)

	// RTI
	mem.putInstructions(0x6000, 0x3b)

	state, err := mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSuspend)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000-12))

	// still waiting
	state, err = mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSuspend)

	mc.SetBreakpoint(0, origin+2)
	mc.SetIRQ()
	state, err = mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000))
	test.ExpectEquality(t, mc.InterruptStatus().IRQ, uint64(1))
	test.ExpectFailure(t, mc.CC.IRQMask)
}

func TestSync(t *testing.T) {
	mc, mem := newInterruptCPU(t)

	// SYNC ; NOP
	mem.putInstructions(origin, 0x13, 0x12)

	state, err := mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSuspend)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+1))

	// a masked interrupt resumes execution without being accepted
	mc.SetBreakpoint(0, origin+2)
	mc.SetIRQ()
	state, err = mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2))
	test.ExpectEquality(t, mc.InterruptStatus().IRQ, uint64(0))
	test.ExpectEquality(t, mc.Events()&cpu.EventIRQ, cpu.EventIRQ)
}

func TestSoftwareInterrupt(t *testing.T) {
	mc, mem := newCPU(t, origin)
	mem.putVector(cpubus.SWI2, 0x7000)

	// SWI2
	mem.putInstructions(origin, 0x10, 0x3f)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x7000))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000-12))
	test.ExpectSuccess(t, mc.CC.Entire)

	// SWI2 does not change the interrupt masks
	test.ExpectSuccess(t, mc.CC.IRQMask)

	// RTI returns to the instruction after the SWI2
	mem.putInstructions(0x7000, 0x3b)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 15)
	test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x8000))
}

func TestRequiredCycles(t *testing.T) {
	mc, mem := newCPU(t, origin)

	// BRA *
	mem.putInstructions(origin, 0x20, 0xfe)

	mc.SetRequiredCycles(10)
	state, err := mc.Run(cpu.RunStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSuspend)
	test.ExpectEquality(t, mc.Cycles(true), uint64(12))

	state, err = mc.Run(cpu.RunContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSuspend)
	test.ExpectEquality(t, mc.Cycles(false), uint64(24))
}

func TestExitRun(t *testing.T) {
	mc, mem := newCPU(t, origin)
	mem.putInstructions(origin, 0x20, 0xfe)

	mc.ExitRun()
	state, err := mc.Run(cpu.RunContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateSchedule)
	test.ExpectEquality(t, mc.Cycles(false), uint64(3))
}

func TestStatus(t *testing.T) {
	mc, mem := newCPU(t, origin)
	mem.putInstructions(origin, 0x86, 0x42, 0x12, 0x12)

	st, err := mc.Status()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.PC, uint16(origin))
	test.ExpectEquality(t, st.Instruction, [4]uint8{0x86, 0x42, 0x12, 0x12})
	test.ExpectEquality(t, st.MemoryAddress, uint16(0x7ff0))
	test.ExpectEquality(t, st.Interrupts.Reset, uint64(1))
}
