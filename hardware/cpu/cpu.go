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
	"math"
	"sync/atomic"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
	"github.com/jetsetilly/mc6809/hardware/cpu/registers"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/logger"
)

// Sentinel error patterns returned by the CPU.
const (
	BusError = "cpu: bus error: %v"
)

// CPU implements the 6809. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	PC registers.Word
	U  registers.Word
	S  registers.Word
	X  registers.Word
	Y  registers.Word
	A  registers.Register
	B  registers.Register
	DP registers.Register
	CC registers.ConditionCodes

	mem cpubus.Memory

	// last result. only valid if LastResult.Final is true
	LastResult execution.Result

	// UseUndocumented enables the undocumented opcodes and the undocumented
	// behaviour of EXG and TFR. when false the undocumented opcodes are
	// treated as illegal instructions
	UseUndocumented bool

	// state that is written by other goroutines. held by pointer so that
	// copying the CPU never reads it directly
	shared *sharedState

	// NMI is ignored until the first instruction after reset has completed
	nmiArmed bool

	// cycle counts. cycles is the count since the last call to Cycles(true)
	cycles   uint64
	total    uint64
	required uint64

	interrupts InterruptStatus

	// optional collaborators
	disasm Disassembler
	tracer Tracer
}

// sharedState is only accessed with the atomic package.
type sharedState struct {
	// pending events. interrupt lines and scheduler requests arrive from
	// other goroutines
	events uint32

	// breakpoint slots. a value of NoBreakpoint means the slot is empty
	bp [numBreakpoints]uint32
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is not reset. Call Reset() before running the CPU for the first
// time.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:      mem,
		PC:       registers.NewWord(0, "PC"),
		U:        registers.NewWord(0, "U"),
		S:        registers.NewWord(0, "S"),
		X:        registers.NewWord(0, "X"),
		Y:        registers.NewWord(0, "Y"),
		A:        registers.NewRegister(0, "A"),
		B:        registers.NewRegister(0, "B"),
		DP:       registers.NewRegister(0, "DP"),
		required: math.MaxUint64,
		shared:   &sharedState{},
	}

	for i := range mc.shared.bp {
		mc.shared.bp[i] = NoBreakpoint
	}

	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory bus and collaborators of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.shared = &sharedState{
		events: atomic.LoadUint32(&mc.shared.events),
	}
	for i := range mc.shared.bp {
		n.shared.bp[i] = atomic.LoadUint32(&mc.shared.bp[i])
	}
	return &n
}

// Plumb a new memory bus into the CPU. Used after restoring a snapshot.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AttachDisassembler sets the disassembler used for step-over and for the
// status. A nil value detaches any previous disassembler.
func (mc *CPU) AttachDisassembler(disasm Disassembler) {
	mc.disasm = disasm
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.B.Label(), mc.B,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y, mc.U.Label(), mc.U,
		mc.S.Label(), mc.S, mc.DP.Label(), mc.DP, mc.CC.Label(), mc.CC)
}

// D returns the 16 bit accumulator. A is the most significant byte.
func (mc *CPU) D() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.B.Value())
}

// SetD loads the 16 bit accumulator by loading the A and B registers.
func (mc *CPU) SetD(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.B.Load(uint8(v))
}

// read8 returns the 8 bit value at the address. bus errors are wrapped and
// abort the current instruction
func (mc *CPU) read8(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf(BusError, err)
	}
	return v, nil
}

func (mc *CPU) write8(address uint16, v uint8) error {
	if err := mc.mem.Write(address, v); err != nil {
		return curated.Errorf(BusError, err)
	}
	return nil
}

// read16 returns the big-endian 16 bit value at the address
func (mc *CPU) read16(address uint16) (uint16, error) {
	v, err := cpubus.ReadWord(mc.mem, address)
	if err != nil {
		return 0, curated.Errorf(BusError, err)
	}
	return v, nil
}

func (mc *CPU) write16(address uint16, v uint16) error {
	if err := cpubus.WriteWord(mc.mem, address, v); err != nil {
		return curated.Errorf(BusError, err)
	}
	return nil
}

// fetch8 reads the byte at the PC and advances the PC
//
// side-effects:
//   - the byte is added to LastResult
func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.read8(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.AddByte(v)
	return v, nil
}

// fetch16 reads the big-endian word at the PC and advances the PC by two
//
// side-effects:
//   - both bytes are added to LastResult
func (mc *CPU) fetch16() (uint16, error) {
	hi, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	lo, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Reset the CPU. The PC is loaded from the reset vector, DP is cleared and
// both interrupt masks are set. Pending events are cleared except for the
// frequency control and trace log events. Breakpoints in slots 0 and 1 are
// kept.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset(0)
	return mc.reset()
}

// reset is also used by the undocumented reset instruction, which should not
// disturb LastResult
func (mc *CPU) reset() error {
	mc.interrupts.Reset++
	mc.cycles = 0
	mc.total = 0
	mc.nmiArmed = false

	atomic.StoreUint32(&mc.shared.events, uint32(mc.Events()&resetPreserved))
	mc.resetBreakpoint(stepOverSlot)

	pc, err := mc.read16(cpubus.Reset)
	if err != nil {
		return err
	}
	mc.PC.Load(pc)
	mc.DP.Load(0)
	mc.CC.FromValue(registers.CCIRQMask | registers.CCFIRQMask)

	logger.Logf(logger.Allow, "cpu", "reset to %04x", pc)

	return nil
}
