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

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/scheduler"
	"github.com/jetsetilly/mc6809/test"
)

const origin = 0x1000

// LDA #$42 ; NOP ; NOP ; BRA *
var program = []uint8{0x86, 0x42, 0x12, 0x12, 0x20, 0xfe}

type harness struct {
	t      *testing.T
	sch    *scheduler.Scheduler
	mem    *memory.Memory
	cancel context.CancelFunc
	result chan error
}

func newHarness(t *testing.T, code []uint8, initial cpu.State) *harness {
	t.Helper()

	mem := memory.NewMemory()
	mem.PokeBlock(origin, code)
	test.DemandSuccess(t, cpubus.WriteWord(mem, cpubus.Reset, origin))

	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())

	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		t:      t,
		sch:    scheduler.NewScheduler(mc),
		mem:    mem,
		cancel: cancel,
		result: make(chan error, 1),
	}

	go func() {
		h.result <- h.sch.Run(ctx, initial)
	}()

	t.Cleanup(func() {
		cancel()
		<-h.result
	})

	return h
}

// wait until the condition is true or fail after a couple of seconds
func (h *harness) waitFor(cond func() bool, tag string) {
	h.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			h.t.Fatalf("timed out waiting for %s", tag)
		}
		time.Sleep(time.Millisecond)
	}
}

// set the state and wait for the scheduler to stop. the scheduler must
// already be idle or running
func (h *harness) runUntilStopped(state cpu.State, timeout time.Duration) {
	h.t.Helper()
	ch := h.sch.Stopped()
	h.sch.SetState(state)
	select {
	case <-ch:
	case <-time.After(timeout):
		h.t.Fatalf("timed out waiting for %s to stop", state)
	}
}

func (h *harness) pc() uint16 {
	h.t.Helper()
	var pc uint16
	test.DemandSuccess(h.t, h.sch.Sync(func(mc *cpu.CPU) {
		pc = mc.PC.Address()
	}))
	return pc
}

func (h *harness) cycles() uint64 {
	h.t.Helper()
	var c uint64
	test.DemandSuccess(h.t, h.sch.Sync(func(mc *cpu.CPU) {
		c = mc.Cycles(false)
	}))
	return c
}

func TestSync(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	test.ExpectSuccess(t, h.sch.Sync(func(mc *cpu.CPU) {
		mc.A.Load(0x99)
	}))

	var a uint8
	test.ExpectSuccess(t, h.sch.Sync(func(mc *cpu.CPU) {
		a = mc.A.Value()
	}))
	test.ExpectEquality(t, a, uint8(0x99))

	// the status is updated after every synchronised command
	st := h.sch.Status()
	test.ExpectEquality(t, st.A, uint8(0x99))
	test.ExpectEquality(t, st.State, cpu.StateStop)
	test.ExpectEquality(t, st.PC, uint16(origin))
}

func TestStep(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	h.sch.SetState(cpu.StateStep)
	h.waitFor(func() bool { return h.pc() == origin+2 }, "first step")

	h.sch.SetState(cpu.StateStep)
	h.waitFor(func() bool { return h.pc() == origin+3 }, "second step")

	h.waitFor(func() bool { return h.sch.Status().State == cpu.StateStop }, "stop state")
	test.ExpectEquality(t, h.sch.Status().A, uint8(0x42))
}

func TestRunStop(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	h.sch.SetState(cpu.StateRun)
	h.waitFor(func() bool { return h.cycles() > 1000 }, "cycles")

	h.sch.SetState(cpu.StateStop)
	h.waitFor(func() bool { return h.sch.Status().State == cpu.StateStop }, "stop state")

	// stuck in the BRA loop
	test.ExpectEquality(t, h.pc(), uint16(origin+4))

	// no more cycles once stopped
	c := h.cycles()
	time.Sleep(20 * time.Millisecond)
	test.ExpectEquality(t, h.cycles(), c)
}

func TestBreakpoint(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	test.ExpectSuccess(t, h.sch.Sync(func(mc *cpu.CPU) {
		mc.SetBreakpoint(0, origin+3)
	}))

	h.runUntilStopped(cpu.StateRun, 2*time.Second)
	test.ExpectEquality(t, h.pc(), uint16(origin+3))
	test.ExpectEquality(t, h.sch.State(), cpu.StateStop)
}

func TestStepOverLongCall(t *testing.T) {
	code := make([]uint8, 0x1010)

	// JSR $2000 ; NOP ; BRA *
	copy(code, []uint8{0xbd, 0x20, 0x00, 0x12, 0x20, 0xfe})

	// LDX #$FFFF ; loop LEAX -1,X ; BNE loop ; RTS
	copy(code[0x1000:], []uint8{0x8e, 0xff, 0xff, 0x30, 0x1f, 0x26, 0xfc, 0x39})

	h := newHarness(t, code, cpu.StateStop)
	test.ExpectSuccess(t, h.sch.Sync(func(mc *cpu.CPU) {
		mc.S.Load(0x8000)
	}))

	// throttled so that the subroutine spans many timer ticks
	h.sch.SetFrequency(1.0)

	h.runUntilStopped(cpu.StateNext, 5*time.Second)
	test.ExpectEquality(t, h.pc(), uint16(origin+3))
	test.ExpectEquality(t, h.sch.State(), cpu.StateStop)

	var x uint16
	test.ExpectSuccess(t, h.sch.Sync(func(mc *cpu.CPU) {
		x = mc.X.Value()
	}))
	test.ExpectEquality(t, x, uint16(0))
}

func TestInvalid(t *testing.T) {
	h := newHarness(t, []uint8{0x12, 0x87}, cpu.StateRun)

	h.waitFor(func() bool { return h.sch.Status().State == cpu.StateInvalid }, "invalid state")
	test.ExpectEquality(t, h.pc(), uint16(origin+1))

	// reset clears the invalid condition
	h.sch.SetState(cpu.StateReset)
	h.waitFor(func() bool { return h.sch.Status().State == cpu.StateStop }, "reset")
	test.ExpectEquality(t, h.pc(), uint16(origin))
}

func TestReset(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	var resets int
	test.ExpectSuccess(t, h.sch.Sync(func(_ *cpu.CPU) {
		h.sch.OnReset = func() error {
			resets++
			return nil
		}
	}))

	h.sch.SetState(cpu.StateResetRun)
	h.waitFor(func() bool { return h.cycles() > 0 }, "reset and run")

	h.sch.SetState(cpu.StateStop)
	h.waitFor(func() bool { return h.sch.Status().State == cpu.StateStop }, "stop state")

	var n int
	test.ExpectSuccess(t, h.sch.Sync(func(_ *cpu.CPU) {
		n = resets
	}))
	test.ExpectEquality(t, n, 1)
}

func TestFrequency(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	// 1MHz
	h.sch.SetFrequency(1.0)
	h.sch.SetState(cpu.StateRun)
	time.Sleep(200 * time.Millisecond)
	h.sch.SetState(cpu.StateStop)
	h.waitFor(func() bool { return h.sch.Status().State == cpu.StateStop }, "stop state")

	// roughly 200000 cycles. an unthrottled CPU will manage many more
	c := h.cycles()
	test.ExpectSuccess(t, c > 0)
	test.ExpectSuccess(t, c < 2000000)
	test.ExpectEquality(t, h.sch.Status().Target, 1.0)
}

func TestExit(t *testing.T) {
	h := newHarness(t, program, cpu.StateRun)

	h.sch.SetState(cpu.StateExit)
	test.ExpectSuccess(t, <-h.result)
	h.result <- nil

	test.ExpectSuccess(t, h.sch.Finished())
	err := h.sch.Sync(func(_ *cpu.CPU) {})
	test.ExpectSuccess(t, curated.Is(err, scheduler.Finished))
}

func TestCancel(t *testing.T) {
	h := newHarness(t, program, cpu.StateRun)

	h.cancel()
	test.ExpectSuccess(t, <-h.result)
	h.result <- nil
	test.ExpectSuccess(t, h.sch.Finished())
}

func TestStopped(t *testing.T) {
	h := newHarness(t, program, cpu.StateStop)

	// make sure the scheduler has reached the idle loop
	test.ExpectSuccess(t, h.sch.Sync(func(_ *cpu.CPU) {}))

	h.runUntilStopped(cpu.StateStep, 2*time.Second)
	test.ExpectEquality(t, h.sch.Status().PC, uint16(origin+2))
}
