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

package remote_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/remote"
	"github.com/jetsetilly/mc6809/test"
)

const origin = 0x1000

// LDA #$42 ; STA $2000 ; NOP ; BRA *
var program = []uint8{0x86, 0x42, 0xb7, 0x20, 0x00, 0x12, 0x20, 0xfe}

// failingMem fails every access to the fail address
type failingMem struct {
	*memory.Memory
	fail uint16
}

func (mem *failingMem) Read(address uint16) (uint8, error) {
	if address == mem.fail {
		return 0, fmt.Errorf("no memory at %04x", address)
	}
	return mem.Memory.Read(address)
}

func connect(t *testing.T, code []uint8) (*remote.Client, *failingMem) {
	t.Helper()

	mem := &failingMem{Memory: memory.NewMemory(), fail: 0x3000}
	mem.PokeBlock(origin, code)
	test.DemandSuccess(t, cpubus.WriteWord(mem, cpubus.Reset, origin))

	ts := httptest.NewServer(remote.NewServer(false).Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + remote.Path
	cl, err := remote.Dial(context.Background(), url, mem)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = cl.Close()
	})

	return cl, mem
}

func TestRegisters(t *testing.T) {
	cl, _ := connect(t, program)

	test.ExpectSuccess(t, cl.SetRegister(remote.RegD, 0x1234))
	a, err := cl.Register(remote.RegA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x12))
	b, err := cl.Register(remote.RegB)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint16(0x34))

	test.ExpectSuccess(t, cl.SetRegister(remote.RegA, 0x1ff))
	a, err = cl.Register(remote.RegA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0xff))

	for _, r := range []remote.Register{remote.RegX, remote.RegY, remote.RegU, remote.RegS, remote.RegPC} {
		test.ExpectSuccess(t, cl.SetRegister(r, 0xbeef))
		v, err := cl.Register(r)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint16(0xbeef))
	}

	test.ExpectSuccess(t, cl.SetRegister(remote.RegDP, 0x20))
	dp, err := cl.Register(remote.RegDP)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dp, uint16(0x20))

	test.ExpectSuccess(t, cl.SetRegister(remote.RegCC, 0x0f))
	cc, err := cl.Register(remote.RegCC)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cc, uint16(0x0f))
}

func TestResetAndStep(t *testing.T) {
	cl, mem := connect(t, program)

	test.DemandSuccess(t, cl.Reset())
	pc, err := cl.Register(remote.RegPC)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pc, uint16(origin))

	state, err := cl.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	a, err := cl.Register(remote.RegA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x42))

	// the store is written through to the client's memory
	_, err = cl.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Peek(0x2000), uint8(0x42))
}

func TestRunToBreakpoint(t *testing.T) {
	cl, _ := connect(t, program)

	test.DemandSuccess(t, cl.Reset())
	test.ExpectSuccess(t, cl.SetBreakpoint(0, origin+5))

	state, err := cl.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)
	pc, err := cl.Register(remote.RegPC)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pc, uint16(origin+5))

	test.ExpectFailure(t, cl.SetBreakpoint(2, origin))
	test.ExpectSuccess(t, cl.ClearBreakpoint(0))
}

func TestInvalid(t *testing.T) {
	cl, _ := connect(t, []uint8{0x12, 0x87})

	test.DemandSuccess(t, cl.Reset())
	state, err := cl.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateInvalid)
}

func TestBusFail(t *testing.T) {
	// LDA $3000
	cl, _ := connect(t, []uint8{0xb6, 0x30, 0x00})

	test.DemandSuccess(t, cl.Reset())
	_, err := cl.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, remote.PeerFail))

	// the connection survives a failed bus access
	pc, err := cl.Register(remote.RegPC)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, pc, uint16(0))
}

func TestTrace(t *testing.T) {
	cl, _ := connect(t, program)

	var trace []string
	cl.OnTrace = func(pc uint16, opcode uint8, disasm string) {
		trace = append(trace, fmt.Sprintf("%04X %02X %s", pc, opcode, disasm))
	}

	test.DemandSuccess(t, cl.Reset())
	test.ExpectSuccess(t, cl.Trace(true))
	_, err := cl.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cl.Trace(false))
	_, err = cl.Step()
	test.ExpectSuccess(t, err)

	test.DemandEquality(t, len(trace), 1)
	test.ExpectSuccess(t, strings.HasPrefix(trace[0], "1000 86 LDA"))
}

func TestTraceRun(t *testing.T) {
	cl, _ := connect(t, program)

	// only the end of the trace is of interest
	ring, err := test.NewRingWriter(40)
	test.DemandSuccess(t, err)
	cl.OnTrace = func(pc uint16, opcode uint8, disasm string) {
		fmt.Fprintf(ring, "%04X %02X %s\n", pc, opcode, disasm)
	}

	test.DemandSuccess(t, cl.Reset())
	test.DemandSuccess(t, cl.SetBreakpoint(0, origin+6))
	test.DemandSuccess(t, cl.Trace(true))

	state, err := cl.Run()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, cpu.StateStop)

	// the instruction at the breakpoint is not traced
	lines := ring.Lines()
	test.DemandSuccess(t, len(lines) > 0)
	test.ExpectSuccess(t, strings.HasPrefix(lines[len(lines)-1], "1005 12 NOP"), lines[len(lines)-1])
}

func TestListenAndServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- remote.NewServer(false).ListenAndServe(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		test.ExpectSuccess(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
