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

package tracelog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/test"
	"github.com/jetsetilly/mc6809/tracelog"
)

// LDA #$42 ; NOP ; NOP ; BRA $1000
var program = []uint8{0x86, 0x42, 0x12, 0x12, 0x20, 0xfa}

func setup(t *testing.T, w *strings.Builder, cfg tracelog.Config) (*cpu.CPU, *tracelog.Logger) {
	t.Helper()

	mem := memory.NewMemory()
	mem.PokeBlock(0x1000, program)
	test.DemandSuccess(t, cpubus.WriteWord(mem, cpubus.Reset, 0x1000))

	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())

	tl := tracelog.NewLogger(w, cfg, mem, nil)
	mc.SetTracer(tl)
	test.DemandEquality(t, mc.Events()&cpu.EventLog, cpu.EventLog)

	return mc, tl
}

func steps(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for range n {
		_, err := mc.Run(cpu.StepInto)
		test.DemandSuccess(t, err)
	}
}

func TestText(t *testing.T) {
	w := &strings.Builder{}
	cfg := tracelog.DefaultConfig()
	cfg.Registers = tracelog.A | tracelog.X

	mc, tl := setup(t, w, cfg)
	steps(t, mc, 2)
	test.ExpectSuccess(t, tl.Close())

	expected := fmt.Sprintf("1000 %-24s A=00 X=0000\n1002 %-24s A=42 X=0000\n", "LDA   #$42", "NOP")
	test.ExpectEquality(t, w.String(), expected)
}

func TestStartStop(t *testing.T) {
	w := &strings.Builder{}
	cfg := tracelog.DefaultConfig()
	cfg.Registers = tracelog.NoRegisters
	cfg.StartAddr = 0x1002
	cfg.StopAddr = 0x1004

	mc, tl := setup(t, w, cfg)
	steps(t, mc, 6)
	test.ExpectSuccess(t, tl.Flush())

	test.ExpectEquality(t, w.String(), "1002 NOP\n1003 NOP\n1002 NOP\n")
}

func TestWindow(t *testing.T) {
	w := &strings.Builder{}
	cfg := tracelog.DefaultConfig()
	cfg.Registers = tracelog.NoRegisters
	cfg.MinAddr = 0x1003
	cfg.MaxAddr = 0x1004

	mc, tl := setup(t, w, cfg)
	steps(t, mc, 4)
	test.ExpectSuccess(t, tl.Flush())

	test.ExpectEquality(t, w.String(), "1003 NOP\n1004 BRA $1000\n")
}

func TestCSV(t *testing.T) {
	w := &strings.Builder{}
	cfg := tracelog.DefaultConfig()
	cfg.Format = tracelog.CSV
	cfg.LogCycles = true
	cfg.Registers = tracelog.CC | tracelog.A

	mc, tl := setup(t, w, cfg)
	steps(t, mc, 2)
	test.ExpectSuccess(t, tl.Flush())

	expected := "cycles,PC,mnemonic,operands,CC,A\n" +
		"0,1000,LDA,#$42,-F-I----,00\n" +
		"2,1002,NOP,,-F-I----,42\n"
	test.ExpectEquality(t, w.String(), expected)
}

func TestDetach(t *testing.T) {
	w := &strings.Builder{}
	mc, _ := setup(t, w, tracelog.DefaultConfig())

	mc.SetTracer(nil)
	test.ExpectEquality(t, mc.Events()&cpu.EventLog, cpu.Event(0))
	steps(t, mc, 1)
	test.ExpectEquality(t, w.String(), "")
}

func TestRegisterString(t *testing.T) {
	test.ExpectEquality(t, tracelog.AllRegisters.String(), "CC,A,B,DP,X,Y,U,S")
	test.ExpectEquality(t, (tracelog.A | tracelog.S).String(), "A,S")
}
