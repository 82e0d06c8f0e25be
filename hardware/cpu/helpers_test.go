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
	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	_ = cpubus.WriteWord(mem, vector, address)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

// newCPU returns a CPU that has been reset to the origin address
func newCPU(t *testing.T, origin uint16) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.putVector(cpubus.Reset, origin)
	mc := cpu.NewCPU(mem)
	if err := mc.Reset(); err != nil {
		t.Fatal(err)
	}
	mc.S.Load(0x8000)
	mc.U.Load(0x9000)
	return mc, mem
}

// step executes one instruction and checks that the result is valid
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%v: %s", err, mc.LastResult.String())
	}
	return mc.LastResult
}
