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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/performance"
	"github.com/jetsetilly/mc6809/test"
)

func TestCalcMHz(t *testing.T) {
	test.ExpectApproximate(t, performance.CalcMHz(2000000, 2.0), 1.0, 0.0001)
	test.ExpectEquality(t, performance.CalcMHz(1000, 0), 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	mem := memory.NewMemory()

	// BRA *
	mem.PokeBlock(0x1000, []uint8{0x20, 0xfe})
	test.DemandSuccess(t, cpubus.WriteWord(mem, cpubus.Reset, 0x1000))

	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())

	w := &strings.Builder{}
	test.ExpectSuccess(t, performance.Check(w, performance.ProfileNone, mc, "50ms"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "seconds)\n"))
	test.ExpectSuccess(t, mc.Cycles(false) > 0)

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, mc, "soon"))
}
