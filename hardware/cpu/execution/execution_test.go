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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
	"github.com/jetsetilly/mc6809/hardware/cpu/instructions"
	"github.com/jetsetilly/mc6809/test"
)

func result(cycles int, bytes ...uint8) execution.Result {
	var r execution.Result
	r.Reset(0x1000)
	for _, b := range bytes {
		r.AddByte(b)
	}
	r.Defn, _ = instructions.Decode(bytes)
	r.Cycles = cycles
	r.Final = true
	return r
}

func TestIsValid(t *testing.T) {
	// LDA #$01
	r := result(2, 0x86, 0x01)
	test.ExpectSuccess(t, r.IsValid())

	r.Final = false
	test.ExpectFailure(t, r.IsValid())

	// wrong cycle count
	r = result(3, 0x86, 0x01)
	test.ExpectFailure(t, r.IsValid())

	// too few bytes for the definition
	r = result(5, 0xb6, 0x12)
	test.ExpectFailure(t, r.IsValid())

	// LDA n16,X costs four cycles for the postbyte
	r = result(8, 0xa6, 0x89, 0x12, 0x34)
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.Postbyte(), uint8(0x89))

	// LBEQ taken and not taken
	r = result(5, 0x10, 0x27, 0x00, 0x10)
	test.ExpectSuccess(t, r.IsValid())
	r.BranchTaken = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 6
	test.ExpectSuccess(t, r.IsValid())

	// PSHS CC,A,B,DP,X,Y,U,PC
	r = result(17, 0x34, 0xff)
	test.ExpectSuccess(t, r.IsValid())

	// RTI with the entire state
	r = result(15, 0x3b)
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 7
	test.ExpectFailure(t, r.IsValid())
}

func TestResultString(t *testing.T) {
	r := result(2, 0x86, 0x01)
	test.ExpectEquality(t, r.String(), "1000 8601       LDA [2]")

	r.Final = false
	test.ExpectEquality(t, r.String(), "     8601       LDA [v]")
}
