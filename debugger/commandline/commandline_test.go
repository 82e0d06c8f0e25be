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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/mc6809/debugger/commandline"
	"github.com/jetsetilly/mc6809/test"
)

var template = []string{
	"RUN",
	"MEM [%V] (%V)",
	"UNDOC [ON|OFF]",
	"TRACE [OFF|%F] (CSV)",
	"FREQ [%I]",
	"TEST [arg]",
	"TEST1 [arg]",
}

func TestTemplate(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cmds.Usage("mem"), "MEM [%V] (%V)")
	test.ExpectEquality(t, cmds.Usage("trace"), "TRACE [OFF|%F] (CSV)")
	test.ExpectEquality(t, cmds.Usage("nothing"), "")

	names := cmds.Names()
	test.ExpectEquality(t, len(names), len(template))
	test.ExpectEquality(t, names[0], "FREQ")

	_, err = commandline.ParseCommandTemplate([]string{"FOO (%V) [%V]"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"FOO [%X]"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"FOO [BAR"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"FOO", "foo"})
	test.ExpectFailure(t, err)
}

func TestValidation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("run"))
	test.ExpectSuccess(t, cmds.Validate(""))
	test.ExpectFailure(t, cmds.Validate("run 10"))
	test.ExpectFailure(t, cmds.Validate("walk"))

	test.ExpectSuccess(t, cmds.Validate("MEM $1000"))
	test.ExpectSuccess(t, cmds.Validate("mem 0x1000 16"))
	test.ExpectFailure(t, cmds.Validate("mem"))
	test.ExpectFailure(t, cmds.Validate("mem foo"))
	test.ExpectFailure(t, cmds.Validate("mem 1 2 3"))

	test.ExpectSuccess(t, cmds.Validate("undoc on"))
	test.ExpectFailure(t, cmds.Validate("undoc maybe"))

	test.ExpectSuccess(t, cmds.Validate("trace off"))
	test.ExpectSuccess(t, cmds.Validate("trace out.log csv"))
	test.ExpectFailure(t, cmds.Validate("trace out.log json"))

	test.ExpectSuccess(t, cmds.Validate("freq 1.5"))
	test.ExpectFailure(t, cmds.Validate("freq fast"))
}

func TestTokens(t *testing.T) {
	tk := commandline.TokeniseInput("  poke $10   255 ")
	test.ExpectEquality(t, tk.String(), "poke $10   255")
	test.ExpectEquality(t, tk.Remaining(), 3)

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "poke")

	s, _ = tk.Peek()
	test.ExpectEquality(t, s, "0x10")
	test.ExpectEquality(t, tk.Remainder(), "0x10 255")

	tk.Unget()
	test.ExpectEquality(t, tk.Remaining(), 3)

	tk.Get()
	tk.Get()
	tk.Get()
	test.ExpectSuccess(t, tk.IsEnd())
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)
}

func TestParseValue(t *testing.T) {
	v, err := commandline.ParseValue("0x1F")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(31))

	v, err = commandline.ParseValue("$ff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(255))

	v, err = commandline.ParseValue("010")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(10))

	_, err = commandline.ParseValue("0x")
	test.ExpectFailure(t, err)
}

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	completion := tc.Complete("TE")
	test.ExpectEquality(t, completion, "TEST ")

	// next completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST1 ")

	// cycle back to the first completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("TEST a"), "TEST ARG ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("undoc o"), "undoc ON ")
	test.ExpectEquality(t, tc.Complete("undoc ON "), "undoc OFF ")

	// keywords only. placeholders are not completed
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("trace "), "trace OFF ")

	// nothing to complete
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("mem 10"), "mem 10")
	test.ExpectEquality(t, tc.Complete("xyz"), "xyz")
	test.ExpectEquality(t, tc.Complete("run foo"), "run foo")
	test.ExpectEquality(t, tc.Complete(""), "")
}
