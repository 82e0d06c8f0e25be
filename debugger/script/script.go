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

package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern used for all errors returned by the package.
const ScriptError = "script: %v"

// default timeout for the wait() function
const defaultWait = 1000

// Monitor defines the operations required to run a script.
type Monitor interface {
	// run a monitor command as though it had been typed by the user
	ExecuteCommand(input string) error

	// output to the monitor's terminal
	Print(s string)

	Register(name string) (uint16, error)
	SetRegister(name string, v uint16) error

	Peek(address uint16) (uint8, error)
	Poke(address uint16, v uint8) error

	// wait for the CPU to stop. returns false if the timeout expires first
	Wait(timeout time.Duration) bool
}

// RunFile runs the Lua script in the named file.
func RunFile(ctx context.Context, mon Monitor, filename string) error {
	L := newState(ctx, mon)
	defer L.Close()

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func RunString(ctx context.Context, mon Monitor, source string) error {
	L := newState(ctx, mon)
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func newState(ctx context.Context, mon Monitor) *lua.LState {
	L := lua.NewState()
	L.SetContext(ctx)

	// wraps a monitor command that takes no arguments
	command := func(s string) lua.LGFunction {
		return func(L *lua.LState) int {
			if err := mon.ExecuteCommand(s); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		}
	}

	functions := map[string]lua.LGFunction{
		"cmd": func(L *lua.LState) int {
			if err := mon.ExecuteCommand(L.CheckString(1)); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},

		"print": func(L *lua.LState) int {
			s := make([]string, L.GetTop())
			for i := range s {
				s[i] = L.ToStringMeta(L.Get(i + 1)).String()
			}
			mon.Print(strings.Join(s, "\t"))
			return 0
		},

		"reg": func(L *lua.LState) int {
			v, err := mon.Register(L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
			}
			L.Push(lua.LNumber(v))
			return 1
		},

		"setreg": func(L *lua.LState) int {
			if err := mon.SetRegister(L.CheckString(1), uint16(L.CheckInt(2))); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},

		"peek": func(L *lua.LState) int {
			v, err := mon.Peek(uint16(L.CheckInt(1)))
			if err != nil {
				L.RaiseError("%v", err)
			}
			L.Push(lua.LNumber(v))
			return 1
		},

		"poke": func(L *lua.LState) int {
			if err := mon.Poke(uint16(L.CheckInt(1)), uint8(L.CheckInt(2))); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},

		"step": func(L *lua.LState) int {
			n := L.OptInt(1, 1)
			if err := mon.ExecuteCommand(fmt.Sprintf("STEP %d", n)); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},

		"wait": func(L *lua.LState) int {
			ms := L.OptInt(1, defaultWait)
			L.Push(lua.LBool(mon.Wait(time.Duration(ms) * time.Millisecond)))
			return 1
		},

		"bp": func(L *lua.LState) int {
			if err := mon.ExecuteCommand(fmt.Sprintf("BREAK %d %d", L.CheckInt(1), L.CheckInt(2))); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},

		"run":  command("RUN"),
		"stop": command("STOP"),
		"irq":  command("IRQ"),
		"firq": command("FIRQ"),
		"nmi":  command("NMI"),
	}

	for name, fn := range functions {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	return L
}
