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

package debugger

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/hardware/cpu"
)

// Print implements the script.Monitor interface.
func (dbg *Debugger) Print(s string) {
	dbg.printLine(terminal.StyleScript, s)
}

// Register implements the script.Monitor interface. Register names are the
// names used by the assembler. The D register is the A and B registers
// combined.
func (dbg *Debugger) Register(name string) (uint16, error) {
	var v uint16
	var ok bool

	err := dbg.sync(func(mc *cpu.CPU) {
		ok = true
		switch strings.ToUpper(name) {
		case "A":
			v = uint16(mc.A.Value())
		case "B":
			v = uint16(mc.B.Value())
		case "D":
			v = mc.D()
		case "DP":
			v = uint16(mc.DP.Value())
		case "CC":
			v = uint16(mc.CC.Value())
		case "X":
			v = mc.X.Value()
		case "Y":
			v = mc.Y.Value()
		case "U":
			v = mc.U.Value()
		case "S":
			v = mc.S.Value()
		case "PC":
			v = mc.PC.Value()
		default:
			ok = false
		}
	})
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, curated.Errorf(DebuggerError, fmt.Sprintf("unknown register (%s)", name))
	}

	return v, nil
}

// SetRegister implements the script.Monitor interface. The value is truncated
// to eight bits for the 8 bit registers.
func (dbg *Debugger) SetRegister(name string, v uint16) error {
	var ok bool

	err := dbg.sync(func(mc *cpu.CPU) {
		ok = true
		switch strings.ToUpper(name) {
		case "A":
			mc.A.Load(uint8(v))
		case "B":
			mc.B.Load(uint8(v))
		case "D":
			mc.SetD(v)
		case "DP":
			mc.DP.Load(uint8(v))
		case "CC":
			mc.CC.FromValue(uint8(v))
		case "X":
			mc.X.Load(v)
		case "Y":
			mc.Y.Load(v)
		case "U":
			mc.U.Load(v)
		case "S":
			mc.S.Load(v)
		case "PC":
			mc.PC.Load(v)
		default:
			ok = false
		}
	})
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(DebuggerError, fmt.Sprintf("unknown register (%s)", name))
	}

	return nil
}

// Peek implements the script.Monitor interface.
func (dbg *Debugger) Peek(address uint16) (uint8, error) {
	var v uint8
	err := dbg.sync(func(_ *cpu.CPU) {
		v = dbg.mem.Peek(address)
	})
	return v, err
}

// Poke implements the script.Monitor interface.
func (dbg *Debugger) Poke(address uint16, v uint8) error {
	return dbg.sync(func(_ *cpu.CPU) {
		dbg.mem.Poke(address, v)
	})
}

// Wait implements the script.Monitor interface.
func (dbg *Debugger) Wait(timeout time.Duration) bool {
	// the channel must be taken before checking the state
	ch := dbg.sch.Stopped()
	if !dbg.running() {
		return true
	}
	return dbg.waitForStop(ch, timeout)
}
