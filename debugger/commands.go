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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/debugger/commandline"
	"github.com/jetsetilly/mc6809/debugger/script"
	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/disassembly"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/logger"
	"github.com/jetsetilly/mc6809/tracelog"
)

// default arguments
const (
	defaultMemLength    = 64
	defaultDisasmLength = 16
)

// ExecuteCommand parses and runs a single monitor command.
func (dbg *Debugger) ExecuteCommand(input string) error {
	tokens := commandline.TokeniseInput(input)
	if err := dbg.cmds.ValidateTokens(tokens); err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	command, ok := tokens.Get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	// the address of the next DISASM is forgotten by everything but DISASM
	if command != "DISASM" {
		dbg.disasmValid = false
	}

	switch command {
	case "STEP":
		n := 1
		if v, ok := tokens.Get(); ok {
			n = int(dbg.value(v))
		}
		for i := 0; i < n; i++ {
			if !dbg.setStateAndWait(cpu.StateStep) {
				return curated.Errorf(DebuggerError, "step did not complete")
			}
		}
		dbg.printRegisters()

	case "NEXT":
		if dbg.setStateAndWait(cpu.StateNext) {
			dbg.printRegisters()
		} else {
			dbg.printLine(terminal.StyleFeedback, "running")
		}

	case "RUN":
		dbg.sch.SetState(cpu.StateRun)
		dbg.printLine(terminal.StyleFeedback, "running")

	case "STOP":
		if !dbg.setStateAndWait(cpu.StateStop) {
			return curated.Errorf(DebuggerError, "stop did not complete")
		}
		dbg.printRegisters()

	case "RESET":
		if !dbg.setStateAndWait(cpu.StateReset) {
			return curated.Errorf(DebuggerError, "reset did not complete")
		}
		dbg.printRegisters()

	case "BREAK":
		slot, err := dbg.breakpointSlot(tokens)
		if err != nil {
			return err
		}
		v, _ := tokens.Get()
		addr, err := dbg.address(v)
		if err != nil {
			return err
		}
		err = dbg.sync(func(mc *cpu.CPU) {
			mc.SetBreakpoint(slot, addr)
		})
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint %d at $%04X", slot, addr))

	case "CLEAR":
		slot, err := dbg.breakpointSlot(tokens)
		if err != nil {
			return err
		}
		err = dbg.sync(func(mc *cpu.CPU) {
			mc.ResetBreakpoint(slot)
		})
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint %d cleared", slot))

	case "LIST":
		var s []string
		err := dbg.sync(func(mc *cpu.CPU) {
			for slot := 0; slot < 2; slot++ {
				if addr, ok := mc.Breakpoint(slot); ok {
					s = append(s, fmt.Sprintf("%d: $%04X", slot, addr))
				} else {
					s = append(s, fmt.Sprintf("%d: none", slot))
				}
			}
		})
		if err != nil {
			return err
		}
		for _, l := range s {
			dbg.printLine(terminal.StyleFeedback, l)
		}

	case "CPU":
		var st cpu.Status
		var stErr error
		err := dbg.sync(func(mc *cpu.CPU) {
			st, stErr = mc.Status()
		})
		if err != nil {
			return err
		}
		if stErr != nil {
			return curated.Errorf(DebuggerError, stErr)
		}
		sch := dbg.sch.Status()
		dbg.printLine(terminal.StyleCPU, st.String())
		dbg.printLine(terminal.StyleCPU, fmt.Sprintf("state=%s frequency=%.2fMHz", sch.State, sch.Frequency))

	case "MEM":
		v, _ := tokens.Get()
		addr, err := dbg.address(v)
		if err != nil {
			return err
		}
		length := defaultMemLength
		if v, ok := tokens.Get(); ok {
			length = int(dbg.value(v))
			if length < 1 || length > 0x10000 {
				return curated.Errorf(DebuggerError, fmt.Sprintf("length out of range (%d)", length))
			}
		}
		var s string
		err = dbg.sync(func(_ *cpu.CPU) {
			s = dbg.mem.Dump(addr, length)
		})
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPU, s)

	case "POKE":
		v, _ := tokens.Get()
		addr, err := dbg.address(v)
		if err != nil {
			return err
		}
		v, _ = tokens.Get()
		data := dbg.value(v)
		if data > 0xff {
			return curated.Errorf(DebuggerError, fmt.Sprintf("value out of range ($%X)", data))
		}
		err = dbg.sync(func(_ *cpu.CPU) {
			dbg.mem.Poke(addr, uint8(data))
		})
		if err != nil {
			return err
		}

	case "DISASM":
		return dbg.disasm(tokens)

	case "IRQ":
		return dbg.sync(func(mc *cpu.CPU) { mc.SetIRQ() })
	case "FIRQ":
		return dbg.sync(func(mc *cpu.CPU) { mc.SetFIRQ() })
	case "NMI":
		return dbg.sync(func(mc *cpu.CPU) { mc.SetNMI() })

	case "FREQ":
		v, _ := tokens.Get()
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return curated.Errorf(DebuggerError, err)
		}
		dbg.sch.SetFrequency(f)
		if f > 0 {
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("frequency %.2fMHz", f))
		} else {
			dbg.printLine(terminal.StyleFeedback, "frequency unlimited")
		}

	case "UNDOC":
		v, ok := tokens.Get()
		var on bool
		err := dbg.sync(func(mc *cpu.CPU) {
			if ok {
				mc.UseUndocumented = strings.ToUpper(v) == "ON"
				dbg.dsm.UseUndocumented = mc.UseUndocumented
			}
			on = mc.UseUndocumented
		})
		if err != nil {
			return err
		}
		if on {
			dbg.printLine(terminal.StyleFeedback, "undocumented opcodes on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "undocumented opcodes off")
		}

	case "TRACE":
		v, _ := tokens.Get()
		if strings.ToUpper(v) == "OFF" {
			dbg.stopTrace()
			dbg.printLine(terminal.StyleFeedback, "trace off")
			return nil
		}
		cfg := tracelog.DefaultConfig()
		if _, ok := tokens.Get(); ok {
			cfg.Format = tracelog.CSV
		}
		return dbg.startTrace(v, cfg)

	case "LOG":
		if _, ok := tokens.Get(); ok {
			logger.Clear()
			return nil
		}
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				dbg.printLine(terminal.StyleLog, e.String())
			}
		})

	case "MEMVIZ":
		v, _ := tokens.Get()
		return dbg.memviz(v)

	case "SCRIPT":
		v, _ := tokens.Get()
		return dbg.runScript(v)

	case "HELP":
		if v, ok := tokens.Get(); ok {
			usage := dbg.cmds.Usage(v)
			if usage == "" {
				return curated.Errorf(DebuggerError, fmt.Sprintf("no help for %s", v))
			}
			dbg.printLine(terminal.StyleHelp, usage)
			dbg.printLine(terminal.StyleHelp, help[strings.ToUpper(v)])
			return nil
		}
		dbg.printLine(terminal.StyleHelp, strings.Join(dbg.cmds.Names(), " "))

	case "QUIT":
		dbg.quit = true
	}

	return nil
}

// value of a token that has been validated as a %V placeholder
func (dbg *Debugger) value(tok string) uint64 {
	v, _ := commandline.ParseValue(tok)
	return v
}

func (dbg *Debugger) address(tok string) (uint16, error) {
	v := dbg.value(tok)
	if v > 0xffff {
		return 0, curated.Errorf(DebuggerError, fmt.Sprintf("address out of range ($%X)", v))
	}
	return uint16(v), nil
}

func (dbg *Debugger) breakpointSlot(tokens *commandline.Tokens) (int, error) {
	v, _ := tokens.Get()
	slot := dbg.value(v)
	if slot > 1 {
		return 0, curated.Errorf(DebuggerError, fmt.Sprintf("breakpoint slot must be 0 or 1 (%d)", slot))
	}
	return int(slot), nil
}

func (dbg *Debugger) printRegisters() {
	st := dbg.sch.Status()
	dbg.printLine(terminal.StyleCPU, st.Registers())
}

func (dbg *Debugger) disasm(tokens *commandline.Tokens) error {
	var addr uint16
	var addrOk bool

	if v, ok := tokens.Get(); ok {
		var err error
		addr, err = dbg.address(v)
		if err != nil {
			return err
		}
		addrOk = true
	} else if dbg.disasmValid {
		addr = dbg.disasmNext
		addrOk = true
	}

	n := defaultDisasmLength
	if v, ok := tokens.Get(); ok {
		n = int(dbg.value(v))
	}

	var entries []disassembly.Entry
	var dsmErr error
	err := dbg.sync(func(mc *cpu.CPU) {
		if !addrOk {
			addr = mc.PC.Address()
		}
		entries, dsmErr = dbg.dsm.Count(dbg.mem, addr, n)
	})
	if err != nil {
		return err
	}
	if dsmErr != nil {
		return curated.Errorf(DebuggerError, dsmErr)
	}

	s := &strings.Builder{}
	if err := disassembly.Write(s, entries, disassembly.WriteAttr{ByteCode: true}); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		if l != "" {
			dbg.printLine(terminal.StyleDisasm, l)
		}
	}

	if len(entries) > 0 {
		dbg.disasmNext = entries[len(entries)-1].Next()
		dbg.disasmValid = true
	}

	return nil
}

func (dbg *Debugger) startTrace(filename string, cfg tracelog.Config) error {
	dbg.stopTrace()

	tracer, err := tracelog.Create(filename, cfg, dbg.mem, dbg.dsm)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	err = dbg.sync(func(mc *cpu.CPU) {
		mc.SetTracer(tracer)
	})
	if err != nil {
		_ = tracer.Close()
		return err
	}

	dbg.tracer = tracer
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("tracing to %s (%s)", filename, cfg.Format))

	return nil
}

func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer f.Close()

	var st cpu.Status
	err = dbg.sync(func(mc *cpu.CPU) {
		st, _ = mc.Status()
	})
	if err != nil {
		return err
	}

	memviz.Map(f, &st)
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("memviz written to %s", filename))

	return nil
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf(DebuggerError, "scripts nested too deeply")
	}

	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	if err := script.RunFile(dbg.ctx, dbg, filename); err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	return nil
}
