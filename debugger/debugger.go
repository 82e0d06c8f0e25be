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
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/debugger/commandline"
	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/disassembly"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
	"github.com/jetsetilly/mc6809/logger"
	"github.com/jetsetilly/mc6809/scheduler"
	"github.com/jetsetilly/mc6809/tracelog"
)

// DebuggerError is the pattern used for errors returned by commands.
const DebuggerError = "debugger: %v"

// how long a command waits for the CPU to stop before returning to the
// prompt
const stopTimeout = time.Second

// maximum depth of nested scripts
const maxScriptDepth = 8

// Memory defines the memory operations required by the monitor.
type Memory interface {
	cpubus.Memory
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
	Dump(address uint16, length int) string
}

// Debugger is the terminal monitor.
type Debugger struct {
	ctx context.Context

	term terminal.Terminal
	sch  *scheduler.Scheduler
	mem  Memory
	dsm  *disassembly.Disassembler

	cmds          *commandline.Commands
	tabCompletion *commandline.TabCompletion

	events terminal.ReadEvents

	// the active trace logger. nil if there is no trace
	tracer *tracelog.Logger

	// address of the next DISASM command without an address argument
	disasmNext  uint16
	disasmValid bool

	scriptDepth int

	quit bool
}

// NewDebugger creates and initialises a new monitor. The disassembler should
// be the one attached to the CPU.
func NewDebugger(term terminal.Terminal, sch *scheduler.Scheduler, mem Memory, dsm *disassembly.Disassembler) (*Debugger, error) {
	cmds, err := commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}

	dbg := &Debugger{
		ctx:           context.Background(),
		term:          term,
		sch:           sch,
		mem:           mem,
		dsm:           dsm,
		cmds:          cmds,
		tabCompletion: commandline.NewTabCompletion(cmds),
		events: terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	return dbg, nil
}

// Start the monitor. Returns when the user quits or when the scheduler has
// finished. The scheduler is asked to exit when the monitor quits.
func (dbg *Debugger) Start(ctx context.Context, initScript string) error {
	dbg.ctx = ctx

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(dbg.tabCompletion)

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	defer dbg.sch.SetState(cpu.StateExit)
	defer dbg.stopTrace()

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 256)

	for !dbg.quit {
		if dbg.ctx.Err() != nil || dbg.sch.Finished() {
			return nil
		}

		n, err := dbg.term.TermRead(buffer, dbg.prompt(), &dbg.events)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case curated.Is(err, terminal.UserInterrupt):
				dbg.interrupt()
				continue
			case curated.Is(err, terminal.UserAbort):
				return nil
			}
			return curated.Errorf(DebuggerError, err)
		}

		input := strings.TrimSpace(string(buffer[:n]))
		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.ExecuteCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// interrupt stops a running CPU or quits the monitor if the CPU is not
// running.
func (dbg *Debugger) interrupt() {
	if dbg.running() {
		dbg.setStateAndWait(cpu.StateStop)
		dbg.printLine(terminal.StyleFeedback, "stopped")
		return
	}
	dbg.quit = true
}

func (dbg *Debugger) running() bool {
	switch dbg.sch.State() {
	case cpu.StateRun, cpu.StateNext, cpu.StateStep, cpu.StateResetRun:
		return true
	}
	return false
}

func (dbg *Debugger) prompt() terminal.Prompt {
	if dbg.running() {
		return terminal.Prompt{Running: true}
	}
	st := dbg.sch.Status()
	return terminal.NewPrompt(st.PC, st.Mnemonic, st.Operand)
}

// setStateAndWait requests the state and waits for the CPU to stop. Returns
// false if the CPU is still running after the timeout.
func (dbg *Debugger) setStateAndWait(state cpu.State) bool {
	ch := dbg.sch.Stopped()
	dbg.sch.SetState(state)
	return dbg.waitForStop(ch, stopTimeout)
}

func (dbg *Debugger) waitForStop(ch <-chan bool, timeout time.Duration) bool {
	select {
	case <-ch:
		return true
	case <-dbg.sch.Done():
	case <-dbg.ctx.Done():
	case <-time.After(timeout):
	}
	return false
}

// sync runs the function on the scheduler goroutine.
func (dbg *Debugger) sync(fn func(mc *cpu.CPU)) error {
	if err := dbg.sch.Sync(fn); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	return nil
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.term.TermPrintLine(style, s)
}

func (dbg *Debugger) stopTrace() {
	if dbg.tracer == nil {
		return
	}

	tracer := dbg.tracer
	dbg.tracer = nil

	// the tracer might be in use by the CPU. detach it before closing
	err := dbg.sync(func(mc *cpu.CPU) {
		mc.SetTracer(nil)
	})
	if err != nil && !curated.Has(err, scheduler.Finished) {
		logger.Log(logger.Allow, "debugger", err)
	}

	if err := tracer.Close(); err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}
