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

package tracelog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/disassembly"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/cpu/execution"
	"github.com/jetsetilly/mc6809/hardware/memory/cpubus"
)

// Sentinel error patterns.
const (
	TraceError = "tracelog: %v"
)

type peeker interface {
	Peek(address uint16) uint8
}

// Logger writes the state of the CPU before each instruction.
type Logger struct {
	cfg Config
	mem cpubus.Memory
	dsm *disassembly.Disassembler

	out    *bufio.Writer
	csv    *csv.Writer
	closer io.Closer

	active bool
	header bool
}

// NewLogger is the preferred method of initialisation for the Logger type.
// The memory is used to read the instruction at the PC. It is read without
// side effects if the memory allows it.
func NewLogger(w io.Writer, cfg Config, mem cpubus.Memory, dsm *disassembly.Disassembler) *Logger {
	if dsm == nil {
		dsm = disassembly.NewDisassembler(false)
	}

	tl := &Logger{
		cfg:    cfg,
		mem:    mem,
		dsm:    dsm,
		out:    bufio.NewWriter(w),
		active: cfg.StartAddr == NoAddress,
		header: cfg.Format == CSV,
	}

	if cfg.Format == CSV {
		tl.csv = csv.NewWriter(tl.out)
		if cfg.Separator != 0 {
			tl.csv.Comma = cfg.Separator
		}
	}

	return tl
}

// Create a Logger that writes to the named file. The file is closed by
// Close().
func Create(filename string, cfg Config, mem cpubus.Memory, dsm *disassembly.Disassembler) (*Logger, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(TraceError, err)
	}
	tl := NewLogger(f, cfg, mem, dsm)
	tl.closer = f
	return tl, nil
}

// Close flushes any buffered output and closes the file if the Logger was
// created with Create().
func (tl *Logger) Close() error {
	err := tl.Flush()
	if tl.closer != nil {
		if cerr := tl.closer.Close(); err == nil && cerr != nil {
			err = curated.Errorf(TraceError, cerr)
		}
		tl.closer = nil
	}
	return err
}

// Flush any buffered output.
func (tl *Logger) Flush() error {
	if tl.csv != nil {
		tl.csv.Flush()
		if err := tl.csv.Error(); err != nil {
			return curated.Errorf(TraceError, err)
		}
	}
	if err := tl.out.Flush(); err != nil {
		return curated.Errorf(TraceError, err)
	}
	return nil
}

// shouldLog updates the active state and returns true if the instruction at
// the PC should be logged
func (tl *Logger) shouldLog(pc uint16) bool {
	if uint32(pc) == tl.cfg.StartAddr {
		tl.active = true
	}
	if uint32(pc) == tl.cfg.StopAddr {
		tl.active = false
	}
	return tl.active && pc >= tl.cfg.MinAddr && pc <= tl.cfg.MaxAddr
}

func (tl *Logger) read(address uint16) (uint8, error) {
	if p, ok := tl.mem.(peeker); ok {
		return p.Peek(address), nil
	}
	return tl.mem.Read(address)
}

// Trace implements the cpu.Tracer interface.
func (tl *Logger) Trace(mc *cpu.CPU) error {
	pc := mc.PC.Address()
	if !tl.shouldLog(pc) {
		return nil
	}

	window := make([]uint8, execution.MaxBytes)
	for i := range window {
		v, err := tl.read(pc + uint16(i))
		if err != nil {
			return curated.Errorf(TraceError, err)
		}
		window[i] = v
	}

	e, err := tl.dsm.Disassemble(window, pc)
	if err != nil {
		return curated.Errorf(TraceError, err)
	}

	switch tl.cfg.Format {
	case CSV:
		return tl.writeCSV(mc, e)
	default:
		return tl.writeText(mc, e)
	}
}

// the value of each register in the order of the registerNames list
func registerValues(mc *cpu.CPU) []string {
	return []string{
		mc.CC.Dashes(),
		fmt.Sprintf("%02X", mc.A.Value()),
		fmt.Sprintf("%02X", mc.B.Value()),
		fmt.Sprintf("%02X", mc.DP.Value()),
		fmt.Sprintf("%04X", mc.X.Value()),
		fmt.Sprintf("%04X", mc.Y.Value()),
		fmt.Sprintf("%04X", mc.U.Value()),
		fmt.Sprintf("%04X", mc.S.Value()),
	}
}

func (tl *Logger) writeText(mc *cpu.CPU, e disassembly.Entry) error {
	s := strings.Builder{}

	if tl.cfg.LogCycles {
		s.WriteString(fmt.Sprintf("%20d ", mc.Cycles(false)))
	}

	if tl.cfg.Registers == NoRegisters {
		s.WriteString(fmt.Sprintf("%04X %s", e.Address, e.Mnemonic))
		if e.Operand != "" {
			s.WriteString(" ")
			s.WriteString(e.Operand)
		}
	} else {
		mnemonic := e.Mnemonic
		if e.Operand != "" {
			mnemonic = fmt.Sprintf("%-5s %s", e.Mnemonic, e.Operand)
		}
		s.WriteString(fmt.Sprintf("%04X %-24s", e.Address, mnemonic))

		values := registerValues(mc)
		for i, n := range registerNames {
			if tl.cfg.Registers&(1<<i) != 0 {
				s.WriteString(fmt.Sprintf(" %s=%s", n, values[i]))
			}
		}
	}

	s.WriteString("\n")

	if _, err := tl.out.WriteString(s.String()); err != nil {
		return curated.Errorf(TraceError, err)
	}
	return nil
}

func (tl *Logger) writeCSV(mc *cpu.CPU, e disassembly.Entry) error {
	if tl.header {
		var rec []string
		if tl.cfg.LogCycles {
			rec = append(rec, "cycles")
		}
		rec = append(rec, "PC", "mnemonic", "operands")
		for i, n := range registerNames {
			if tl.cfg.Registers&(1<<i) != 0 {
				rec = append(rec, n)
			}
		}
		if err := tl.csv.Write(rec); err != nil {
			return curated.Errorf(TraceError, err)
		}
		tl.header = false
	}

	var rec []string
	if tl.cfg.LogCycles {
		rec = append(rec, fmt.Sprintf("%d", mc.Cycles(false)))
	}
	rec = append(rec, fmt.Sprintf("%04X", e.Address), e.Mnemonic, e.Operand)

	values := registerValues(mc)
	for i := range registerNames {
		if tl.cfg.Registers&(1<<i) != 0 {
			rec = append(rec, values[i])
		}
	}

	if err := tl.csv.Write(rec); err != nil {
		return curated.Errorf(TraceError, err)
	}
	return nil
}
