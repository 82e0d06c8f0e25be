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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/mc6809/debugger"
	"github.com/jetsetilly/mc6809/debugger/commandline"
	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/debugger/terminal/colorterm"
	"github.com/jetsetilly/mc6809/debugger/terminal/plainterm"
	"github.com/jetsetilly/mc6809/disassembly"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/hardware/memory"
	"github.com/jetsetilly/mc6809/hardware/peripherals/acia"
	"github.com/jetsetilly/mc6809/logger"
	"github.com/jetsetilly/mc6809/modalflag"
	"github.com/jetsetilly/mc6809/performance"
	"github.com/jetsetilly/mc6809/remote"
	"github.com/jetsetilly/mc6809/scheduler"
	"github.com/jetsetilly/mc6809/statsview"
	"github.com/jetsetilly/mc6809/tracelog"
	"github.com/jetsetilly/mc6809/version"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the value to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "REMOTE", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.Version())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "REMOTE":
		err = serve(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to the modes that create a machine
type machineFlags struct {
	load     *string
	rom      *string
	undoc    *bool
	freq     *float64
	trace    *string
	traceCSV *bool
	log      *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		load:     md.AddString("load", "", "program image to load (S-record, Intel hex or FLEX binary)"),
		rom:      md.AddString("rom", "", "raw ROM image and the address to load it at: file@addr"),
		undoc:    md.AddBool("undoc", false, "enable the undocumented opcodes"),
		freq:     md.AddFloat64("freq", 0, "target frequency in MHz. zero for unlimited"),
		trace:    md.AddString("trace", "", "log every instruction to file"),
		traceCSV: md.AddBool("tracecsv", false, "write the trace log as CSV"),
		log:      md.AddBool("log", false, "echo the debugging log to stderr"),
	}
}

// machine is the memory and CPU created from the machineFlags
type machine struct {
	mem    *memory.Memory
	mc     *cpu.CPU
	dsm    *disassembly.Disassembler
	tracer *tracelog.Logger
}

func newMachine(flgs machineFlags) (*machine, error) {
	if *flgs.log {
		logger.SetEcho(os.Stderr, false)
	}

	m := &machine{
		mem: memory.NewMemory(),
		dsm: disassembly.NewDisassembler(*flgs.undoc),
	}

	if *flgs.rom != "" {
		if err := loadROM(m.mem, *flgs.rom); err != nil {
			return nil, err
		}
	}

	var start uint16
	var hasStart bool
	if *flgs.load != "" {
		res, err := memory.LoadFile(m.mem, *flgs.load)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "mc6809", "loaded %d bytes of %s from %s", res.Bytes, res.Format, *flgs.load)
		start, hasStart = res.Start, res.HasStart
	}

	m.mc = cpu.NewCPU(m.mem)
	m.mc.UseUndocumented = *flgs.undoc
	m.mc.AttachDisassembler(m.dsm)

	if err := m.mc.Reset(); err != nil {
		return nil, err
	}

	// the start address in the image takes priority over the reset vector
	if hasStart {
		m.mc.PC.Load(start)
	}

	if *flgs.trace != "" {
		cfg := tracelog.DefaultConfig()
		if *flgs.traceCSV {
			cfg.Format = tracelog.CSV
		}
		tracer, err := tracelog.Create(*flgs.trace, cfg, m.mem, m.dsm)
		if err != nil {
			return nil, err
		}
		m.tracer = tracer
		m.mc.SetTracer(tracer)
	}

	return m, nil
}

func (m *machine) close() {
	if m.tracer != nil {
		if err := m.tracer.Close(); err != nil {
			logger.Log(logger.Allow, "mc6809", err)
		}
	}
}

// the scheduler for the machine. the scheduler resets the devices when the
// CPU is reset
func (m *machine) scheduler(flgs machineFlags) *scheduler.Scheduler {
	sch := scheduler.NewScheduler(m.mc)
	sch.OnReset = func() error {
		m.mem.ResetDevices()
		return nil
	}
	sch.SetFrequency(*flgs.freq)
	return sch
}

// loadROM loads a raw image with the syntax file@addr and marks the memory it
// occupies as read-only
func loadROM(mem *memory.Memory, spec string) error {
	filename, addr, ok := strings.Cut(spec, "@")
	if !ok {
		return fmt.Errorf("ROM must be specified as file@addr: %s", spec)
	}

	address, err := parseAddress(addr)
	if err != nil {
		return err
	}

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := memory.LoadBinary(mem, f, address)
	if err != nil {
		return err
	}
	mem.SetROM(address, n)

	return nil
}

func parseAddress(s string) (uint16, error) {
	v, err := commandline.ParseValue(s)
	if err != nil {
		return 0, fmt.Errorf("not a valid address: %s", s)
	}
	if v > 0xffff {
		return 0, fmt.Errorf("address out of range: %s", s)
	}
	return uint16(v), nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	aciaAddr := md.AddString("acia", "", "map an MC6850 ACIA at the address, connected to stdin and stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(flgs)
	if err != nil {
		return err
	}
	defer m.close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *aciaAddr != "" {
		address, err := parseAddress(*aciaAddr)
		if err != nil {
			return err
		}
		dev := acia.NewACIA(os.Stdout, m.mc.SetIRQ)
		if err := m.mem.AddDevice(dev, address, acia.Size); err != nil {
			return err
		}
		go feedACIA(ctx, dev, os.Stdin)
	}

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	sch := m.scheduler(flgs)
	stopped := sch.Stopped()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return sch.Run(gctx, cpu.StateRun)
	})
	g.Go(func() error {
		select {
		case <-stopped:
			st := sch.Status()
			fmt.Fprintf(md.Output, "%s\n%s\n", st.State, st.Status)
			sch.SetState(cpu.StateExit)
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}

// feedACIA copies the reader to the ACIA until the context is cancelled or
// the reader is exhausted
func feedACIA(ctx context.Context, dev *acia.ACIA, r io.Reader) {
	b := make([]uint8, 1)
	for ctx.Err() == nil {
		if _, err := r.Read(b); err != nil {
			return
		}
		for !dev.Feed(b[0]) {
			if ctx.Err() != nil {
				return
			}
		}
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	script := md.AddString("script", "", "Lua script to run when the monitor starts")
	termType := md.AddString("term", "AUTO", "terminal type: AUTO, COLOR, PLAIN")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	case "AUTO":
		if plainterm.IsTerminal() {
			term = &colorterm.ColorTerminal{}
		} else {
			term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
		}
	default:
		return fmt.Errorf("unknown terminal type: %s", *termType)
	}

	m, err := newMachine(flgs)
	if err != nil {
		return err
	}
	defer m.close()

	// the interrupt signal is handled by the monitor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	sch := m.scheduler(flgs)

	dbg, err := debugger.NewDebugger(term, sch, m.mem, m.dsm)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sch.Run(gctx, cpu.StateStop)
	})
	g.Go(func() error {
		defer cancel()
		return dbg.Start(gctx, *script)
	})

	return g.Wait()
}

func serve(md *modalflag.Modes) error {
	md.NewMode()

	addr := md.AddString("addr", "localhost:6809", "address to listen on")
	undoc := md.AddBool("undoc", false, "enable the undocumented opcodes")
	log := md.AddBool("log", false, "echo the debugging log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	fmt.Fprintf(md.Output, "listening at ws://%s%s\n", *addr, remote.Path)

	return remote.NewServer(*undoc).ListenAndServe(ctx, *addr)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flow := md.AddBool("flow", false, "include flow information in disassembly")
	undoc := md.AddBool("undoc", false, "disassemble the undocumented opcodes")
	flex := md.AddBool("flex", false, "label the addresses of the FLEX operating system")
	from := md.AddString("from", "", "address to start disassembly. defaults to the start address of the image")
	count := md.AddInt("count", 32, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("program image required for %s mode", md)
	}

	mem := memory.NewMemory()
	res, err := memory.LoadFile(mem, md.GetArg(0))
	if err != nil {
		return err
	}

	var address uint16
	switch {
	case *from != "":
		address, err = parseAddress(*from)
		if err != nil {
			return err
		}
	case res.HasStart:
		address = res.Start
	}

	dsm := disassembly.NewDisassembler(*undoc)
	if *flex {
		dsm.Labels = disassembly.FlexLabels()
	}

	entries, err := dsm.Count(mem, address, *count)
	if err != nil {
		return err
	}

	return disassembly.Write(md.Output, entries, disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: *flow,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run performance check for duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, ALL, NONE (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(flgs)
	if err != nil {
		return err
	}
	defer m.close()

	return performance.Check(md.Output, prf, m.mc, *duration)
}
