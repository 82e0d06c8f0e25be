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

// the command template for the monitor. see the commandline package for the
// syntax
var commandTemplate = []string{
	"STEP (%V)",
	"NEXT",
	"RUN",
	"STOP",
	"RESET",
	"BREAK [%V] [%V]",
	"CLEAR [%V]",
	"LIST",
	"CPU",
	"MEM [%V] (%V)",
	"POKE [%V] [%V]",
	"DISASM (%V) (%V)",
	"IRQ",
	"FIRQ",
	"NMI",
	"FREQ [%I]",
	"UNDOC (ON|OFF)",
	"TRACE [OFF|%F] (CSV)",
	"LOG (CLEAR)",
	"MEMVIZ [%F]",
	"SCRIPT [%F]",
	"HELP (%S)",
	"QUIT",
}

var help = map[string]string{
	"STEP":   "Execute the next instruction. An optional count steps that many instructions",
	"NEXT":   "Execute the next instruction, stepping over subroutine calls",
	"RUN":    "Run the CPU until it is stopped or a breakpoint is reached",
	"STOP":   "Stop a running CPU",
	"RESET":  "Reset the CPU. The CPU will be stopped after the reset",
	"BREAK":  "Set breakpoint slot 0 or 1 to the address",
	"CLEAR":  "Clear breakpoint slot 0 or 1",
	"LIST":   "List breakpoints",
	"CPU":    "Display the registers and status of the CPU",
	"MEM":    "Display memory from the address. The default length is 64 bytes",
	"POKE":   "Write the value to the memory address",
	"DISASM": "Disassemble instructions from the address. Defaults to the PC and 16 instructions",
	"IRQ":    "Raise the IRQ line",
	"FIRQ":   "Raise the FIRQ line",
	"NMI":    "Raise the NMI line",
	"FREQ":   "Set the target frequency in MHz. A frequency of zero runs as fast as possible",
	"UNDOC":  "Enable or disable the undocumented opcodes",
	"TRACE":  "Log every instruction to a file, optionally as CSV. TRACE OFF stops logging",
	"LOG":    "Display the log. LOG CLEAR empties the log",
	"MEMVIZ": "Write a graph of the CPU status to a file in Graphviz dot format",
	"SCRIPT": "Run a Lua script",
	"HELP":   "List commands or show help for a command",
	"QUIT":   "Quit the monitor",
}
