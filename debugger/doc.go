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

// Package debugger implements the terminal monitor for the CPU. Features
// include:
//
//	- stepping and stepping over subroutines
//	- breakpoints
//	- memory peek, poke and disassembly
//	- interrupt lines
//	- trace logging
//	- Lua scripting
//
// Initialisation of the monitor is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(term, sch, mem, dsm)
//
// The CPU is driven by the scheduler and is never accessed directly by the
// monitor. Commands that need the CPU are synchronised with the scheduler.
//
// Interaction with the monitor is through a terminal. The Terminal interface
// is defined in the terminal package. The colorterm and plainterm
// sub-packages provide the implementations.
//
// Once initialised, the monitor can be started with the Start() function.
// The optional script is run before the first prompt.
//
//	dbg.Start(ctx, initScript)
package debugger
