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

// Package script runs Lua scripts against the monitor. Scripts can issue any
// monitor command and have direct access to the registers and memory.
//
// The following functions are available to a script:
//
//	cmd(s)              run a monitor command
//	print(...)          print to the monitor terminal
//	reg(name)           value of the named register (A, B, D, DP, CC, X, Y, U, S, PC)
//	setreg(name, v)     set the value of the named register
//	peek(addr)          read memory without side effects
//	poke(addr, v)       write memory
//	step([n])           step n instructions (default 1)
//	run()               run the CPU
//	stop()              stop the CPU
//	wait([ms])          wait for the CPU to stop. returns false on timeout
//	bp(slot, addr)      set breakpoint
//	irq() firq() nmi()  raise an interrupt line
//
// For example, a script to run until a breakpoint and print the result:
//
//	bp(0, 0x1010)
//	run()
//	if wait(1000) then
//		print(string.format("A=%02x", reg("A")))
//	end
package script
