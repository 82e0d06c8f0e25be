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

// Package cpu emulates the 6809 microprocessor. The 6809 executes
// instructions according to the opcode read from the address pointed to by
// the program counter. Two of the opcodes select a second and a third page
// of instructions, in which case the opcode is two bytes long. The opcode is
// looked up in the instruction table of the instructions package and the
// definition is then used to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). The interface defines the memory operations
// required by the CPU.
//
// Individual instructions can be executed with ExecuteInstruction(). More
// usually, the CPU is driven with the Run() function, which executes
// instructions and services interrupts until a stop condition is met. For
// example:
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	mode := cpu.RunStart
//	for {
//		state, err := mc.Run(mode)
//		if err != nil {
//			return err
//		}
//		if state != cpu.StateSuspend && state != cpu.StateSchedule {
//			break
//		}
//		mode = cpu.RunResume
//	}
//
// Conditions that affect the run loop are held as a set of pending events.
// Interrupt lines are raised with SetIRQ(), SetFIRQ() and SetNMI() and a
// return from Run() is requested with ExitRun(). These functions, along with
// the breakpoint functions, are safe to call from any goroutine. Everything
// else should be called from the goroutine that calls Run().
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// The UseUndocumented flag enables the undocumented opcodes of the 6809.
// When the flag is false the undocumented opcodes are treated as illegal
// instructions.
package cpu
