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

// Package scheduler drives the CPU from a single goroutine. Other goroutines
// interact with the CPU by requesting a change of state with SetState() or by
// queueing a function with Sync(). Queued functions are run between calls to
// the CPU's Run() function and so never race with instruction execution.
//
// A Scheduler is started with the Run() function, which blocks until the
// context is cancelled or the EXIT state is requested:
//
//	sch := scheduler.NewScheduler(mc)
//	go sch.Run(ctx, cpu.StateStop)
//	sch.SetState(cpu.StateRun)
//
// The Scheduler also controls the speed of the emulation. With a target
// frequency set (SetFrequency()) a timer tick, one hundred times a second,
// allows the CPU to run a proportional number of cycles before it is
// suspended. A target frequency of zero runs the CPU as quickly as possible.
package scheduler
