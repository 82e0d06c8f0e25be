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

// Package tracelog writes a log of CPU execution, one line per instruction.
// Output can be plain text or CSV.
//
// A Logger satisfies the cpu.Tracer interface and is attached to the CPU
// with SetTracer(). The Logger is then called by the CPU before every
// instruction. For example:
//
//	tl := tracelog.NewLogger(f, tracelog.DefaultConfig(), mem, dsm)
//	mc.SetTracer(tl)
//
// The Config type controls which instructions are logged. Logging can be
// restricted to an address window and can be started and stopped when the
// PC reaches specific addresses.
package tracelog
