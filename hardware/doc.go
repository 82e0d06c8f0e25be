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

// Package hardware is the base package for the 6809 machine. The CPU and the
// memory bus are in sub-packages, as are the peripherals that can be mapped
// onto the bus.
//
// There is no machine type. The main package, the scheduler and the remote
// harness each put a CPU and a cpubus.Memory together as they need.
package hardware
