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

// Package acia implements the MC6850 asynchronous communications interface
// adapter as a memory mapped device. The device occupies two addresses:
//
//	base+0   read: status register. write: control register
//	base+1   read: receive data register. write: transmit data register
//
// Characters written to the transmit data register are written immediately
// to the output. Characters to be received are queued with Feed().
//
// Interrupts are raised through a callback, which will normally be the
// CPU's SetIRQ() function.
package acia
