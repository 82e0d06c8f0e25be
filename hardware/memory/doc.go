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

// Package memory implements the address space seen by the CPU. The address
// space is a flat 64K of RAM. Ranges can be marked as read-only with SetROM()
// and ranges can be given over to memory mapped devices with AddDevice().
//
// The Load() function reads program images in Motorola S-record, Intel hex or
// FLEX binary format. LoadBinary() copies a raw image to a fixed address.
//
// The cpubus sub-package defines the interface through which the CPU sees
// memory, together with the location of the interrupt vectors.
package memory
