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

// Package registers implements the three types of registers found in the
// 6809. The three types are: the 8 bit Register used for A, B and DP; the 16
// bit Word used for X, Y, U, S and PC; and the ConditionCodes register.
//
// The register types are deliberately simple. Arithmetic and the updating of
// the condition codes is done by the CPU, which has a better idea of which
// flags an instruction affects.
//
// Note that there is no type for the D register. The 16 bit accumulator is
// the A and B registers read together, most significant byte first, and is
// composed on demand by the CPU. Writing to D writes to A and B and so the
// two views can never disagree.
//
// The ConditionCodes register is implemented as a series of flags. The
// Value() and FromValue() functions convert to and from the packed form that
// is pushed to the stack. For instance:
//
//	cc.FromValue(0x50)
//
// leaves the FIRQMask and IRQMask flags set and everything else clear.
package registers
