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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error and is usually a package level
// constant. For example, the cpu package declares:
//
//	const BusError = "cpu: bus: %v"
//
// and errors created with that pattern can be recognised with Is():
//
//	err := curated.Errorf(cpu.BusError, e)
//	if curated.Is(err, cpu.BusError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. An error in the chain is any value passed to Errorf() that
// itself implements the error interface.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors
// as the difference between expected and unexpected errors.
//
// The Error() implementation removes duplicate adjacent parts of the message.
// This means that a function can wrap an error with its own prefix without
// worrying whether the error it received already carries the same prefix.
//
//	"cpu: cpu: bus: address $FFFE"
//
// is printed as:
//
//	"cpu: bus: address $FFFE"
package curated
