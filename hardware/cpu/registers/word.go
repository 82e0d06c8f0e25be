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

package registers

import "fmt"

// Word is the 16 bit register type. Used for the PC, the two index registers
// and the two stack pointers.
type Word struct {
	label string
	value uint16
}

// NewWord is the preferred method of initialisation for the Word type.
func NewWord(val uint16, label string) Word {
	return Word{
		value: val,
		label: label,
	}
}

func (w Word) String() string {
	return fmt.Sprintf("%04X", w.value)
}

// Label returns the canonical name of the register.
func (w Word) Label() string {
	return w.label
}

// Value returns the current value of the register.
func (w Word) Value() uint16 {
	return w.value
}

// Address is a synonym for Value(). It reads better when the register is
// being used as a pointer.
func (w Word) Address() uint16 {
	return w.value
}

// IsNegative checks the sign bit of the register.
func (w Word) IsNegative() bool {
	return w.value&0x8000 == 0x8000
}

// IsZero checks if register is zero.
func (w Word) IsZero() bool {
	return w.value == 0
}

// Load a value into the register.
func (w *Word) Load(val uint16) {
	w.value = val
}

// Add a value to the register. The result wraps at 16 bits.
func (w *Word) Add(val uint16) {
	w.value += val
}

// Subtract a value from the register. The result wraps at 16 bits.
func (w *Word) Subtract(val uint16) {
	w.value -= val
}
