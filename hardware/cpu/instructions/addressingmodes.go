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

package instructions

// AddressingMode describes the method of memory addressing used by an
// instruction.
type AddressingMode int

// List of supported addressing modes.
const (
	Inherent AddressingMode = iota
	Immediate8
	Immediate16
	Direct   // DP<<8 | n8
	Extended // n16
	Indexed  // postbyte with up to two further bytes

	// relative addressing is used for branch instructions and BSR/LBSR
	Relative8
	Relative16

	// the postbyte of EXG and TFR
	RegisterPair

	// the postbyte of the PSH and PUL instructions
	RegisterList
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate8:
		return "Immediate8"
	case Immediate16:
		return "Immediate16"
	case Direct:
		return "Direct"
	case Extended:
		return "Extended"
	case Indexed:
		return "Indexed"
	case Relative8:
		return "Relative8"
	case Relative16:
		return "Relative16"
	case RegisterPair:
		return "RegisterPair"
	case RegisterList:
		return "RegisterList"
	}
	return "unknown addressing mode"
}

// IsRelative returns true for both the short and the long relative modes.
func (m AddressingMode) IsRelative() bool {
	return m == Relative8 || m == Relative16
}

// IsImmediate returns true for both widths of immediate mode.
func (m AddressingMode) IsImmediate() bool {
	return m == Immediate8 || m == Immediate16
}
