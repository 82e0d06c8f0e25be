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

// Operator is the operation performed by an instruction, independent of the
// addressing mode and the register it operates on. The CPU dispatches on
// this value.
type Operator int

// List of operators.
const (
	Neg Operator = iota
	Com
	Lsr
	Ror
	Asr
	Lsl
	Rol
	Dec
	Inc
	Tst
	Jmp
	Clr

	// undocumented operators
	NegCom       // COM if carry is set, otherwise NEG
	ClrKeepCarry // CLR but the carry flag is left alone
	Reset        // reset through the reset vector

	Nop
	Sync
	Daa
	Orcc
	Andcc
	Sex
	Exg
	Tfr
	Branch
	Bsr
	Lea
	Psh
	Pul
	Rts
	Abx
	Rti
	Cwai
	Mul
	Swi
	Swi2
	Swi3
	Sub
	Cmp
	Sbc
	And
	Bit
	Ld
	St
	Eor
	Adc
	Or
	Add
	Jsr
)

var operatorNames = [...]string{
	Neg: "neg", Com: "com", Lsr: "lsr", Ror: "ror", Asr: "asr", Lsl: "lsl",
	Rol: "rol", Dec: "dec", Inc: "inc", Tst: "tst", Jmp: "jmp", Clr: "clr",
	NegCom: "negcom", ClrKeepCarry: "clr1", Reset: "reset",
	Nop: "nop", Sync: "sync", Daa: "daa", Orcc: "orcc", Andcc: "andcc",
	Sex: "sex", Exg: "exg", Tfr: "tfr", Branch: "branch", Bsr: "bsr",
	Lea: "lea", Psh: "psh", Pul: "pul", Rts: "rts", Abx: "abx", Rti: "rti",
	Cwai: "cwai", Mul: "mul", Swi: "swi", Swi2: "swi2", Swi3: "swi3",
	Sub: "sub", Cmp: "cmp", Sbc: "sbc", And: "and", Bit: "bit", Ld: "ld",
	St: "st", Eor: "eor", Adc: "adc", Or: "or", Add: "add", Jsr: "jsr",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "unknown operator"
	}
	return operatorNames[o]
}

// Target is the register (or memory) that an instruction operates on. For
// the stack instructions it is the stack pointer being used. For LEA it is
// the register being loaded.
type Target int

// List of targets.
const (
	NoTarget Target = iota
	A
	B
	D
	X
	Y
	U
	S
	Memory
)

func (t Target) String() string {
	switch t {
	case NoTarget:
		return ""
	case A:
		return "A"
	case B:
		return "B"
	case D:
		return "D"
	case X:
		return "X"
	case Y:
		return "Y"
	case U:
		return "U"
	case S:
		return "S"
	case Memory:
		return "M"
	}
	return "?"
}

// Is16Bit returns true if the target is one of the 16 bit registers.
func (t Target) Is16Bit() bool {
	switch t {
	case D, X, Y, U, S:
		return true
	}
	return false
}

// Condition is the test applied by a branch instruction. The order of the
// list matches the low nibble of the branch opcodes.
type Condition int

// List of branch conditions.
const (
	Always Condition = iota
	Never
	Higher
	LowerOrSame
	CarryClear
	CarrySet
	NotEqual
	Equal
	OverflowClear
	OverflowSet
	Plus
	Minus
	GreaterOrEqual
	Less
	Greater
	LessOrEqual
)

var conditionNames = [...]string{"RA", "RN", "HI", "LS", "CC", "CS", "NE", "EQ",
	"VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE"}

// String returns the two letter suffix used in branch mnemonics.
func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return "??"
	}
	return conditionNames[c]
}
