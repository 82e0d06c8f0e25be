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

// table of every opcode recognised by the 6809, including the undocumented
// opcodes. Undocumented mnemonics are in lower case.
//
// Cycles are the base cost of the instruction. Indexed instructions add the
// cost of the postbyte, the stacking instructions add the cost of each
// register in the list and a long branch that is taken costs one more.
var table = []Definition{
	// page 1
	{OpCode: 0x00, Mnemonic: "NEG", Operator: Neg, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x01, Mnemonic: "neg", Operator: Neg, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify, Undocumented: true},
	{OpCode: 0x02, Mnemonic: "negcom", Operator: NegCom, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify, Undocumented: true},
	{OpCode: 0x03, Mnemonic: "COM", Operator: Com, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x04, Mnemonic: "LSR", Operator: Lsr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x05, Mnemonic: "lsr", Operator: Lsr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify, Undocumented: true},
	{OpCode: 0x06, Mnemonic: "ROR", Operator: Ror, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x07, Mnemonic: "ASR", Operator: Asr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x08, Mnemonic: "LSL", Operator: Lsl, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x09, Mnemonic: "ROL", Operator: Rol, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x0a, Mnemonic: "DEC", Operator: Dec, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x0b, Mnemonic: "dec", Operator: Dec, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify, Undocumented: true},
	{OpCode: 0x0c, Mnemonic: "INC", Operator: Inc, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Modify},
	{OpCode: 0x0d, Mnemonic: "TST", Operator: Tst, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x0e, Mnemonic: "JMP", Operator: Jmp, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Flow},
	{OpCode: 0x0f, Mnemonic: "CLR", Operator: Clr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Write},
	{OpCode: 0x12, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x13, Mnemonic: "SYNC", Operator: Sync, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Interrupt},
	{OpCode: 0x16, Mnemonic: "LBRA", Operator: Branch, Condition: Always, Bytes: 3, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x17, Mnemonic: "LBSR", Operator: Bsr, Bytes: 3, Cycles: 9, AddressingMode: Relative16, Effect: Subroutine},
	{OpCode: 0x19, Mnemonic: "DAA", Operator: Daa, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x1a, Mnemonic: "ORCC", Operator: Orcc, Bytes: 2, Cycles: 3, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x1c, Mnemonic: "ANDCC", Operator: Andcc, Bytes: 2, Cycles: 3, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x1d, Mnemonic: "SEX", Operator: Sex, Target: D, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x1e, Mnemonic: "EXG", Operator: Exg, Bytes: 2, Cycles: 8, AddressingMode: RegisterPair, Effect: Read},
	{OpCode: 0x1f, Mnemonic: "TFR", Operator: Tfr, Bytes: 2, Cycles: 6, AddressingMode: RegisterPair, Effect: Read},
	{OpCode: 0x20, Mnemonic: "BRA", Operator: Branch, Condition: Always, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x21, Mnemonic: "BRN", Operator: Branch, Condition: Never, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x22, Mnemonic: "BHI", Operator: Branch, Condition: Higher, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x23, Mnemonic: "BLS", Operator: Branch, Condition: LowerOrSame, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x24, Mnemonic: "BCC", Operator: Branch, Condition: CarryClear, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x25, Mnemonic: "BCS", Operator: Branch, Condition: CarrySet, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x26, Mnemonic: "BNE", Operator: Branch, Condition: NotEqual, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x27, Mnemonic: "BEQ", Operator: Branch, Condition: Equal, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x28, Mnemonic: "BVC", Operator: Branch, Condition: OverflowClear, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x29, Mnemonic: "BVS", Operator: Branch, Condition: OverflowSet, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x2a, Mnemonic: "BPL", Operator: Branch, Condition: Plus, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x2b, Mnemonic: "BMI", Operator: Branch, Condition: Minus, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x2c, Mnemonic: "BGE", Operator: Branch, Condition: GreaterOrEqual, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x2d, Mnemonic: "BLT", Operator: Branch, Condition: Less, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x2e, Mnemonic: "BGT", Operator: Branch, Condition: Greater, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x2f, Mnemonic: "BLE", Operator: Branch, Condition: LessOrEqual, Bytes: 2, Cycles: 3, AddressingMode: Relative8, Effect: Flow},
	{OpCode: 0x30, Mnemonic: "LEAX", Operator: Lea, Target: X, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x31, Mnemonic: "LEAY", Operator: Lea, Target: Y, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x32, Mnemonic: "LEAS", Operator: Lea, Target: S, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x33, Mnemonic: "LEAU", Operator: Lea, Target: U, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x34, Mnemonic: "PSHS", Operator: Psh, Target: S, Bytes: 2, Cycles: 5, AddressingMode: RegisterList, Effect: Write},
	{OpCode: 0x35, Mnemonic: "PULS", Operator: Pul, Target: S, Bytes: 2, Cycles: 5, AddressingMode: RegisterList, Effect: Read},
	{OpCode: 0x36, Mnemonic: "PSHU", Operator: Psh, Target: U, Bytes: 2, Cycles: 5, AddressingMode: RegisterList, Effect: Write},
	{OpCode: 0x37, Mnemonic: "PULU", Operator: Pul, Target: U, Bytes: 2, Cycles: 5, AddressingMode: RegisterList, Effect: Read},
	{OpCode: 0x39, Mnemonic: "RTS", Operator: Rts, Bytes: 1, Cycles: 5, AddressingMode: Inherent, Effect: Flow},
	{OpCode: 0x3a, Mnemonic: "ABX", Operator: Abx, Target: X, Bytes: 1, Cycles: 3, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x3b, Mnemonic: "RTI", Operator: Rti, Bytes: 1, Cycles: 6, AddressingMode: Inherent, Effect: Interrupt},
	{OpCode: 0x3c, Mnemonic: "CWAI", Operator: Cwai, Bytes: 2, Cycles: 20, AddressingMode: Immediate8, Effect: Interrupt},
	{OpCode: 0x3d, Mnemonic: "MUL", Operator: Mul, Target: D, Bytes: 1, Cycles: 11, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x3e, Mnemonic: "reset", Operator: Reset, Bytes: 1, Cycles: 19, AddressingMode: Inherent, Effect: Interrupt, Undocumented: true},
	{OpCode: 0x3f, Mnemonic: "SWI", Operator: Swi, Bytes: 1, Cycles: 19, AddressingMode: Inherent, Effect: Subroutine},
	{OpCode: 0x40, Mnemonic: "NEGA", Operator: Neg, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x41, Mnemonic: "nega", Operator: Neg, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x42, Mnemonic: "negcoma", Operator: NegCom, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x43, Mnemonic: "COMA", Operator: Com, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x44, Mnemonic: "LSRA", Operator: Lsr, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x45, Mnemonic: "lsra", Operator: Lsr, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x46, Mnemonic: "RORA", Operator: Ror, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x47, Mnemonic: "ASRA", Operator: Asr, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x48, Mnemonic: "LSLA", Operator: Lsl, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x49, Mnemonic: "ROLA", Operator: Rol, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x4a, Mnemonic: "DECA", Operator: Dec, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x4b, Mnemonic: "deca", Operator: Dec, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x4c, Mnemonic: "INCA", Operator: Inc, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x4d, Mnemonic: "TSTA", Operator: Tst, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x4e, Mnemonic: "clra", Operator: ClrKeepCarry, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x4f, Mnemonic: "CLRA", Operator: Clr, Target: A, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x50, Mnemonic: "NEGB", Operator: Neg, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x51, Mnemonic: "negb", Operator: Neg, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x52, Mnemonic: "negcomb", Operator: NegCom, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x53, Mnemonic: "COMB", Operator: Com, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x54, Mnemonic: "LSRB", Operator: Lsr, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x55, Mnemonic: "lsrb", Operator: Lsr, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x56, Mnemonic: "RORB", Operator: Ror, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x57, Mnemonic: "ASRB", Operator: Asr, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x58, Mnemonic: "LSLB", Operator: Lsl, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x59, Mnemonic: "ROLB", Operator: Rol, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x5a, Mnemonic: "DECB", Operator: Dec, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x5b, Mnemonic: "decb", Operator: Dec, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x5c, Mnemonic: "INCB", Operator: Inc, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x5d, Mnemonic: "TSTB", Operator: Tst, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x5e, Mnemonic: "clrb", Operator: ClrKeepCarry, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read, Undocumented: true},
	{OpCode: 0x5f, Mnemonic: "CLRB", Operator: Clr, Target: B, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x60, Mnemonic: "NEG", Operator: Neg, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x61, Mnemonic: "neg", Operator: Neg, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify, Undocumented: true},
	{OpCode: 0x62, Mnemonic: "negcom", Operator: NegCom, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify, Undocumented: true},
	{OpCode: 0x63, Mnemonic: "COM", Operator: Com, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x64, Mnemonic: "LSR", Operator: Lsr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x65, Mnemonic: "lsr", Operator: Lsr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify, Undocumented: true},
	{OpCode: 0x66, Mnemonic: "ROR", Operator: Ror, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x67, Mnemonic: "ASR", Operator: Asr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x68, Mnemonic: "LSL", Operator: Lsl, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x69, Mnemonic: "ROL", Operator: Rol, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x6a, Mnemonic: "DEC", Operator: Dec, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x6b, Mnemonic: "dec", Operator: Dec, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify, Undocumented: true},
	{OpCode: 0x6c, Mnemonic: "INC", Operator: Inc, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Modify},
	{OpCode: 0x6d, Mnemonic: "TST", Operator: Tst, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x6e, Mnemonic: "JMP", Operator: Jmp, Bytes: 2, Cycles: 3, AddressingMode: Indexed, Effect: Flow},
	{OpCode: 0x6f, Mnemonic: "CLR", Operator: Clr, Target: Memory, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0x70, Mnemonic: "NEG", Operator: Neg, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x71, Mnemonic: "neg", Operator: Neg, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify, Undocumented: true},
	{OpCode: 0x72, Mnemonic: "negcom", Operator: NegCom, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify, Undocumented: true},
	{OpCode: 0x73, Mnemonic: "COM", Operator: Com, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x74, Mnemonic: "LSR", Operator: Lsr, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x75, Mnemonic: "lsr", Operator: Lsr, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify, Undocumented: true},
	{OpCode: 0x76, Mnemonic: "ROR", Operator: Ror, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x77, Mnemonic: "ASR", Operator: Asr, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x78, Mnemonic: "LSL", Operator: Lsl, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x79, Mnemonic: "ROL", Operator: Rol, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x7a, Mnemonic: "DEC", Operator: Dec, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x7b, Mnemonic: "dec", Operator: Dec, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify, Undocumented: true},
	{OpCode: 0x7c, Mnemonic: "INC", Operator: Inc, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Modify},
	{OpCode: 0x7d, Mnemonic: "TST", Operator: Tst, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Read},
	{OpCode: 0x7e, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: 4, AddressingMode: Extended, Effect: Flow},
	{OpCode: 0x7f, Mnemonic: "CLR", Operator: Clr, Target: Memory, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Write},
	{OpCode: 0x80, Mnemonic: "SUBA", Operator: Sub, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x81, Mnemonic: "CMPA", Operator: Cmp, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x82, Mnemonic: "SBCA", Operator: Sbc, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x83, Mnemonic: "SUBD", Operator: Sub, Target: D, Bytes: 3, Cycles: 4, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x84, Mnemonic: "ANDA", Operator: And, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x85, Mnemonic: "BITA", Operator: Bit, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x86, Mnemonic: "LDA", Operator: Ld, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x88, Mnemonic: "EORA", Operator: Eor, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x89, Mnemonic: "ADCA", Operator: Adc, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x8a, Mnemonic: "ORA", Operator: Or, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x8b, Mnemonic: "ADDA", Operator: Add, Target: A, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0x8c, Mnemonic: "CMPX", Operator: Cmp, Target: X, Bytes: 3, Cycles: 4, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x8d, Mnemonic: "BSR", Operator: Bsr, Bytes: 2, Cycles: 7, AddressingMode: Relative8, Effect: Subroutine},
	{OpCode: 0x8e, Mnemonic: "LDX", Operator: Ld, Target: X, Bytes: 3, Cycles: 3, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x90, Mnemonic: "SUBA", Operator: Sub, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x91, Mnemonic: "CMPA", Operator: Cmp, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x92, Mnemonic: "SBCA", Operator: Sbc, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x93, Mnemonic: "SUBD", Operator: Sub, Target: D, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x94, Mnemonic: "ANDA", Operator: And, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x95, Mnemonic: "BITA", Operator: Bit, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x96, Mnemonic: "LDA", Operator: Ld, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x97, Mnemonic: "STA", Operator: St, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Write},
	{OpCode: 0x98, Mnemonic: "EORA", Operator: Eor, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x99, Mnemonic: "ADCA", Operator: Adc, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x9a, Mnemonic: "ORA", Operator: Or, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x9b, Mnemonic: "ADDA", Operator: Add, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x9c, Mnemonic: "CMPX", Operator: Cmp, Target: X, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x9d, Mnemonic: "JSR", Operator: Jsr, Bytes: 2, Cycles: 7, AddressingMode: Direct, Effect: Subroutine},
	{OpCode: 0x9e, Mnemonic: "LDX", Operator: Ld, Target: X, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x9f, Mnemonic: "STX", Operator: St, Target: X, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Write},
	{OpCode: 0xa0, Mnemonic: "SUBA", Operator: Sub, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa1, Mnemonic: "CMPA", Operator: Cmp, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa2, Mnemonic: "SBCA", Operator: Sbc, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa3, Mnemonic: "SUBD", Operator: Sub, Target: D, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa4, Mnemonic: "ANDA", Operator: And, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa5, Mnemonic: "BITA", Operator: Bit, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa6, Mnemonic: "LDA", Operator: Ld, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa7, Mnemonic: "STA", Operator: St, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xa8, Mnemonic: "EORA", Operator: Eor, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xa9, Mnemonic: "ADCA", Operator: Adc, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xaa, Mnemonic: "ORA", Operator: Or, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xab, Mnemonic: "ADDA", Operator: Add, Target: A, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xac, Mnemonic: "CMPX", Operator: Cmp, Target: X, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xad, Mnemonic: "JSR", Operator: Jsr, Bytes: 2, Cycles: 7, AddressingMode: Indexed, Effect: Subroutine},
	{OpCode: 0xae, Mnemonic: "LDX", Operator: Ld, Target: X, Bytes: 2, Cycles: 5, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xaf, Mnemonic: "STX", Operator: St, Target: X, Bytes: 2, Cycles: 5, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xb0, Mnemonic: "SUBA", Operator: Sub, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb1, Mnemonic: "CMPA", Operator: Cmp, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb2, Mnemonic: "SBCA", Operator: Sbc, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb3, Mnemonic: "SUBD", Operator: Sub, Target: D, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb4, Mnemonic: "ANDA", Operator: And, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb5, Mnemonic: "BITA", Operator: Bit, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb6, Mnemonic: "LDA", Operator: Ld, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb7, Mnemonic: "STA", Operator: St, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Write},
	{OpCode: 0xb8, Mnemonic: "EORA", Operator: Eor, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xb9, Mnemonic: "ADCA", Operator: Adc, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xba, Mnemonic: "ORA", Operator: Or, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xbb, Mnemonic: "ADDA", Operator: Add, Target: A, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xbc, Mnemonic: "CMPX", Operator: Cmp, Target: X, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xbd, Mnemonic: "JSR", Operator: Jsr, Bytes: 3, Cycles: 8, AddressingMode: Extended, Effect: Subroutine},
	{OpCode: 0xbe, Mnemonic: "LDX", Operator: Ld, Target: X, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xbf, Mnemonic: "STX", Operator: St, Target: X, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Write},
	{OpCode: 0xc0, Mnemonic: "SUBB", Operator: Sub, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc1, Mnemonic: "CMPB", Operator: Cmp, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc2, Mnemonic: "SBCB", Operator: Sbc, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc3, Mnemonic: "ADDD", Operator: Add, Target: D, Bytes: 3, Cycles: 4, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0xc4, Mnemonic: "ANDB", Operator: And, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc5, Mnemonic: "BITB", Operator: Bit, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc6, Mnemonic: "LDB", Operator: Ld, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc8, Mnemonic: "EORB", Operator: Eor, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xc9, Mnemonic: "ADCB", Operator: Adc, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xca, Mnemonic: "ORB", Operator: Or, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xcb, Mnemonic: "ADDB", Operator: Add, Target: B, Bytes: 2, Cycles: 2, AddressingMode: Immediate8, Effect: Read},
	{OpCode: 0xcc, Mnemonic: "LDD", Operator: Ld, Target: D, Bytes: 3, Cycles: 3, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0xce, Mnemonic: "LDU", Operator: Ld, Target: U, Bytes: 3, Cycles: 3, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0xd0, Mnemonic: "SUBB", Operator: Sub, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd1, Mnemonic: "CMPB", Operator: Cmp, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd2, Mnemonic: "SBCB", Operator: Sbc, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd3, Mnemonic: "ADDD", Operator: Add, Target: D, Bytes: 2, Cycles: 6, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd4, Mnemonic: "ANDB", Operator: And, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd5, Mnemonic: "BITB", Operator: Bit, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd6, Mnemonic: "LDB", Operator: Ld, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd7, Mnemonic: "STB", Operator: St, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Write},
	{OpCode: 0xd8, Mnemonic: "EORB", Operator: Eor, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xd9, Mnemonic: "ADCB", Operator: Adc, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xda, Mnemonic: "ORB", Operator: Or, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xdb, Mnemonic: "ADDB", Operator: Add, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xdc, Mnemonic: "LDD", Operator: Ld, Target: D, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xdd, Mnemonic: "STD", Operator: St, Target: D, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Write},
	{OpCode: 0xde, Mnemonic: "LDU", Operator: Ld, Target: U, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xdf, Mnemonic: "STU", Operator: St, Target: U, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Write},
	{OpCode: 0xe0, Mnemonic: "SUBB", Operator: Sub, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe1, Mnemonic: "CMPB", Operator: Cmp, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe2, Mnemonic: "SBCB", Operator: Sbc, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe3, Mnemonic: "ADDD", Operator: Add, Target: D, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe4, Mnemonic: "ANDB", Operator: And, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe5, Mnemonic: "BITB", Operator: Bit, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe6, Mnemonic: "LDB", Operator: Ld, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe7, Mnemonic: "STB", Operator: St, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xe8, Mnemonic: "EORB", Operator: Eor, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xe9, Mnemonic: "ADCB", Operator: Adc, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xea, Mnemonic: "ORB", Operator: Or, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xeb, Mnemonic: "ADDB", Operator: Add, Target: B, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xec, Mnemonic: "LDD", Operator: Ld, Target: D, Bytes: 2, Cycles: 5, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xed, Mnemonic: "STD", Operator: St, Target: D, Bytes: 2, Cycles: 5, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xee, Mnemonic: "LDU", Operator: Ld, Target: U, Bytes: 2, Cycles: 5, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xef, Mnemonic: "STU", Operator: St, Target: U, Bytes: 2, Cycles: 5, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xf0, Mnemonic: "SUBB", Operator: Sub, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf1, Mnemonic: "CMPB", Operator: Cmp, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf2, Mnemonic: "SBCB", Operator: Sbc, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf3, Mnemonic: "ADDD", Operator: Add, Target: D, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf4, Mnemonic: "ANDB", Operator: And, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf5, Mnemonic: "BITB", Operator: Bit, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf6, Mnemonic: "LDB", Operator: Ld, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf7, Mnemonic: "STB", Operator: St, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Write},
	{OpCode: 0xf8, Mnemonic: "EORB", Operator: Eor, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xf9, Mnemonic: "ADCB", Operator: Adc, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xfa, Mnemonic: "ORB", Operator: Or, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xfb, Mnemonic: "ADDB", Operator: Add, Target: B, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xfc, Mnemonic: "LDD", Operator: Ld, Target: D, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xfd, Mnemonic: "STD", Operator: St, Target: D, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Write},
	{OpCode: 0xfe, Mnemonic: "LDU", Operator: Ld, Target: U, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Read},
	{OpCode: 0xff, Mnemonic: "STU", Operator: St, Target: U, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Write},

	// page 2 (prefix $10)
	{OpCode: 0x1021, Mnemonic: "LBRN", Operator: Branch, Condition: Never, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1022, Mnemonic: "LBHI", Operator: Branch, Condition: Higher, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1023, Mnemonic: "LBLS", Operator: Branch, Condition: LowerOrSame, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1024, Mnemonic: "LBCC", Operator: Branch, Condition: CarryClear, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1025, Mnemonic: "LBCS", Operator: Branch, Condition: CarrySet, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1026, Mnemonic: "LBNE", Operator: Branch, Condition: NotEqual, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1027, Mnemonic: "LBEQ", Operator: Branch, Condition: Equal, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1028, Mnemonic: "LBVC", Operator: Branch, Condition: OverflowClear, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x1029, Mnemonic: "LBVS", Operator: Branch, Condition: OverflowSet, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x102a, Mnemonic: "LBPL", Operator: Branch, Condition: Plus, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x102b, Mnemonic: "LBMI", Operator: Branch, Condition: Minus, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x102c, Mnemonic: "LBGE", Operator: Branch, Condition: GreaterOrEqual, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x102d, Mnemonic: "LBLT", Operator: Branch, Condition: Less, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x102e, Mnemonic: "LBGT", Operator: Branch, Condition: Greater, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x102f, Mnemonic: "LBLE", Operator: Branch, Condition: LessOrEqual, Bytes: 4, Cycles: 5, AddressingMode: Relative16, Effect: Flow},
	{OpCode: 0x103f, Mnemonic: "SWI2", Operator: Swi2, Bytes: 2, Cycles: 20, AddressingMode: Inherent, Effect: Subroutine},
	{OpCode: 0x1083, Mnemonic: "CMPD", Operator: Cmp, Target: D, Bytes: 4, Cycles: 5, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x108c, Mnemonic: "CMPY", Operator: Cmp, Target: Y, Bytes: 4, Cycles: 5, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x108e, Mnemonic: "LDY", Operator: Ld, Target: Y, Bytes: 4, Cycles: 4, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x1093, Mnemonic: "CMPD", Operator: Cmp, Target: D, Bytes: 3, Cycles: 7, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x109c, Mnemonic: "CMPY", Operator: Cmp, Target: Y, Bytes: 3, Cycles: 7, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x109e, Mnemonic: "LDY", Operator: Ld, Target: Y, Bytes: 3, Cycles: 6, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x109f, Mnemonic: "STY", Operator: St, Target: Y, Bytes: 3, Cycles: 6, AddressingMode: Direct, Effect: Write},
	{OpCode: 0x10a3, Mnemonic: "CMPD", Operator: Cmp, Target: D, Bytes: 3, Cycles: 7, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x10ac, Mnemonic: "CMPY", Operator: Cmp, Target: Y, Bytes: 3, Cycles: 7, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x10ae, Mnemonic: "LDY", Operator: Ld, Target: Y, Bytes: 3, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x10af, Mnemonic: "STY", Operator: St, Target: Y, Bytes: 3, Cycles: 6, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0x10b3, Mnemonic: "CMPD", Operator: Cmp, Target: D, Bytes: 4, Cycles: 8, AddressingMode: Extended, Effect: Read},
	{OpCode: 0x10bc, Mnemonic: "CMPY", Operator: Cmp, Target: Y, Bytes: 4, Cycles: 8, AddressingMode: Extended, Effect: Read},
	{OpCode: 0x10be, Mnemonic: "LDY", Operator: Ld, Target: Y, Bytes: 4, Cycles: 7, AddressingMode: Extended, Effect: Read},
	{OpCode: 0x10bf, Mnemonic: "STY", Operator: St, Target: Y, Bytes: 4, Cycles: 7, AddressingMode: Extended, Effect: Write},
	{OpCode: 0x10ce, Mnemonic: "LDS", Operator: Ld, Target: S, Bytes: 4, Cycles: 4, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x10de, Mnemonic: "LDS", Operator: Ld, Target: S, Bytes: 3, Cycles: 6, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x10df, Mnemonic: "STS", Operator: St, Target: S, Bytes: 3, Cycles: 6, AddressingMode: Direct, Effect: Write},
	{OpCode: 0x10ee, Mnemonic: "LDS", Operator: Ld, Target: S, Bytes: 3, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x10ef, Mnemonic: "STS", Operator: St, Target: S, Bytes: 3, Cycles: 6, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0x10fe, Mnemonic: "LDS", Operator: Ld, Target: S, Bytes: 4, Cycles: 7, AddressingMode: Extended, Effect: Read},
	{OpCode: 0x10ff, Mnemonic: "STS", Operator: St, Target: S, Bytes: 4, Cycles: 7, AddressingMode: Extended, Effect: Write},

	// page 3 (prefix $11)
	{OpCode: 0x113f, Mnemonic: "SWI3", Operator: Swi3, Bytes: 2, Cycles: 20, AddressingMode: Inherent, Effect: Subroutine},
	{OpCode: 0x1183, Mnemonic: "CMPU", Operator: Cmp, Target: U, Bytes: 4, Cycles: 5, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x118c, Mnemonic: "CMPS", Operator: Cmp, Target: S, Bytes: 4, Cycles: 5, AddressingMode: Immediate16, Effect: Read},
	{OpCode: 0x1193, Mnemonic: "CMPU", Operator: Cmp, Target: U, Bytes: 3, Cycles: 7, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x119c, Mnemonic: "CMPS", Operator: Cmp, Target: S, Bytes: 3, Cycles: 7, AddressingMode: Direct, Effect: Read},
	{OpCode: 0x11a3, Mnemonic: "CMPU", Operator: Cmp, Target: U, Bytes: 3, Cycles: 7, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x11ac, Mnemonic: "CMPS", Operator: Cmp, Target: S, Bytes: 3, Cycles: 7, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0x11b3, Mnemonic: "CMPU", Operator: Cmp, Target: U, Bytes: 4, Cycles: 8, AddressingMode: Extended, Effect: Read},
	{OpCode: 0x11bc, Mnemonic: "CMPS", Operator: Cmp, Target: S, Bytes: 4, Cycles: 8, AddressingMode: Extended, Effect: Read},
}
