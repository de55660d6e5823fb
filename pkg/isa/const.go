// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package isa

const (
	FORMAT_SHORT Format = iota
	FORMAT_LONG
)

const (
	FIELD_ZERO FieldSource = iota
	FIELD_OP1
	FIELD_OP2
	FIELD_OP3
)

const (
	OPERAND_REGISTER OperandKind = iota
	OPERAND_NUMBER
)

// Instruction class encodings, the top 7 bits of the first word
const (
	CLASS_ADD  uint16 = 0b0000000
	CLASS_SUB  uint16 = 0b0001000
	CLASS_MV   uint16 = 0b0010000
	CLASS_LW   uint16 = 0b0010100
	CLASS_ADDI uint16 = 0b0011000
	CLASS_LI   uint16 = 0b0011000
	CLASS_SW   uint16 = 0b0011100
	CLASS_SLT  uint16 = 0b0101000
	CLASS_SLTI uint16 = 0b0101001
	CLASS_NOT  uint16 = 0b1000000
	CLASS_AND  uint16 = 0b1001000
	CLASS_BRN  uint16 = 0b1001100
	CLASS_OR   uint16 = 0b1010000
	CLASS_BRC  uint16 = 0b1010100
	CLASS_XOR  uint16 = 0b1011000
	CLASS_BRV  uint16 = 0b1011100
	CLASS_SLL  uint16 = 0b1100000
	CLASS_SLLI uint16 = 0b1100001
	CLASS_BRZ  uint16 = 0b1100100
	CLASS_BRNZ uint16 = 0b1101100
	CLASS_SRL  uint16 = 0b1110000
	CLASS_SRLI uint16 = 0b1110001
	CLASS_SRA  uint16 = 0b1111000
	CLASS_SRAI uint16 = 0b1111001
	CLASS_BRA  uint16 = 0b1111100
	CLASS_STOP uint16 = 0b1111111
)

const (
	WORD_SIZE   = 2
	CLASS_SHIFT = 9
	FIELD_BITS  = 3
)
