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

// Package isa describes the RISC240 instruction set: the operand shape, field
// layout and class encoding of every mnemonic.
package isa

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Format uint8
type FieldSource uint8
type OperandKind uint8

var ErrUnknownMnemonic = errors.New("unknown mnemonic")

// Descriptor is the immutable shape of a single instruction.
//
// Word 1 is laid out as:
//
//	[ class(7) | field1(3) | field2(3) | field3(3) ]
//
// Long instructions carry a second word taken from one of the operands.
type Descriptor struct {
	Mnemonic   string
	Format     Format
	Fields     [3]FieldSource
	SecondWord FieldSource
	Operands   []OperandKind
	Class      uint16
}

func (d *Descriptor) NumOperands() int {
	return len(d.Operands)
}

// OperandKind returns the required kind of the zero-based operand i.
func (d *Descriptor) OperandKind(i int) OperandKind {
	return d.Operands[i]
}

func (d *Descriptor) IsLong() bool {
	return d.Format == FORMAT_LONG
}

// Size returns the number of address units the instruction occupies.
func (d *Descriptor) Size() uint16 {
	if d.IsLong() {
		return 2 * WORD_SIZE
	}

	return WORD_SIZE
}

// SecondWordOperand returns the zero-based index of the operand that supplies
// the second word, or -1 for short instructions.
func (d *Descriptor) SecondWordOperand() int {
	if !d.IsLong() || d.SecondWord == FIELD_ZERO {
		return -1
	}

	return int(d.SecondWord) - int(FIELD_OP1)
}

func (k OperandKind) String() string {
	switch k {
	case OPERAND_REGISTER:
		return "register (R0-R7)"
	case OPERAND_NUMBER:
		return "label or hex value (like $01FF)"
	default:
		return "<invalid>"
	}
}

func (f Format) String() string {
	if f == FORMAT_LONG {
		return "long"
	}

	return "short"
}

var (
	reg3   = []OperandKind{OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER}
	reg2   = []OperandKind{OPERAND_REGISTER, OPERAND_REGISTER}
	reg2n  = []OperandKind{OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_NUMBER}
	regn   = []OperandKind{OPERAND_REGISTER, OPERAND_NUMBER}
	target = []OperandKind{OPERAND_NUMBER}

	rrr = [3]FieldSource{FIELD_OP1, FIELD_OP2, FIELD_OP3}
	rr0 = [3]FieldSource{FIELD_OP1, FIELD_OP2, FIELD_ZERO}
	r00 = [3]FieldSource{FIELD_OP1, FIELD_ZERO, FIELD_ZERO}
	zrr = [3]FieldSource{FIELD_ZERO, FIELD_OP1, FIELD_OP2}
	zzz = [3]FieldSource{FIELD_ZERO, FIELD_ZERO, FIELD_ZERO}
)

func short(mnemonic string, class uint16, fields [3]FieldSource, operands []OperandKind) *Descriptor {
	return &Descriptor{
		Mnemonic: mnemonic,
		Format:   FORMAT_SHORT,
		Fields:   fields,
		Operands: operands,
		Class:    class,
	}
}

func long(mnemonic string, class uint16, fields [3]FieldSource, second FieldSource, operands []OperandKind) *Descriptor {
	return &Descriptor{
		Mnemonic:   mnemonic,
		Format:     FORMAT_LONG,
		Fields:     fields,
		SecondWord: second,
		Operands:   operands,
		Class:      class,
	}
}

var table = map[string]*Descriptor{}

func init() {
	for _, d := range []*Descriptor{
		// Register-register ALU
		short("ADD", CLASS_ADD, rrr, reg3),
		short("SUB", CLASS_SUB, rrr, reg3),
		short("AND", CLASS_AND, rrr, reg3),
		short("OR", CLASS_OR, rrr, reg3),
		short("XOR", CLASS_XOR, rrr, reg3),
		short("SLT", CLASS_SLT, rrr, reg3),
		short("SLL", CLASS_SLL, rrr, reg3),
		short("SRL", CLASS_SRL, rrr, reg3),
		short("SRA", CLASS_SRA, rrr, reg3),

		short("MV", CLASS_MV, rr0, reg2),
		short("NOT", CLASS_NOT, rr0, reg2),
		short("STOP", CLASS_STOP, zzz, nil),

		// Immediates
		long("ADDI", CLASS_ADDI, rr0, FIELD_OP3, reg2n),
		long("SLTI", CLASS_SLTI, rr0, FIELD_OP3, reg2n),
		long("SLLI", CLASS_SLLI, rr0, FIELD_OP3, reg2n),
		long("SRLI", CLASS_SRLI, rr0, FIELD_OP3, reg2n),
		long("SRAI", CLASS_SRAI, rr0, FIELD_OP3, reg2n),
		long("LI", CLASS_LI, r00, FIELD_OP2, regn),

		// Memory
		long("LW", CLASS_LW, rr0, FIELD_OP3, reg2n),
		long("SW", CLASS_SW, zrr, FIELD_OP3, reg2n),

		// Branches
		long("BRA", CLASS_BRA, zzz, FIELD_OP1, target),
		long("BRC", CLASS_BRC, zzz, FIELD_OP1, target),
		long("BRN", CLASS_BRN, zzz, FIELD_OP1, target),
		long("BRNZ", CLASS_BRNZ, zzz, FIELD_OP1, target),
		long("BRV", CLASS_BRV, zzz, FIELD_OP1, target),
		long("BRZ", CLASS_BRZ, zzz, FIELD_OP1, target),
	} {
		if _, exists := table[d.Mnemonic]; exists {
			panic("isa: duplicate mnemonic " + d.Mnemonic)
		}

		table[d.Mnemonic] = d
	}
}

func Exists(mnemonic string) bool {
	_, exists := table[strings.ToUpper(mnemonic)]
	return exists
}

// Lookup returns the descriptor for mnemonic, which is matched
// case-insensitively.
func Lookup(mnemonic string) (*Descriptor, error) {
	if d, exists := table[strings.ToUpper(mnemonic)]; exists {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMnemonic, mnemonic)
}

// Mnemonics returns every known mnemonic in sorted order.
func Mnemonics() []string {
	result := make([]string, 0, len(table))

	for mnemonic := range table {
		result = append(result, mnemonic)
	}

	sort.Strings(result)
	return result
}
