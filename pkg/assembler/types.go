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
package assembler

import (
	"fmt"

	"github.com/lassandro/risc240/pkg/isa"
)

type DirectiveType uint

type Cursor struct {
	Line   int
	Column int
	Size   int
}

// Field is one upper-cased piece of a source line together with the 1-based
// column it started at.
type Field struct {
	Value  string
	Column int
}

func (f Field) IsEmpty() bool {
	return f.Value == ""
}

func (f Field) cursor(line int) Cursor {
	return Cursor{Line: line, Column: f.Column, Size: len(f.Value)}
}

// Address is the location counter of pass 1. It stays undefined until the
// first .ORG directive.
type Address struct {
	Value   uint32
	Defined bool
}

func (a Address) String() string {
	if !a.Defined {
		return "----"
	}

	return fmt.Sprintf("%04X", a.Value)
}

type MemoryLocation struct {
	Addr uint16
	Word uint16
}

type SourceLine struct {
	Text     string
	Number   int
	Label    Field
	Mnemonic Field
	Operands []Field

	Address     Address
	Directive   DirectiveType
	Instruction *isa.Descriptor
	Words       []uint16
	Valid       bool
}

func (l *SourceLine) HasLabel() bool {
	return !l.Label.IsEmpty()
}

func (l *SourceLine) HasMnemonic() bool {
	return !l.Mnemonic.IsEmpty()
}

func (l *SourceLine) IsDirective() bool {
	return l.Directive != DIRECTIVE_INVALID
}

// Size returns the number of address units the line occupies.
func (l *SourceLine) Size() uint32 {
	if l.Instruction != nil {
		return uint32(l.Instruction.Size())
	}

	if l.Directive == DIRECTIVE_DW {
		return isa.WORD_SIZE
	}

	return 0
}

// MemoryLocations pairs the encoded words with their addresses.
func (l *SourceLine) MemoryLocations() []MemoryLocation {
	result := make([]MemoryLocation, 0, len(l.Words))

	for i, word := range l.Words {
		result = append(result, MemoryLocation{
			Addr: uint16(l.Address.Value) + uint16(i*isa.WORD_SIZE),
			Word: word,
		})
	}

	return result
}

func (l *SourceLine) cursor() Cursor {
	return Cursor{Line: l.Number, Column: 1, Size: len(l.Text)}
}

type LineError interface {
	GetPosition() Cursor
}

// StructuralParseError means the line could not be split into label,
// mnemonic and operand fields. It stops assembly at once.
type StructuralParseError struct {
	Position Cursor
	Reason   string
}

func (err *StructuralParseError) GetPosition() Cursor {
	return err.Position
}

func (err *StructuralParseError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Line can't be parsed into label, opcode and operands: %s",
		err.Position.Line,
		err.Position.Column,
		err.Reason,
	)
}

type UnknownMnemonicError struct {
	Position Cursor
	Received string
}

func (err *UnknownMnemonicError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownMnemonicError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown opcode '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type WrongOperandCountError struct {
	Position Cursor
	Mnemonic string
	Required int
	Received int
}

func (err *WrongOperandCountError) GetPosition() Cursor {
	return err.Position
}

func (err *WrongOperandCountError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid number of operands for %s\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Mnemonic,
		err.Required,
		err.Received,
	)
}

type WrongOperandTypeError struct {
	Position Cursor
	Mnemonic string
	Index    int
	Required isa.OperandKind
	Received string
}

func (err *WrongOperandTypeError) GetPosition() Cursor {
	return err.Position
}

func (err *WrongOperandTypeError) Error() string {
	var ordinal string

	switch err.Index {
	case 0:
		ordinal = "first"
	case 1:
		ordinal = "second"
	case 2:
		ordinal = "third"
	default:
		ordinal = fmt.Sprintf("#%d", err.Index+1)
	}

	return fmt.Sprintf(
		"%02d:%02d: Invalid %s operand for %s\n\twant:%s\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		ordinal,
		err.Mnemonic,
		err.Required,
		err.Received,
	)
}

type DuplicateLabelError struct {
	Position Cursor
	Received string
	Previous int
}

func (err *DuplicateLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *DuplicateLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s' (first declared on line %d)",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Previous,
	)
}

type UndefinedLabelError struct {
	Position Cursor
	Received string
}

func (err *UndefinedLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *UndefinedLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type MissingOriginError struct {
	Position Cursor
}

func (err *MissingOriginError) GetPosition() Cursor {
	return err.Position
}

func (err *MissingOriginError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Missing .ORG before the first label or opcode",
		err.Position.Line,
		err.Position.Column,
	)
}

type MalformedDirectiveError struct {
	Position  Cursor
	Directive string
	Reason    string
}

func (err *MalformedDirectiveError) GetPosition() Cursor {
	return err.Position
}

func (err *MalformedDirectiveError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid %s directive: %s",
		err.Position.Line,
		err.Position.Column,
		err.Directive,
		err.Reason,
	)
}

type InvalidLabelError struct {
	Position Cursor
	Received string
}

func (err *InvalidLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid label '%s'\n\twant:letters, digits and _\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Received,
	)
}

type AddressOverflowError struct {
	Position Cursor
	Received uint32
}

func (err *AddressOverflowError) GetPosition() Cursor {
	return err.Position
}

func (err *AddressOverflowError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Program exceeds the address space\n\twant:<=%#04x\n\thave:%#05x",
		err.Position.Line,
		err.Position.Column,
		ADDRESS_LIMIT-1,
		err.Received,
	)
}
