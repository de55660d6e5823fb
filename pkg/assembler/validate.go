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
	"strings"

	"github.com/lassandro/risc240/pkg/encoding"
	"github.com/lassandro/risc240/pkg/isa"
)

func parseDirective(ident string) DirectiveType {
	if strings.EqualFold(ident, ".ORG") {
		return DIRECTIVE_ORG
	} else if strings.EqualFold(ident, ".EQU") {
		return DIRECTIVE_EQU
	} else if strings.EqualFold(ident, ".DW") {
		return DIRECTIVE_DW
	}

	return DIRECTIVE_INVALID
}

// ParseLine decomposes and validates a single line of source at addr,
// registering its label in symbols. The returned line is marked Valid only
// when err is nil.
func ParseLine(text string, number int, addr Address, symbols *SymbolTable) (SourceLine, error) {
	line, err := Decompose(text, number)

	if err != nil {
		return line, err
	}

	line.Address = addr

	if err := Validate(&line, symbols); err != nil {
		return line, err
	}

	return line, nil
}

// Validate checks a decomposed line and binds its label. Only the first
// problem found is reported.
func Validate(line *SourceLine, symbols *SymbolTable) error {
	line.Valid = false

	if line.HasMnemonic() {
		var err error

		if strings.HasPrefix(line.Mnemonic.Value, ".") {
			err = validateDirective(line)
		} else {
			err = validateInstruction(line)
		}

		if err != nil {
			return err
		}
	}

	origin := line.Directive == DIRECTIVE_ORG || line.Directive == DIRECTIVE_EQU

	if (line.HasLabel() || line.HasMnemonic()) && !origin && !line.Address.Defined {
		return &MissingOriginError{line.cursor()}
	}

	if line.HasLabel() {
		if !encoding.IsLabel(line.Label.Value) {
			return &InvalidLabelError{
				line.Label.cursor(line.Number), line.Label.Value,
			}
		}

		var value uint16

		if line.Directive == DIRECTIVE_EQU {
			value, _ = encoding.DecodeHex(line.Operands[0].Value)
		} else if line.Address.Value >= ADDRESS_LIMIT {
			// Labels must name an address inside memory
			return &AddressOverflowError{
				line.Label.cursor(line.Number), line.Address.Value,
			}
		} else {
			value = uint16(line.Address.Value)
		}

		err := symbols.Define(
			line.Label.Value, value, line.Label.cursor(line.Number),
		)

		if err != nil {
			return err
		}
	}

	if size := line.Size(); size > 0 && line.Address.Value+size > ADDRESS_LIMIT {
		return &AddressOverflowError{
			line.Mnemonic.cursor(line.Number), line.Address.Value + size,
		}
	}

	line.Valid = true
	return nil
}

func validateInstruction(line *SourceLine) error {
	mnemonic := line.Mnemonic
	desc, err := isa.Lookup(mnemonic.Value)

	if err != nil {
		return &UnknownMnemonicError{
			mnemonic.cursor(line.Number), mnemonic.Value,
		}
	}

	if len(line.Operands) != desc.NumOperands() {
		return &WrongOperandCountError{
			mnemonic.cursor(line.Number),
			desc.Mnemonic,
			desc.NumOperands(),
			len(line.Operands),
		}
	}

	for i, operand := range line.Operands {
		kind := desc.OperandKind(i)

		var ok bool

		switch kind {
		case isa.OPERAND_REGISTER:
			ok = encoding.IsRegister(operand.Value)
		case isa.OPERAND_NUMBER:
			ok = encoding.IsNumber(operand.Value)
		}

		if !ok {
			return &WrongOperandTypeError{
				operand.cursor(line.Number),
				desc.Mnemonic,
				i,
				kind,
				operand.Value,
			}
		}
	}

	line.Instruction = desc
	return nil
}

func validateDirective(line *SourceLine) error {
	mnemonic := line.Mnemonic
	directive := parseDirective(mnemonic.Value)
	pos := mnemonic.cursor(line.Number)

	malformed := func(reason string) error {
		return &MalformedDirectiveError{pos, mnemonic.Value, reason}
	}

	switch directive {
	case DIRECTIVE_ORG:
		if line.HasLabel() {
			return malformed("a label is not allowed")
		}

		if len(line.Operands) != 1 {
			return malformed("requires exactly one operand")
		}

		if !encoding.IsHex(line.Operands[0].Value) {
			return malformed("operand must be a hex value (like $01FF)")
		}
	case DIRECTIVE_EQU:
		if !line.HasLabel() {
			return malformed("requires a label")
		}

		if len(line.Operands) != 1 {
			return malformed("requires exactly one operand")
		}

		if !encoding.IsHex(line.Operands[0].Value) {
			return malformed("operand must be a hex value (like $01FF)")
		}
	case DIRECTIVE_DW:
		if len(line.Operands) > 1 {
			return malformed("takes at most one operand")
		}

		if len(line.Operands) == 1 && !encoding.IsNumber(line.Operands[0].Value) {
			return malformed("operand must be a label or hex value (like $01FF)")
		}
	default:
		return &UnknownMnemonicError{pos, mnemonic.Value}
	}

	line.Directive = directive
	return nil
}
