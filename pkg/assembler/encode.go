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
	"github.com/lassandro/risc240/pkg/encoding"
	"github.com/lassandro/risc240/pkg/isa"
)

// Encode fills in the words of a valid line. Label operands are resolved
// through symbols, so every label of the program must be defined first.
func Encode(line *SourceLine, symbols *SymbolTable) error {
	line.Words = nil

	if !line.Valid || !line.HasMnemonic() {
		return nil
	}

	switch line.Directive {
	case DIRECTIVE_ORG, DIRECTIVE_EQU:
		return nil
	case DIRECTIVE_DW:
		var word uint16

		if len(line.Operands) == 1 {
			var err error
			if word, err = resolve(line.Operands[0], line.Number, symbols); err != nil {
				return err
			}
		}

		line.Words = []uint16{word}
		return nil
	}

	desc := line.Instruction
	word := desc.Class << isa.CLASS_SHIFT

	for i, source := range desc.Fields {
		var value uint16

		if source != isa.FIELD_ZERO {
			operand := line.Operands[source-isa.FIELD_OP1]
			value, _ = encoding.DecodeRegister(operand.Value)
		}

		word |= value << (isa.FIELD_BITS * (2 - i))
	}

	if !desc.IsLong() {
		line.Words = []uint16{word}
		return nil
	}

	second, err := resolve(
		line.Operands[desc.SecondWordOperand()], line.Number, symbols,
	)

	if err != nil {
		return err
	}

	line.Words = []uint16{word, second}
	return nil
}

func resolve(operand Field, number int, symbols *SymbolTable) (uint16, error) {
	if encoding.IsHex(operand.Value) {
		return encoding.DecodeHex(operand.Value)
	}

	return symbols.Resolve(operand.Value, operand.cursor(number))
}
