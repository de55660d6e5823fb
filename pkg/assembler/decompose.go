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
	"unicode"
)

func isSpace(b byte) bool {
	return b < unicode.MaxASCII && unicode.IsSpace(rune(b))
}

// Decompose splits one line of source into its label, mnemonic and operand
// fields. A label is present exactly when the line does not start with
// whitespace. Everything from the first ';' on is a comment.
func Decompose(text string, number int) (SourceLine, error) {
	line := SourceLine{Text: text, Number: number}

	body := text
	if i := strings.IndexByte(body, ';'); i >= 0 {
		body = body[:i]
	}

	pos := 0

	// Reads the next run of non-whitespace starting at pos
	word := func() Field {
		start := pos
		for pos < len(body) && !isSpace(body[pos]) {
			pos++
		}
		return Field{strings.ToUpper(body[start:pos]), start + 1}
	}

	skipSpace := func() {
		for pos < len(body) && isSpace(body[pos]) {
			pos++
		}
	}

	if strings.TrimSpace(body) == "" {
		return line, nil
	}

	if !isSpace(body[0]) {
		line.Label = word()
	}

	skipSpace()

	if pos == len(body) {
		return line, nil
	}

	line.Mnemonic = word()
	skipSpace()

	if pos == len(body) {
		return line, nil
	}

	operands, err := splitOperands(body, pos, number)

	if err != nil {
		return line, err
	}

	line.Operands = operands
	return line, nil
}

func splitOperands(body string, start int, number int) ([]Field, error) {
	var result []Field

	for {
		end := len(body)
		if i := strings.IndexByte(body[start:], ','); i >= 0 {
			end = start + i
		}

		piece := body[start:end]
		trimmed := strings.TrimLeftFunc(piece, unicode.IsSpace)
		column := start + len(piece) - len(trimmed) + 1
		trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)

		if trimmed == "" {
			return nil, &StructuralParseError{
				Cursor{number, column, 1}, "empty operand",
			}
		}

		if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
			return nil, &StructuralParseError{
				Cursor{number, column, len(trimmed)},
				"operands must be separated by commas",
			}
		}

		result = append(result, Field{strings.ToUpper(trimmed), column})

		if end == len(body) {
			return result, nil
		}

		start = end + 1
	}
}
